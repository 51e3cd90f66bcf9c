package lsp

import (
	"encoding/xml"
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/ormxml/config"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
	"github.com/dhamidi/ormxml/xmlproc"
)

const diagnosticSource = "ormxml"

// Workspace holds the open mapping documents of one persistence unit.
// Every open document takes part in processing, in the order it was opened.
type Workspace struct {
	cfg    *config.Config
	loader java.ClassLoader

	order []protocol.DocumentUri
	texts map[protocol.DocumentUri]string
}

func NewWorkspace(cfg *config.Config, loader java.ClassLoader) *Workspace {
	return &Workspace{
		cfg:    cfg,
		loader: loader,
		texts:  map[protocol.DocumentUri]string{},
	}
}

// Update records the text of a document, opening it if needed.
func (w *Workspace) Update(uri protocol.DocumentUri, text string) {
	if _, ok := w.texts[uri]; !ok {
		w.order = append(w.order, uri)
	}
	w.texts[uri] = text
}

func (w *Workspace) Close(uri protocol.DocumentUri) {
	if _, ok := w.texts[uri]; !ok {
		return
	}
	delete(w.texts, uri)
	for i, u := range w.order {
		if u == uri {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

func (w *Workspace) Documents() []protocol.DocumentUri {
	return append([]protocol.DocumentUri(nil), w.order...)
}

// Diagnose processes all open documents from scratch and returns the
// diagnostics of each one. Documents without problems map to an empty
// slice so clients clear stale diagnostics.
func (w *Workspace) Diagnose() map[protocol.DocumentUri][]protocol.Diagnostic {
	out := make(map[protocol.DocumentUri][]protocol.Diagnostic, len(w.order))

	pre := xmlproc.NewXmlPreProcessingResult(w.cfg.PersistenceUnitMetadata())
	for _, uri := range w.order {
		out[uri] = []protocol.Diagnostic{}
		root, err := mapping.ParseBytes([]byte(w.texts[uri]))
		if err != nil {
			out[uri] = append(out[uri], syntaxDiagnostic(err))
			continue
		}
		pre.AddDocument(&mapping.Binding{Origin: uri, Root: root})
	}

	models := xmlproc.NewModelBuildingContext(java.NewClassDetailsRegistry(w.loader))
	result, err := xmlproc.ProcessXml(pre, models, xmlproc.NewBootstrapContext(w.cfg.TypeRegistry()))
	if err == nil {
		err = result.Apply()
	}
	if err != nil {
		uri, d := processingDiagnostic(err)
		if _, ok := out[uri]; ok {
			out[uri] = append(out[uri], d)
		} else {
			log.Errorf("processing failed outside open documents: %s", err)
		}
	}
	return out
}

func syntaxDiagnostic(err error) protocol.Diagnostic {
	line := 0
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) && syntaxErr.Line > 0 {
		line = syntaxErr.Line - 1
	}
	return newDiagnostic(line, err.Error())
}

func processingDiagnostic(err error) (protocol.DocumentUri, protocol.Diagnostic) {
	var docErr *xmlproc.DocumentError
	if errors.As(err, &docErr) {
		return docErr.Origin, newDiagnostic(0, docErr.Err.Error())
	}
	return "", newDiagnostic(0, err.Error())
}

// newDiagnostic marks the whole line, or the start of the document when
// the position is unknown.
func newDiagnostic(line int, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line)},
			End:   protocol.Position{Line: protocol.UInteger(line + 1)},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}
