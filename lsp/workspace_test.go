package lsp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/ormxml/config"
	"github.com/dhamidi/ormxml/java"
)

const (
	validDoc = `<entity-mappings>
  <entity name="Bar">
    <attributes>
      <id name="key" target="java.lang.Long"/>
    </attributes>
  </entity>
</entity-mappings>`

	untypedDoc = `<entity-mappings>
  <entity name="Baz">
    <attributes>
      <id name="key" target="java.lang.Long"/>
      <basic name="label"/>
    </attributes>
  </entity>
</entity-mappings>`

	malformedDoc = `<entity-mappings>
  <entity name="Bar">
</entity-mappings>`
)

func newTestWorkspace() *Workspace {
	cfg := &config.Config{}
	return NewWorkspace(cfg, java.NewClassPath(cfg.Locator()))
}

func TestDiagnoseCleanDocument(t *testing.T) {
	w := newTestWorkspace()
	w.Update("file:///orm.xml", validDoc)

	diagnostics := w.Diagnose()
	require.Contains(t, diagnostics, "file:///orm.xml")
	assert.Empty(t, diagnostics["file:///orm.xml"])
}

func TestDiagnoseSyntaxError(t *testing.T) {
	w := newTestWorkspace()
	w.Update("file:///broken.xml", malformedDoc)
	w.Update("file:///orm.xml", validDoc)

	diagnostics := w.Diagnose()
	require.Len(t, diagnostics["file:///broken.xml"], 1)
	d := diagnostics["file:///broken.xml"][0]
	assert.Equal(t, uint32(2), uint32(d.Range.Start.Line))
	assert.Equal(t, "ormxml", *d.Source)
	assert.Empty(t, diagnostics["file:///orm.xml"])
}

func TestDiagnoseProcessingErrorIsAttributed(t *testing.T) {
	w := newTestWorkspace()
	w.Update("file:///a.xml", validDoc)
	w.Update("file:///b.xml", untypedDoc)

	diagnostics := w.Diagnose()
	assert.Empty(t, diagnostics["file:///a.xml"])
	require.Len(t, diagnostics["file:///b.xml"], 1)
	assert.Contains(t, diagnostics["file:///b.xml"][0].Message, "label")

	w.Update("file:///b.xml", strings.Replace(untypedDoc, `<basic name="label"/>`, `<basic name="label" target="java.lang.String"/>`, 1))
	assert.Empty(t, w.Diagnose()["file:///b.xml"])
}

func TestWorkspaceClose(t *testing.T) {
	w := newTestWorkspace()
	w.Update("file:///a.xml", validDoc)
	w.Update("file:///b.xml", untypedDoc)
	w.Update("file:///a.xml", validDoc)
	assert.Equal(t, []string{"file:///a.xml", "file:///b.xml"}, w.Documents())

	w.Close("file:///b.xml")
	assert.Equal(t, []string{"file:///a.xml"}, w.Documents())
	assert.NotContains(t, w.Diagnose(), "file:///b.xml")
}
