package xmlproc

import (
	"errors"

	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

// ErrAlreadyApplied is returned by a second call to XmlProcessingResult.Apply.
var ErrAlreadyApplied = errors.New("xml processing result already applied")

// XmlPreProcessingResult collects the parsed documents of a persistence
// unit before any of them is processed, together with the persistence-unit
// metadata they declare and the names of the types they manage.
type XmlPreProcessingResult struct {
	metadata     *PersistenceUnitMetadata
	documents    []*mapping.Binding
	managedNames []string
}

func NewXmlPreProcessingResult(metadata *PersistenceUnitMetadata) *XmlPreProcessingResult {
	if metadata == nil {
		metadata = NewPersistenceUnitMetadata()
	}
	return &XmlPreProcessingResult{metadata: metadata}
}

// AddDocument records a parsed document. Its persistence-unit metadata is
// merged right away so every document sees the same unit defaults.
func (r *XmlPreProcessingResult) AddDocument(binding *mapping.Binding) {
	root := binding.Root
	r.metadata.Apply(root.PersistenceUnitMetadata)
	r.documents = append(r.documents, binding)

	for i := range root.Entities {
		r.addManagedName(root, root.Entities[i].Class, root.Entities[i].Name)
	}
	for i := range root.MappedSuperclasses {
		r.addManagedName(root, root.MappedSuperclasses[i].Class, "")
	}
	for i := range root.Embeddables {
		r.addManagedName(root, root.Embeddables[i].Class, root.Embeddables[i].Name)
	}
	for i := range root.Converters {
		r.addManagedName(root, root.Converters[i].Class, "")
	}
}

func (r *XmlPreProcessingResult) addManagedName(root *mapping.EntityMappings, className, name string) {
	if className != "" {
		r.managedNames = append(r.managedNames, DetermineClassName(root, className))
	} else if name != "" {
		r.managedNames = append(r.managedNames, name)
	}
}

func (r *XmlPreProcessingResult) PersistenceUnitMetadata() *PersistenceUnitMetadata { return r.metadata }
func (r *XmlPreProcessingResult) Documents() []*mapping.Binding                     { return r.documents }

// ManagedNames lists the class names, or entity and embeddable names of
// dynamic types, of every managed type in document order.
func (r *XmlPreProcessingResult) ManagedNames() []string { return r.managedNames }

// OverrideTuple is a managed type queued for override processing with the
// document it came from.
type OverrideTuple[T mapping.ManagedType] struct {
	Node    T
	Root    *mapping.EntityMappings
	Context *XmlDocumentContext
}

// GlobalRegistrations are the root-level definitions of all documents, in
// document order.
type GlobalRegistrations struct {
	FilterDefs            []*java.AnnotationUsage
	Converters            []*java.AnnotationUsage
	SequenceGenerators    []*java.AnnotationUsage
	TableGenerators       []*java.AnnotationUsage
	NamedQueries          []*java.AnnotationUsage
	NamedNativeQueries    []*java.AnnotationUsage
	NamedStoredProcedures []*java.AnnotationUsage
	SqlResultSetMappings  []*java.AnnotationUsage
}

func (g *GlobalRegistrations) collect(root *mapping.EntityMappings, ctx *XmlDocumentContext) {
	for i := range root.FilterDefs {
		g.FilterDefs = append(g.FilterDefs, FilterDefUsage(&root.FilterDefs[i], ctx))
	}
	for _, c := range root.Converters {
		usage := newUsage(annotations.ConverterRegistration).Set("converter", ctx.ResolveClassName(c.Class))
		setIfNotNil(usage, "autoApply", c.AutoApply)
		g.Converters = append(g.Converters, usage)
	}
	for i := range root.SequenceGenerators {
		g.SequenceGenerators = append(g.SequenceGenerators, createSequenceGenerator(&root.SequenceGenerators[i]))
	}
	for i := range root.TableGenerators {
		g.TableGenerators = append(g.TableGenerators, createTableGenerator(&root.TableGenerators[i]))
	}

	jpa, hibernate := NamedQueryUsages(root.NamedQueries)
	g.NamedQueries = append(append(g.NamedQueries, jpa...), hibernate...)
	jpa, hibernate = NamedNativeQueryUsages(root.NamedNativeQueries, ctx)
	g.NamedNativeQueries = append(append(g.NamedNativeQueries, jpa...), hibernate...)
	g.NamedStoredProcedures = append(g.NamedStoredProcedures, NamedStoredProcedureQueryUsages(root.NamedStoredProcedureQueries, ctx)...)
	g.SqlResultSetMappings = append(g.SqlResultSetMappings, SqlResultSetMappingUsages(root.SqlResultSetMappings, ctx)...)
}

// XmlProcessingResult holds the managed types whose processing is deferred
// to override mode. It is applied exactly once.
type XmlProcessingResult struct {
	models             *ModelBuildingContext
	entities           []OverrideTuple[*mapping.Entity]
	mappedSuperclasses []OverrideTuple[*mapping.MappedSuperclass]
	embeddables        []OverrideTuple[*mapping.Embeddable]
	managedNames       []string
	global             GlobalRegistrations
	applied            bool
}

// ProcessXml processes every document of the pre-processing result. Types
// in complete mode are processed immediately, the embeddables of all
// documents first, then mapped superclasses, then entities; the others are
// queued on the result.
func ProcessXml(pre *XmlPreProcessingResult, models *ModelBuildingContext, bootstrap *BootstrapContext) (*XmlProcessingResult, error) {
	if bootstrap == nil {
		bootstrap = NewBootstrapContext(nil)
	}
	pu := pre.metadata
	result := &XmlProcessingResult{models: models}

	type document struct {
		root *mapping.EntityMappings
		ctx  *XmlDocumentContext
	}
	docs := make([]document, len(pre.documents))
	for i, binding := range pre.documents {
		ctx := NewXmlDocumentContext(ConsumeDocument(binding, pu), pu, models, bootstrap)
		result.global.collect(binding.Root, ctx)
		docs[i] = document{root: binding.Root, ctx: ctx}
	}

	complete := 0
	for _, d := range docs {
		for i := range d.root.Embeddables {
			e := &d.root.Embeddables[i]
			result.addManagedName(d.root, e.Class, e.Name)
			if !isComplete(e, pu) {
				result.embeddables = append(result.embeddables, OverrideTuple[*mapping.Embeddable]{e, d.root, d.ctx})
				continue
			}
			if err := ProcessCompleteEmbeddable(d.root, e, d.ctx); err != nil {
				return nil, &DocumentError{Origin: d.ctx.Document().Origin(), Err: err}
			}
			complete++
		}
	}
	for _, d := range docs {
		for i := range d.root.MappedSuperclasses {
			m := &d.root.MappedSuperclasses[i]
			result.addManagedName(d.root, m.Class, "")
			if !isComplete(m, pu) {
				result.mappedSuperclasses = append(result.mappedSuperclasses, OverrideTuple[*mapping.MappedSuperclass]{m, d.root, d.ctx})
				continue
			}
			if err := ProcessCompleteMappedSuperclass(d.root, m, d.ctx); err != nil {
				return nil, &DocumentError{Origin: d.ctx.Document().Origin(), Err: err}
			}
			complete++
		}
	}
	for _, d := range docs {
		for i := range d.root.Entities {
			e := &d.root.Entities[i]
			result.addManagedName(d.root, e.Class, e.Name)
			if !isComplete(e, pu) {
				result.entities = append(result.entities, OverrideTuple[*mapping.Entity]{e, d.root, d.ctx})
				continue
			}
			if err := ProcessCompleteEntity(d.root, e, d.ctx); err != nil {
				return nil, &DocumentError{Origin: d.ctx.Document().Origin(), Err: err}
			}
			complete++
		}
	}

	log.Infof("processed %d mapping documents: %d complete types, %d deferred to override mode",
		len(pre.documents), complete, result.pending())
	return result, nil
}

func (r *XmlProcessingResult) addManagedName(root *mapping.EntityMappings, className, name string) {
	if className != "" {
		r.managedNames = append(r.managedNames, DetermineClassName(root, className))
	} else {
		r.managedNames = append(r.managedNames, name)
	}
}

func (r *XmlProcessingResult) pending() int {
	return len(r.entities) + len(r.mappedSuperclasses) + len(r.embeddables)
}

// Apply runs the deferred override processing: embeddables, then mapped
// superclasses, then entities.
func (r *XmlProcessingResult) Apply() error {
	if r.applied {
		return ErrAlreadyApplied
	}
	r.applied = true

	if err := ProcessOverrideEmbeddable(r.embeddables); err != nil {
		return err
	}
	if err := ProcessOverrideMappedSuperclass(r.mappedSuperclasses); err != nil {
		return err
	}
	if err := ProcessOverrideEntity(r.entities); err != nil {
		return err
	}
	log.Debugf("applied %d override mappings", r.pending())
	return nil
}

// GlobalRegistrations returns the root-level definitions of all documents.
func (r *XmlProcessingResult) GlobalRegistrations() *GlobalRegistrations { return &r.global }

// ManagedClasses returns the models of every managed type the documents
// declare, in document order. Types that failed to resolve are skipped.
func (r *XmlProcessingResult) ManagedClasses() []*java.ClassDetails {
	seen := map[string]bool{}
	var out []*java.ClassDetails
	for _, name := range r.managedNames {
		if seen[name] {
			continue
		}
		seen[name] = true
		if c := r.models.Classes.FindClassDetails(name); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Snapshot returns immutable copies of the managed classes.
func (r *XmlProcessingResult) Snapshot() []java.ClassSnapshot {
	classes := r.ManagedClasses()
	out := make([]java.ClassSnapshot, len(classes))
	for i, c := range classes {
		out[i] = c.Snapshot()
	}
	return out
}
