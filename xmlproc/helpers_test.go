package xmlproc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/ormxml/java"
	"github.com/dhamidi/ormxml/mapping"
)

type mapLoader map[string]*java.ClassDetails

func (l mapLoader) LoadClass(name string) (*java.ClassDetails, error) {
	if c, ok := l[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%s: %w", name, java.ErrClassNotFound)
}

func (l mapLoader) add(classes ...*java.ClassDetails) mapLoader {
	for _, c := range classes {
		l[c.Name] = c
	}
	return l
}

// beanClass builds a class with a field and a getter for every property.
func beanClass(name string, props map[string]string) *java.ClassDetails {
	c := java.NewClassDetails(name, java.ClassKindClass)
	for prop, typ := range props {
		c.AddField(java.NewFieldDetails(prop, java.TypeOf(typ)))
		c.AddMethod(java.NewMethodDetails("get"+strings.ToUpper(prop[:1])+prop[1:], java.TypeOf(typ)))
	}
	return c
}

func fooClass() *java.ClassDetails {
	return beanClass("com.x.Foo", map[string]string{
		"id":   "java.lang.Long",
		"name": "java.lang.String",
	})
}

func parseBinding(t *testing.T, origin, doc string) *mapping.Binding {
	t.Helper()
	root, err := mapping.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return &mapping.Binding{Origin: origin, Root: root}
}

// process runs the documents through pre-processing and ProcessXml.
func process(t *testing.T, loader mapLoader, docs ...string) (*XmlProcessingResult, *java.ClassDetailsRegistry, error) {
	t.Helper()
	pre := NewXmlPreProcessingResult(nil)
	for i, doc := range docs {
		pre.AddDocument(parseBinding(t, fmt.Sprintf("orm-%d.xml", i), doc))
	}
	registry := java.NewClassDetailsRegistry(loader)
	result, err := ProcessXml(pre, NewModelBuildingContext(registry), nil)
	return result, registry, err
}

// documentContext consumes a single document for tests that drive the
// processors directly.
func documentContext(t *testing.T, loader mapLoader, doc string) (*mapping.EntityMappings, *XmlDocumentContext) {
	t.Helper()
	binding := parseBinding(t, "orm.xml", doc)
	pu := NewPersistenceUnitMetadata()
	pu.Apply(binding.Root.PersistenceUnitMetadata)
	models := NewModelBuildingContext(java.NewClassDetailsRegistry(loader))
	ctx := NewXmlDocumentContext(ConsumeDocument(binding, pu), pu, models, NewBootstrapContext(nil))
	return binding.Root, ctx
}
