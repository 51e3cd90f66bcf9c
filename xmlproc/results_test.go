package xmlproc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
)

func TestApplyIsSingleUse(t *testing.T) {
	result, _, err := process(t, mapLoader{}.add(fooClass()), `<entity-mappings>
  <entity class="com.x.Foo"><attributes><id name="id"/></attributes></entity>
</entity-mappings>`)
	require.NoError(t, err)

	require.NoError(t, result.Apply())
	assert.ErrorIs(t, result.Apply(), ErrAlreadyApplied)
}

func TestXmlCompleteUnitProcessesEverythingImmediately(t *testing.T) {
	foo := fooClass()
	_, _, err := process(t, mapLoader{}.add(foo),
		`<entity-mappings>
  <persistence-unit-metadata><xml-mapping-metadata-complete/></persistence-unit-metadata>
</entity-mappings>`,
		`<entity-mappings>
  <entity class="com.x.Foo"><attributes><id name="id"/></attributes></entity>
</entity-mappings>`)
	require.NoError(t, err)
	assert.True(t, foo.HasAnnotationUsage(annotations.Entity))
}

func TestPreProcessingCollectsManagedNames(t *testing.T) {
	pre := NewXmlPreProcessingResult(nil)
	pre.AddDocument(parseBinding(t, "orm.xml", `<entity-mappings>
  <package>com.x</package>
  <mapped-superclass class="Base"/>
  <entity class="Foo"/>
  <entity name="Bar"/>
  <embeddable class="Address"/>
  <converter class="MoneyConverter"/>
</entity-mappings>`))

	assert.Equal(t,
		[]string{"com.x.Foo", "Bar", "com.x.Base", "com.x.Address", "com.x.MoneyConverter"},
		pre.ManagedNames())
	assert.Len(t, pre.Documents(), 1)
}

func TestGlobalRegistrations(t *testing.T) {
	result, _, err := process(t, mapLoader{}, `<entity-mappings>
  <package>com.x</package>
  <filter-def name="tenant">
    <default-condition>tenant_id = :id</default-condition>
    <filter-param name="id" type="long"/>
  </filter-def>
  <converter class="MoneyConverter" auto-apply="true"/>
  <sequence-generator name="seq" sequence-name="foo_seq"/>
  <named-query name="all"><query>from Foo</query></named-query>
</entity-mappings>`)
	require.NoError(t, err)

	g := result.GlobalRegistrations()
	require.Len(t, g.FilterDefs, 1)
	assert.Equal(t, "tenant", g.FilterDefs[0].String("name"))
	params := g.FilterDefs[0].Nested("parameters")
	require.Len(t, params, 1)
	assert.Equal(t, "long", params[0].String("type"))

	require.Len(t, g.Converters, 1)
	assert.Equal(t, "com.x.MoneyConverter", g.Converters[0].String("converter"))
	assert.True(t, g.Converters[0].Bool("autoApply"))

	require.Len(t, g.SequenceGenerators, 1)
	assert.Equal(t, "seq", g.SequenceGenerators[0].String("name"))

	require.Len(t, g.NamedQueries, 1)
	assert.Equal(t, annotations.HibernateNamedQuery, g.NamedQueries[0].Type)
}

func TestApplyAttributesErrorsToDocument(t *testing.T) {
	result, _, err := process(t, mapLoader{},
		`<entity-mappings/>`,
		`<entity-mappings><entity class="com.x.Missing"/></entity-mappings>`)
	require.NoError(t, err)

	err = result.Apply()
	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "orm-1.xml", docErr.Origin)

	var loadErr *java.ClassLoadingError
	assert.ErrorAs(t, err, &loadErr)
}

type recordingLoader struct {
	mapLoader
	requested []string
}

func (l *recordingLoader) LoadClass(name string) (*java.ClassDetails, error) {
	l.requested = append(l.requested, name)
	return l.mapLoader.LoadClass(name)
}

func TestProcessXmlHandlesKindsAcrossDocuments(t *testing.T) {
	loader := &recordingLoader{mapLoader: mapLoader{}.add(
		fooClass(),
		beanClass("com.x.Address", map[string]string{"street": "java.lang.String"}),
	)}
	pre := NewXmlPreProcessingResult(nil)
	pre.AddDocument(parseBinding(t, "orm-0.xml", fooMapping))
	pre.AddDocument(parseBinding(t, "orm-1.xml", `<entity-mappings>
  <embeddable class="com.x.Address" metadata-complete="true">
    <attributes><basic name="street"/></attributes>
  </embeddable>
</entity-mappings>`))

	_, err := ProcessXml(pre, NewModelBuildingContext(java.NewClassDetailsRegistry(loader)), nil)
	require.NoError(t, err)

	var managed []string
	for _, name := range loader.requested {
		if strings.HasPrefix(name, "com.x.") {
			managed = append(managed, name)
		}
	}
	assert.Equal(t, []string{"com.x.Address", "com.x.Foo"}, managed)
}
