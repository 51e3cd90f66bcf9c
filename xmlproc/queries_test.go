package xmlproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/mapping"
)

func TestNamedQueryFamilies(t *testing.T) {
	cacheable := true
	jpa, hibernate := NamedQueryUsages([]mapping.NamedQuery{
		{Name: "hinted", Query: "from Foo", Hints: []mapping.QueryHint{{Name: "org.hibernate.timeout", Value: "10"}}},
		{Name: "plain", Query: "from Foo", QueryOptions: mapping.QueryOptions{Cacheable: &cacheable}},
	})

	require.Len(t, jpa, 1)
	assert.Equal(t, annotations.NamedQuery, jpa[0].Type)
	assert.Equal(t, "hinted", jpa[0].String("name"))
	require.Len(t, jpa[0].Nested("hints"), 1)

	require.Len(t, hibernate, 1)
	assert.Equal(t, annotations.HibernateNamedQuery, hibernate[0].Type)
	assert.True(t, hibernate[0].Bool("cacheable"))
}

func TestNamedNativeQueryFamilies(t *testing.T) {
	_, ctx := documentContext(t, mapLoader{}, `<entity-mappings><package>com.x</package></entity-mappings>`)

	jpa, hibernate := NamedNativeQueryUsages([]mapping.NamedNativeQuery{
		{Name: "mapped", Query: "select 1", ColumnResults: []mapping.ColumnResult{{Name: "one"}}},
		{Name: "plain", Query: "select * from foo", ResultClass: "Foo", Synchronizations: []mapping.Synchronize{{Table: "foo"}}},
	}, ctx)

	require.Len(t, jpa, 1)
	assert.Equal(t, annotations.NamedNativeQuery, jpa[0].Type)
	require.Len(t, jpa[0].Nested("columns"), 1)

	require.Len(t, hibernate, 1)
	assert.Equal(t, annotations.HibernateNamedNativeQuery, hibernate[0].Type)
	assert.Equal(t, "com.x.Foo", hibernate[0].String("resultClass"))
	assert.Equal(t, []string{"foo"}, hibernate[0].Strings("querySpaces"))
}

func TestEntityQueriesAreWrapped(t *testing.T) {
	foo := fooClass()
	_, _, err := process(t, mapLoader{}.add(foo), `<entity-mappings>
  <entity class="com.x.Foo" access="FIELD" metadata-complete="true">
    <named-query name="Foo.byName"><query>from Foo where name = :name</query></named-query>
    <named-query name="Foo.all"><query>from Foo</query></named-query>
    <attributes><id name="id"/></attributes>
  </entity>
</entity-mappings>`)
	require.NoError(t, err)

	container := foo.GetAnnotationUsage(annotations.HibernateNamedQueries)
	require.NotNil(t, container)
	queries := container.Nested("value")
	require.Len(t, queries, 2)
	assert.Equal(t, "Foo.byName", queries[0].String("name"))
	assert.Equal(t, "Foo.all", queries[1].String("name"))
	assert.False(t, foo.HasAnnotationUsage(annotations.NamedQueries))
}
