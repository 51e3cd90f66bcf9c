package xmlproc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
)

const fooMapping = `<entity-mappings>
  <entity class="com.x.Foo" metadata-complete="true">
    <attributes>
      <id name="id"/>
      <basic name="name"/>
    </attributes>
  </entity>
</entity-mappings>`

func TestCompleteEntity(t *testing.T) {
	foo := fooClass()
	foo.ApplyAnnotationUsage(java.NewAnnotationUsage("com.x.Audited"))
	foo.FindFieldByName("name").ApplyAnnotationUsage(java.NewAnnotationUsage(annotations.Transient))

	result, registry, err := process(t, mapLoader{}.add(foo), fooMapping)
	require.NoError(t, err)
	require.NoError(t, result.Apply())

	c := registry.FindClassDetails("com.x.Foo")
	require.Same(t, foo, c)

	assert.False(t, c.HasAnnotationUsage("com.x.Audited"), "class usages are cleared")
	assert.Empty(t, c.FindFieldByName("name").AnnotationUsages(), "member usages are cleared")

	assert.True(t, c.HasAnnotationUsage(annotations.Entity))
	access := c.GetAnnotationUsage(annotations.Access)
	require.NotNil(t, access)
	assert.Equal(t, "PROPERTY", access.String("value"))

	getID := c.FindGetter("id")
	require.NotNil(t, getID)
	assert.True(t, getID.HasAnnotationUsage(annotations.Id))
	assert.Empty(t, c.FindFieldByName("id").AnnotationUsages())

	getName := c.FindGetter("name")
	require.NotNil(t, getName)
	assert.True(t, getName.HasAnnotationUsage(annotations.Basic))
	for _, typeAnnotation := range []string{annotations.Type, annotations.JavaType, annotations.Target, annotations.JdbcTypeCode} {
		assert.False(t, getName.HasAnnotationUsage(typeAnnotation), typeAnnotation)
	}

	snapshots := result.Snapshot()
	require.Len(t, snapshots, 1)
	assert.Equal(t, "com.x.Foo", snapshots[0].Name)
}

func TestCompleteEntityIsIdempotent(t *testing.T) {
	root, ctx := documentContext(t, mapLoader{}.add(fooClass()), fooMapping)
	entity := &root.Entities[0]

	require.NoError(t, ProcessCompleteEntity(root, entity, ctx))
	c := ctx.Models().Classes.FindClassDetails("com.x.Foo")
	require.NotNil(t, c)
	first := c.Snapshot()

	require.NoError(t, ProcessCompleteEntity(root, entity, ctx))
	assert.Equal(t, first, c.Snapshot())
}

func TestCompleteDynamicEntityIsIdempotent(t *testing.T) {
	root, ctx := documentContext(t, mapLoader{}, `<entity-mappings>
  <entity name="Bar">
    <attributes>
      <id name="key" target="java.lang.Long"/>
    </attributes>
  </entity>
</entity-mappings>`)
	entity := &root.Entities[0]

	require.NoError(t, ProcessCompleteEntity(root, entity, ctx))
	bar := ctx.Models().Classes.FindClassDetails("Bar")
	require.NotNil(t, bar)
	first := bar.Snapshot()

	require.NoError(t, ProcessCompleteEntity(root, entity, ctx))
	require.Len(t, bar.Fields(), 1)
	assert.Equal(t, first, bar.Snapshot())
}

func TestOverrideEntityTableDefaults(t *testing.T) {
	const doc = `<entity-mappings>
  <schema>docdefault</schema>
  <entity class="com.x.Foo"/>
</entity-mappings>`

	tests := []struct {
		name     string
		annotate bool
		want     string
	}{
		{name: "annotated schema is kept", annotate: true, want: "annotated"},
		{name: "document schema fills in", annotate: false, want: "docdefault"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foo := fooClass()
			if tt.annotate {
				foo.ApplyAnnotationUsage(java.NewAnnotationUsage(annotations.Table).Set("schema", "annotated"))
			}
			result, _, err := process(t, mapLoader{}.add(foo), doc)
			require.NoError(t, err)
			require.NoError(t, result.Apply())

			table := foo.GetAnnotationUsage(annotations.Table)
			require.NotNil(t, table)
			assert.Equal(t, tt.want, table.String("schema"))
		})
	}
}

func TestOverrideEntityAccessType(t *testing.T) {
	const mappingDoc = `<entity-mappings>
  <package>com.x</package>
  <entity class="Foo">
    <attributes>
      <basic name="name"><column name="foo_name"/></basic>
    </attributes>
  </entity>
</entity-mappings>`

	t.Run("from @Id placement", func(t *testing.T) {
		foo := fooClass()
		foo.FindFieldByName("id").ApplyAnnotationUsage(java.NewAnnotationUsage(annotations.Id))

		result, registry, err := process(t, mapLoader{}.add(foo), mappingDoc)
		require.NoError(t, err)
		assert.False(t, foo.HasAnnotationUsage(annotations.Entity), "override work is deferred")
		require.NoError(t, result.Apply())

		c := registry.FindClassDetails("com.x.Foo")
		assert.Equal(t, "FIELD", c.GetAnnotationUsage(annotations.Access).String("value"))
		assert.True(t, c.FindFieldByName("id").HasAnnotationUsage(annotations.Id), "override keeps existing usages")
		column := c.FindFieldByName("name").GetAnnotationUsage(annotations.Column)
		require.NotNil(t, column)
		assert.Equal(t, "foo_name", column.String("name"))
	})

	t.Run("explicit @Access wins over @Id placement", func(t *testing.T) {
		foo := fooClass()
		foo.FindFieldByName("id").ApplyAnnotationUsage(java.NewAnnotationUsage(annotations.Id))
		foo.ApplyAnnotationUsage(java.NewAnnotationUsage(annotations.Access).Set("value", "PROPERTY"))

		result, _, err := process(t, mapLoader{}.add(foo), mappingDoc)
		require.NoError(t, err)
		require.NoError(t, result.Apply())

		assert.Equal(t, "PROPERTY", foo.GetAnnotationUsage(annotations.Access).String("value"))
		assert.True(t, foo.FindGetter("name").HasAnnotationUsage(annotations.Column))
	})

	t.Run("defaults to PROPERTY", func(t *testing.T) {
		foo := fooClass()
		result, _, err := process(t, mapLoader{}.add(foo), mappingDoc)
		require.NoError(t, err)
		require.NoError(t, result.Apply())
		assert.Equal(t, "PROPERTY", foo.GetAnnotationUsage(annotations.Access).String("value"))
	})
}

func TestIdMappingsPreferBasicIds(t *testing.T) {
	foo := beanClass("com.x.Foo", map[string]string{
		"id": "java.lang.Long",
		"pk": "com.x.FooPk",
	})
	_, _, err := process(t, mapLoader{}.add(foo), `<entity-mappings>
  <entity class="com.x.Foo" access="FIELD" metadata-complete="true">
    <attributes>
      <id name="id"/>
      <embedded-id name="pk"/>
    </attributes>
  </entity>
</entity-mappings>`)
	require.NoError(t, err)

	assert.True(t, foo.FindFieldByName("id").HasAnnotationUsage(annotations.Id))
	assert.False(t, foo.FindFieldByName("pk").HasAnnotationUsage(annotations.EmbeddedId))
}

func TestDynamicEntity(t *testing.T) {
	result, registry, err := process(t, mapLoader{}, `<entity-mappings>
  <entity name="Bar">
    <attributes>
      <id name="key" target="java.lang.Long"/>
    </attributes>
  </entity>
</entity-mappings>`)
	require.NoError(t, err)

	bar := registry.FindClassDetails("Bar")
	require.NotNil(t, bar)
	assert.True(t, bar.IsDynamic)
	assert.Equal(t, "FIELD", bar.GetAnnotationUsage(annotations.Access).String("value"))

	require.Len(t, bar.Fields(), 1)
	key := bar.Fields()[0]
	assert.Equal(t, "key", key.Name())
	assert.True(t, key.IsDynamic())
	assert.Equal(t, "java.lang.Long", key.Type().Name)
	assert.True(t, key.HasAnnotationUsage(annotations.Id))
	assert.Equal(t, "map", key.GetAnnotationUsage(annotations.AttributeAccessor).String("value"))

	classes := result.ManagedClasses()
	require.Len(t, classes, 1)
	assert.Same(t, bar, classes[0])
}

func TestDynamicEntityExtends(t *testing.T) {
	const doc = `<entity-mappings>
  <entity name="Base" abstract="true">
    <attributes><id name="id" target="Long"/></attributes>
  </entity>
  <entity name="Child" extends="Base">
    <attributes><basic name="label" target="String"/></attributes>
  </entity>
</entity-mappings>`
	_, registry, err := process(t, mapLoader{}, doc)
	require.NoError(t, err)

	child := registry.FindClassDetails("Child")
	require.NotNil(t, child)
	require.NotNil(t, child.SuperClass)
	assert.Equal(t, "Base", child.SuperClass.Name)
	assert.True(t, child.SuperClass.IsAbstract)
	assert.True(t, child.HasAnnotationUsage(annotations.Extends))
}

func TestManagedTypeErrors(t *testing.T) {
	iface := java.NewClassDetails("com.x.Shape", java.ClassKindInterface)

	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{
			name: "dynamic entity without name",
			doc:  `<entity-mappings><entity><attributes/></entity></entity-mappings>`,
			msg:  "Assumed dynamic entity did not define entity-name",
		},
		{
			name: "embeddable without class nor name",
			doc:  `<entity-mappings><embeddable><attributes/></embeddable></entity-mappings>`,
			msg:  "Embeddable did not define class nor name",
		},
		{
			name: "entity mapped to interface",
			doc:  `<entity-mappings><entity class="com.x.Shape" metadata-complete="true"/></entity-mappings>`,
			msg:  "com.x.Shape",
		},
		{
			name: "superclass not processed yet",
			doc: `<entity-mappings>
  <entity name="Child" extends="Base"/>
  <entity name="Base"/>
</entity-mappings>`,
			msg: "has not been processed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := process(t, mapLoader{}.add(iface), tt.doc)
			var modelsErr *ModelsError
			require.True(t, errors.As(err, &modelsErr), "got %v", err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDynamicAttributeTypeUnknown(t *testing.T) {
	_, _, err := process(t, mapLoader{}, `<entity-mappings>
  <entity name="Bar">
    <attributes>
      <id name="key" target="Long"/>
      <basic name="label"/>
    </attributes>
  </entity>
</entity-mappings>`)
	var typeErr *UnknownAttributeTypeError
	require.True(t, errors.As(err, &typeErr), "got %v", err)
}

func TestLifecycleCallbacks(t *testing.T) {
	const doc = `<entity-mappings>
  <entity class="com.x.Foo" access="FIELD" metadata-complete="true">
    <pre-persist method-name="beforeSave"/>
    <attributes><id name="id"/></attributes>
  </entity>
</entity-mappings>`

	t.Run("applied to the matching method", func(t *testing.T) {
		foo := fooClass()
		foo.AddMethod(java.NewMethodDetails("beforeSave", java.TypeOf("void"), java.TypeOf("java.lang.Object")))
		foo.AddMethod(java.NewMethodDetails("beforeSave", java.TypeOf("void")))

		_, _, err := process(t, mapLoader{}.add(foo), doc)
		require.NoError(t, err)

		methods := foo.FindMethodsByName("beforeSave")
		require.Len(t, methods, 2)
		assert.False(t, methods[0].HasAnnotationUsage(annotations.PrePersist))
		assert.True(t, methods[1].HasAnnotationUsage(annotations.PrePersist))
	})

	t.Run("missing method", func(t *testing.T) {
		_, _, err := process(t, mapLoader{}.add(fooClass()), doc)
		var annotationErr *AnnotationError
		require.True(t, errors.As(err, &annotationErr), "got %v", err)
		assert.Contains(t, err.Error(), "Lifecycle callback method not found - beforeSave")
	})
}
