package xmlproc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
)

// recordAdjustments returns an adjuster that records the attribute name of
// every call.
func recordAdjustments(calls *[]string) MemberAdjuster {
	return func(member java.MemberDetails, attr AttributeRef, ctx *XmlDocumentContext) {
		*calls = append(*calls, attr.Name)
	}
}

func TestOverrideAccessPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		rootAccess  string
		entityAttrs string
		idOnGetter  bool
		want        string
	}{
		{
			name:        "entity access beats document access",
			rootAccess:  "PROPERTY",
			entityAttrs: ` access="FIELD"`,
			want:        "FIELD",
		},
		{
			name:       "document access beats @Id placement",
			rootAccess: "FIELD",
			idOnGetter: true,
			want:       "FIELD",
		},
		{
			name:       "document access applies",
			rootAccess: "PROPERTY",
			want:       "PROPERTY",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := fmt.Sprintf(`<entity-mappings>
  <package>com.x</package>
  <access>%s</access>
  <entity class="Foo"%s>
    <attributes>
      <basic name="name"><column name="foo_name"/></basic>
    </attributes>
  </entity>
</entity-mappings>`, tt.rootAccess, tt.entityAttrs)

			foo := fooClass()
			if tt.idOnGetter {
				foo.FindGetter("id").ApplyAnnotationUsage(java.NewAnnotationUsage(annotations.Id))
			}
			result, _, err := process(t, mapLoader{}.add(foo), doc)
			require.NoError(t, err)
			require.NoError(t, result.Apply())

			assert.Equal(t, tt.want, foo.GetAnnotationUsage(annotations.Access).String("value"))
			var member java.MemberDetails = foo.FindGetter("name")
			if tt.want == "FIELD" {
				member = foo.FindFieldByName("name")
			}
			assert.True(t, member.HasAnnotationUsage(annotations.Column))
		})
	}
}

func TestProcessAttributesOrder(t *testing.T) {
	order := java.NewClassDetails("com.x.Order", java.ClassKindClass)
	for name, typ := range map[string]string{
		"label":    "java.lang.String",
		"code":     "java.lang.String",
		"address":  "com.x.Address",
		"customer": "com.x.Customer",
		"payment":  "java.lang.Object",
		"invoice":  "com.x.Invoice",
		"tags":     "java.util.Set",
		"lines":    "java.util.List",
		"groups":   "java.util.Set",
		"extras":   "java.util.List",
		"cache":    "java.lang.String",
	} {
		order.AddField(java.NewFieldDetails(name, java.TypeOf(typ)))
	}

	root, ctx := documentContext(t, mapLoader{}.add(order), `<entity-mappings>
  <package>com.x</package>
  <entity class="Order" access="FIELD">
    <attributes>
      <transient name="cache"/>
      <many-to-any name="extras"/>
      <many-to-many name="groups"/>
      <one-to-many name="lines"/>
      <element-collection name="tags"/>
      <one-to-one name="invoice"/>
      <any name="payment"/>
      <many-to-one name="customer"/>
      <embedded name="address"/>
      <basic name="label"/>
      <basic name="code"/>
    </attributes>
  </entity>
</entity-mappings>`)

	var calls []string
	adjust := func(member java.MemberDetails, attr AttributeRef, ctx *XmlDocumentContext) {
		assert.Equal(t, attr.Name, member.Name())
		calls = append(calls, attr.Name)
	}
	require.NoError(t, ProcessAttributes(root.Entities[0].Attributes, order, AccessField, adjust, ctx))

	assert.Equal(t, []string{
		"label", "code", "address", "customer", "payment",
		"invoice", "tags", "lines", "groups", "extras",
	}, calls)
	assert.True(t, order.FindFieldByName("cache").HasAnnotationUsage(annotations.Transient))
}

func TestProcessNaturalID(t *testing.T) {
	tests := []struct {
		name    string
		mutable bool
	}{
		{name: "immutable", mutable: false},
		{name: "mutable", mutable: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foo := beanClass("com.x.Foo", map[string]string{
				"code":  "java.lang.String",
				"owner": "com.x.Owner",
			})
			root, ctx := documentContext(t, mapLoader{}.add(foo), fmt.Sprintf(`<entity-mappings>
  <entity class="com.x.Foo" access="FIELD">
    <attributes>
      <natural-id mutable="%t">
        <basic name="code"/>
        <many-to-one name="owner"/>
      </natural-id>
    </attributes>
  </entity>
</entity-mappings>`, tt.mutable))

			var calls []string
			adjust := func(member java.MemberDetails, attr AttributeRef, ctx *XmlDocumentContext) {
				assert.False(t, member.HasAnnotationUsage(annotations.NaturalId), "adjuster runs before @NaturalId")
				calls = append(calls, attr.Name)
			}
			nid := root.Entities[0].Attributes.NaturalId
			require.NotNil(t, nid)
			require.NoError(t, ProcessNaturalID(nid, foo, AccessField, adjust, ctx))
			assert.Equal(t, []string{"code", "owner"}, calls)

			for _, name := range calls {
				field := foo.FindFieldByName(name)
				usage := field.GetAnnotationUsage(annotations.NaturalId)
				require.NotNil(t, usage, name)
				assert.Equal(t, tt.mutable, usage.Bool("mutable"), name)
				assert.Equal(t, !tt.mutable, field.HasAnnotationUsage(annotations.Immutable), name)
			}
		})
	}
}

func TestApplyUserType(t *testing.T) {
	str, ok := InterpretSimpleType("String")
	require.True(t, ok)

	foo := beanClass("com.x.Foo", map[string]string{
		"amount": "int",
		"total":  "com.x.Money",
		"prices": "java.util.Map",
		"labels": "java.util.Map",
	})
	root, ctx := documentContext(t, mapLoader{}, `<entity-mappings>
  <package>com.x</package>
  <entity class="Foo" access="FIELD">
    <attributes>
      <basic name="amount"><type value="int"/></basic>
      <basic name="total">
        <type value="MoneyType"><param name="scale" value="2"/></type>
      </basic>
      <element-collection name="prices"><map-key-type value="String"/></element-collection>
      <element-collection name="labels"><map-key-type value="LabelKeyType"/></element-collection>
    </attributes>
  </entity>
</entity-mappings>`)
	var calls []string
	require.NoError(t, ProcessAttributes(root.Entities[0].Attributes, foo, AccessField, recordAdjustments(&calls), ctx))
	assert.Equal(t, []string{"amount", "total", "prices", "labels"}, calls)

	tests := []struct {
		field   string
		present string
		absent  string
		value   string
	}{
		{field: "amount", present: annotations.JavaType, absent: annotations.Type, value: SimpleTypeInteger.JavaTypeDescriptor()},
		{field: "total", present: annotations.Type, absent: annotations.JavaType, value: "com.x.MoneyType"},
		{field: "prices", present: annotations.MapKeyJavaType, absent: annotations.MapKeyType, value: str.ObjectForm().JavaTypeDescriptor()},
		{field: "labels", present: annotations.MapKeyType, absent: annotations.MapKeyJavaType, value: "com.x.LabelKeyType"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			field := foo.FindFieldByName(tt.field)
			usage := field.GetAnnotationUsage(tt.present)
			require.NotNil(t, usage)
			assert.Equal(t, tt.value, usage.String("value"))
			assert.False(t, field.HasAnnotationUsage(tt.absent))
		})
	}

	params := foo.FindFieldByName("total").GetAnnotationUsage(annotations.Type).Nested("parameters")
	require.Len(t, params, 1)
	assert.Equal(t, "scale", params[0].String("name"))
	assert.Equal(t, "2", params[0].String("value"))
}

func TestEntityFiltersAndGraphs(t *testing.T) {
	foo := fooClass()
	result, _, err := process(t, mapLoader{}.add(foo), `<entity-mappings>
  <package>com.x</package>
  <entity class="Foo" access="FIELD" metadata-complete="true">
    <filter name="tenant" condition="tenant_id = :id" autoAliasInjection="false">
      <aliases alias="f" table="foo" entity="Foo"/>
    </filter>
    <filter name="active"/>
    <named-entity-graph name="withName" include-all-attributes="false">
      <named-attribute-node name="name" subgraph="details"/>
      <subgraph name="details">
        <named-attribute-node name="id"/>
      </subgraph>
      <subclass-subgraph name="special" class="SpecialFoo"/>
    </named-entity-graph>
    <attributes><id name="id"/></attributes>
  </entity>
</entity-mappings>`)
	require.NoError(t, err)
	require.NoError(t, result.Apply())

	t.Run("filters", func(t *testing.T) {
		container := foo.GetAnnotationUsage(annotations.Filters)
		require.NotNil(t, container)
		filters := container.Nested("value")
		require.Len(t, filters, 2)

		tenant := filters[0]
		assert.Equal(t, "tenant", tenant.String("name"))
		assert.Equal(t, "tenant_id = :id", tenant.String("condition"))
		assert.True(t, tenant.Has("deduceAliasInjectionPoints"))
		assert.False(t, tenant.Bool("deduceAliasInjectionPoints"))
		aliases := tenant.Nested("aliases")
		require.Len(t, aliases, 1)
		assert.Equal(t, "f", aliases[0].String("alias"))
		assert.Equal(t, "foo", aliases[0].String("table"))
		assert.Equal(t, "com.x.Foo", aliases[0].String("entity"))

		active := filters[1]
		assert.Equal(t, "active", active.String("name"))
		assert.False(t, active.Has("condition"))
		assert.False(t, active.Has("aliases"))
	})

	t.Run("entity graphs", func(t *testing.T) {
		graph := foo.GetAnnotationUsage(annotations.NamedEntityGraph)
		require.NotNil(t, graph)
		assert.Equal(t, "withName", graph.String("name"))
		assert.True(t, graph.Has("includeAllAttributes"))
		assert.False(t, graph.Bool("includeAllAttributes"))

		nodes := graph.Nested("attributeNodes")
		require.Len(t, nodes, 1)
		assert.Equal(t, "name", nodes[0].String("value"))
		assert.Equal(t, "details", nodes[0].String("subgraph"))
		assert.False(t, nodes[0].Has("keySubgraph"))

		subgraphs := graph.Nested("subgraphs")
		require.Len(t, subgraphs, 1)
		assert.Equal(t, "details", subgraphs[0].String("name"))
		assert.Equal(t, "java.lang.Object", subgraphs[0].String("type"))
		require.Len(t, subgraphs[0].Nested("attributeNodes"), 1)

		subclass := graph.Nested("subclassSubgraphs")
		require.Len(t, subclass, 1)
		assert.Equal(t, "com.x.SpecialFoo", subclass[0].String("type"))
	})
}

func TestFilterDefUsage(t *testing.T) {
	root, ctx := documentContext(t, mapLoader{}, `<entity-mappings>
  <package>com.x</package>
  <filter-def name="tenant" auto-enabled="true">
    <default-condition>tenant_id = :id</default-condition>
    <filter-param name="id" type="Long"/>
    <filter-param name="region" type="RegionCode"/>
  </filter-def>
  <filter-def name="plain"/>
</entity-mappings>`)
	require.Len(t, root.FilterDefs, 2)

	tenant := FilterDefUsage(&root.FilterDefs[0], ctx)
	assert.Equal(t, annotations.FilterDef, tenant.Type)
	assert.Equal(t, "tenant", tenant.String("name"))
	assert.Equal(t, "tenant_id = :id", tenant.String("defaultCondition"))
	assert.True(t, tenant.Bool("autoEnabled"))
	assert.False(t, tenant.Has("applyToLoadByKey"))
	params := tenant.Nested("parameters")
	require.Len(t, params, 2)
	assert.Equal(t, "java.lang.Long", params[0].String("type"))
	assert.Equal(t, "com.x.RegionCode", params[1].String("type"))

	plain := FilterDefUsage(&root.FilterDefs[1], ctx)
	assert.False(t, plain.Has("defaultCondition"))
	assert.Empty(t, plain.Nested("parameters"))
}

func TestDynamicElementCollectionTypes(t *testing.T) {
	_, registry, err := process(t, mapLoader{}, `<entity-mappings>
  <package>com.x</package>
  <entity name="Bar">
    <attributes>
      <id name="key" target="Long"/>
      <element-collection name="raw"/>
      <element-collection name="tags" target-class="String"/>
      <element-collection name="lines" classification="LIST" target-class="Line"/>
      <element-collection name="codes" classification="SET" target-class="String"><sort-natural/></element-collection>
      <element-collection name="prices" classification="MAP" target-class="java.math.BigDecimal"/>
    </attributes>
  </entity>
</entity-mappings>`)
	require.NoError(t, err)
	bar := registry.FindClassDetails("Bar")
	require.NotNil(t, bar)

	tests := []struct {
		field string
		want  string
	}{
		{field: "raw", want: "java.util.Collection"},
		{field: "tags", want: "java.util.Collection<java.lang.String>"},
		{field: "lines", want: "java.util.List<com.x.Line>"},
		{field: "codes", want: "java.util.Set<java.lang.String>"},
		{field: "prices", want: "java.util.Map<java.lang.Object, java.math.BigDecimal>"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			field := bar.FindFieldByName(tt.field)
			require.NotNil(t, field)
			assert.True(t, field.IsDynamic())
			assert.Equal(t, tt.want, field.Type().String())
			assert.True(t, field.HasAnnotationUsage(annotations.ElementCollection))
		})
	}
}
