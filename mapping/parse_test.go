package mapping

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersXML = `<?xml version="1.0" encoding="UTF-8"?>
<entity-mappings xmlns="https://jakarta.ee/xml/ns/persistence/orm" version="3.1">
  <persistence-unit-metadata>
    <xml-mapping-metadata-complete/>
    <persistence-unit-defaults>
      <schema>sales</schema>
      <access>FIELD</access>
      <cascade-persist/>
    </persistence-unit-defaults>
  </persistence-unit-metadata>
  <package>com.acme.orders</package>
  <filter-def name="tenant">
    <default-condition>tenant_id = :id</default-condition>
    <filter-param name="id" type="long"/>
  </filter-def>
  <entity class="Order" metadata-complete="true">
    <table name="orders" schema="sales">
      <unique-constraint name="uk_number"><column-name>number</column-name></unique-constraint>
    </table>
    <pre-persist method-name="beforeSave"/>
    <attributes>
      <id name="id">
        <generated-value strategy="SEQUENCE" generator="order_seq"/>
      </id>
      <basic name="number" optional="false">
        <column name="order_number" length="32"/>
      </basic>
      <many-to-one name="customer" target-entity="Customer">
        <join-column name="customer_id"/>
        <cascade><cascade-merge/></cascade>
      </many-to-one>
      <one-to-many name="lines" target-entity="OrderLine" mapped-by="order" classification="LIST">
        <order-by>position</order-by>
      </one-to-many>
      <transient name="cached"/>
    </attributes>
  </entity>
  <embeddable name="Money">
    <attributes>
      <basic name="amount" target="BigDecimal"/>
    </attributes>
  </embeddable>
</entity-mappings>`

func TestParse(t *testing.T) {
	root, err := Parse(strings.NewReader(ordersXML))
	require.NoError(t, err)

	assert.Equal(t, "3.1", root.Version)
	assert.Equal(t, "com.acme.orders", root.Package)

	require.NotNil(t, root.PersistenceUnitMetadata)
	assert.NotNil(t, root.PersistenceUnitMetadata.XmlMappingMetadataComplete)
	defaults := root.PersistenceUnitMetadata.PersistenceUnitDefaults
	require.NotNil(t, defaults)
	assert.Equal(t, "sales", defaults.Schema)
	assert.Equal(t, "FIELD", defaults.Access)
	assert.NotNil(t, defaults.CascadePersist)

	require.Len(t, root.FilterDefs, 1)
	assert.Equal(t, "tenant_id = :id", root.FilterDefs[0].DefaultCondition)
	assert.Equal(t, []FilterParam{{Name: "id", Type: "long"}}, root.FilterDefs[0].Params)

	require.Len(t, root.Entities, 1)
	order := &root.Entities[0]
	assert.Equal(t, "Order", order.ClassName())
	require.NotNil(t, order.MetadataCompleteFlag())
	assert.True(t, *order.MetadataCompleteFlag())
	require.NotNil(t, order.Table)
	assert.Equal(t, "orders", order.Table.Name)
	assert.Equal(t, "sales", order.Table.Schema)
	assert.Equal(t, []string{"number"}, order.Table.UniqueConstraints[0].ColumnNames)
	require.NotNil(t, order.PrePersist)
	assert.Equal(t, "beforeSave", order.PrePersist.MethodName)

	attrs := order.AttributeContainer()
	require.NotNil(t, attrs)
	require.Len(t, attrs.Ids, 1)
	assert.Equal(t, "SEQUENCE", attrs.Ids[0].GeneratedValue.Strategy)
	require.Len(t, attrs.Basics, 1)
	assert.Equal(t, "order_number", attrs.Basics[0].Column.Name)
	assert.Equal(t, 32, *attrs.Basics[0].Column.Length)
	assert.False(t, *attrs.Basics[0].Optional)

	require.Len(t, attrs.ManyToOnes, 1)
	m2o := attrs.ManyToOnes[0]
	assert.Equal(t, "Customer", m2o.TargetEntity)
	assert.Equal(t, "customer_id", m2o.JoinColumns[0].Name)
	require.NotNil(t, m2o.Cascade)
	assert.NotNil(t, m2o.Cascade.Merge)
	assert.Nil(t, m2o.Cascade.All)

	require.Len(t, attrs.OneToManys, 1)
	o2m := &attrs.OneToManys[0]
	assert.Equal(t, "LIST", o2m.Classification)
	assert.True(t, o2m.IsSorted())
	assert.Equal(t, "lines", o2m.AttributeName())

	assert.Equal(t, []Transient{{Name: "cached"}}, attrs.Transients)

	require.Len(t, root.Embeddables, 1)
	assert.Equal(t, "BigDecimal", root.Embeddables[0].Attributes.Basics[0].Target)
}

func TestParseRejectsMalformedXML(t *testing.T) {
	_, err := Parse(strings.NewReader(`<entity-mappings><entity></entity-mappings>`))
	assert.Error(t, err)
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, pkg := range []string{"a", "b", "c"} {
		path := filepath.Join(dir, pkg+".xml")
		doc := `<entity-mappings><package>com.` + pkg + `</package></entity-mappings>`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
		paths = append(paths, path)
	}

	bindings, err := ParseFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, bindings, 3)
	for i, pkg := range []string{"com.a", "com.b", "com.c"} {
		assert.Equal(t, paths[i], bindings[i].Origin)
		assert.Equal(t, pkg, bindings[i].Root.Package)
	}

	_, err = ParseFiles(context.Background(), append(paths, filepath.Join(dir, "missing.xml")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
