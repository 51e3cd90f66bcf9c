package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/ormxml/typedesc"
	"github.com/dhamidi/ormxml/xmlproc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
mapping_files:
  - META-INF/orm.xml
classpath:
  - build/classes
persistence_unit:
  access: field
  schema: sales
  cascade_persist: true
types:
  user_types:
    - class: com.acme.MoneyType
      returns: com.acme.Money
  jdbc_types:
    - class: com.acme.JsonJdbcType
      sql_type: VARCHAR
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ormxml.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"META-INF/orm.xml"}, cfg.MappingFiles)
	assert.Equal(t, []string{"build/classes"}, cfg.Classpath)
	assert.Equal(t, "sales", cfg.PersistenceUnit.Schema)
	assert.False(t, cfg.PersistenceUnit.XmlComplete)

	pu := cfg.PersistenceUnitMetadata()
	assert.Equal(t, xmlproc.AccessField, pu.AccessType())
	assert.Equal(t, "sales", pu.Schema())
	assert.Equal(t, []xmlproc.CascadeType{xmlproc.CascadePersist}, pu.CascadeTypes())

	types := cfg.TypeRegistry()
	returned, err := types.UserTypeReturnedClass("com.acme.MoneyType")
	require.NoError(t, err)
	assert.Equal(t, "com.acme.Money", returned)
	jdbc, err := types.JdbcType("com.acme.JsonJdbcType")
	require.NoError(t, err)
	assert.Equal(t, typedesc.VarChar, jdbc.Code)

	assert.Equal(t, []string{"build/classes"}, cfg.Locator().Roots())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ORMXML_PERSISTENCE_UNIT_SCHEMA", "archive")
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "archive", cfg.PersistenceUnit.Schema)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"access", "persistence_unit:\n  access: NONE\n", "persistence_unit.access"},
		{"user type", "types:\n  user_types:\n    - class: com.acme.X\n", "types.user_types"},
		{"jdbc type", "types:\n  jdbc_types:\n    - class: com.acme.J\n      sql_type: TEXTISH\n", "types.jdbc_types"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
