package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const barMapping = `<entity-mappings>
  <entity name="Bar">
    <table name="bars"/>
    <attributes>
      <id name="key" target="java.lang.Long"/>
      <basic name="label" target="java.lang.String"/>
    </attributes>
  </entity>
</entity-mappings>`

func writeMapping(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orm.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessUnit(t *testing.T) {
	r, err := processUnit(context.Background(), []string{writeMapping(t, barMapping)})
	require.NoError(t, err)

	bar := r.registry.FindClassDetails("Bar")
	require.NotNil(t, bar)
	assert.True(t, bar.IsDynamic)
	assert.Len(t, r.result.ManagedClasses(), 1)
}

func TestProcessUnitNeedsDocuments(t *testing.T) {
	_, err := processUnit(context.Background(), nil)
	assert.EqualError(t, err, "no mapping files given or configured")
}

func TestDumpCommand(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var out bytes.Buffer
	cmd := newDumpCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "line", writeMapping(t, barMapping)})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Contains(t, out.String(), "class\tBar\tdynamic\n")
	assert.Contains(t, out.String(), "\t@jakarta.persistence.Table(name=\"bars\")\n")
	assert.Contains(t, out.String(), "field\tkey\tjava.lang.Long\n")
}
