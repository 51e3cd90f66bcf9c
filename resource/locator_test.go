package resource

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJar(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestLocateResourceStream(t *testing.T) {
	dir := t.TempDir()
	classes := filepath.Join(dir, "classes")
	require.NoError(t, os.MkdirAll(filepath.Join(classes, "META-INF"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(classes, "META-INF", "orm.xml"), []byte("from-dir"), 0o644))

	jar := filepath.Join(dir, "lib.jar")
	writeJar(t, jar, map[string]string{
		"META-INF/orm.xml":   "from-jar",
		"com/acme/extra.xml": "extra",
	})

	locator := NewLocator(classes, jar)
	defer locator.Close()

	t.Run("first root wins", func(t *testing.T) {
		rc, err := locator.LocateResourceStream("META-INF/orm.xml")
		require.NoError(t, err)
		assert.Equal(t, "from-dir", readAll(t, rc))
	})

	t.Run("falls back to archive", func(t *testing.T) {
		rc, err := locator.LocateResourceStream("/com/acme/extra.xml")
		require.NoError(t, err)
		assert.Equal(t, "extra", readAll(t, rc))
	})

	t.Run("missing resource", func(t *testing.T) {
		_, err := locator.LocateResourceStream("nope.xml")
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.False(t, locator.Exists("nope.xml"))
	})
}
