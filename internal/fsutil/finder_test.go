package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
}

func TestFindFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"absspct_0002", "absspct_0001", "abslanc_0001", "photon1", "photon2", "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "absspct_dir"), 0755))

	t.Run("prefix only, lexical order, directories skipped", func(t *testing.T) {
		t.Parallel()
		files, err := FindFiles(dir, "absspct", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"absspct_0001", "absspct_0002"}, files)
	})

	t.Run("prefix and suffix", func(t *testing.T) {
		t.Parallel()
		files, err := FindFiles(dir, "photon", "2")
		require.NoError(t, err)
		assert.Equal(t, []string{"photon2"}, files)
	})

	t.Run("no match yields empty slice, not an error", func(t *testing.T) {
		t.Parallel()
		files, err := FindFiles(dir, "abscoul", "")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("unreadable directory is an error", func(t *testing.T) {
		t.Parallel()
		_, err := FindFiles(filepath.Join(dir, "does-not-exist"), "absspct", "")
		assert.Error(t, err)
	})
}
