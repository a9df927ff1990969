package discovery

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRules(t *testing.T) {
	t.Parallel()

	t.Run("override merges onto defaults", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, `
role "photon" {
  prefix       = "beam"
  suffix_chars = 2
}
`)
		rules, err := LoadRules(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, "beam", rules[RolePhoton].Prefix)
		assert.Equal(t, 2, rules[RolePhoton].SuffixChars)
		// Untouched roles keep the built-in convention.
		assert.Equal(t, "absspct", rules[RoleSpectra].Prefix)
		assert.Equal(t, "abslanc", rules[RoleLanczos].Prefix)
	})

	t.Run("suffix expression evaluated against polarization key", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, `
role "lanczos" {
  prefix = "abslanc"
  suffix = "id-${pol2}"
}
`)
		rules, err := LoadRules(context.Background(), path)
		require.NoError(t, err)

		suffix, err := rules[RoleLanczos].suffixFor("absspct_0042")
		require.NoError(t, err)
		assert.Equal(t, "id-42", suffix)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, `
role "coulomb" {
  prefix = "abscoul"
}
`)
		_, err := LoadRules(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown file role")
	})

	t.Run("syntax error rejected", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, `role "photon" {`)
		_, err := LoadRules(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})
}
