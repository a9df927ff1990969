package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PositionalInput(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	config, shouldExit, err := Parse([]string{"run/main.json"}, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "run/main.json", config.InputPath)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "info", config.LogLevel)
	assert.Empty(t, config.RulesPath)
	assert.Empty(t, config.OutputPath)
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{
		"-input", "main.json",
		"-rules", "rules.hcl",
		"-out", "archive.json",
		"-log-format", "json",
		"-log-level", "debug",
	}
	out := &bytes.Buffer{}

	// --- Act ---
	config, shouldExit, err := Parse(args, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "main.json", config.InputPath)
	assert.Equal(t, "rules.hcl", config.RulesPath)
	assert.Equal(t, "archive.json", config.OutputPath)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestParse_Shorthand(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	config, shouldExit, err := Parse([]string{"-i", "main.json"}, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "main.json", config.InputPath)
}

func TestParse_NoInputShowsUsage(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	config, shouldExit, err := Parse([]string{}, out)

	// --- Assert ---
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	config, shouldExit, err := Parse([]string{"-h"}, out)

	// --- Assert ---
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "unknown flag",
			args: []string{"--not-a-flag"},
			want: "flag provided but not defined",
		},
		{
			name: "bad log format",
			args: []string{"-log-format", "xml", "main.json"},
			want: "invalid log-format",
		},
		{
			name: "bad log level",
			args: []string{"-log-level", "verbose", "main.json"},
			want: "invalid log-level",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			config, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			// --- Assert ---
			require.Error(t, err)
			assert.False(t, shouldExit)
			assert.Nil(t, config)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
