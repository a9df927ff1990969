package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/oceanparse/internal/jsonconf"
)

func TestRun_MissingMainFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	appConfig := &Config{
		InputPath: filepath.Join(t.TempDir(), "does-not-exist.json"),
		LogFormat: "text",
	}
	testApp, outBuffer, logBuffer := SetupAppTest(t, appConfig, jsonconf.NewLoader())

	// --- Act ---
	err := testApp.Run(context.Background(), appConfig)

	// --- Assert ---
	// An unreadable main document is the one fatal condition.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load main output file")
	assert.Contains(t, logBuffer.String(), "Error opening the main output file.")
	assert.Empty(t, outBuffer.String(), "no archive may be emitted on a fatal load error")
}

func TestRun_WritesArchiveToFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "main.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`{"calc": {"mode": "xas", "edges": ["0 1 0"]}}`), 0644))
	outputPath := filepath.Join(dir, "archive.json")

	appConfig := &Config{
		InputPath:  inputPath,
		OutputPath: outputPath,
		LogFormat:  "text",
	}
	testApp, outBuffer, _ := SetupAppTest(t, appConfig, jsonconf.NewLoader())

	// --- Act ---
	err := testApp.Run(context.Background(), appConfig)

	// --- Assert ---
	require.NoError(t, err)
	assert.Empty(t, outBuffer.String(), "configured output path must bypass the writer")

	raw, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"kind": "photon_polarization"`)
}

func TestNewApp_InvalidRulesPanics(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	rulesPath := filepath.Join(t.TempDir(), "rules.hcl")
	require.NoError(t, os.WriteFile(rulesPath, []byte(`role "spectra" {`), 0644))

	appConfig := &Config{
		InputPath: "main.json",
		RulesPath: rulesPath,
		LogLevel:  "debug",
		LogFormat: "text",
	}

	// --- Act / Assert ---
	assert.Panics(t, func() {
		NewApp(&SafeBuffer{}, &SafeBuffer{}, appConfig, jsonconf.NewLoader())
	})
}
