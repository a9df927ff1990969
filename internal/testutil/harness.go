package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/oceanparse/internal/app"
	"github.com/vk/oceanparse/internal/jsonconf"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an end-to-end aggregation run.
type HarnessResult struct {
	// Output is the raw archive JSON the app emitted.
	Output string
	// Document is the emitted archive decoded into a generic tree, for
	// structural assertions without caring about exact formatting.
	Document  map[string]any
	LogOutput string
	Err       error
	App       *app.App
}

// RunAggregationTest provides a standardized harness for running aggregation
// tests using a default background context.
func RunAggregationTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunAggregationTestWithContext(context.Background(), t, files)
}

// RunAggregationTestWithContext writes the fixture files into a temporary
// working directory and runs a full aggregation over it. The fixture map
// must contain "main.json"; an optional "rules.hcl" entry becomes the
// discovery-rules manifest. All other entries are auxiliary files discovered
// by their names.
func RunAggregationTestWithContext(ctx context.Context, t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	require.Contains(t, files, "main.json", "fixture must provide the main output file")

	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig := &app.Config{
		InputPath: filepath.Join(tmpDir, "main.json"),
		LogLevel:  "debug",
		LogFormat: "text",
	}
	if _, ok := files["rules.hcl"]; ok {
		appConfig.RulesPath = filepath.Join(tmpDir, "rules.hcl")
	}

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(outBuffer, logBuffer, appConfig, jsonconf.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx, appConfig)

	if os.Getenv("OCEANPARSE_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	result := &HarnessResult{
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
	if runErr == nil && result.Output != "" {
		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Output), &doc),
			"emitted archive must be valid JSON")
		result.Document = doc
	}
	return result
}
