package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/oceanparse/internal/testutil"
)

// Test for: a rules manifest replacing the built-in naming convention.
func TestDiscoveryRules_CustomPrefixes(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The fixture uses a foreign naming scheme; only the manifest makes it
	// discoverable.
	rules := `
role "spectra" {
  prefix = "spectrum."
}

role "photon" {
  prefix = "beam."
  suffix = pol2
}

role "lanczos" {
  prefix       = "tridiag."
  suffix_chars = 2
}
`
	files := map[string]string{
		"main.json":   testutil.MainDocument,
		"rules.hcl":   rules,
		"spectrum.01": testutil.SpectraTable(3, 1.0),
		"beam.01":     testutil.DipolePhoton(0, 1, 0, 532.0),
		"tridiag.01":  testutil.LanczosDump,
		// Files following the default convention must now be ignored.
		"absspct_0002": testutil.SpectraTable(3, 1.0),
	}

	// --- Act ---
	result := testutil.RunAggregationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)

	runs := result.Document["runs"].([]any)
	require.Len(t, runs, 1, "only the manifest's convention is active")

	workflow := result.Document["workflow"].(map[string]any)
	tasks := workflow["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, "spectrum.01", tasks[0].(map[string]any)["name"])

	firstRun := runs[0].(map[string]any)
	methods := firstRun["method"].([]any)
	require.Len(t, methods, 2, "the photon descriptor was matched through the suffix expression")

	calc := firstRun["calculation"].([]any)[0].(map[string]any)
	assert.Contains(t, calc, "lanczos_results")
}

// Test for: an expression-based suffix that reshapes the polarization key.
func TestDiscoveryRules_SuffixExpression(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	rules := `
role "photon" {
  prefix = "photon"
  suffix = "-${pol1}"
}
`
	files := map[string]string{
		"main.json":    testutil.MainDocument,
		"rules.hcl":    rules,
		"absspct_0001": testutil.SpectraTable(3, 1.0),
		"photon-1":     testutil.DipolePhoton(1, 0, 0, 532.0),
		// The default convention's match must no longer apply.
		"photon1": testutil.QuadPhoton(1.0),
	}

	// --- Act ---
	result := testutil.RunAggregationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)

	runs := result.Document["runs"].([]any)
	require.Len(t, runs, 1)
	methods := runs[0].(map[string]any)["method"].([]any)
	require.Len(t, methods, 2)

	photon := methods[0].(map[string]any)["photon"].(map[string]any)
	assert.Equal(t, "dipole", photon["multipole_type"],
		"the expression-matched descriptor wins over the default convention")
}

// Test for: a manifest naming an unknown role fails startup.
func TestDiscoveryRules_UnknownRole(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.json": testutil.MainDocument,
		"rules.hcl": `role "exciton" { prefix = "exc" }`,
	}

	// --- Act ---
	result := testutil.RunAggregationTest(t, files)

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "application startup panicked")
	assert.Contains(t, result.Err.Error(), `unknown file role "exciton"`)
}
