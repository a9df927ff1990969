package archive

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/oceanparse/internal/sectionref"
)

// buildSampleArchive assembles a small but fully linked result graph.
func buildSampleArchive() *Archive {
	arch := &Archive{}
	run := arch.NewRun()
	run.NewProgram().Name = "OCEAN"
	run.NewSystem().NewAtoms()

	photonMethod := run.NewMethod()
	photonMethod.Photon = &Photon{MultipoleType: "dipole"}
	run.NewMethod()

	calc := run.NewCalculation()
	calc.Spectra = &Spectra{Type: "XAS", NEnergies: 1}

	wf := arch.NewWorkflow("photon_polarization")
	wf.Method = &Method{}
	return arch
}

func mustParse(t *testing.T, raw string) sectionref.Address {
	t.Helper()
	addr, err := sectionref.Parse(raw)
	require.NoError(t, err)
	return addr
}

func TestResolve(t *testing.T) {
	t.Parallel()

	arch := buildSampleArchive()

	testCases := []struct {
		addr string
		want func(*Archive) any
	}{
		{"run[0]", func(a *Archive) any { return a.Runs[0] }},
		{"run[0].program", func(a *Archive) any { return a.Runs[0].Program }},
		{"run[0].system", func(a *Archive) any { return a.Runs[0].System }},
		{"run[0].method[0]", func(a *Archive) any { return a.Runs[0].Methods[0] }},
		{"run[0].method[0].photon", func(a *Archive) any { return a.Runs[0].Methods[0].Photon }},
		{"run[0].method[1]", func(a *Archive) any { return a.Runs[0].Methods[1] }},
		{"run[0].calculation[0]", func(a *Archive) any { return a.Runs[0].Calculations[0] }},
		{"run[0].calculation[0].spectra", func(a *Archive) any { return a.Runs[0].Calculations[0].Spectra }},
		{"workflow.method", func(a *Archive) any { return a.Workflow.Method }},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.addr, func(t *testing.T) {
			t.Parallel()
			section, ok := arch.Resolve(mustParse(t, tc.addr))
			require.True(t, ok)
			assert.Same(t, tc.want(arch), section)
		})
	}
}

func TestResolve_Misses(t *testing.T) {
	t.Parallel()

	arch := buildSampleArchive()

	for _, raw := range []string{
		"run[1]",
		"run[0].method[2]",
		"run[0].calculation[0].lanczos",
		"run[0].method[1].photon",
		"workflow.system",
	} {
		raw := raw
		t.Run(raw, func(t *testing.T) {
			t.Parallel()
			_, ok := arch.Resolve(mustParse(t, raw))
			assert.False(t, ok)
		})
	}

	t.Run("zero address", func(t *testing.T) {
		t.Parallel()
		_, ok := arch.Resolve(sectionref.Address{})
		assert.False(t, ok)
	})
}

func TestBSEParameters_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("haydock variant", func(t *testing.T) {
		t.Parallel()
		niter := 100
		raw, err := json.Marshal(&BSEParameters{
			XMesh:  []int{8, 8, 8},
			Solver: &HaydockParams{NIter: &niter},
		})
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(raw, &doc))
		assert.Contains(t, doc, "haydock")
		assert.NotContains(t, doc, "gmres", "the union keys are exclusive")
	})

	t.Run("gmres variant", func(t *testing.T) {
		t.Parallel()
		raw, err := json.Marshal(&BSEParameters{
			Solver: &GMRESParams{ERange: []float64{1, 2}},
		})
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(raw, &doc))
		assert.Contains(t, doc, "gmres")
		assert.NotContains(t, doc, "haydock")
	})

	t.Run("no solver", func(t *testing.T) {
		t.Parallel()
		radius := 4.0
		raw, err := json.Marshal(&BSEParameters{ScreenRadius: &radius})
		require.NoError(t, err)
		assert.JSONEq(t, `{"screen_radius": 4}`, string(raw))
	})
}

func TestSerializedReferences(t *testing.T) {
	t.Parallel()

	// In-memory section pointers must stay out of the document; their
	// serialized counterparts are the address fields.
	method := &Method{}
	start := &Method{Photon: &Photon{MultipoleType: "dipole"}}
	addr := mustParse(t, "run[0].method[0]")
	method.StartingMethod = start
	method.StartingMethodRef = &addr

	raw, err := json.Marshal(method)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "run[0].method[0]", doc["starting_method_ref"])
	assert.NotContains(t, string(raw), "multipole_type",
		"the referenced section must not be inlined")
}
