package testutil

import "fmt"

// MainDocument is a complete, well-formed main output file covering every
// block the aggregation reads.
const MainDocument = `{
	"version": {".": "3.0.1", "hash": "abc123"},
	"dft": {"program": "qe"},
	"structure": {
		"avecs": [[10.0, 0.0, 0.0], [0.0, 10.0, 0.0], [0.0, 0.0, 10.0]],
		"bvecs": [[0.628, 0.0, 0.0], [0.0, 0.628, 0.0], [0.0, 0.0, 0.628]],
		"znucl": [22, 8],
		"typat": [1, 2, 2],
		"xangst": [[0.0, 0.0, 0.0], [1.0, 1.0, 1.0], [2.0, 2.0, 2.0]],
		"epsilon": 5.0
	},
	"bse": {
		"kmesh": [2, 2, 2],
		"nbands": 100,
		"xmesh": [8, 8, 8],
		"core": {
			"screen_radius": 4.0,
			"strength": 1,
			"solver": "haydock",
			"broaden": 0.5,
			"haydock": {"niter": 100, "converge": {"spacing": 5, "thresh": 0.001}}
		}
	},
	"screen": {
		"mode": "grid",
		"nbands": 80,
		"kmesh": [2, 2, 2],
		"shells": [4.0],
		"core_offset": {"energy": 0},
		"final": {"dr": 0.02},
		"grid": {"rmax": 8},
		"model": {"flavor": "slater"}
	},
	"calc": {"mode": "xas", "edges": ["0 1 0"]}
}`

// MainDocumentNoStructure is the same document with the structure block
// removed, producing a partial child run.
const MainDocumentNoStructure = `{
	"version": {".": "3.0.1"},
	"dft": {"program": "abi"},
	"bse": {"kmesh": [2, 2, 2], "core": {"strength": 0, "solver": "gmres", "gmres": {"nloop": 80}}},
	"calc": {"mode": "xes", "edges": ["0 1 0"]}
}`

// DipolePhoton builds a dipole photon descriptor with the given polarization
// vector and energy.
func DipolePhoton(x, y, z, energy float64) string {
	return fmt.Sprintf("dipole\ncartesian %g %g %g\nend\ncartesian 0.0 0.0 1.0\nend\n%g\n", x, y, z, energy)
}

// QuadPhoton builds a quadrupole photon descriptor carrying a momentum
// transfer vector.
func QuadPhoton(energy float64) string {
	return fmt.Sprintf("quad\ncartesian 1.0 0.0 0.0\nend\ncartesian 0.0 1.0 0.0\nend\n%g\n", energy)
}

// SpectraTable builds a three-column spectra table with n rows starting at
// the given energy.
func SpectraTable(n int, startEnergy float64) string {
	out := ""
	for i := 0; i < n; i++ {
		e := startEnergy + float64(i)*0.1
		out += fmt.Sprintf("%.4f  %.4f  %.4f\n", e, 0.0, float64(i+1)*0.5)
	}
	return out
}

// LanczosDump is a minimal well-formed tridiagonal dump with dimension 2.
const LanczosDump = `2 0.0125
0.44 0.99
0.51 0.23
-1.5 0.001
`
