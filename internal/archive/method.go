package archive

import (
	"encoding/json"

	"github.com/vk/oceanparse/internal/sectionref"
)

// Method is either a photon descriptor (when Photon is set) or the shared
// BSE/screening methodology of a run.
type Method struct {
	Photon *Photon `json:"photon,omitempty"`

	// StartingMethod references the photon method this methodology builds
	// on; StartingMethodRef is its serialized address.
	StartingMethod    *Method             `json:"-"`
	StartingMethodRef *sectionref.Address `json:"starting_method_ref,omitempty"`

	KMesh            *KMesh            `json:"k_mesh,omitempty"`
	BSE              *BSESettings      `json:"bse,omitempty"`
	BSEParameters    *BSEParameters    `json:"bse_parameters,omitempty"`
	ScreenParameters *ScreenParameters `json:"screen_parameters,omitempty"`
	// Edges holds the absorption edges under study as rows of quantum
	// numbers whose trailing pair is [n, l].
	Edges [][]int `json:"edges,omitempty"`
}

// Photon is the descriptor of one photon-direction sub-calculation.
type Photon struct {
	MultipoleType    string    `json:"multipole_type,omitempty"`
	Polarization     []float64 `json:"polarization,omitempty"`
	MomentumTransfer []float64 `json:"momentum_transfer,omitempty"`
	// Energy is the photon energy in eV.
	Energy *float64 `json:"energy,omitempty"`
}

// KMesh is a reciprocal-space sampling grid.
type KMesh struct {
	Grid []int `json:"grid,omitempty"`
}

// BSESettings holds the solver-independent BSE parameters.
type BSESettings struct {
	NEmptyStates          *int      `json:"n_empty_states,omitempty"`
	ScreeningType         string    `json:"screening_type,omitempty"`
	DielectricInfinity    *float64  `json:"dielectric_infinity,omitempty"`
	NEmptyStatesScreening *int      `json:"n_empty_states_screening,omitempty"`
	KMeshScreening        *KMesh    `json:"k_mesh_screening,omitempty"`
	CoreHole              *CoreHole `json:"core_hole,omitempty"`
}

// CoreHole describes the core-hole treatment derived from the configuration.
type CoreHole struct {
	Mode   string `json:"mode,omitempty"`
	Solver string `json:"solver,omitempty"`
	Edge   string `json:"edge,omitempty"`
	// Broadening is in eV.
	Broadening *float64 `json:"broadening,omitempty"`
}

// SolverParams is the tagged union of the two code-specific solver parameter
// blocks; exactly one implementation can be attached to a BSEParameters.
type SolverParams interface {
	solverParams()
}

// HaydockParams is the convergence/iteration block of the lanczos-haydock solver.
type HaydockParams struct {
	ConvergeSpacing *int     `json:"converge_spacing,omitempty"`
	ConvergeThresh  *float64 `json:"converge_thresh,omitempty"`
	NIter           *int     `json:"niter,omitempty"`
}

func (*HaydockParams) solverParams() {}

// GMRESParams is the iterative-solver block of the gmres solver.
type GMRESParams struct {
	EChamp []float64 `json:"echamp,omitempty"`
	EList  []float64 `json:"elist,omitempty"`
	ERange []float64 `json:"erange,omitempty"`
	EStyle *string   `json:"estyle,omitempty"`
	FFFF   *float64  `json:"ffff,omitempty"`
	GPRC   *float64  `json:"gprc,omitempty"`
	NLoop  *int      `json:"nloop,omitempty"`
}

func (*GMRESParams) solverParams() {}

// BSEParameters holds the OCEAN-specific BSE extension parameters, including
// the solver-specific block.
type BSEParameters struct {
	ScreenRadius *float64
	XMesh        []int
	Solver       SolverParams
}

// MarshalJSON emits the solver block under a key named after its variant, so
// the exclusivity of the union is visible in the serialized document.
func (p *BSEParameters) MarshalJSON() ([]byte, error) {
	out := struct {
		ScreenRadius *float64       `json:"screen_radius,omitempty"`
		XMesh        []int          `json:"xmesh,omitempty"`
		Haydock      *HaydockParams `json:"haydock,omitempty"`
		GMRES        *GMRESParams   `json:"gmres,omitempty"`
	}{
		ScreenRadius: p.ScreenRadius,
		XMesh:        p.XMesh,
	}
	switch solver := p.Solver.(type) {
	case *HaydockParams:
		out.Haydock = solver
	case *GMRESParams:
		out.GMRES = solver
	}
	return json.Marshal(out)
}

// ScreenParameters holds the OCEAN-specific screening extension parameters.
type ScreenParameters struct {
	AllAugment         *bool     `json:"all_augment,omitempty"`
	Augment            *bool     `json:"augment,omitempty"`
	ConvertStyle       *string   `json:"convertstyle,omitempty"`
	DFTEnergyRange     *float64  `json:"dft_energy_range,omitempty"`
	InversionStyle     *string   `json:"inversionstyle,omitempty"`
	KShift             []float64 `json:"kshift,omitempty"`
	MimicExcitingBands *bool     `json:"mimic_exciting_bands,omitempty"`
	Shells             []float64 `json:"shells,omitempty"`
	// Groups carries the flattened named sub-dictionaries of the screen
	// section, keyed as <group>_<subkey>.
	Groups      map[string]any `json:"groups,omitempty"`
	ModelFlavor string         `json:"model_flavor,omitempty"`
}
