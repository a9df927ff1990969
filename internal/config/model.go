package config

// Model is the in-memory representation of the main OCEAN JSON output file.
type Model struct {
	Version   map[string]string `json:"version"`
	DFT       *DFT              `json:"dft"`
	Structure *Structure        `json:"structure"`
	BSE       *BSE              `json:"bse"`
	Screen    *Screen           `json:"screen"`
	Calc      *Calc             `json:"calc"`
}

// DFT identifies the ground-state code whose wavefunctions OCEAN consumed.
type DFT struct {
	Program string `json:"program"`
}

// Structure holds the simulated cell. Lattice vectors and positions are in
// bohr, as written by OCEAN. Every field is optional; nil means the key was
// absent from the document.
type Structure struct {
	Avecs   [][]float64 `json:"avecs"`
	Bvecs   [][]float64 `json:"bvecs"`
	Znucl   []int       `json:"znucl"`
	Typat   []int       `json:"typat"`
	Xangst  [][]float64 `json:"xangst"`
	Epsilon *float64    `json:"epsilon"`
}

// BSE holds the Bethe-Salpeter solver parameters.
type BSE struct {
	Kmesh  []int     `json:"kmesh"`
	NBands *int      `json:"nbands"`
	Xmesh  []int     `json:"xmesh"`
	Core   *CoreHole `json:"core"`
}

// CoreHole holds the core-hole sub-block of the BSE section, including the
// two mutually exclusive solver parameter blocks.
type CoreHole struct {
	ScreenRadius *float64 `json:"screen_radius"`
	Strength     *int     `json:"strength"`
	Solver       string   `json:"solver"`
	Broaden      *float64 `json:"broaden"`
	Haydock      *Haydock `json:"haydock"`
	GMRES        *GMRES   `json:"gmres"`
}

// Haydock holds the lanczos-haydock iteration parameters.
type Haydock struct {
	NIter    *int      `json:"niter"`
	Converge *Converge `json:"converge"`
}

// Converge holds the haydock convergence criteria.
type Converge struct {
	Spacing *int     `json:"spacing"`
	Thresh  *float64 `json:"thresh"`
}

// GMRES holds the iterative-solver parameters of the gmres variant.
type GMRES struct {
	EChamp []float64 `json:"echamp"`
	EList  []float64 `json:"elist"`
	ERange []float64 `json:"erange"`
	EStyle *string   `json:"estyle"`
	FFFF   *float64  `json:"ffff"`
	GPRC   *float64  `json:"gprc"`
	NLoop  *int      `json:"nloop"`
}

// Screen holds the screening calculation parameters. The named groups
// (core_offset, final, grid) carry code-specific keys whose set varies
// between OCEAN versions, so they stay untyped.
type Screen struct {
	Mode   string `json:"mode"`
	NBands *int   `json:"nbands"`
	Kmesh  []int  `json:"kmesh"`

	AllAugment         *bool     `json:"all_augment"`
	Augment            *bool     `json:"augment"`
	ConvertStyle       *string   `json:"convertstyle"`
	DFTEnergyRange     *float64  `json:"dft_energy_range"`
	InversionStyle     *string   `json:"inversionstyle"`
	KShift             []float64 `json:"kshift"`
	MimicExcitingBands *bool     `json:"mimic_exciting_bands"`
	Shells             []float64 `json:"shells"`

	CoreOffset map[string]any `json:"core_offset"`
	Final      map[string]any `json:"final"`
	Grid       map[string]any `json:"grid"`
	Model      *ScreenModel   `json:"model"`
}

// ScreenModel names the screening model flavor.
type ScreenModel struct {
	Flavor string `json:"flavor"`
}

// Calc describes what kind of spectrum was computed and at which absorption
// edges. Each edge entry is a whitespace-separated string of integers whose
// trailing two values are the [n, l] quantum numbers.
type Calc struct {
	Mode  string   `json:"mode"`
	Edges []string `json:"edges"`
}
