package archive

import "github.com/vk/oceanparse/internal/sectionref"

// Calculation holds the spectra of one polarization sub-calculation, with
// back-references to the run's system and methodology.
type Calculation struct {
	SystemRef *sectionref.Address `json:"system_ref,omitempty"`
	MethodRef *sectionref.Address `json:"method_ref,omitempty"`

	// SystemSection and MethodSection are the in-memory counterparts of the
	// serialized refs above.
	SystemSection *System `json:"-"`
	MethodSection *Method `json:"-"`

	Spectra *Spectra        `json:"spectra,omitempty"`
	Lanczos *LanczosResults `json:"lanczos_results,omitempty"`
}

// Spectra is one absorption spectrum: energies and intensities in row order.
type Spectra struct {
	Type string `json:"type,omitempty"`
	// NEnergies is the number of table rows parsed.
	NEnergies int `json:"n_energies"`
	// ExcitationEnergies are in eV.
	ExcitationEnergies []float64 `json:"excitation_energies,omitempty"`
	Intensities        []float64 `json:"intensities,omitempty"`
}

// LanczosResults carries the tridiagonal matrix dump attached to a spectrum.
type LanczosResults struct {
	NTridiagonalMatrix int         `json:"n_tridiagonal_matrix"`
	ScalingFactor      float64     `json:"scaling_factor"`
	TridiagonalMatrix  [][]float64 `json:"tridiagonal_matrix,omitempty"`
	Eigenvalues        [][]float64 `json:"eigenvalues,omitempty"`
}
