package archive

// System holds the simulated structure of one run.
type System struct {
	Atoms *Atoms `json:"atoms,omitempty"`
}

// Atoms describes the cell contents. Lengths are in angstrom, reciprocal
// lengths in 1/angstrom.
type Atoms struct {
	LatticeVectors           [][]float64 `json:"lattice_vectors,omitempty"`
	LatticeVectorsReciprocal [][]float64 `json:"lattice_vectors_reciprocal,omitempty"`
	Periodic                 []bool      `json:"periodic,omitempty"`
	Labels                   []string    `json:"labels,omitempty"`
	Positions                [][]float64 `json:"positions,omitempty"`
}

// NewAtoms creates the system's atoms section.
func (s *System) NewAtoms() *Atoms {
	s.Atoms = &Atoms{}
	return s.Atoms
}
