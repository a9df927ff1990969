package archive

import "github.com/vk/oceanparse/internal/sectionref"

// Link connects a workflow or task to a section elsewhere in the archive.
// Target is the in-memory section; Ref is its serialized address.
type Link struct {
	Name   string             `json:"name"`
	Ref    sectionref.Address `json:"section"`
	Target any                `json:"-"`
}

// Task records one child run inside the workflow: its structural and method
// inputs and its calculation output.
type Task struct {
	Name    string `json:"name"`
	Inputs  []Link `json:"inputs,omitempty"`
	Outputs []Link `json:"outputs,omitempty"`
}

// Workflow is the parent aggregate over all child runs.
type Workflow struct {
	Kind string `json:"kind"`
	// NPolarizations counts the built child runs, complete or partial.
	NPolarizations int `json:"n_polarizations"`

	// Program and System come from the first child run (first-wins policy)
	// as shared references; with zero children they are owned empty
	// placeholders.
	Program *Program `json:"program"`
	System  *System  `json:"system"`

	// Method is the workflow's own methodology, computed once from the
	// shared configuration rather than copied from any child.
	Method *Method `json:"method,omitempty"`

	Inputs  []Link  `json:"inputs,omitempty"`
	Outputs []Link  `json:"outputs,omitempty"`
	Tasks   []*Task `json:"tasks,omitempty"`

	// SpectrumPolarization references each child's spectrum in discovery
	// order; the serialized form is the list of their addresses.
	SpectrumPolarization     []*Spectra           `json:"-"`
	SpectrumPolarizationRefs []sectionref.Address `json:"spectrum_polarization,omitempty"`
}

// NewWorkflow attaches an empty workflow section to the archive.
func (a *Archive) NewWorkflow(kind string) *Workflow {
	a.Workflow = &Workflow{Kind: kind}
	return a.Workflow
}
