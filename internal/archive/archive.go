package archive

import (
	"github.com/vk/oceanparse/internal/sectionref"
)

// Archive is the root of the result graph.
type Archive struct {
	Runs     []*Run    `json:"runs,omitempty"`
	Workflow *Workflow `json:"workflow,omitempty"`
}

// Run is one child entry: the self-contained result unit of a single
// polarization sub-calculation.
type Run struct {
	Program      *Program       `json:"program,omitempty"`
	System       *System        `json:"system,omitempty"`
	Methods      []*Method      `json:"method,omitempty"`
	Calculations []*Calculation `json:"calculation,omitempty"`
	// SinglePoint marks a fully built child run; the aggregator only emits a
	// task for runs carrying the marker.
	SinglePoint bool `json:"single_point,omitempty"`
}

// Program identifies the code that produced the output being parsed.
type Program struct {
	Name            string `json:"name,omitempty"`
	Version         string `json:"version,omitempty"`
	CommitHash      string `json:"commit_hash,omitempty"`
	OriginalDFTCode string `json:"original_dft_code,omitempty"`
}

// NewRun appends a new empty run section to the archive and returns it.
func (a *Archive) NewRun() *Run {
	run := &Run{}
	a.Runs = append(a.Runs, run)
	return run
}

// NewProgram creates the run's program section.
func (r *Run) NewProgram() *Program {
	r.Program = &Program{}
	return r.Program
}

// NewSystem creates the run's system section.
func (r *Run) NewSystem() *System {
	r.System = &System{}
	return r.System
}

// NewMethod appends a new method section to the run and returns it.
func (r *Run) NewMethod() *Method {
	method := &Method{}
	r.Methods = append(r.Methods, method)
	return method
}

// NewCalculation appends a new calculation section to the run and returns it.
func (r *Run) NewCalculation() *Calculation {
	calc := &Calculation{}
	r.Calculations = append(r.Calculations, calc)
	return calc
}

// Resolve walks a section address and returns the section it points at. It
// covers the shapes the parser emits: run[i] and its program, system,
// method[j] (optionally .photon) and calculation[k] (optionally .spectra),
// plus workflow.method.
func (a *Archive) Resolve(addr sectionref.Address) (any, bool) {
	if addr.IsZero() {
		return nil, false
	}

	var current any = a
	for _, seg := range addr.Path {
		switch section := current.(type) {
		case *Archive:
			switch {
			case seg.Name == "run" && seg.HasIndex() && seg.Index < len(section.Runs):
				current = section.Runs[seg.Index]
			case seg.Name == "workflow" && !seg.HasIndex() && section.Workflow != nil:
				current = section.Workflow
			default:
				return nil, false
			}
		case *Run:
			switch {
			case seg.Name == "program" && section.Program != nil:
				current = section.Program
			case seg.Name == "system" && section.System != nil:
				current = section.System
			case seg.Name == "method" && seg.HasIndex() && seg.Index < len(section.Methods):
				current = section.Methods[seg.Index]
			case seg.Name == "calculation" && seg.HasIndex() && seg.Index < len(section.Calculations):
				current = section.Calculations[seg.Index]
			default:
				return nil, false
			}
		case *Workflow:
			if seg.Name != "method" || section.Method == nil {
				return nil, false
			}
			current = section.Method
		case *Method:
			if seg.Name != "photon" || section.Photon == nil {
				return nil, false
			}
			current = section.Photon
		case *Calculation:
			if seg.Name != "spectra" || section.Spectra == nil {
				return nil, false
			}
			current = section.Spectra
		default:
			return nil, false
		}
	}
	return current, true
}
