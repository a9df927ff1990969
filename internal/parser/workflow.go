package parser

import (
	"context"
	"fmt"

	"github.com/vk/oceanparse/internal/archive"
	"github.com/vk/oceanparse/internal/ctxlog"
	"github.com/vk/oceanparse/internal/sectionref"
)

// aggregate stitches the built child runs into the parent workflow entry.
// keys holds the spectra filename of each run, aligned with arch.Runs.
//
// Program and system come from the first child run; this first-wins policy
// is deliberate, since the values are identical across children. With zero
// children the workflow still gets empty placeholder sections and a method
// computed from the shared configuration.
func (p *Parser) aggregate(ctx context.Context, arch *archive.Archive, keys []string) {
	logger := ctxlog.FromContext(ctx)

	wf := arch.NewWorkflow("photon_polarization")
	wf.NPolarizations = len(arch.Runs)

	if len(arch.Runs) > 0 && arch.Runs[0].Program != nil && arch.Runs[0].System != nil {
		wf.Program = arch.Runs[0].Program
		wf.System = arch.Runs[0].System
	} else {
		logger.Warn("Cannot resolve program and system from the first child run. Generating empty sections.")
		wf.Program = &archive.Program{}
		wf.System = &archive.System{}
	}

	wf.Method = p.methodForWorkflow(ctx)

	methodAddr := sectionref.Address{}.Child("workflow").Child("method")
	structureAddr := sectionref.Address{}.ChildAt("run", 0).Child("system")

	if len(arch.Runs) > 0 && arch.Runs[0].System != nil {
		wf.Inputs = append(wf.Inputs, archive.Link{
			Name:   "Input structure",
			Ref:    structureAddr,
			Target: wf.System,
		})
	}
	wf.Inputs = append(wf.Inputs, archive.Link{
		Name:   "Input BSE methodology",
		Ref:    methodAddr,
		Target: wf.Method,
	})

	for i, run := range arch.Runs {
		if !run.SinglePoint {
			// Partial child runs count as polarizations but yield no task.
			continue
		}
		runAddr := sectionref.Address{}.ChildAt("run", i)

		task := &archive.Task{Name: keys[i]}
		if len(run.Methods) > 0 && run.Methods[0].Photon != nil {
			task.Inputs = []archive.Link{
				{Name: "Input structure", Ref: structureAddr, Target: wf.System},
				{Name: "Input photon parameters", Ref: runAddr.ChildAt("method", 0), Target: run.Methods[0]},
			}
		}

		if n := len(run.Calculations); n > 0 {
			calc := run.Calculations[n-1]
			calcAddr := runAddr.ChildAt("calculation", n-1)
			output := archive.Link{
				Name:   fmt.Sprintf("Output polarization %d", i+1),
				Ref:    calcAddr,
				Target: calc,
			}
			task.Outputs = []archive.Link{output}
			wf.Outputs = append(wf.Outputs, output)

			if calc.Spectra != nil {
				wf.SpectrumPolarization = append(wf.SpectrumPolarization, calc.Spectra)
				wf.SpectrumPolarizationRefs = append(wf.SpectrumPolarizationRefs, calcAddr.Child("spectra"))
			}
		}
		wf.Tasks = append(wf.Tasks, task)
	}

	logger.Debug("Workflow aggregation finished.",
		"polarizations", wf.NPolarizations, "tasks", len(wf.Tasks))
}
