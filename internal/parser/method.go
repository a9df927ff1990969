package parser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/oceanparse/internal/archive"
	"github.com/vk/oceanparse/internal/config"
	"github.com/vk/oceanparse/internal/ctxlog"
	"github.com/vk/oceanparse/internal/sectionref"
)

// MappingError reports a configuration value that falls outside a controlled
// vocabulary. It pinpoints the offending key and value instead of defaulting
// silently, since it indicates a format assumption violation.
type MappingError struct {
	Field string
	Value any
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("no mapping for %s value %v", e.Field, e.Value)
}

// solverNameMap is the controlled vocabulary of core-hole solver names.
var solverNameMap = map[string]string{
	"haydock": "lanczos-haydock",
	"gmres":   "gmres",
}

// coreLevelMap resolves the trailing [n, l] quantum numbers of the first
// edge to a symbolic core-level label.
var coreLevelMap = map[string]string{
	"[1, 0]": "K",
	"[2, 1]": "L23",
}

// coreHoleModes indexes the absorption/emission flag.
var coreHoleModes = []string{"emission", "absorption"}

// parseMethod attaches the shared methodology to the run. When the run
// already holds a photon method, the new section records it as its starting
// method. Mapping errors are reported and logged, never fatal: the method
// section keeps whatever could be mapped.
func (p *Parser) parseMethod(ctx context.Context, run *archive.Run, runAddr sectionref.Address) {
	logger := ctxlog.FromContext(ctx)

	method, err := buildMethod(p.cfg)
	if err != nil {
		logger.Error("Method parameter mapping failed.", "error", err)
	}

	if len(run.Methods) > 0 && run.Methods[0].Photon != nil {
		method.StartingMethod = run.Methods[0]
		addr := runAddr.ChildAt("method", 0)
		method.StartingMethodRef = &addr
	}
	run.Methods = append(run.Methods, method)
}

// buildMethod translates the main configuration into the structured method
// description. It is a pure function of the configuration: deterministic,
// identical for every child run and for the workflow entry. The returned
// method is valid even when an error is reported; it then carries the
// partial mapping.
func buildMethod(cfg *config.Model) (*archive.Method, error) {
	method := &archive.Method{}
	var errs []error

	if cfg.BSE != nil {
		method.KMesh = &archive.KMesh{Grid: cfg.BSE.Kmesh}
	}

	settings := &archive.BSESettings{}
	if cfg.BSE != nil {
		settings.NEmptyStates = cfg.BSE.NBands
	}
	if cfg.Screen != nil {
		settings.ScreeningType = cfg.Screen.Mode
		settings.NEmptyStatesScreening = cfg.Screen.NBands
		settings.KMeshScreening = &archive.KMesh{Grid: cfg.Screen.Kmesh}
	}
	if cfg.Structure != nil {
		settings.DielectricInfinity = cfg.Structure.Epsilon
	}
	method.BSE = settings

	if cfg.BSE != nil && cfg.BSE.Core != nil {
		core := cfg.BSE.Core

		params := &archive.BSEParameters{
			ScreenRadius: core.ScreenRadius,
			XMesh:        cfg.BSE.Xmesh,
		}
		solver, err := buildSolverParams(core)
		if err != nil {
			errs = append(errs, err)
		}
		params.Solver = solver
		method.BSEParameters = params

		coreHole, err := buildCoreHole(cfg, core)
		if err != nil {
			errs = append(errs, err)
		}
		settings.CoreHole = coreHole
	}

	if cfg.Screen != nil {
		method.ScreenParameters = buildScreenParameters(cfg.Screen)
	}

	edges, err := parseEdges(cfg.Calc)
	if err != nil {
		errs = append(errs, err)
	}
	method.Edges = edges

	return method, errors.Join(errs...)
}

// buildSolverParams selects the solver-specific parameter block. The two
// blocks are mutually exclusive by construction of the tagged union.
func buildSolverParams(core *config.CoreHole) (archive.SolverParams, error) {
	switch core.Solver {
	case "haydock":
		params := &archive.HaydockParams{}
		if h := core.Haydock; h != nil {
			params.NIter = h.NIter
			if h.Converge != nil {
				params.ConvergeSpacing = h.Converge.Spacing
				params.ConvergeThresh = h.Converge.Thresh
			}
		}
		return params, nil
	case "gmres":
		params := &archive.GMRESParams{}
		if g := core.GMRES; g != nil {
			params.EChamp = g.EChamp
			params.EList = g.EList
			params.ERange = g.ERange
			params.EStyle = g.EStyle
			params.FFFF = g.FFFF
			params.GPRC = g.GPRC
			params.NLoop = g.NLoop
		}
		return params, nil
	default:
		return nil, &MappingError{Field: "bse.core.solver", Value: core.Solver}
	}
}

// buildCoreHole derives the core-hole section: mode from the
// absorption/emission flag, solver from the controlled vocabulary, edge
// label from the first edge's quantum numbers.
func buildCoreHole(cfg *config.Model, core *config.CoreHole) (*archive.CoreHole, error) {
	coreHole := &archive.CoreHole{Broadening: core.Broaden}
	var errs []error

	if core.Strength != nil {
		if *core.Strength < 0 || *core.Strength >= len(coreHoleModes) {
			errs = append(errs, &MappingError{Field: "bse.core.strength", Value: *core.Strength})
		} else {
			coreHole.Mode = coreHoleModes[*core.Strength]
		}
	}

	if solver, ok := solverNameMap[core.Solver]; ok {
		coreHole.Solver = solver
	} else {
		errs = append(errs, &MappingError{Field: "bse.core.solver", Value: core.Solver})
	}

	if edges, err := parseEdges(cfg.Calc); err == nil && len(edges) > 0 {
		first := edges[0]
		pair := fmt.Sprintf("[%d, %d]", first[len(first)-2], first[len(first)-1])
		if label, ok := coreLevelMap[pair]; ok {
			coreHole.Edge = label
		} else {
			errs = append(errs, &MappingError{Field: "calc.edges", Value: pair})
		}
	}

	return coreHole, errors.Join(errs...)
}

// buildScreenParameters copies the screening scalars and flattens the named
// groups into <group>_<subkey> keys.
func buildScreenParameters(screen *config.Screen) *archive.ScreenParameters {
	params := &archive.ScreenParameters{
		AllAugment:         screen.AllAugment,
		Augment:            screen.Augment,
		ConvertStyle:       screen.ConvertStyle,
		DFTEnergyRange:     screen.DFTEnergyRange,
		InversionStyle:     screen.InversionStyle,
		KShift:             screen.KShift,
		MimicExcitingBands: screen.MimicExcitingBands,
		Shells:             screen.Shells,
	}

	groups := map[string]map[string]any{
		"core_offset": screen.CoreOffset,
		"final":       screen.Final,
		"grid":        screen.Grid,
	}
	for group, subkeys := range groups {
		for subkey, value := range subkeys {
			if params.Groups == nil {
				params.Groups = make(map[string]any)
			}
			params.Groups[group+"_"+subkey] = value
		}
	}

	if screen.Model != nil {
		params.ModelFlavor = screen.Model.Flavor
	}
	return params
}

// parseEdges converts the configuration's edge strings into integer rows and
// validates the list is non-empty and well-formed.
func parseEdges(calc *config.Calc) ([][]int, error) {
	if calc == nil || len(calc.Edges) == 0 {
		return nil, &MappingError{Field: "calc.edges", Value: "empty edge list"}
	}

	edges := make([][]int, 0, len(calc.Edges))
	for _, entry := range calc.Edges {
		fields := strings.Fields(entry)
		if len(fields) < 2 {
			return nil, &MappingError{Field: "calc.edges", Value: entry}
		}
		row := make([]int, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, &MappingError{Field: "calc.edges", Value: entry}
			}
			row = append(row, v)
		}
		edges = append(edges, row)
	}
	return edges, nil
}

// methodForWorkflow rebuilds the shared methodology for the workflow entry,
// logging mapping failures the same way the child builder does.
func (p *Parser) methodForWorkflow(ctx context.Context) *archive.Method {
	method, err := buildMethod(p.cfg)
	if err != nil {
		ctxlog.FromContext(ctx).Error("Method parameter mapping failed.", "error", err)
	}
	return method
}
