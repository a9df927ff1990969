// Package units implements the unit conversion used when populating the
// archive. Quantities in the raw OCEAN output are given in atomic units
// (bohr for lengths) while the archive stores angstrom and eV, so every
// conversion factor lives here and nowhere else.
package units

import "fmt"

// dimension groups units that can be converted into each other.
type dimension int

const (
	length dimension = iota
	reciprocalLength
	energy
)

// unitDef carries the dimension of a unit and its factor relative to the
// dimension's base unit (meter, 1/meter, joule).
type unitDef struct {
	dim    dimension
	factor float64
}

const (
	metersPerBohr     = 5.29177210903e-11
	metersPerAngstrom = 1e-10
	joulesPerEV       = 1.602176634e-19
	joulesPerHartree  = 4.3597447222071e-18
)

var table = map[string]unitDef{
	"bohr":       {length, metersPerBohr},
	"angstrom":   {length, metersPerAngstrom},
	"meter":      {length, 1},
	"1/bohr":     {reciprocalLength, 1 / metersPerBohr},
	"1/angstrom": {reciprocalLength, 1 / metersPerAngstrom},
	"1/meter":    {reciprocalLength, 1},
	"eV":         {energy, joulesPerEV},
	"hartree":    {energy, joulesPerHartree},
	"joule":      {energy, 1},
}

// Convert converts value from one named unit to another. Unknown units and
// cross-dimension conversions are errors.
func Convert(value float64, from string, to string) (float64, error) {
	fromDef, ok := table[from]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", from)
	}
	toDef, ok := table[to]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", to)
	}
	if fromDef.dim != toDef.dim {
		return 0, fmt.Errorf("cannot convert %q to %q: incompatible dimensions", from, to)
	}
	return value * fromDef.factor / toDef.factor, nil
}

// ConvertSlice converts every element of values from one unit to another.
func ConvertSlice(values []float64, from string, to string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		converted, err := Convert(v, from, to)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}
