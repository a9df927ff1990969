package parser

import (
	"context"

	"github.com/vk/oceanparse/internal/archive"
	"github.com/vk/oceanparse/internal/ctxlog"
	"github.com/vk/oceanparse/internal/units"
)

// parseSystem populates the run's system section from the configuration's
// structure block. Each field is set only when its source keys are present;
// absence is left as absence, never a zero sentinel.
func (p *Parser) parseSystem(ctx context.Context, run *archive.Run) {
	logger := ctxlog.FromContext(ctx)
	data := p.cfg.Structure
	atoms := run.NewSystem().NewAtoms()

	if data.Avecs != nil {
		vectors, err := convertMatrix(data.Avecs, "bohr", "angstrom")
		if err != nil {
			logger.Error("Failed to convert lattice vectors.", "error", err)
		} else {
			atoms.LatticeVectors = vectors
			atoms.Periodic = []bool{true, true, true}
		}
	}
	if data.Bvecs != nil {
		vectors, err := convertMatrix(data.Bvecs, "1/bohr", "1/angstrom")
		if err != nil {
			logger.Error("Failed to convert reciprocal lattice vectors.", "error", err)
		} else {
			atoms.LatticeVectorsReciprocal = vectors
		}
	}

	if data.Znucl != nil && data.Typat != nil {
		if labels, ok := resolveLabels(data.Znucl, data.Typat); ok {
			atoms.Labels = labels
		} else {
			logger.Error("Species indices out of range, atom labels left unset.")
		}
	}

	if data.Xangst != nil {
		positions, err := convertMatrix(data.Xangst, "bohr", "angstrom")
		if err != nil {
			logger.Error("Failed to convert atomic positions.", "error", err)
		} else {
			atoms.Positions = positions
		}
	}
}

// resolveLabels maps per-site species indices (1-based into znucl) through
// the atomic-number table.
func resolveLabels(znucl []int, typat []int) ([]string, bool) {
	labels := make([]string, 0, len(typat))
	for _, site := range typat {
		if site < 1 || site > len(znucl) {
			return nil, false
		}
		z := znucl[site-1]
		if z < 1 || z >= len(chemicalSymbols) {
			return nil, false
		}
		labels = append(labels, chemicalSymbols[z])
	}
	return labels, true
}

func convertMatrix(rows [][]float64, from string, to string) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		converted, err := units.ConvertSlice(row, from, to)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}
