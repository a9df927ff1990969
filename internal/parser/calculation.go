package parser

import (
	"context"
	"strings"

	"github.com/vk/oceanparse/internal/archive"
	"github.com/vk/oceanparse/internal/ctxlog"
	"github.com/vk/oceanparse/internal/discovery"
	"github.com/vk/oceanparse/internal/extract"
	"github.com/vk/oceanparse/internal/sectionref"
)

// parseCalculation builds the run's calculation section from the spectra
// file named by key, then attaches the optional lanczos dump. The spectra
// file is the one required auxiliary: when it cannot be read or holds no
// usable table, the whole polarization is abandoned (false return) without
// affecting its siblings.
func (p *Parser) parseCalculation(ctx context.Context, run *archive.Run, runAddr sectionref.Address, dir string, key string) bool {
	logger := ctxlog.FromContext(ctx)

	text, err := readAuxFile(dir, key)
	if err != nil {
		logger.Error("Failed to read spectra file.", "file", key, "error", err)
		return false
	}

	var energies, intensities []float64
	for _, row := range extract.Spectra(text) {
		// Column 0 is energy, column 2 intensity; shorter rows are dropped
		// to keep the two arrays aligned.
		if len(row) < 3 {
			continue
		}
		energies = append(energies, row[0])
		intensities = append(intensities, row[2])
	}
	if len(energies) == 0 {
		logger.Error("Spectra file holds no usable table.", "file", key)
		return false
	}

	calc := run.NewCalculation()
	if run.System != nil {
		addr := runAddr.Child("system")
		calc.SystemRef = &addr
		calc.SystemSection = run.System
	}
	if n := len(run.Methods); n > 0 {
		addr := runAddr.ChildAt("method", n-1)
		calc.MethodRef = &addr
		calc.MethodSection = run.Methods[n-1]
	}

	spectra := &archive.Spectra{
		NEnergies:          len(energies),
		ExcitationEnergies: energies,
		Intensities:        intensities,
	}
	if p.cfg.Calc != nil {
		spectra.Type = strings.ToUpper(p.cfg.Calc.Mode)
	}
	calc.Spectra = spectra

	p.parseLanczos(ctx, calc, dir, key)
	return true
}

// parseLanczos attaches the tridiagonal-matrix record when the polarization
// has a lanczos dump; its absence leaves the calculation with its spectrum
// only.
func (p *Parser) parseLanczos(ctx context.Context, calc *archive.Calculation, dir string, key string) {
	logger := ctxlog.FromContext(ctx)

	file, err := p.disc.First(ctx, dir, discovery.RoleLanczos, key)
	if err != nil {
		logger.Error("Lanczos file discovery failed.", "error", err)
		return
	}
	if file == "" {
		logger.Debug("No lanczos dump for this polarization, skipping.")
		return
	}

	text, err := readAuxFile(dir, file)
	if err != nil {
		logger.Error("Failed to read lanczos dump.", "file", file, "error", err)
		return
	}
	data := extract.Lanczos(text)
	if data == nil {
		logger.Error("Lanczos dump is malformed, skipping.", "file", file)
		return
	}

	calc.Lanczos = &archive.LanczosResults{
		NTridiagonalMatrix: data.Dimension,
		ScalingFactor:      data.ScalingFactor,
		TridiagonalMatrix:  data.Tridiagonal,
		Eigenvalues:        data.Eigenvalues,
	}
}
