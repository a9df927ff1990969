package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/oceanparse/internal/archive"
	"github.com/vk/oceanparse/internal/config"
	"github.com/vk/oceanparse/internal/ctxlog"
	"github.com/vk/oceanparse/internal/discovery"
	"github.com/vk/oceanparse/internal/sectionref"
)

// dftCodeMap resolves the ground-state code abbreviations OCEAN writes into
// full program names.
var dftCodeMap = map[string]string{
	"qe":  "QuantumESPRESSO",
	"abi": "ABINIT",
}

// Parser aggregates one directory snapshot against a loaded configuration.
// The configuration is read-only; a Parser is safe to reuse across calls.
type Parser struct {
	cfg  *config.Model
	disc *discovery.Discovery
}

// New creates a Parser over the loaded main document and a discovery
// protocol instance.
func New(cfg *config.Model, disc *discovery.Discovery) *Parser {
	return &Parser{cfg: cfg, disc: disc}
}

// Parse performs the full one-shot aggregation over dir. Child runs are
// built strictly in the lexical order of the discovered spectra files, and
// the workflow consumes them in the same order.
func (p *Parser) Parse(ctx context.Context, dir string) (*archive.Archive, error) {
	logger := ctxlog.FromContext(ctx)

	keys, err := p.disc.Files(ctx, dir, discovery.RoleSpectra, "")
	if err != nil {
		return nil, fmt.Errorf("failed to discover spectra files: %w", err)
	}
	logger.Debug("Polarization discovery finished.", "count", len(keys))

	arch := &archive.Archive{}
	var builtKeys []string
	for _, key := range keys {
		run := p.buildChild(ctx, dir, len(arch.Runs), key)
		if run == nil {
			// A polarization without a readable spectra file is dropped
			// without affecting its siblings.
			continue
		}
		arch.Runs = append(arch.Runs, run)
		builtKeys = append(builtKeys, key)
	}

	p.aggregate(ctx, arch, builtKeys)
	return arch, nil
}

// buildChild assembles the self-contained result unit of one polarization.
// index is the position the run will occupy in the archive, used to mint
// section addresses. It returns nil when the run must be abandoned.
func (p *Parser) buildChild(ctx context.Context, dir string, index int, key string) *archive.Run {
	logger := ctxlog.FromContext(ctx).With("polarization", key)
	ctx = ctxlog.WithLogger(ctx, logger)

	run := &archive.Run{}
	runAddr := sectionref.Address{}.ChildAt("run", index)

	program := run.NewProgram()
	program.Name = "OCEAN"
	program.Version = p.cfg.Version["."]
	program.CommitHash = p.cfg.Version["hash"]
	if p.cfg.DFT != nil {
		program.OriginalDFTCode = dftCodeMap[p.cfg.DFT.Program]
	}

	if p.cfg.Structure == nil {
		logger.Error("Error finding the structure in the main output file.")
		return run
	}
	p.parseSystem(ctx, run)

	p.parsePhotonPolarization(ctx, run, dir, key)
	p.parseMethod(ctx, run, runAddr)

	if !p.parseCalculation(ctx, run, runAddr, dir, key) {
		return nil
	}

	run.SinglePoint = true
	return run
}

// readAuxFile reads one auxiliary file from the working directory. The
// handle is opened, fully read and closed before the caller moves on.
func readAuxFile(dir string, name string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
