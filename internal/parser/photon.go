package parser

import (
	"context"

	"github.com/vk/oceanparse/internal/archive"
	"github.com/vk/oceanparse/internal/ctxlog"
	"github.com/vk/oceanparse/internal/discovery"
	"github.com/vk/oceanparse/internal/extract"
)

// momentumTransferOperators lists the multipole operators that carry a second
// (momentum transfer) vector in their descriptor.
var momentumTransferOperators = map[string]bool{
	"quad":   true,
	"NRIXS":  true,
	"qRaman": true,
}

// parsePhotonPolarization discovers and parses the photon descriptor for the
// given polarization key. A missing descriptor is an expected partial state:
// the run simply stays without a photon method section.
func (p *Parser) parsePhotonPolarization(ctx context.Context, run *archive.Run, dir string, key string) {
	logger := ctxlog.FromContext(ctx)

	file, err := p.disc.First(ctx, dir, discovery.RolePhoton, key)
	if err != nil {
		logger.Error("Photon file discovery failed.", "error", err)
		return
	}
	if file == "" {
		logger.Debug("No photon descriptor for this polarization, skipping.")
		return
	}

	text, err := readAuxFile(dir, file)
	if err != nil {
		logger.Error("Failed to read photon descriptor.", "file", file, "error", err)
		return
	}
	data := extract.Photon(text)

	photon := &archive.Photon{MultipoleType: data.Operator}
	if len(data.Vectors) > 0 {
		photon.Polarization = data.Vectors[0]
	}
	if momentumTransferOperators[data.Operator] && len(data.Vectors) > 1 {
		photon.MomentumTransfer = data.Vectors[1]
	}
	photon.Energy = data.Energy

	run.NewMethod().Photon = photon
}
