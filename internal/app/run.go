package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/oceanparse/internal/ctxlog"
	"github.com/vk/oceanparse/internal/discovery"
	"github.com/vk/oceanparse/internal/parser"
)

// Run executes one full aggregation based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	// A main document that cannot be loaded is fatal to the whole run: no
	// sections are produced.
	cfg, err := a.loader.Load(ctx, appConfig.InputPath)
	if err != nil {
		a.logger.Error("Error opening the main output file.", "error", err)
		return fmt.Errorf("failed to load main output file: %w", err)
	}
	a.logger.Debug("Main output file loaded.")

	disc, err := discovery.New(a.rules)
	if err != nil {
		return fmt.Errorf("failed to initialize discovery: %w", err)
	}

	workdir := filepath.Dir(appConfig.InputPath)
	arch, err := parser.New(cfg, disc).Parse(ctx, workdir)
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}
	a.logger.Info("Aggregation finished.",
		"polarizations", len(arch.Runs), "workdir", workdir)

	if err := a.writeArchive(arch, appConfig.OutputPath); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
