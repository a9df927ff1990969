package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/oceanparse/internal/config"
	"github.com/vk/oceanparse/internal/ctxlog"
	"github.com/vk/oceanparse/internal/discovery"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	// outW receives the emitted archive when no output path is configured;
	// logW receives log lines, kept separate so the archive stays parseable.
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger
	rules  discovery.Rules
	loader config.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a validated
// discovery rule set. Unusable startup configuration panics; the entrypoint
// recovers and turns it into a clean exit.
func NewApp(outW io.Writer, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	rules := discovery.DefaultRules()
	if appConfig.RulesPath != "" {
		loaded, err := discovery.LoadRules(ctx, appConfig.RulesPath)
		if err != nil {
			panic(fmt.Errorf("failed to load discovery rules: %w", err))
		}
		rules = loaded
	}
	if err := rules.Validate(); err != nil {
		panic(fmt.Errorf("invalid discovery rules: %w", err))
	}
	logger.Debug("Discovery rules ready.", "roles", len(rules))

	return &App{
		outW:   outW,
		logW:   logW,
		logger: logger,
		rules:  rules,
		loader: loader,
	}
}

// Rules returns the app's active discovery rules. This is primarily for testing.
func (a *App) Rules() discovery.Rules {
	return a.rules
}
