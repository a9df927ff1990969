// Package jsonconf is the JSON-specific implementation of the config.Loader
// interface.
package jsonconf

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vk/oceanparse/internal/config"
	"github.com/vk/oceanparse/internal/ctxlog"
)

// Loader reads the main OCEAN JSON output file into the config model.
type Loader struct{}

// NewLoader creates a new JSON configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load opens, decodes and closes the document at path. The file handle does
// not outlive this call.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("JSON loader started.", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open main output file %s: %w", path, err)
	}

	var model config.Model
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("failed to decode main output file %s: %w", path, err)
	}

	logger.Debug("Main output file decoded.", "path", path)
	return &model, nil
}
