package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vk/oceanparse/internal/archive"
)

// writeArchive serializes the result graph as indented JSON, either to the
// configured output path or to the app's writer.
func (a *App) writeArchive(arch *archive.Archive, outputPath string) error {
	raw, err := json.MarshalIndent(arch, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode archive: %w", err)
	}
	raw = append(raw, '\n')

	if outputPath == "" {
		_, err := a.outW.Write(raw)
		return err
	}
	return os.WriteFile(outputPath, raw, 0644)
}
