package config

import "context"

// Loader is the interface for a format-specific loader of the main output
// document. Failures here are fatal to the whole run: without the main
// document there is nothing to cross-reference the auxiliary files against.
type Loader interface {
	// Load reads the document at path and translates it into the Model.
	Load(ctx context.Context, path string) (*Model, error)
}
