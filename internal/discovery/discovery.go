package discovery

import (
	"context"
	"fmt"

	"github.com/vk/oceanparse/internal/ctxlog"
	"github.com/vk/oceanparse/internal/fsutil"
)

// Discovery resolves which files in a directory belong to which polarization
// sub-calculation, according to a validated rule set.
type Discovery struct {
	rules Rules
}

// New creates a Discovery over the given rules. Nil rules mean the built-in
// OCEAN convention.
func New(rules Rules) (*Discovery, error) {
	if rules == nil {
		rules = DefaultRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Discovery{rules: rules}, nil
}

// Files returns, in lexical filename order, the files in dir that the given
// role's rule associates with the polarization key. An empty result is not
// an error: callers treat it as "optional auxiliary data absent". The key is
// ignored for roles without a suffix rule, such as the spectra role itself.
func (d *Discovery) Files(ctx context.Context, dir string, role string, key string) ([]string, error) {
	rule, ok := d.rules[role]
	if !ok {
		return nil, fmt.Errorf("no discovery rule for role %q", role)
	}

	suffix, err := rule.suffixFor(key)
	if err != nil {
		return nil, fmt.Errorf("role %q: %w", role, err)
	}

	files, err := fsutil.FindFiles(dir, rule.Prefix, suffix)
	if err != nil {
		return nil, fmt.Errorf("role %q: %w", role, err)
	}

	ctxlog.FromContext(ctx).Debug("Discovery pass finished.",
		"role", role, "key", key, "matches", len(files))
	return files, nil
}

// First returns the lexically first file for the role and key, or "" when
// none matches.
func (d *Discovery) First(ctx context.Context, dir string, role string, key string) (string, error) {
	files, err := d.Files(ctx, dir, role, key)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", nil
	}
	return files[0], nil
}
