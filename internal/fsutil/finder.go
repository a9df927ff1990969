// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"sort"
	"strings"
)

// FindFiles lists the regular files in dir whose name starts with prefix and,
// when suffix is non-empty, also ends with suffix. Results are returned in
// lexical filename order, which callers use as the canonical discovery order.
// A zero-match result is an empty slice, not an error; an error is only
// returned when the directory itself cannot be read.
func FindFiles(dir string, prefix string, suffix string) ([]string, error) {
	if prefix == "" {
		panic("prefix must not be empty")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if suffix != "" && !strings.HasSuffix(name, suffix) {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)

	return files, nil
}
