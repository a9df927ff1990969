package sectionref

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex parses a single segment of a path, e.g., `name` or `name[1]`.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(?:\[(\d+)\])?$`)

// Parse creates an Address from its canonical string representation.
func Parse(rawAddr string) (Address, error) {
	if rawAddr == "" {
		return Address{}, fmt.Errorf("section address cannot be empty")
	}

	var addr Address
	for _, segmentStr := range strings.Split(rawAddr, ".") {
		if segmentStr == "" {
			return Address{}, fmt.Errorf("section address contains empty segment")
		}

		matches := segmentRegex.FindStringSubmatch(segmentStr)
		if matches == nil {
			return Address{}, fmt.Errorf("invalid path segment format: %q", segmentStr)
		}

		segment := NewSegment(matches[1])
		if matches[2] != "" {
			index, err := strconv.Atoi(matches[2])
			if err != nil {
				// Unreachable due to regex `\d+`
				return Address{}, fmt.Errorf("internal error parsing index: %w", err)
			}
			segment.Index = index
		}
		addr.Path = append(addr.Path, segment)
	}

	return addr, nil
}
