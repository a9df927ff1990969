package sectionref

import (
	"fmt"
	"reflect"
	"strings"
)

// String serializes the Address into its canonical path string representation.
func (a Address) String() string {
	var sb strings.Builder
	for i, segment := range a.Path {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(segment.Name)
		if segment.HasIndex() {
			fmt.Fprintf(&sb, "[%d]", segment.Index)
		}
	}
	return sb.String()
}

// Equal checks for deep equality between two addresses.
func (a Address) Equal(other Address) bool {
	return reflect.DeepEqual(a.Path, other.Path)
}

// IsZero reports whether the address has no segments.
func (a Address) IsZero() bool {
	return len(a.Path) == 0
}

// MarshalText serializes the address for use inside the emitted archive.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses the canonical string form back into an Address.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
