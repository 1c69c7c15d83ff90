package domain

import (
	"path/filepath"
	"strings"
	"unique"
)

// Identity is the canonical key of a loadable file: its absolute, cleaned, case-folded path.
// It wraps a unique.Handle[string] so that equality is a pointer comparison and the
// normalized strings of a discovery pass are stored once.
type Identity struct {
	h unique.Handle[string]
}

// Normalize computes the Identity of path.
// Relative forms, trailing separators and letter case all collapse to the same Identity.
// If the absolute form cannot be determined the cleaned path is used as is.
func Normalize(path string) Identity {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	return Identity{h: unique.Make(strings.ToLower(abs))}
}

// String returns the normalized path.
func (id Identity) String() string {
	var zero unique.Handle[string]
	if id.h == zero {
		return ""
	}
	return id.h.Value()
}

// IsZero reports whether id was never assigned.
func (id Identity) IsZero() bool {
	var zero unique.Handle[string]
	return id.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text is normalized again, so any path spelling is accepted.
func (id *Identity) UnmarshalText(text []byte) error {
	*id = Normalize(string(text))
	return nil
}
