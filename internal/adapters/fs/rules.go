package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
)

// ExclusionRules decide which directories the walker never enters.
type ExclusionRules struct {
	// RecycleBinNames are directory base names of recycle bins, compared case-insensitively.
	RecycleBinNames []string
	// TempSegments are path segments that mark temporary trees, compared case-insensitively.
	TempSegments []string
	// MetadataDirs are version control directory names skipped wherever they appear.
	MetadataDirs []string
	// ProtectedDirs are system directories skipped on exact match only.
	ProtectedDirs []domain.Identity
}

// DefaultExclusionRules returns the built-in rules, protecting the program files directories
// of the host plus any extra directories given.
func DefaultExclusionRules(extraProtected ...string) ExclusionRules {
	rules := ExclusionRules{
		RecycleBinNames: []string{"$recycle.bin", "recycler", ".trash", ".trashes"},
		TempSegments:    []string{"temp"},
		MetadataDirs:    []string{".git", ".jj"},
	}

	for _, key := range []string{"ProgramFiles", "ProgramFiles(x86)", "ProgramW6432"} {
		if dir := os.Getenv(key); dir != "" {
			rules.ProtectedDirs = append(rules.ProtectedDirs, domain.Normalize(dir))
		}
	}
	for _, dir := range extraProtected {
		if dir != "" {
			rules.ProtectedDirs = append(rules.ProtectedDirs, domain.Normalize(dir))
		}
	}

	return rules
}

// Excludes reports whether the directory at path must be skipped with its subtree.
func (r ExclusionRules) Excludes(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	if slices.Contains(r.RecycleBinNames, base) || slices.Contains(r.MetadataDirs, base) {
		return true
	}

	for _, segment := range splitSegments(path) {
		if slices.ContainsFunc(r.TempSegments, func(temp string) bool {
			return strings.EqualFold(segment, temp)
		}) {
			return true
		}
	}

	return slices.Contains(r.ProtectedDirs, domain.Normalize(path))
}

// splitSegments splits path on both slash styles so Windows paths are handled on any host.
func splitSegments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}
