package domain

import (
	"slices"
	"sync"
)

// SolutionEntry is one Project block listed in a solution file.
// Entries include solution folders and project types the loader does not support;
// they are filtered during resolution, not during parsing.
type SolutionEntry struct {
	Name         string `json:"name" yaml:"name"`
	RelativePath string `json:"relativePath" yaml:"relativePath"`
	TypeGUID     string `json:"typeGuid,omitempty" yaml:"typeGuid,omitempty"`
	GUID         string `json:"guid,omitempty" yaml:"guid,omitempty"`
	Line         int    `json:"line" yaml:"line"`
}

// Solution is a loadable solution description file.
// Its project list is populated once by Resolve and is read-only afterwards.
type Solution struct {
	file
	entries []SolutionEntry

	mu       sync.Mutex
	projects []*Project
	resolved bool
}

var _ Loadable = (*Solution)(nil)

// NewSolution creates an unresolved solution loaded from path with the given entries in file order.
func NewSolution(path string, entries []SolutionEntry) *Solution {
	return &Solution{
		file:    newFile(path),
		entries: slices.Clone(entries),
	}
}

// Name returns the file name without extension.
func (s *Solution) Name() string { return s.stem() }

// Entries returns the parsed entries in file order.
func (s *Solution) Entries() []SolutionEntry {
	return slices.Clone(s.entries)
}

// Resolved reports whether the project list has been populated.
func (s *Solution) Resolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved
}

// Projects returns the resolved projects ordered by name.
// It returns nil until the solution has been resolved.
func (s *Solution) Projects() []*Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.projects)
}

// Resolve populates the project list using fn, unless the solution is already resolved.
// Concurrent callers wait for the first one; if fn fails the solution stays unresolved.
// The accepted projects are sorted by name and each of them records s as a referencing solution.
func (s *Solution) Resolve(fn func() ([]*Project, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolved {
		return nil
	}

	projects, err := fn()
	if err != nil {
		return err
	}

	projects = slices.Clone(projects)
	SortByName(projects)

	s.projects = projects
	s.resolved = true

	for _, p := range projects {
		p.AddSolution(s)
	}
	return nil
}
