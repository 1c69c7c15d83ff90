package domain

import (
	"slices"
	"sync"
)

// PackageReference is a package dependency declared by a project.
type PackageReference struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// ProjectInfo holds the details read from a project description file.
type ProjectInfo struct {
	AssemblyName      string             `json:"assemblyName,omitempty" yaml:"assemblyName,omitempty"`
	RootNamespace     string             `json:"rootNamespace,omitempty" yaml:"rootNamespace,omitempty"`
	TargetFrameworks  []string           `json:"targetFrameworks,omitempty" yaml:"targetFrameworks,omitempty"`
	PackageReferences []PackageReference `json:"packageReferences,omitempty" yaml:"packageReferences,omitempty"`
	// ProjectReferences are absolute paths of referenced project files.
	ProjectReferences []string `json:"projectReferences,omitempty" yaml:"projectReferences,omitempty"`
}

// Project is a loadable project description file.
// A project may be shared by several solutions; it records every solution that references it.
type Project struct {
	file
	name string
	info ProjectInfo

	mu        sync.RWMutex
	solutions map[Identity]*Solution
}

var _ Loadable = (*Project)(nil)

// NewProject creates a project loaded from path.
// The name is the assembly name when one is declared, otherwise the file name without extension.
func NewProject(path string, info ProjectInfo) *Project {
	p := &Project{
		file:      newFile(path),
		info:      info,
		solutions: make(map[Identity]*Solution),
	}
	p.name = info.AssemblyName
	if p.name == "" {
		p.name = p.stem()
	}
	return p
}

// Name returns the display name of the project.
func (p *Project) Name() string { return p.name }

// Info returns the parsed details of the project.
func (p *Project) Info() ProjectInfo { return p.info }

// AddSolution records that s references p.
// It returns false if a solution with the same identity was already recorded.
func (p *Project) AddSolution(s *Solution) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.solutions[s.ID()]; exists {
		return false
	}
	p.solutions[s.ID()] = s
	return true
}

// Solutions returns the solutions referencing p, ordered by name.
func (p *Project) Solutions() []*Solution {
	p.mu.RLock()
	solutions := make([]*Solution, 0, len(p.solutions))
	for _, s := range p.solutions {
		solutions = append(solutions, s)
	}
	p.mu.RUnlock()

	SortByName(solutions)
	return solutions
}

// ReferencedBy reports whether the solution with the given identity references p.
func (p *Project) ReferencedBy(id Identity) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.solutions[id]
	return ok
}

// SolutionCount returns the number of distinct solutions referencing p.
func (p *Project) SolutionCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.solutions)
}

// TargetFrameworks returns a copy of the declared target frameworks.
func (p *Project) TargetFrameworks() []string {
	return slices.Clone(p.info.TargetFrameworks)
}
