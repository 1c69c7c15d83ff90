package domain

import "github.com/google/uuid"

// Discovery is the outcome of one discovery pass.
type Discovery struct {
	// PassID identifies the pass in logs and reports.
	PassID uuid.UUID
	// Roots are the directories that were searched.
	Roots []string
	// Solutions are the loaded solutions, ordered by name.
	Solutions []*Solution
	// Projects are the distinct projects reached by the pass, ordered by name.
	Projects []*Project
	// Errors holds the failures of a tolerant pass. It is nil for a strict pass.
	Errors *ErrorRecord
}

// NewDiscovery creates an empty discovery with a fresh pass ID.
func NewDiscovery(roots []string) *Discovery {
	return &Discovery{
		PassID: uuid.New(),
		Roots:  roots,
	}
}

// FailureCount returns the number of failed paths.
func (d *Discovery) FailureCount() int {
	if d.Errors == nil {
		return 0
	}
	return d.Errors.Len()
}

// CollectProjects fills Projects with the distinct projects of all solutions plus extra,
// deduplicated by identity and ordered by name.
func (d *Discovery) CollectProjects(extra ...*Project) {
	seen := make(map[Identity]struct{})
	var projects []*Project
	add := func(p *Project) {
		if _, ok := seen[p.ID()]; ok {
			return
		}
		seen[p.ID()] = struct{}{}
		projects = append(projects, p)
	}
	for _, s := range d.Solutions {
		for _, p := range s.Projects() {
			add(p)
		}
	}
	for _, p := range extra {
		add(p)
	}
	SortByName(projects)
	d.Projects = projects
}
