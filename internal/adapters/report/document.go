package report

import (
	"strings"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
)

type summaryDoc struct {
	Solutions int `json:"solutions" yaml:"solutions"`
	Projects  int `json:"projects" yaml:"projects"`
	Failures  int `json:"failures" yaml:"failures"`
}

type failureDoc struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

type solutionDoc struct {
	Name     string                 `json:"name" yaml:"name"`
	Path     string                 `json:"path" yaml:"path"`
	Resolved bool                   `json:"resolved" yaml:"resolved"`
	Entries  []domain.SolutionEntry `json:"entries,omitempty" yaml:"entries,omitempty"`
	Projects []string               `json:"projects" yaml:"projects"`
	Failures []failureDoc           `json:"failures,omitempty" yaml:"failures,omitempty"`
}

type projectDoc struct {
	Name      string             `json:"name" yaml:"name"`
	Path      string             `json:"path" yaml:"path"`
	Details   domain.ProjectInfo `json:"details" yaml:"details"`
	Solutions []string           `json:"solutions" yaml:"solutions"`
}

type discoveryDoc struct {
	PassID    string        `json:"passId" yaml:"passId"`
	Roots     []string      `json:"roots" yaml:"roots"`
	Summary   summaryDoc    `json:"summary" yaml:"summary"`
	Solutions []solutionDoc `json:"solutions" yaml:"solutions"`
	Projects  []projectDoc  `json:"projects" yaml:"projects"`
	Failures  []failureDoc  `json:"failures" yaml:"failures"`
}

func newSolutionDoc(s *domain.Solution, withEntries bool) solutionDoc {
	doc := solutionDoc{
		Name:     s.Name(),
		Path:     s.Path(),
		Resolved: s.Resolved(),
		Projects: []string{},
	}
	if withEntries {
		doc.Entries = s.Entries()
	}
	for _, p := range s.Projects() {
		doc.Projects = append(doc.Projects, p.Path())
	}
	return doc
}

func newProjectDoc(p *domain.Project) projectDoc {
	doc := projectDoc{
		Name:      p.Name(),
		Path:      p.Path(),
		Details:   p.Info(),
		Solutions: []string{},
	}
	for _, s := range p.Solutions() {
		doc.Solutions = append(doc.Solutions, s.Path())
	}
	return doc
}

func newDiscoveryDoc(d *domain.Discovery) discoveryDoc {
	doc := discoveryDoc{
		PassID: d.PassID.String(),
		Roots:  d.Roots,
		Summary: summaryDoc{
			Solutions: len(d.Solutions),
			Projects:  len(d.Projects),
			Failures:  d.FailureCount(),
		},
		Solutions: make([]solutionDoc, 0, len(d.Solutions)),
		Projects:  make([]projectDoc, 0, len(d.Projects)),
		Failures:  failures(d.Errors),
	}
	for _, s := range d.Solutions {
		doc.Solutions = append(doc.Solutions, newSolutionDoc(s, false))
	}
	for _, p := range d.Projects {
		doc.Projects = append(doc.Projects, newProjectDoc(p))
	}
	return doc
}

func failures(record *domain.ErrorRecord) []failureDoc {
	out := []failureDoc{}
	if record == nil {
		return out
	}
	errs := record.Errors()
	for _, path := range record.Paths() {
		out = append(out, failureDoc{Path: path, Error: oneLine(errs[path])})
	}
	return out
}

// oneLine flattens joined errors, which print one cause per line.
func oneLine(err error) string {
	if err == nil {
		return ""
	}
	return strings.ReplaceAll(strings.TrimSpace(err.Error()), "\n", ": ")
}
