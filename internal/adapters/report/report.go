// Package report renders discovery results as styled text, JSON or YAML.
package report

import (
	"encoding/json"
	"io"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for one output format.
type Renderer struct {
	format string
}

// New creates a Renderer for format, which is one of domain.FormatText, FormatJSON or FormatYAML.
func New(format string) (*Renderer, error) {
	switch format {
	case domain.FormatText, domain.FormatJSON, domain.FormatYAML:
		return &Renderer{format: format}, nil
	default:
		return nil, zerr.With(domain.ErrInvalidFormat, "format", format)
	}
}

// Format returns the output format.
func (r *Renderer) Format() string {
	return r.format
}

// RenderDiscovery writes the result of a discovery pass.
func (r *Renderer) RenderDiscovery(w io.Writer, d *domain.Discovery) error {
	if r.format == domain.FormatText {
		return writeDiscovery(w, d)
	}
	return r.encode(w, newDiscoveryDoc(d))
}

// RenderSolution writes one solution with its entries and resolved projects.
// Failures in errs are listed after them; a nil errs lists none.
func (r *Renderer) RenderSolution(w io.Writer, s *domain.Solution, errs *domain.ErrorRecord) error {
	if r.format == domain.FormatText {
		return writeSolution(w, s, errs)
	}
	doc := newSolutionDoc(s, true)
	if errs != nil {
		doc.Failures = failures(errs)
	}
	return r.encode(w, doc)
}

// RenderProject writes one project with its details and referencing solutions.
func (r *Renderer) RenderProject(w io.Writer, p *domain.Project) error {
	if r.format == domain.FormatText {
		return writeProject(w, p)
	}
	return r.encode(w, newProjectDoc(p))
}

func (r *Renderer) encode(w io.Writer, v any) error {
	if r.format == domain.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, "failed to encode json report")
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode yaml report")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to encode yaml report")
	}
	return nil
}
