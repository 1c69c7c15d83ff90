package ports

import (
	"io"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
)

// Renderer writes a human or machine readable view of the loaded graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderDiscovery writes the result of a discovery pass.
	RenderDiscovery(w io.Writer, d *domain.Discovery) error
	// RenderSolution writes one solution with its resolved projects and, when errs is not nil,
	// the entries that failed to load.
	RenderSolution(w io.Writer, s *domain.Solution, errs *domain.ErrorRecord) error
	// RenderProject writes one project with its details and referencing solutions.
	RenderProject(w io.Writer, p *domain.Project) error
}
