package ports

import "github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"

// ProjectCache maps identities to loaded projects so a project shared by several solutions
// is parsed once per discovery pass. Implementations must be safe for concurrent use.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ProjectCache interface {
	// Get returns the project stored for id.
	Get(id domain.Identity) (*domain.Project, bool)

	// Put stores p under its identity unless a project is already stored there,
	// and returns the stored project.
	Put(p *domain.Project) *domain.Project

	// GetOrLoad returns the project stored for id, calling load and storing its result when
	// there is none. Concurrent calls for the same id call load at most once.
	// The boolean reports whether the project came from the cache rather than from this call's load.
	GetOrLoad(id domain.Identity, load func() (*domain.Project, error)) (*domain.Project, bool, error)

	// Len returns the number of stored projects.
	Len() int
}
