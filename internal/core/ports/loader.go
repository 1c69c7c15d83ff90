package ports

import (
	"context"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
)

// SolutionParser reads the structure of a solution file.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type SolutionParser interface {
	// ParseSolution returns an unresolved solution listing the entries of the file at path.
	// It fails with domain.ErrParse when the file cannot be read or is structurally invalid.
	ParseSolution(ctx context.Context, path string) (*domain.Solution, error)
}

// ProjectLoader loads a single project description file.
type ProjectLoader interface {
	// LoadProject parses the project at path.
	// It fails with domain.ErrParse when the file is missing, unreadable or structurally invalid.
	LoadProject(ctx context.Context, path string) (*domain.Project, error)
}
