// Package resolver loads single description files and links solutions to their projects.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver dispatches files to the matching loader and resolves solution entries into projects.
type Resolver struct {
	parser    ports.SolutionParser
	loader    ports.ProjectLoader
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewResolver creates a new Resolver with the given dependencies.
func NewResolver(
	parser ports.SolutionParser,
	loader ports.ProjectLoader,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Resolver {
	return &Resolver{
		parser:    parser,
		loader:    loader,
		logger:    logger,
		telemetry: telemetry,
	}
}

// LoadOne loads the file at path with the loader matching its extension.
// Solutions are returned unresolved.
func (r *Resolver) LoadOne(ctx context.Context, path string) (domain.Loadable, error) {
	switch {
	case domain.HasExtension(path, domain.SolutionExtension):
		sol, err := r.parseSolution(ctx, path)
		if err != nil {
			return nil, err
		}
		return sol, nil
	case domain.HasExtension(path, domain.ProjectExtension):
		p, err := r.LoadProject(ctx, path, nil)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, errors.Join(
			domain.ErrUnsupportedFile,
			zerr.With(zerr.New("no loader for file extension"), "path", path),
		)
	}
}

// LoadSolution parses the solution at path and resolves its projects eagerly.
func (r *Resolver) LoadSolution(
	ctx context.Context,
	path string,
	mode domain.FailureMode,
	cache ports.ProjectCache,
) (*domain.Solution, error) {
	sol, err := r.parseSolution(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := r.ResolveProjects(ctx, sol, mode, cache); err != nil {
		return nil, err
	}
	return sol, nil
}

// Projects returns the projects of sol, resolving them on first access.
// Lazy resolution is strict and bypasses any cache.
func (r *Resolver) Projects(ctx context.Context, sol *domain.Solution) ([]*domain.Project, error) {
	if err := r.ResolveProjects(ctx, sol, domain.Strict(), nil); err != nil {
		return nil, err
	}
	return sol.Projects(), nil
}

// ResolveProjects populates the project list of sol from its entries, in file order.
// Entries that are not project files or point to missing files are skipped.
// Projects are taken from cache when it is not nil, so a project shared by several solutions
// is loaded once. Failures are routed through mode; in strict mode the first one aborts
// the resolution and sol stays unresolved.
func (r *Resolver) ResolveProjects(
	ctx context.Context,
	sol *domain.Solution,
	mode domain.FailureMode,
	cache ports.ProjectCache,
) error {
	return sol.Resolve(func() ([]*domain.Project, error) {
		dir := filepath.Dir(sol.Path())
		seen := make(map[domain.Identity]struct{})
		var projects []*domain.Project

		for _, entry := range sol.Entries() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			path, err := EntryPath(dir, entry.RelativePath)
			if err != nil {
				if herr := mode.Handle(filepath.Join(dir, entry.RelativePath), err); herr != nil {
					return nil, herr
				}
				r.logger.Warn(fmt.Sprintf("skipping entry %q at %s:%d: %v", entry.Name, sol.Path(), entry.Line, err))
				continue
			}

			if !r.accepts(path) {
				continue
			}

			project, err := r.LoadProject(ctx, path, cache)
			if err != nil {
				if herr := mode.Handle(path, err); herr != nil {
					return nil, herr
				}
				r.logger.Warn(fmt.Sprintf("skipping project %s: %v", path, err))
				continue
			}

			if _, dup := seen[project.ID()]; dup {
				continue
			}
			seen[project.ID()] = struct{}{}
			projects = append(projects, project)
		}

		return projects, nil
	})
}

// EntryPath computes the absolute path of a solution entry relative to dir.
func EntryPath(dir, rel string) (string, error) {
	if strings.TrimSpace(rel) == "" || strings.ContainsRune(rel, 0) {
		return "", errors.Join(
			domain.ErrResolution,
			zerr.With(zerr.New("invalid project path"), "entry", rel),
		)
	}

	abs, err := filepath.Abs(domain.JoinRelative(dir, rel))
	if err != nil {
		return "", errors.Join(
			domain.ErrResolution,
			zerr.With(zerr.Wrap(err, "failed to compute absolute path"), "entry", rel),
		)
	}
	return abs, nil
}

// accepts reports whether the entry at path is a project file that exists.
func (r *Resolver) accepts(path string) bool {
	if !domain.HasExtension(path, domain.ProjectExtension) {
		r.logger.Debug("skipping unsupported entry " + path)
		return false
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		r.logger.Debug("skipping missing project " + path)
		return false
	}
	return true
}

func (r *Resolver) parseSolution(ctx context.Context, path string) (*domain.Solution, error) {
	ctx, v := r.telemetry.Record(ctx, path)
	sol, err := r.parser.ParseSolution(ctx, path)
	v.Complete(err)
	return sol, err
}

// LoadProject loads the project at path, through cache when it is not nil.
func (r *Resolver) LoadProject(
	ctx context.Context,
	path string,
	cache ports.ProjectCache,
) (*domain.Project, error) {
	ctx, v := r.telemetry.Record(ctx, path)
	load := func() (*domain.Project, error) {
		return r.loader.LoadProject(ctx, path)
	}

	if cache == nil {
		p, err := load()
		v.Complete(err)
		return p, err
	}

	p, hit, err := cache.GetOrLoad(domain.Normalize(path), load)
	if hit {
		v.Cached()
	}
	v.Complete(err)
	return p, err
}
