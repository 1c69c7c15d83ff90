// Package discovery finds description files below root directories and loads them concurrently.
package discovery

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// PerFileLoader loads the description file at path.
type PerFileLoader func(ctx context.Context, path string) (domain.Loadable, error)

// Request describes one batch load.
type Request struct {
	// Roots are the directories to search. Overlapping roots are allowed.
	Roots []string
	// Filter selects candidates by path.
	Filter domain.Filter
	// Extension is the file suffix to look for. Defaults to the solution extension.
	Extension string
	// Mode decides whether a failure aborts the batch or is recorded and skipped.
	Mode domain.FailureMode
	// Load is called once per distinct candidate.
	Load PerFileLoader
}

// Orchestrator walks the roots of a request and loads every matching file on a bounded pool.
type Orchestrator struct {
	walker    ports.FileWalker
	logger    ports.Logger
	telemetry ports.Telemetry
	workers   int
}

// NewOrchestrator creates a new Orchestrator.
// A workers value of zero or less uses one worker per CPU.
func NewOrchestrator(
	walker ports.FileWalker,
	logger ports.Logger,
	telemetry ports.Telemetry,
	workers int,
) *Orchestrator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Orchestrator{
		walker:    walker,
		logger:    logger,
		telemetry: telemetry,
		workers:   workers,
	}
}

// Workers returns the size of the load pool.
func (o *Orchestrator) Workers() int {
	return o.workers
}

// LoadAllUnder loads every file below req.Roots that has the requested extension and passes the filter.
// Every candidate is loaded even when some fail. In strict mode the first failure is returned
// once all loads have finished; in tolerant mode failures are recorded in the mode's sink and
// the failed paths are left out of the result. Results are ordered by name.
func (o *Orchestrator) LoadAllUnder(ctx context.Context, req Request) ([]domain.Loadable, error) {
	if len(req.Roots) == 0 {
		return nil, domain.ErrNoRoots
	}
	if req.Extension == "" {
		req.Extension = domain.SolutionExtension
	}

	candidates, err := o.candidates(ctx, req)
	if err != nil {
		return nil, err
	}
	o.logger.Debug(fmt.Sprintf("loading %d candidate files with %d workers", len(candidates), o.workers))

	var (
		mu      sync.Mutex
		results []domain.Loadable
	)

	g := new(errgroup.Group)
	g.SetLimit(o.workers)

	for _, path := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			item, err := req.Load(ctx, path)
			if err != nil {
				if herr := req.Mode.Handle(path, err); herr != nil {
					return herr
				}
				o.logger.Warn(fmt.Sprintf("skipping %s: %v", path, err))
				return nil
			}

			mu.Lock()
			results = append(results, item)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	domain.SortByName(results)
	return results, nil
}

// candidates walks every root and returns the distinct matching paths in walk order.
func (o *Orchestrator) candidates(ctx context.Context, req Request) ([]string, error) {
	seen := make(map[domain.Identity]struct{})
	var paths []string

	for _, root := range req.Roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found, err := o.walk(ctx, root, req.Extension)
		if err != nil {
			if herr := req.Mode.Handle(root, err); herr != nil {
				return nil, herr
			}
			o.logger.Warn(fmt.Sprintf("skipping root %s: %v", root, err))
			continue
		}

		for _, path := range found {
			id := domain.Normalize(path)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			if !req.Filter.Matches(path) {
				continue
			}
			paths = append(paths, path)
		}
	}

	return paths, nil
}

// walk collects the files below root. A traversal failure discards everything found under root.
func (o *Orchestrator) walk(ctx context.Context, root, ext string) ([]string, error) {
	_, v := o.telemetry.Record(ctx, "walk "+root)

	var found []string
	for path, err := range o.walker.Walk(root, ext) {
		if err != nil {
			v.Complete(err)
			return nil, err
		}
		found = append(found, path)
	}

	v.Log(fmt.Sprintf("found %d files", len(found)))
	v.Complete(nil)
	return found, nil
}
