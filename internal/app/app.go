// Package app implements the application layer for pdb.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/registry" //nolint:depguard // Wired in app layer
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/report"   //nolint:depguard // Wired in app layer
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/engine/discovery"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/engine/resolver"
	"github.com/spf13/pflag"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     *resolver.Resolver
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	res *resolver.Resolver,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		resolver:     res,
		logger:       log,
		telemetry:    telemetry,
	}
}

// Options selects the settings of a command.
type Options struct {
	// ConfigFile is the settings file to read. Empty means the default file if present.
	ConfigFile string
	// Flags are the parsed command line flags. Only flags that were set override other sources.
	Flags *pflag.FlagSet
}

// Scan discovers the files below the configured roots and renders the result to w.
func (a *App) Scan(ctx context.Context, w io.Writer, opts Options) error {
	settings, renderer, err := a.prepare(opts)
	if err != nil {
		return err
	}

	d, err := a.Discover(ctx, *settings, nil)
	if err != nil {
		return err
	}

	return renderer.RenderDiscovery(w, d)
}

// Show loads the solution or project at path and renders it to w.
// A solution's projects are resolved under the configured failure mode; when failures are
// ignored, the entries that failed are rendered with the solution. For a project, the solutions
// below the configured roots are searched for references to it. That search skips solutions
// that fail to load, whatever the failure mode.
func (a *App) Show(ctx context.Context, w io.Writer, path string, opts Options) error {
	settings, renderer, err := a.prepare(opts)
	if err != nil {
		return err
	}

	loaded, err := a.resolver.LoadOne(ctx, path)
	if err != nil {
		return zerr.Wrap(err, "failed to load "+path)
	}

	switch item := loaded.(type) {
	case *domain.Solution:
		if !settings.IgnoreFailures {
			if _, err := a.resolver.Projects(ctx, item); err != nil {
				return err
			}
			return renderer.RenderSolution(w, item, nil)
		}

		errs := domain.NewErrorRecord()
		if err := a.resolver.ResolveProjects(ctx, item, settings.Mode(errs), nil); err != nil {
			return err
		}
		return renderer.RenderSolution(w, item, errs)
	case *domain.Project:
		cache := registry.New()
		cache.Put(item)

		scan := *settings
		scan.Projects = false
		scan.Extension = domain.SolutionExtension
		scan.IgnoreFailures = true
		if _, err := a.Discover(ctx, scan, cache); err != nil {
			return err
		}
		return renderer.RenderProject(w, item)
	default:
		return zerr.With(domain.ErrUnsupportedFile, "path", path)
	}
}

// Discover runs one discovery pass with the given settings.
// Projects are shared through cache, which may be pre-populated; nil starts an empty one.
func (a *App) Discover(ctx context.Context, s domain.Settings, cache ports.ProjectCache) (*domain.Discovery, error) {
	if cache == nil {
		cache = registry.New()
	}

	d := domain.NewDiscovery(s.Roots)
	if s.IgnoreFailures {
		d.Errors = domain.NewErrorRecord()
	}
	mode := s.Mode(d.Errors)

	ext := s.Extension
	if s.Projects {
		ext = domain.ProjectExtension
	}
	load := func(ctx context.Context, path string) (domain.Loadable, error) {
		return a.resolver.LoadSolution(ctx, path, mode, cache)
	}
	if domain.HasExtension(ext, domain.ProjectExtension) {
		load = func(ctx context.Context, path string) (domain.Loadable, error) {
			return a.resolver.LoadProject(ctx, path, cache)
		}
	}

	walker := fs.NewWalker(fs.DefaultExclusionRules(s.ProtectedDirs...))
	orchestrator := discovery.NewOrchestrator(walker, a.logger, a.telemetry, s.Workers)

	a.logger.Debug(fmt.Sprintf("pass %s: searching %v for *%s", d.PassID, s.Roots, ext))
	items, err := orchestrator.LoadAllUnder(ctx, discovery.Request{
		Roots:     s.Roots,
		Filter:    domain.NewFilter(s.Include, s.Exclude),
		Extension: ext,
		Mode:      mode,
		Load:      load,
	})
	if err != nil {
		return nil, err
	}

	var projects []*domain.Project
	for _, item := range items {
		switch v := item.(type) {
		case *domain.Solution:
			d.Solutions = append(d.Solutions, v)
		case *domain.Project:
			projects = append(projects, v)
		}
	}
	d.CollectProjects(projects...)

	a.logger.Info(fmt.Sprintf("pass %s: %d solutions, %d projects, %d failures",
		d.PassID, len(d.Solutions), len(d.Projects), d.FailureCount()))
	return d, nil
}

// Close flushes the progress recording.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) prepare(opts Options) (*domain.Settings, ports.Renderer, error) {
	settings, err := a.configLoader.Load(opts.ConfigFile, opts.Flags)
	if err != nil {
		return nil, nil, err
	}

	if lv, ok := a.logger.(interface{ SetLevel(level string) error }); ok {
		if err := lv.SetLevel(settings.LogLevel); err != nil {
			return nil, nil, err
		}
	}

	renderer, err := report.New(settings.Format)
	if err != nil {
		return nil, nil, err
	}
	return settings, renderer, nil
}
