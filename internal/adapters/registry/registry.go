// Package registry implements the per-pass project cache.
package registry

import (
	"sync"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/domain"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

var _ ports.ProjectCache = (*Registry)(nil)

const shardCount = 16

type shard struct {
	mu       sync.RWMutex
	projects map[domain.Identity]*domain.Project
}

// Registry implements ports.ProjectCache with a sharded map.
// Concurrent loads of the same identity are collapsed into one call.
type Registry struct {
	shards [shardCount]*shard
	group  singleflight.Group
}

// New creates an empty Registry.
func New() *Registry {
	r := &Registry{}
	for i := range r.shards {
		r.shards[i] = &shard{projects: make(map[domain.Identity]*domain.Project)}
	}
	return r
}

func (r *Registry) shardFor(id domain.Identity) *shard {
	return r.shards[xxhash.Sum64String(id.String())%shardCount]
}

// Get returns the project stored for id.
func (r *Registry) Get(id domain.Identity) (*domain.Project, bool) {
	s := r.shardFor(id)
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	return p, ok
}

// Put stores p unless a project with the same identity is already stored,
// and returns the stored project.
func (r *Registry) Put(p *domain.Project) *domain.Project {
	s := r.shardFor(p.ID())
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.projects[p.ID()]; ok {
		return existing
	}
	s.projects[p.ID()] = p
	return p
}

// GetOrLoad returns the project stored for id, or stores the result of load.
// Failed loads are not stored, so a later call retries.
func (r *Registry) GetOrLoad(
	id domain.Identity,
	load func() (*domain.Project, error),
) (*domain.Project, bool, error) {
	if p, ok := r.Get(id); ok {
		return p, true, nil
	}

	loaded := false
	v, err, _ := r.group.Do(id.String(), func() (any, error) {
		if p, ok := r.Get(id); ok {
			return p, nil
		}
		p, err := load()
		if err != nil {
			return nil, err
		}
		loaded = true
		return r.Put(p), nil
	})
	if err != nil {
		return nil, false, err
	}

	return v.(*domain.Project), !loaded, nil
}

// Len returns the number of stored projects.
func (r *Registry) Len() int {
	n := 0
	for _, s := range r.shards {
		s.mu.RLock()
		n += len(s.projects)
		s.mu.RUnlock()
	}
	return n
}

// Projects returns the stored projects ordered by name.
func (r *Registry) Projects() []*domain.Project {
	var projects []*domain.Project
	for _, s := range r.shards {
		s.mu.RLock()
		for _, p := range s.projects {
			projects = append(projects, p)
		}
		s.mu.RUnlock()
	}
	domain.SortByName(projects)
	return projects
}
