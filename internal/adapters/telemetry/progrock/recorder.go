// Package progrock records file load progress on a progrock tape.
package progrock

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Stats counts the units recorded by a Recorder.
type Stats struct {
	Started int64
	Cached  int64
	Failed  int64
}

// Recorder implements ports.Telemetry with one progrock vertex per loaded file.
// Loads of the same file, in any spelling of its path, share a vertex digest.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	logger ports.Logger

	started atomic.Int64
	cached  atomic.Int64
	failed  atomic.Int64
}

// New creates a Recorder writing to a new in-memory tape.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(progrock.NewTape(), logger)
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer, logger ports.Logger) *Recorder {
	return &Recorder{
		w:      w,
		rec:    progrock.NewRecorder(w),
		logger: logger,
	}
}

// Record starts a vertex for the unit called name, usually a file path.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	r.started.Add(1)
	v := r.rec.Vertex(vertexDigest(name), name)
	return ctx, &Vertex{vertex: v, stats: r}
}

// Stats returns the counts recorded so far.
func (r *Recorder) Stats() Stats {
	return Stats{
		Started: r.started.Load(),
		Cached:  r.cached.Load(),
		Failed:  r.failed.Load(),
	}
}

// Close logs the recorded counts and closes the tape.
func (r *Recorder) Close() error {
	s := r.Stats()
	r.logger.Debug(fmt.Sprintf("recorded %d units: %d cached, %d failed", s.Started, s.Cached, s.Failed))

	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func vertexDigest(name string) digest.Digest {
	return digest.FromString(strings.ToLower(filepath.Clean(name)))
}
