package progrock

import (
	"fmt"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"github.com/vito/progrock"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex implements ports.Vertex on a progrock vertex.
type Vertex struct {
	vertex *progrock.VertexRecorder
	stats  *Recorder
}

// Log writes msg to the vertex output.
func (v *Vertex) Log(msg string) {
	_, _ = fmt.Fprintln(v.vertex.Stdout(), msg)
}

// Complete marks the unit as done. A non-nil err marks it failed.
func (v *Vertex) Complete(err error) {
	if err != nil {
		v.stats.failed.Add(1)
		_, _ = fmt.Fprintln(v.vertex.Stderr(), err)
	}
	v.vertex.Done(err)
}

// Cached marks the unit as served from the project cache.
func (v *Vertex) Cached() {
	v.stats.cached.Add(1)
	v.vertex.Cached()
}
