// Package telemetry holds the progress recording adapters.
package telemetry

import (
	"context"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// NewNoOp creates a new NoOp recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx unchanged and a vertex that ignores every call.
func (NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noOpVertex{}
}

// Close does nothing.
func (NoOp) Close() error { return nil }

type noOpVertex struct{}

func (noOpVertex) Log(string)     {}
func (noOpVertex) Cached()        {}
func (noOpVertex) Complete(error) {}
