package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of loading operations.
type Telemetry interface {
	// Record starts recording a new unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Log records a message associated with the unit.
	Log(msg string)
	// Cached marks the unit as served from the cache.
	Cached()
	// Complete marks the unit as finished, successfully when err is nil.
	Complete(err error)
}
