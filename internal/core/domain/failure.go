package domain

import (
	"maps"
	"slices"
	"sync"
)

// ErrorRecord collects failures by file path. It is safe for concurrent use.
type ErrorRecord struct {
	mu     sync.Mutex
	errors map[string]error
}

// NewErrorRecord creates an empty ErrorRecord.
func NewErrorRecord() *ErrorRecord {
	return &ErrorRecord{errors: make(map[string]error)}
}

// Record stores err for path, replacing any earlier failure for the same path.
func (r *ErrorRecord) Record(path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.errors == nil {
		r.errors = make(map[string]error)
	}
	r.errors[path] = err
}

// Get returns the failure recorded for path.
func (r *ErrorRecord) Get(path string) (error, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	err, ok := r.errors[path]
	return err, ok
}

// Len returns the number of failed paths.
func (r *ErrorRecord) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errors)
}

// Paths returns the failed paths in lexical order.
func (r *ErrorRecord) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.errors))
}

// Errors returns a copy of the recorded failures.
func (r *ErrorRecord) Errors() map[string]error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.errors)
}

// FailureMode decides what happens to a failure on a single path:
// in strict mode it aborts the current operation, in tolerant mode it is recorded and skipped.
type FailureMode struct {
	tolerant bool
	sink     *ErrorRecord
}

// Strict returns the mode in which the first failure is returned to the caller.
func Strict() FailureMode {
	return FailureMode{}
}

// Tolerant returns the mode in which failures are recorded into sink and processing continues.
// A nil sink discards failures.
func Tolerant(sink *ErrorRecord) FailureMode {
	return FailureMode{tolerant: true, sink: sink}
}

// IsTolerant reports whether failures are skipped.
func (m FailureMode) IsTolerant() bool { return m.tolerant }

// Sink returns the record failures are written to, if any.
func (m FailureMode) Sink() *ErrorRecord { return m.sink }

// Handle routes the failure err on path.
// It returns err unchanged in strict mode. In tolerant mode it records err and returns nil.
func (m FailureMode) Handle(path string, err error) error {
	if err == nil {
		return nil
	}
	if !m.tolerant {
		return err
	}
	if m.sink != nil {
		m.sink.Record(path, err)
	}
	return nil
}
