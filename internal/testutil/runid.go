// Package testutil provides deterministic run ID generators for tests.
package testutil

import (
	"fmt"
	"sync"
)

// FixedRunIDGenerator returns the same run ID every time.
//
// Batch output carries the run ID in its trace_id field; a fixed ID keeps
// that output byte-identical across test runs.
//
// Thread-safety: FixedRunIDGenerator is stateless and safe for concurrent use.
type FixedRunIDGenerator struct {
	id string
}

// NewFixedRunIDGenerator creates a generator that always returns id.
// If id is empty, Generate returns "test-run-default".
func NewFixedRunIDGenerator(id string) *FixedRunIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedRunIDGenerator{id: id}
}

// Generate returns the fixed run ID.
func (g *FixedRunIDGenerator) Generate() string {
	return g.id
}

// SequentialRunIDGenerator returns "run-0001", "run-0002", ... in call order.
//
// Unlike FixedRunIDGenerator it tells successive runs apart.
//
// Thread-safety: Generate is safe for concurrent use via internal mutex.
type SequentialRunIDGenerator struct {
	mu  sync.Mutex
	seq int64
}

// NewSequentialRunIDGenerator creates a generator whose first ID is "run-0001".
func NewSequentialRunIDGenerator() *SequentialRunIDGenerator {
	return &SequentialRunIDGenerator{}
}

// Generate increments the sequence and formats it as a run ID.
func (g *SequentialRunIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("run-%04d", g.seq)
}
