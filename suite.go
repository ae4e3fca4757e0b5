package goMetrics

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateMetric is returned by [Suite.Register] for an already
	// registered name.
	ErrDuplicateMetric = errors.New("metric name already registered")
	// ErrEmptyMetricName is returned by [Suite.Register] for an empty name.
	ErrEmptyMetricName = errors.New("metric name must not be empty")
)

// Snapshot is a point-in-time read of every registered metric that currently
// has a defined value. Metrics whose Compute reported ok=false are absent
// from Values, preserving the "no data" / "value is zero" distinction.
type Snapshot struct {
	// RunID identifies the evaluation run; it is regenerated by
	// [Suite.ResetAll].
	RunID string
	// Values maps registered metric names to their computed values.
	Values map[string]float64
}

// Suite is a named registry of scalar metrics belonging to one evaluation
// run. It exists for the exporters: export/prometheus and export/otel read
// [Suite.MetricsSnapshot] on every scrape.
//
// Unlike individual accumulators, a Suite is safe for concurrent use; update
// goroutines and scrape goroutines may overlap. The Suite serializes
// Compute/Reset across all registered metrics, but callers feeding batches to
// the underlying accumulators directly must still serialize their own Update
// calls per accumulator.
type Suite struct {
	mu      sync.RWMutex
	runID   string
	names   []string
	metrics map[string]Scalar
}

// NewSuite creates an empty suite with a fresh run ID.
func NewSuite() *Suite {
	return &Suite{
		runID:   uuid.NewString(),
		metrics: make(map[string]Scalar),
	}
}

// Register adds a scalar metric under the given name. Names must be unique
// within the suite; registration order does not matter because snapshot keys
// are reported sorted.
func (s *Suite) Register(name string, metric Scalar) error {
	if name == "" {
		return ErrEmptyMetricName
	}
	if metric == nil {
		return fmt.Errorf("%w: nil metric %q", ErrInvalidConfig, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.metrics[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateMetric, name)
	}
	s.metrics[name] = metric
	s.names = append(s.names, name)
	sort.Strings(s.names)
	return nil
}

// RunID reports the current evaluation-run identifier.
func (s *Suite) RunID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runID
}

// Keys reports the registered metric names in sorted order. The returned
// slice is a copy; exporters use it to build a stable instrument set.
func (s *Suite) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// MetricsSnapshot computes every registered metric and returns the defined
// values. Metrics that have seen no data (or are undefined for the observed
// counts) are omitted.
func (s *Suite) MetricsSnapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		RunID:  s.runID,
		Values: make(map[string]float64, len(s.names)),
	}
	for _, name := range s.names {
		if v, ok := s.metrics[name].Compute(); ok {
			snap.Values[name] = v
		}
	}
	return snap
}

// ResetAll resets every registered metric and starts a new run ID.
func (s *Suite) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range s.names {
		s.metrics[name].Reset()
	}
	s.runID = uuid.NewString()
}
