package regression

import (
	"math"

	"github.com/MrEthical07/goMetrics/internal/verify"
)

// MeanAbsoluteError accumulates the mean of absolute prediction errors.
type MeanAbsoluteError struct {
	sumAbsError float64
	total       uint64
}

// NewMeanAbsoluteError creates an empty accumulator.
func NewMeanAbsoluteError() *MeanAbsoluteError {
	return &MeanAbsoluteError{}
}

// Update folds one batch of predictions and targets into the running sums.
func (m *MeanAbsoluteError) Update(predictions, targets []float64) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i, p := range predictions {
		m.sumAbsError += math.Abs(p - targets[i])
	}
	m.total += uint64(len(predictions))
	return nil
}

// Reset clears accumulated state.
func (m *MeanAbsoluteError) Reset() {
	m.sumAbsError = 0
	m.total = 0
}

// Merge adds the accumulated sums of other into m.
func (m *MeanAbsoluteError) Merge(other *MeanAbsoluteError) {
	if other == nil {
		return
	}
	m.sumAbsError += other.sumAbsError
	m.total += other.total
}

// Compute reports the mean absolute error. ok is false until a batch has been
// observed.
func (m *MeanAbsoluteError) Compute() (float64, bool) {
	if m.total == 0 {
		return 0, false
	}
	return m.sumAbsError / float64(m.total), true
}
