package regression

import (
	"math"

	"github.com/MrEthical07/goMetrics/internal/verify"
)

// MeanAbsolutePercentageError accumulates the mean of |pred-target|/|target|.
// Samples whose target is exactly zero have no defined percentage error and
// are skipped; they count neither toward the sum nor the divisor.
type MeanAbsolutePercentageError struct {
	sumAbsPercentageError float64
	total                 uint64
}

// NewMeanAbsolutePercentageError creates an empty accumulator.
func NewMeanAbsolutePercentageError() *MeanAbsolutePercentageError {
	return &MeanAbsolutePercentageError{}
}

// Update folds one batch of predictions and targets into the running sums.
func (m *MeanAbsolutePercentageError) Update(predictions, targets []float64) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i, p := range predictions {
		target := targets[i]
		if target == 0 {
			continue
		}
		m.sumAbsPercentageError += math.Abs(p-target) / math.Abs(target)
		m.total++
	}
	return nil
}

// Reset clears accumulated state.
func (m *MeanAbsolutePercentageError) Reset() {
	m.sumAbsPercentageError = 0
	m.total = 0
}

// Merge adds the accumulated sums of other into m.
func (m *MeanAbsolutePercentageError) Merge(other *MeanAbsolutePercentageError) {
	if other == nil {
		return
	}
	m.sumAbsPercentageError += other.sumAbsPercentageError
	m.total += other.total
}

// Compute reports the mean absolute percentage error as a fraction (0.25
// means 25%). ok is false until at least one sample with a non-zero target
// has been observed.
func (m *MeanAbsolutePercentageError) Compute() (float64, bool) {
	if m.total == 0 {
		return 0, false
	}
	return m.sumAbsPercentageError / float64(m.total), true
}
