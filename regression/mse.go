package regression

import "github.com/MrEthical07/goMetrics/internal/verify"

// MeanSquaredError accumulates the mean of squared prediction errors.
type MeanSquaredError struct {
	sumSquaredError float64
	total           uint64
}

// NewMeanSquaredError creates an empty accumulator.
func NewMeanSquaredError() *MeanSquaredError {
	return &MeanSquaredError{}
}

// Update folds one batch of predictions and targets into the running sums.
func (m *MeanSquaredError) Update(predictions, targets []float64) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i, p := range predictions {
		err := p - targets[i]
		m.sumSquaredError += err * err
	}
	m.total += uint64(len(predictions))
	return nil
}

// Reset clears accumulated state.
func (m *MeanSquaredError) Reset() {
	m.sumSquaredError = 0
	m.total = 0
}

// Merge adds the accumulated sums of other into m.
func (m *MeanSquaredError) Merge(other *MeanSquaredError) {
	if other == nil {
		return
	}
	m.sumSquaredError += other.sumSquaredError
	m.total += other.total
}

// Compute reports the mean squared error. ok is false until a batch has been
// observed.
func (m *MeanSquaredError) Compute() (float64, bool) {
	if m.total == 0 {
		return 0, false
	}
	return m.sumSquaredError / float64(m.total), true
}
