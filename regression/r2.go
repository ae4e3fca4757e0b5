package regression

import "github.com/MrEthical07/goMetrics/internal/verify"

// R2Score accumulates the coefficient of determination,
// 1 - SS_res/SS_tot: the fraction of target variance the predictions
// explain. 1 is a perfect fit; 0 is no better than predicting the target
// mean; negative values are worse than that.
type R2Score struct {
	sumSquaredError float64
	sumTargets      float64
	sumTargetsSq    float64
	total           uint64
}

// NewR2Score creates an empty accumulator.
func NewR2Score() *R2Score {
	return &R2Score{}
}

// Update folds one batch of predictions and targets into the running sums.
func (m *R2Score) Update(predictions, targets []float64) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i, p := range predictions {
		target := targets[i]
		m.sumTargets += target
		m.sumTargetsSq += target * target
		err := p - target
		m.sumSquaredError += err * err
	}
	m.total += uint64(len(predictions))
	return nil
}

// Reset clears accumulated state.
func (m *R2Score) Reset() {
	*m = R2Score{}
}

// Merge adds the accumulated sums of other into m.
func (m *R2Score) Merge(other *R2Score) {
	if other == nil {
		return
	}
	m.sumSquaredError += other.sumSquaredError
	m.sumTargets += other.sumTargets
	m.sumTargetsSq += other.sumTargetsSq
	m.total += other.total
}

// Compute reports the R2 score. ok is false until a batch has been observed,
// and also when the targets carry no variance (SS_tot == 0), where the score
// is undefined.
func (m *R2Score) Compute() (float64, bool) {
	if m.total == 0 {
		return 0, false
	}
	targetMean := m.sumTargets / float64(m.total)
	sumSquares := m.sumTargetsSq - float64(m.total)*targetMean*targetMean
	if sumSquares == 0 {
		return 0, false
	}
	return 1 - m.sumSquaredError/sumSquares, true
}
