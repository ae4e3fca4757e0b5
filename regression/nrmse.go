package regression

import (
	"fmt"
	"math"

	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/MrEthical07/goMetrics/internal/verify"
)

// Normalization selects the denominator that scales the root mean squared
// error into the NRMSE.
type Normalization uint8

const (
	// NormalizationMean divides by the mean of the targets.
	NormalizationMean Normalization = iota
	// NormalizationRange divides by max(target) - min(target).
	NormalizationRange
	// NormalizationStd divides by the population standard deviation of the
	// targets.
	NormalizationStd
	// NormalizationL2 divides by the L2 norm of the targets.
	NormalizationL2
)

// NormalizedRootMeanSquaredError accumulates the RMSE scaled by a statistic
// of the targets, selected at construction. Also known as the scatter index.
//
// Target mean and variance are maintained with Welford's online recurrence,
// so a long stream does not lose precision to catastrophic cancellation.
type NormalizedRootMeanSquaredError struct {
	normalization Normalization

	sumSquaredError float64
	targetSquared   float64
	minTarget       float64
	maxTarget       float64
	mean            float64
	m2              float64
	total           uint64
}

// NewNormalizedRootMeanSquaredError creates an empty accumulator under the
// given normalization scheme.
func NewNormalizedRootMeanSquaredError(normalization Normalization) (*NormalizedRootMeanSquaredError, error) {
	switch normalization {
	case NormalizationMean, NormalizationRange, NormalizationStd, NormalizationL2:
		return &NormalizedRootMeanSquaredError{normalization: normalization}, nil
	default:
		return nil, fmt.Errorf("%w: unknown normalization %d",
			goMetrics.ErrInvalidConfig, normalization)
	}
}

// Normalization reports the scheme fixed at construction.
func (m *NormalizedRootMeanSquaredError) Normalization() Normalization {
	return m.normalization
}

// Update folds one batch of predictions and targets into the running sums.
func (m *NormalizedRootMeanSquaredError) Update(predictions, targets []float64) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i, p := range predictions {
		target := targets[i]
		err := p - target
		m.sumSquaredError += err * err
		m.targetSquared += target * target

		if m.total == 0 {
			m.minTarget = target
			m.maxTarget = target
		} else {
			m.minTarget = math.Min(m.minTarget, target)
			m.maxTarget = math.Max(m.maxTarget, target)
		}

		m.total++
		delta := target - m.mean
		m.mean += delta / float64(m.total)
		m.m2 += delta * (target - m.mean)
	}
	return nil
}

// Reset clears accumulated state. The normalization scheme is kept.
func (m *NormalizedRootMeanSquaredError) Reset() {
	*m = NormalizedRootMeanSquaredError{normalization: m.normalization}
}

// Merge adds the accumulated sums of other into m. Both accumulators must
// share the same normalization scheme. Mean and variance combine with Chan's
// parallel form of the Welford recurrence.
func (m *NormalizedRootMeanSquaredError) Merge(other *NormalizedRootMeanSquaredError) error {
	if other == nil || other.total == 0 {
		return nil
	}
	if other.normalization != m.normalization {
		return fmt.Errorf("%w: merge across normalizations %d and %d",
			goMetrics.ErrIncompatibleInput, m.normalization, other.normalization)
	}
	if m.total == 0 {
		sumSq := m.sumSquaredError
		*m = *other
		m.sumSquaredError += sumSq
		return nil
	}

	m.sumSquaredError += other.sumSquaredError
	m.targetSquared += other.targetSquared
	m.minTarget = math.Min(m.minTarget, other.minTarget)
	m.maxTarget = math.Max(m.maxTarget, other.maxTarget)

	total := m.total + other.total
	delta := other.mean - m.mean
	m.m2 += other.m2 + delta*delta*float64(m.total)*float64(other.total)/float64(total)
	m.mean += delta * float64(other.total) / float64(total)
	m.total = total
	return nil
}

// Compute reports the normalized RMSE. ok is false until a batch has been
// observed, and also when the selected denominator is zero (constant targets
// under Range or Std, zero-mean targets under Mean, all-zero targets under
// L2).
func (m *NormalizedRootMeanSquaredError) Compute() (float64, bool) {
	if m.total == 0 {
		return 0, false
	}
	var denom float64
	switch m.normalization {
	case NormalizationMean:
		denom = m.mean
	case NormalizationRange:
		denom = m.maxTarget - m.minTarget
	case NormalizationStd:
		denom = math.Sqrt(m.m2 / float64(m.total))
	default: // NormalizationL2
		denom = math.Sqrt(m.targetSquared)
	}
	if denom == 0 {
		return 0, false
	}
	rmse := math.Sqrt(m.sumSquaredError / float64(m.total))
	return rmse / denom, true
}
