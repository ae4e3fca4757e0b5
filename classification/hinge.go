package classification

import (
	"fmt"

	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/MrEthical07/goMetrics/internal/verify"
)

// BinaryHingeLoss is the mean hinge loss max(0, 1 - p*t) over margin
// predictions in [-1, 1] and targets encoded as -1 or +1. With squared
// enabled each per-sample loss is squared before averaging.
type BinaryHingeLoss struct {
	squared  bool
	measures float64
	total    uint64
}

// NewBinaryHingeLoss creates the metric; squared selects squared hinge loss.
func NewBinaryHingeLoss(squared bool) *BinaryHingeLoss {
	return &BinaryHingeLoss{squared: squared}
}

// Update incorporates one batch. Predictions must lie in [-1, 1] and targets
// must be exactly -1 or +1. The whole batch is validated before any state
// moves.
func (m *BinaryHingeLoss) Update(predictions []float64, targets []float64) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i, p := range predictions {
		if err := verify.Range(p, -1, 1); err != nil {
			return err
		}
		if err := verify.Range(targets[i], -1, 1); err != nil {
			return err
		}
	}

	for i, p := range predictions {
		measure := 1 - p*targets[i]
		if measure < 0 {
			measure = 0
		}
		if m.squared {
			measure *= measure
		}
		m.measures += measure
		m.total++
	}
	return nil
}

// Reset clears accumulated state. The squared flag is kept.
func (m *BinaryHingeLoss) Reset() {
	m.measures = 0
	m.total = 0
}

// Compute reports the mean hinge loss. ok is false until a batch has been
// observed.
func (m *BinaryHingeLoss) Compute() (float64, bool) {
	if m.total == 0 {
		return 0, false
	}
	return m.measures / float64(m.total), true
}

// MulticlassHingeLoss is the mean Crammer-Singer hinge loss: for each sample,
// max(0, 1 - (score[target] - max over other classes)). Scores are raw
// margins and are not range-constrained.
type MulticlassHingeLoss struct {
	numClasses int
	squared    bool
	measures   float64
	total      uint64
}

// NewMulticlassHingeLoss creates the metric for numClasses >= 2 classes;
// squared selects squared hinge loss.
func NewMulticlassHingeLoss(numClasses int, squared bool) (*MulticlassHingeLoss, error) {
	if numClasses < 2 {
		return nil, fmt.Errorf("%w: numClasses %d, need at least 2",
			goMetrics.ErrInvalidConfig, numClasses)
	}
	return &MulticlassHingeLoss{numClasses: numClasses, squared: squared}, nil
}

// Update incorporates one batch of score rows and class targets. The whole
// batch is validated before any state moves.
func (m *MulticlassHingeLoss) Update(predictions [][]float64, targets []int) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i, row := range predictions {
		if err := verify.RowWidth(len(row), m.numClasses); err != nil {
			return err
		}
		if err := verify.Label(targets[i], m.numClasses); err != nil {
			return err
		}
	}

	for i, row := range predictions {
		target := targets[i]
		rival := 0.0
		first := true
		for class, score := range row {
			if class == target {
				continue
			}
			if first || score > rival {
				rival = score
				first = false
			}
		}
		measure := 1 - (row[target] - rival)
		if measure < 0 {
			measure = 0
		}
		if m.squared {
			measure *= measure
		}
		m.measures += measure
		m.total++
	}
	return nil
}

// Reset clears accumulated state. Configuration is kept.
func (m *MulticlassHingeLoss) Reset() {
	m.measures = 0
	m.total = 0
}

// Compute reports the mean loss. ok is false until a batch has been observed.
func (m *MulticlassHingeLoss) Compute() (float64, bool) {
	if m.total == 0 {
		return 0, false
	}
	return m.measures / float64(m.total), true
}
