package classification

import (
	"fmt"

	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/MrEthical07/goMetrics/internal/verify"
)

// BinaryStatScores accumulates the four confusion-matrix counts for a binary
// classifier thresholded at a fixed probability. Counters are monotonically
// non-decreasing until Reset; after every successful Update,
// Total == TruePositive+FalsePositive+FalseNegative+TrueNegative.
type BinaryStatScores struct {
	TruePositive  uint64
	FalsePositive uint64
	FalseNegative uint64
	TrueNegative  uint64
	Total         uint64

	threshold float64
}

// NewBinaryStatScores creates an accumulator that classifies a prediction as
// positive when it is strictly greater than threshold. threshold must lie in
// [0, 1].
func NewBinaryStatScores(threshold float64) (*BinaryStatScores, error) {
	if !(threshold >= 0 && threshold <= 1) {
		return nil, fmt.Errorf("%w: threshold %v outside [0, 1]",
			goMetrics.ErrInvalidConfig, threshold)
	}
	return &BinaryStatScores{threshold: threshold}, nil
}

// Threshold reports the decision threshold fixed at construction.
func (s *BinaryStatScores) Threshold() float64 {
	return s.threshold
}

// Update folds one batch into the counters. Predictions are probabilities in
// [0, 1]; targets are 0 or 1. The whole batch is validated first: on error no
// counter is touched.
func (s *BinaryStatScores) Update(predictions []float64, targets []int) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i, p := range predictions {
		if err := verify.Probability(p); err != nil {
			return err
		}
		if err := verify.BinaryLabel(targets[i]); err != nil {
			return err
		}
	}

	for i, p := range predictions {
		predicted := p > s.threshold
		actual := targets[i] == 1
		switch {
		case predicted && actual:
			s.TruePositive++
		case predicted && !actual:
			s.FalsePositive++
		case !predicted && actual:
			s.FalseNegative++
		default:
			s.TrueNegative++
		}
		s.Total++
	}
	return nil
}

// Reset zeroes all counters. The threshold is kept.
func (s *BinaryStatScores) Reset() {
	s.TruePositive = 0
	s.FalsePositive = 0
	s.FalseNegative = 0
	s.TrueNegative = 0
	s.Total = 0
}

// Merge adds the counters of other into s. Both accumulators must share the
// same threshold, otherwise the combined counts would mix incompatible
// decision rules. Merging is associative and commutative, which makes
// per-worker sharding safe.
func (s *BinaryStatScores) Merge(other *BinaryStatScores) error {
	if other == nil {
		return nil
	}
	if other.threshold != s.threshold {
		return fmt.Errorf("%w: merge across thresholds %v and %v",
			goMetrics.ErrIncompatibleInput, s.threshold, other.threshold)
	}
	s.TruePositive += other.TruePositive
	s.FalsePositive += other.FalsePositive
	s.FalseNegative += other.FalseNegative
	s.TrueNegative += other.TrueNegative
	s.Total += other.Total
	return nil
}

// MulticlassStatScores accumulates one-vs-rest confusion counts per class.
// Every sample contributes exactly one verdict to every class, so after any
// sequence of updates TotalPerClass[k] == Total for all k.
type MulticlassStatScores struct {
	TruePositive  []uint64
	FalsePositive []uint64
	FalseNegative []uint64
	TrueNegative  []uint64
	TotalPerClass []uint64
	Total         uint64

	numClasses int
}

// NewMulticlassStatScores creates an accumulator for numClasses classes.
// numClasses is fixed for the lifetime of the accumulator and must be at
// least 2.
func NewMulticlassStatScores(numClasses int) (*MulticlassStatScores, error) {
	if numClasses < 2 {
		return nil, fmt.Errorf("%w: numClasses %d, need at least 2",
			goMetrics.ErrInvalidConfig, numClasses)
	}
	s := &MulticlassStatScores{numClasses: numClasses}
	s.zero()
	return s, nil
}

// zero (re)creates the per-class counter vectors. Shared by construction and
// Reset so both produce the identical empty state.
func (s *MulticlassStatScores) zero() {
	s.TruePositive = make([]uint64, s.numClasses)
	s.FalsePositive = make([]uint64, s.numClasses)
	s.FalseNegative = make([]uint64, s.numClasses)
	s.TrueNegative = make([]uint64, s.numClasses)
	s.TotalPerClass = make([]uint64, s.numClasses)
	s.Total = 0
}

// NumClasses reports the class count fixed at construction.
func (s *MulticlassStatScores) NumClasses() int {
	return s.numClasses
}

// Update folds one batch into the counters. Each prediction row holds one
// score per class; the predicted class is the argmax, with ties resolved to
// the first maximum in iteration order. The whole batch is validated before
// any counter moves.
func (s *MulticlassStatScores) Update(predictions [][]float64, targets []int) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i, row := range predictions {
		if err := verify.RowWidth(len(row), s.numClasses); err != nil {
			return err
		}
		if err := verify.Label(targets[i], s.numClasses); err != nil {
			return err
		}
	}

	for i, row := range predictions {
		predicted := argmax(row)
		target := targets[i]
		for class := 0; class < s.numClasses; class++ {
			switch {
			case class == target && class == predicted:
				s.TruePositive[class]++
			case class == target:
				s.FalseNegative[class]++
			case class == predicted:
				s.FalsePositive[class]++
			default:
				s.TrueNegative[class]++
			}
			s.TotalPerClass[class]++
		}
		s.Total++
	}
	return nil
}

// Reset zeroes all counters. The class count is kept.
func (s *MulticlassStatScores) Reset() {
	s.zero()
}

// Merge adds the counters of other into s. Both accumulators must be
// configured for the same number of classes.
func (s *MulticlassStatScores) Merge(other *MulticlassStatScores) error {
	if other == nil {
		return nil
	}
	if other.numClasses != s.numClasses {
		return fmt.Errorf("%w: merge across %d and %d classes",
			goMetrics.ErrIncompatibleInput, s.numClasses, other.numClasses)
	}
	for class := 0; class < s.numClasses; class++ {
		s.TruePositive[class] += other.TruePositive[class]
		s.FalsePositive[class] += other.FalsePositive[class]
		s.FalseNegative[class] += other.FalseNegative[class]
		s.TrueNegative[class] += other.TrueNegative[class]
		s.TotalPerClass[class] += other.TotalPerClass[class]
	}
	s.Total += other.Total
	return nil
}

// argmax returns the index of the first maximum in row. row is non-empty by
// the time this is called (width checked against numClasses >= 2).
func argmax(row []float64) int {
	best := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[best] {
			best = i
		}
	}
	return best
}
