package classification

// BinaryF1Score is the harmonic mean of precision and recall, computed
// directly from counts as 2TP/(2TP+FP+FN).
type BinaryF1Score struct {
	scores *BinaryStatScores
}

// NewBinaryF1Score creates the metric with the given decision threshold in
// [0, 1].
func NewBinaryF1Score(threshold float64) (*BinaryF1Score, error) {
	scores, err := NewBinaryStatScores(threshold)
	if err != nil {
		return nil, err
	}
	return &BinaryF1Score{scores: scores}, nil
}

// Update incorporates one batch of probabilities and 0/1 targets.
func (m *BinaryF1Score) Update(predictions []float64, targets []int) error {
	return m.scores.Update(predictions, targets)
}

// Reset clears accumulated counts.
func (m *BinaryF1Score) Reset() {
	m.scores.Reset()
}

// Compute reports F1. ok is false until a batch has been observed, and also
// when 2TP+FP+FN == 0 (no positives predicted or present), where F1 is
// undefined. Computing from counts avoids the NaN that the
// precision-then-recall formulation produces when both are zero.
func (m *BinaryF1Score) Compute() (float64, bool) {
	if m.scores.Total == 0 {
		return 0, false
	}
	denom := 2*m.scores.TruePositive + m.scores.FalsePositive + m.scores.FalseNegative
	if denom == 0 {
		return 0, false
	}
	return float64(2*m.scores.TruePositive) / float64(denom), true
}

// MulticlassF1Score combines per-class 2TP/(2TP+FP+FN) under an averaging
// policy.
type MulticlassF1Score struct {
	scores  *MulticlassStatScores
	average Average
}

// NewMulticlassF1Score creates the metric for numClasses >= 2 classes under
// the given averaging policy.
func NewMulticlassF1Score(numClasses int, average Average) (*MulticlassF1Score, error) {
	if err := checkAverage(average); err != nil {
		return nil, err
	}
	scores, err := NewMulticlassStatScores(numClasses)
	if err != nil {
		return nil, err
	}
	return &MulticlassF1Score{scores: scores, average: average}, nil
}

// Update incorporates one batch of score rows and class targets.
func (m *MulticlassF1Score) Update(predictions [][]float64, targets []int) error {
	return m.scores.Update(predictions, targets)
}

// Reset clears accumulated counts.
func (m *MulticlassF1Score) Reset() {
	m.scores.Reset()
}

// Compute reports the averaged F1. ok is false until a batch has been
// observed or when no class has a defined value.
func (m *MulticlassF1Score) Compute() (float64, bool) {
	if m.scores.Total == 0 {
		return 0, false
	}
	nums := make([]uint64, m.scores.NumClasses())
	denoms := make([]uint64, m.scores.NumClasses())
	for i := range nums {
		nums[i] = 2 * m.scores.TruePositive[i]
		denoms[i] = 2*m.scores.TruePositive[i] + m.scores.FalsePositive[i] + m.scores.FalseNegative[i]
	}
	return reduceCounts(m.average, nums, denoms,
		addCounts(m.scores.TruePositive, m.scores.FalseNegative))
}
