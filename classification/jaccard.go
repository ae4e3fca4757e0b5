package classification

// BinaryJaccardIndex is the intersection-over-union of predicted and actual
// positives, TP/(TP+FP+FN).
type BinaryJaccardIndex struct {
	scores *BinaryStatScores
}

// NewBinaryJaccardIndex creates the metric with the given decision threshold
// in [0, 1].
func NewBinaryJaccardIndex(threshold float64) (*BinaryJaccardIndex, error) {
	scores, err := NewBinaryStatScores(threshold)
	if err != nil {
		return nil, err
	}
	return &BinaryJaccardIndex{scores: scores}, nil
}

// Update incorporates one batch of probabilities and 0/1 targets.
func (m *BinaryJaccardIndex) Update(predictions []float64, targets []int) error {
	return m.scores.Update(predictions, targets)
}

// Reset clears accumulated counts.
func (m *BinaryJaccardIndex) Reset() {
	m.scores.Reset()
}

// Compute reports the Jaccard index. ok is false until a batch has been
// observed, and also when TP+FP+FN == 0 (the union is empty).
func (m *BinaryJaccardIndex) Compute() (float64, bool) {
	if m.scores.Total == 0 {
		return 0, false
	}
	denom := m.scores.TruePositive + m.scores.FalsePositive + m.scores.FalseNegative
	if denom == 0 {
		return 0, false
	}
	return float64(m.scores.TruePositive) / float64(denom), true
}

// MulticlassJaccardIndex combines per-class TP/(TP+FP+FN) under an averaging
// policy.
type MulticlassJaccardIndex struct {
	scores  *MulticlassStatScores
	average Average
}

// NewMulticlassJaccardIndex creates the metric for numClasses >= 2 classes
// under the given averaging policy.
func NewMulticlassJaccardIndex(numClasses int, average Average) (*MulticlassJaccardIndex, error) {
	if err := checkAverage(average); err != nil {
		return nil, err
	}
	scores, err := NewMulticlassStatScores(numClasses)
	if err != nil {
		return nil, err
	}
	return &MulticlassJaccardIndex{scores: scores, average: average}, nil
}

// Update incorporates one batch of score rows and class targets.
func (m *MulticlassJaccardIndex) Update(predictions [][]float64, targets []int) error {
	return m.scores.Update(predictions, targets)
}

// Reset clears accumulated counts.
func (m *MulticlassJaccardIndex) Reset() {
	m.scores.Reset()
}

// Compute reports the averaged Jaccard index. ok is false until a batch has
// been observed or when no class has a defined value.
func (m *MulticlassJaccardIndex) Compute() (float64, bool) {
	if m.scores.Total == 0 {
		return 0, false
	}
	denoms := make([]uint64, m.scores.NumClasses())
	for i := range denoms {
		denoms[i] = m.scores.TruePositive[i] + m.scores.FalsePositive[i] + m.scores.FalseNegative[i]
	}
	return reduceCounts(m.average, m.scores.TruePositive, denoms,
		addCounts(m.scores.TruePositive, m.scores.FalseNegative))
}
