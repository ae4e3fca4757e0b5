package classification

// ConfusionCounts is the 2x2 confusion matrix laid out as
// [[TP, FP], [FN, TN]].
type ConfusionCounts [2][2]uint64

// BinaryConfusionMatrix exposes the raw confusion-matrix counts of a
// thresholded binary classifier.
type BinaryConfusionMatrix struct {
	scores *BinaryStatScores
}

// NewBinaryConfusionMatrix creates the metric with the given decision
// threshold in [0, 1].
func NewBinaryConfusionMatrix(threshold float64) (*BinaryConfusionMatrix, error) {
	scores, err := NewBinaryStatScores(threshold)
	if err != nil {
		return nil, err
	}
	return &BinaryConfusionMatrix{scores: scores}, nil
}

// Update incorporates one batch of probabilities and 0/1 targets.
func (m *BinaryConfusionMatrix) Update(predictions []float64, targets []int) error {
	return m.scores.Update(predictions, targets)
}

// Reset clears accumulated counts.
func (m *BinaryConfusionMatrix) Reset() {
	m.scores.Reset()
}

// Compute reports the confusion matrix. ok is false until a batch has been
// observed.
func (m *BinaryConfusionMatrix) Compute() (ConfusionCounts, bool) {
	if m.scores.Total == 0 {
		return ConfusionCounts{}, false
	}
	return ConfusionCounts{
		{m.scores.TruePositive, m.scores.FalsePositive},
		{m.scores.FalseNegative, m.scores.TrueNegative},
	}, true
}
