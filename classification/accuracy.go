package classification

// BinaryAccuracy is the fraction of samples classified correctly,
// (TP+TN)/Total, over probabilities thresholded at a fixed cut-off.
type BinaryAccuracy struct {
	scores *BinaryStatScores
}

// NewBinaryAccuracy creates the metric with the given decision threshold in
// [0, 1].
func NewBinaryAccuracy(threshold float64) (*BinaryAccuracy, error) {
	scores, err := NewBinaryStatScores(threshold)
	if err != nil {
		return nil, err
	}
	return &BinaryAccuracy{scores: scores}, nil
}

// Update incorporates one batch of probabilities and 0/1 targets.
func (m *BinaryAccuracy) Update(predictions []float64, targets []int) error {
	return m.scores.Update(predictions, targets)
}

// Reset clears accumulated counts.
func (m *BinaryAccuracy) Reset() {
	m.scores.Reset()
}

// Compute reports accuracy. ok is false until a batch has been observed.
func (m *BinaryAccuracy) Compute() (float64, bool) {
	if m.scores.Total == 0 {
		return 0, false
	}
	return float64(m.scores.TruePositive+m.scores.TrueNegative) / float64(m.scores.Total), true
}

// MulticlassAccuracy is argmax accuracy over per-class score rows.
//
// The per-class numerator is TP[k] and the denominator TP[k]+FN[k], so
// [AverageMicro] yields the plain correct/total ratio and [AverageMacro] the
// mean of per-class recalls, the standard definitions.
type MulticlassAccuracy struct {
	scores  *MulticlassStatScores
	average Average
}

// NewMulticlassAccuracy creates the metric for numClasses >= 2 classes under
// the given averaging policy.
func NewMulticlassAccuracy(numClasses int, average Average) (*MulticlassAccuracy, error) {
	if err := checkAverage(average); err != nil {
		return nil, err
	}
	scores, err := NewMulticlassStatScores(numClasses)
	if err != nil {
		return nil, err
	}
	return &MulticlassAccuracy{scores: scores, average: average}, nil
}

// Update incorporates one batch of score rows and class targets.
func (m *MulticlassAccuracy) Update(predictions [][]float64, targets []int) error {
	return m.scores.Update(predictions, targets)
}

// Reset clears accumulated counts.
func (m *MulticlassAccuracy) Reset() {
	m.scores.Reset()
}

// Compute reports the averaged accuracy. ok is false until a batch has been
// observed or when no class has a defined value.
func (m *MulticlassAccuracy) Compute() (float64, bool) {
	if m.scores.Total == 0 {
		return 0, false
	}
	support := addCounts(m.scores.TruePositive, m.scores.FalseNegative)
	return reduceCounts(m.average, m.scores.TruePositive, support, support)
}
