package classification

// BinaryPrecision is TP/(TP+FP) over thresholded probabilities: of the
// samples predicted positive, the fraction that actually were.
type BinaryPrecision struct {
	scores *BinaryStatScores
}

// NewBinaryPrecision creates the metric with the given decision threshold in
// [0, 1].
func NewBinaryPrecision(threshold float64) (*BinaryPrecision, error) {
	scores, err := NewBinaryStatScores(threshold)
	if err != nil {
		return nil, err
	}
	return &BinaryPrecision{scores: scores}, nil
}

// Update incorporates one batch of probabilities and 0/1 targets.
func (m *BinaryPrecision) Update(predictions []float64, targets []int) error {
	return m.scores.Update(predictions, targets)
}

// Reset clears accumulated counts.
func (m *BinaryPrecision) Reset() {
	m.scores.Reset()
}

// Compute reports precision. ok is false until a batch has been observed, and
// also when nothing was predicted positive (TP+FP == 0), where precision is
// undefined rather than zero.
func (m *BinaryPrecision) Compute() (float64, bool) {
	if m.scores.Total == 0 {
		return 0, false
	}
	denom := m.scores.TruePositive + m.scores.FalsePositive
	if denom == 0 {
		return 0, false
	}
	return float64(m.scores.TruePositive) / float64(denom), true
}

// BinaryRecall is TP/(TP+FN) over thresholded probabilities: of the samples
// that actually were positive, the fraction predicted so.
type BinaryRecall struct {
	scores *BinaryStatScores
}

// NewBinaryRecall creates the metric with the given decision threshold in
// [0, 1].
func NewBinaryRecall(threshold float64) (*BinaryRecall, error) {
	scores, err := NewBinaryStatScores(threshold)
	if err != nil {
		return nil, err
	}
	return &BinaryRecall{scores: scores}, nil
}

// Update incorporates one batch of probabilities and 0/1 targets.
func (m *BinaryRecall) Update(predictions []float64, targets []int) error {
	return m.scores.Update(predictions, targets)
}

// Reset clears accumulated counts.
func (m *BinaryRecall) Reset() {
	m.scores.Reset()
}

// Compute reports recall. ok is false until a batch has been observed, and
// also when no positives exist in the targets (TP+FN == 0).
func (m *BinaryRecall) Compute() (float64, bool) {
	if m.scores.Total == 0 {
		return 0, false
	}
	denom := m.scores.TruePositive + m.scores.FalseNegative
	if denom == 0 {
		return 0, false
	}
	return float64(m.scores.TruePositive) / float64(denom), true
}

// MulticlassPrecision combines per-class TP[k]/(TP[k]+FP[k]) under an
// averaging policy.
type MulticlassPrecision struct {
	scores  *MulticlassStatScores
	average Average
}

// NewMulticlassPrecision creates the metric for numClasses >= 2 classes under
// the given averaging policy.
func NewMulticlassPrecision(numClasses int, average Average) (*MulticlassPrecision, error) {
	if err := checkAverage(average); err != nil {
		return nil, err
	}
	scores, err := NewMulticlassStatScores(numClasses)
	if err != nil {
		return nil, err
	}
	return &MulticlassPrecision{scores: scores, average: average}, nil
}

// Update incorporates one batch of score rows and class targets.
func (m *MulticlassPrecision) Update(predictions [][]float64, targets []int) error {
	return m.scores.Update(predictions, targets)
}

// Reset clears accumulated counts.
func (m *MulticlassPrecision) Reset() {
	m.scores.Reset()
}

// Compute reports the averaged precision. ok is false until a batch has been
// observed or when no class has a defined value.
func (m *MulticlassPrecision) Compute() (float64, bool) {
	if m.scores.Total == 0 {
		return 0, false
	}
	return reduceCounts(m.average,
		m.scores.TruePositive,
		addCounts(m.scores.TruePositive, m.scores.FalsePositive),
		addCounts(m.scores.TruePositive, m.scores.FalseNegative))
}

// MulticlassRecall combines per-class TP[k]/(TP[k]+FN[k]) under an averaging
// policy.
type MulticlassRecall struct {
	scores  *MulticlassStatScores
	average Average
}

// NewMulticlassRecall creates the metric for numClasses >= 2 classes under
// the given averaging policy.
func NewMulticlassRecall(numClasses int, average Average) (*MulticlassRecall, error) {
	if err := checkAverage(average); err != nil {
		return nil, err
	}
	scores, err := NewMulticlassStatScores(numClasses)
	if err != nil {
		return nil, err
	}
	return &MulticlassRecall{scores: scores, average: average}, nil
}

// Update incorporates one batch of score rows and class targets.
func (m *MulticlassRecall) Update(predictions [][]float64, targets []int) error {
	return m.scores.Update(predictions, targets)
}

// Reset clears accumulated counts.
func (m *MulticlassRecall) Reset() {
	m.scores.Reset()
}

// Compute reports the averaged recall. ok is false until a batch has been
// observed or when no class has a defined value.
func (m *MulticlassRecall) Compute() (float64, bool) {
	if m.scores.Total == 0 {
		return 0, false
	}
	support := addCounts(m.scores.TruePositive, m.scores.FalseNegative)
	return reduceCounts(m.average, m.scores.TruePositive, support, support)
}
