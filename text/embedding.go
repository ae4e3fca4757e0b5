package text

import (
	"fmt"
	"math"

	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/MrEthical07/goMetrics/internal/verify"
)

// CosineSimilarity reports the cosine of the angle between a and b. Vectors
// must have the same dimension; if either has zero norm the similarity is 0.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: vector dimensions %d and %d",
			goMetrics.ErrLengthMismatch, len(a), len(b))
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// EmbeddingSimilarity accumulates cosine similarity between paired sentence
// embeddings under a reduction. The caller supplies the vectors; this metric
// never runs a model.
type EmbeddingSimilarity struct {
	agg *goMetrics.Aggregator
}

// NewEmbeddingSimilarity creates the metric; reduction selects how per-pair
// similarities combine.
func NewEmbeddingSimilarity(reduction goMetrics.Reduction) *EmbeddingSimilarity {
	return &EmbeddingSimilarity{agg: goMetrics.NewAggregator(reduction)}
}

// Update incorporates one batch of embedding pairs. Each prediction vector
// must have the same dimension as its paired target vector. The whole batch
// is validated before any state moves.
func (m *EmbeddingSimilarity) Update(predictions, targets [][]float64) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i := range predictions {
		if len(predictions[i]) != len(targets[i]) {
			return fmt.Errorf("%w: pair %d has dimensions %d and %d",
				goMetrics.ErrLengthMismatch, i, len(predictions[i]), len(targets[i]))
		}
	}

	for i := range predictions {
		sim, err := CosineSimilarity(predictions[i], targets[i])
		if err != nil {
			return err
		}
		m.agg.Add(sim)
	}
	return nil
}

// Reset clears accumulated state. The reduction is kept.
func (m *EmbeddingSimilarity) Reset() {
	m.agg.Reset()
}

// Compute reports the reduced similarity. ok is false until a batch has been
// observed.
func (m *EmbeddingSimilarity) Compute() (float64, bool) {
	return m.agg.Compute()
}
