package text

import (
	"errors"
	"testing"

	goMetrics "github.com/MrEthical07/goMetrics"
)

func TestCosineSimilarity(t *testing.T) {
	got, err := CosineSimilarity([]float64{1, 0}, []float64{1, 0})
	if err != nil {
		t.Fatalf("CosineSimilarity failed: %v", err)
	}
	if !closeEnough(got, 1.0) {
		t.Fatalf("identical vectors: got %v, want 1.0", got)
	}

	got, err = CosineSimilarity([]float64{1, 0}, []float64{0, 1})
	if err != nil {
		t.Fatalf("CosineSimilarity failed: %v", err)
	}
	if !closeEnough(got, 0.0) {
		t.Fatalf("orthogonal vectors: got %v, want 0.0", got)
	}

	got, err = CosineSimilarity([]float64{1, 2}, []float64{-1, -2})
	if err != nil {
		t.Fatalf("CosineSimilarity failed: %v", err)
	}
	if !closeEnough(got, -1.0) {
		t.Fatalf("opposite vectors: got %v, want -1.0", got)
	}

	got, err = CosineSimilarity([]float64{0, 0}, []float64{1, 2})
	if err != nil {
		t.Fatalf("CosineSimilarity failed: %v", err)
	}
	if got != 0 {
		t.Fatalf("zero-norm vector: got %v, want 0", got)
	}

	if _, err := CosineSimilarity([]float64{1}, []float64{1, 2}); !errors.Is(err, goMetrics.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestEmbeddingSimilarity(t *testing.T) {
	m := NewEmbeddingSimilarity(goMetrics.ReductionMean)

	if _, ok := m.Compute(); ok {
		t.Fatalf("expected not ok before first batch")
	}

	preds := [][]float64{{1, 0}, {0, 1}}
	targets := [][]float64{{1, 0}, {1, 0}}
	if err := m.Update(preds, targets); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// similarities 1 and 0
	got, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if !closeEnough(got, 0.5) {
		t.Fatalf("mean similarity: got %v, want 0.5", got)
	}
}

func TestEmbeddingSimilarityValidatesBeforeCommit(t *testing.T) {
	m := NewEmbeddingSimilarity(goMetrics.ReductionMean)

	// second pair has mismatched dimensions: nothing may accumulate
	err := m.Update([][]float64{{1, 0}, {1}}, [][]float64{{1, 0}, {1, 0}})
	if !errors.Is(err, goMetrics.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if _, ok := m.Compute(); ok {
		t.Fatalf("failed update must not accumulate")
	}
}

func TestEmbeddingSimilarityMinReduction(t *testing.T) {
	m := NewEmbeddingSimilarity(goMetrics.ReductionMin)
	preds := [][]float64{{1, 0}, {1, 1}}
	targets := [][]float64{{1, 0}, {-1, -1}}
	if err := m.Update(preds, targets); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if !closeEnough(got, -1.0) {
		t.Fatalf("min similarity: got %v, want -1.0", got)
	}
}
