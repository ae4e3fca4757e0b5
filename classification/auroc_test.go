package classification

import (
	"errors"
	"testing"

	goMetrics "github.com/MrEthical07/goMetrics"
)

func TestBinaryAUROCExact(t *testing.T) {
	m, err := NewBinaryAUROC(0)
	if err != nil {
		t.Fatalf("NewBinaryAUROC failed: %v", err)
	}
	if !m.Exact() {
		t.Fatalf("bins 0 must select exact mode")
	}

	preds := []float64{0.9, 0.8, 0.7, 0.4, 0.2}
	targets := []int{1, 1, 0, 0, 1}
	if err := m.Update(preds, targets); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if !closeEnough(got, 2.0/3.0) {
		t.Fatalf("exact auroc: got %v, want %v", got, 2.0/3.0)
	}
}

func TestBinaryAUROCBinnedMatchesExactOnDistinctBuckets(t *testing.T) {
	exact, err := NewBinaryAUROC(0)
	if err != nil {
		t.Fatalf("NewBinaryAUROC failed: %v", err)
	}
	binned, err := NewBinaryAUROC(100)
	if err != nil {
		t.Fatalf("NewBinaryAUROC failed: %v", err)
	}
	if binned.Exact() || binned.Bins() != 100 {
		t.Fatalf("bins 100 must select binned mode, got exact=%v bins=%d",
			binned.Exact(), binned.Bins())
	}

	// all scores land in distinct buckets, so quantization loses nothing
	preds := []float64{0.9, 0.8, 0.7, 0.4, 0.2}
	targets := []int{1, 1, 0, 0, 1}
	if err := exact.Update(preds, targets); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := binned.Update(preds, targets); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	a, ok := exact.Compute()
	if !ok {
		t.Fatalf("expected defined exact value")
	}
	b, ok := binned.Compute()
	if !ok {
		t.Fatalf("expected defined binned value")
	}
	if !closeEnough(a, b) {
		t.Fatalf("exact %v != binned %v", a, b)
	}
}

func TestBinaryAUROCTiedScores(t *testing.T) {
	m, err := NewBinaryAUROC(0)
	if err != nil {
		t.Fatalf("NewBinaryAUROC failed: %v", err)
	}
	if err := m.Update([]float64{0.5, 0.5}, []int{1, 0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// a fully tied pair is indistinguishable from a coin flip
	got, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if !closeEnough(got, 0.5) {
		t.Fatalf("tied auroc: got %v, want 0.5", got)
	}
}

func TestBinaryAUROCPerfectAndInverted(t *testing.T) {
	m, err := NewBinaryAUROC(0)
	if err != nil {
		t.Fatalf("NewBinaryAUROC failed: %v", err)
	}
	if err := m.Update([]float64{0.9, 0.8, 0.2, 0.1}, []int{1, 1, 0, 0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if !closeEnough(got, 1.0) {
		t.Fatalf("perfect ranking: got %v, want 1.0", got)
	}

	m.Reset()
	if err := m.Update([]float64{0.9, 0.8, 0.2, 0.1}, []int{0, 0, 1, 1}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, ok = m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if !closeEnough(got, 0.0) {
		t.Fatalf("inverted ranking: got %v, want 0.0", got)
	}
}

func TestBinaryAUROCSingleClassUndefined(t *testing.T) {
	for _, bins := range []int{0, 10} {
		m, err := NewBinaryAUROC(bins)
		if err != nil {
			t.Fatalf("NewBinaryAUROC(%d) failed: %v", bins, err)
		}
		if err := m.Update([]float64{0.2, 0.7, 0.9}, []int{1, 1, 1}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if _, ok := m.Compute(); ok {
			t.Fatalf("bins=%d: auroc must be undefined with only one class present", bins)
		}
	}
}

func TestBinaryAUROCRejectsSingleBin(t *testing.T) {
	if _, err := NewBinaryAUROC(1); !errors.Is(err, goMetrics.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for bins 1, got %v", err)
	}
	if _, err := NewBinaryAUROC(-3); !errors.Is(err, goMetrics.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative bins, got %v", err)
	}
}

func TestBinaryAUROCValidation(t *testing.T) {
	m, err := NewBinaryAUROC(0)
	if err != nil {
		t.Fatalf("NewBinaryAUROC failed: %v", err)
	}
	if err := m.Update([]float64{1.1}, []int{1}); !errors.Is(err, goMetrics.ErrIncompatibleInput) {
		t.Fatalf("expected ErrIncompatibleInput for score, got %v", err)
	}
	if err := m.Update([]float64{0.5}, []int{2}); !errors.Is(err, goMetrics.ErrIncompatibleInput) {
		t.Fatalf("expected ErrIncompatibleInput for label, got %v", err)
	}
	if err := m.Update([]float64{0.5, 0.6}, []int{1}); !errors.Is(err, goMetrics.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if _, ok := m.Compute(); ok {
		t.Fatalf("failed updates must not accumulate samples")
	}
}

func TestBinaryAUROCMergeMatchesSequential(t *testing.T) {
	preds := []float64{0.9, 0.8, 0.7, 0.4, 0.2, 0.35, 0.66}
	targets := []int{1, 1, 0, 0, 1, 0, 1}

	for _, bins := range []int{0, 50} {
		whole, err := NewBinaryAUROC(bins)
		if err != nil {
			t.Fatalf("NewBinaryAUROC(%d) failed: %v", bins, err)
		}
		a, _ := NewBinaryAUROC(bins)
		b, _ := NewBinaryAUROC(bins)

		if err := whole.Update(preds, targets); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if err := a.Update(preds[:4], targets[:4]); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if err := b.Update(preds[4:], targets[4:]); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if err := a.Merge(b); err != nil {
			t.Fatalf("Merge failed: %v", err)
		}

		want, ok := whole.Compute()
		if !ok {
			t.Fatalf("expected defined sequential value")
		}
		got, ok := a.Compute()
		if !ok {
			t.Fatalf("expected defined merged value")
		}
		if !closeEnough(got, want) {
			t.Fatalf("bins=%d: merged %v != sequential %v", bins, got, want)
		}
	}
}

func TestBinaryAUROCMergeRejectsModeMismatch(t *testing.T) {
	exact, _ := NewBinaryAUROC(0)
	binned, _ := NewBinaryAUROC(10)
	if err := exact.Merge(binned); !errors.Is(err, goMetrics.ErrIncompatibleInput) {
		t.Fatalf("expected ErrIncompatibleInput, got %v", err)
	}
}

func TestBinaryAUROCComputeIsPureRead(t *testing.T) {
	m, err := NewBinaryAUROC(0)
	if err != nil {
		t.Fatalf("NewBinaryAUROC failed: %v", err)
	}
	if err := m.Update([]float64{0.9, 0.8, 0.7, 0.4, 0.2}, []int{1, 1, 0, 0, 1}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	first, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	second, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value on re-read")
	}
	if first != second {
		t.Fatalf("Compute changed state: %v then %v", first, second)
	}
}

func TestBinaryAUROCReset(t *testing.T) {
	for _, bins := range []int{0, 10} {
		m, err := NewBinaryAUROC(bins)
		if err != nil {
			t.Fatalf("NewBinaryAUROC(%d) failed: %v", bins, err)
		}
		if err := m.Update([]float64{0.9, 0.1}, []int{1, 0}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		m.Reset()
		if _, ok := m.Compute(); ok {
			t.Fatalf("bins=%d: expected not ok after Reset", bins)
		}
		if m.Bins() != bins {
			t.Fatalf("bins=%d: Reset must keep the mode, got %d", bins, m.Bins())
		}
	}
}
