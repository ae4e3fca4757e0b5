package regression

import (
	"errors"
	"math"
	"testing"

	goMetrics "github.com/MrEthical07/goMetrics"
)

func closeEnough(got, want float64) bool {
	return math.Abs(got-want) < 1e-12
}

func TestMeanSquaredError(t *testing.T) {
	m := NewMeanSquaredError()

	if _, ok := m.Compute(); ok {
		t.Fatalf("expected not ok before first batch")
	}

	if err := m.Update([]float64{3.0, 5.0, 2.5, 7.0}, []float64{2.5, 5.0, 4.0, 8.0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if got != 0.875 {
		t.Fatalf("mse: got %v, want 0.875", got)
	}

	m.Reset()
	if _, ok := m.Compute(); ok {
		t.Fatalf("expected not ok after Reset")
	}
}

func TestMeanSquaredErrorAccumulatesAcrossBatches(t *testing.T) {
	whole := NewMeanSquaredError()
	batched := NewMeanSquaredError()

	preds := []float64{3.0, 5.0, 2.5, 7.0}
	targets := []float64{2.5, 5.0, 4.0, 8.0}
	if err := whole.Update(preds, targets); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := batched.Update(preds[:2], targets[:2]); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := batched.Update(preds[2:], targets[2:]); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	a, _ := whole.Compute()
	b, _ := batched.Compute()
	if !closeEnough(a, b) {
		t.Fatalf("one batch %v != two batches %v", a, b)
	}
}

func TestMeanSquaredErrorLengthMismatch(t *testing.T) {
	m := NewMeanSquaredError()
	if err := m.Update([]float64{1, 2}, []float64{1}); !errors.Is(err, goMetrics.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if _, ok := m.Compute(); ok {
		t.Fatalf("failed update must not accumulate")
	}
}

func TestMeanAbsoluteError(t *testing.T) {
	m := NewMeanAbsoluteError()
	if err := m.Update([]float64{3.0, 5.0, 2.5, 7.0}, []float64{2.5, 5.0, 4.0, 8.0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if got != 0.75 {
		t.Fatalf("mae: got %v, want 0.75", got)
	}
}

func TestMeanAbsolutePercentageError(t *testing.T) {
	m := NewMeanAbsolutePercentageError()
	if err := m.Update([]float64{0.9, 15.0, 1200000.0}, []float64{1.0, 10.0, 1000000.0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if !closeEnough(got, 0.26666666666666666) {
		t.Fatalf("mape: got %v, want 0.26666666666666666", got)
	}
}

func TestMeanAbsolutePercentageErrorSkipsZeroTargets(t *testing.T) {
	m := NewMeanAbsolutePercentageError()
	if err := m.Update([]float64{5.0, 2.0}, []float64{0.0, 1.0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	// only the second sample counts: |2-1|/1
	got, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if got != 1.0 {
		t.Fatalf("mape with zero target skipped: got %v, want 1.0", got)
	}

	m.Reset()
	if err := m.Update([]float64{5.0}, []float64{0.0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, ok := m.Compute(); ok {
		t.Fatalf("all-zero targets must leave mape undefined")
	}
}

func TestNormalizedRootMeanSquaredError(t *testing.T) {
	preds := []float64{3.0, 5.0, 2.5, 7.0}
	targets := []float64{2.5, 5.0, 4.0, 8.0}

	cases := []struct {
		name          string
		normalization Normalization
		want          float64
	}{
		{"mean", NormalizationMean, 0.19187986598840726},
		{"range", NormalizationRange, 0.17007533576245187},
	}
	for _, tc := range cases {
		m, err := NewNormalizedRootMeanSquaredError(tc.normalization)
		if err != nil {
			t.Fatalf("%s: NewNormalizedRootMeanSquaredError failed: %v", tc.name, err)
		}
		if err := m.Update(preds, targets); err != nil {
			t.Fatalf("%s: Update failed: %v", tc.name, err)
		}
		got, ok := m.Compute()
		if !ok {
			t.Fatalf("%s: expected defined value", tc.name)
		}
		if !closeEnough(got, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNormalizedRootMeanSquaredErrorStdAndL2(t *testing.T) {
	preds := []float64{3.0, 5.0, 2.5, 7.0}
	targets := []float64{2.5, 5.0, 4.0, 8.0}

	// population std of targets
	mean := (2.5 + 5.0 + 4.0 + 8.0) / 4
	variance := 0.0
	for _, v := range targets {
		variance += (v - mean) * (v - mean)
	}
	variance /= 4
	rmse := math.Sqrt(0.875)

	m, err := NewNormalizedRootMeanSquaredError(NormalizationStd)
	if err != nil {
		t.Fatalf("NewNormalizedRootMeanSquaredError failed: %v", err)
	}
	if err := m.Update(preds, targets); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if !closeEnough(got, rmse/math.Sqrt(variance)) {
		t.Fatalf("std: got %v, want %v", got, rmse/math.Sqrt(variance))
	}

	l2 := math.Sqrt(2.5*2.5 + 5.0*5.0 + 4.0*4.0 + 8.0*8.0)
	m, err = NewNormalizedRootMeanSquaredError(NormalizationL2)
	if err != nil {
		t.Fatalf("NewNormalizedRootMeanSquaredError failed: %v", err)
	}
	if err := m.Update(preds, targets); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, ok = m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if !closeEnough(got, rmse/l2) {
		t.Fatalf("l2: got %v, want %v", got, rmse/l2)
	}
}

func TestNormalizedRootMeanSquaredErrorUndefinedDenominator(t *testing.T) {
	// constant targets: range and std are both zero
	for _, norm := range []Normalization{NormalizationRange, NormalizationStd} {
		m, err := NewNormalizedRootMeanSquaredError(norm)
		if err != nil {
			t.Fatalf("NewNormalizedRootMeanSquaredError(%d) failed: %v", norm, err)
		}
		if err := m.Update([]float64{1.0, 2.0}, []float64{3.0, 3.0}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if _, ok := m.Compute(); ok {
			t.Fatalf("normalization %d: constant targets must leave nrmse undefined", norm)
		}
	}
}

func TestNormalizedRootMeanSquaredErrorRejectsUnknownNormalization(t *testing.T) {
	if _, err := NewNormalizedRootMeanSquaredError(Normalization(42)); !errors.Is(err, goMetrics.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNormalizedRootMeanSquaredErrorMergeMatchesSequential(t *testing.T) {
	preds := []float64{3.0, 5.0, 2.5, 7.0, 4.5, 6.0}
	targets := []float64{2.5, 5.0, 4.0, 8.0, 4.0, 5.5}

	for _, norm := range []Normalization{NormalizationMean, NormalizationRange, NormalizationStd, NormalizationL2} {
		whole, err := NewNormalizedRootMeanSquaredError(norm)
		if err != nil {
			t.Fatalf("NewNormalizedRootMeanSquaredError(%d) failed: %v", norm, err)
		}
		a, _ := NewNormalizedRootMeanSquaredError(norm)
		b, _ := NewNormalizedRootMeanSquaredError(norm)

		if err := whole.Update(preds, targets); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if err := a.Update(preds[:2], targets[:2]); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if err := b.Update(preds[2:], targets[2:]); err != nil {
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
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("normalization %d: merged %v != sequential %v", norm, got, want)
		}
	}
}

func TestNormalizedRootMeanSquaredErrorMergeRejectsSchemeMismatch(t *testing.T) {
	a, _ := NewNormalizedRootMeanSquaredError(NormalizationMean)
	b, _ := NewNormalizedRootMeanSquaredError(NormalizationRange)
	if err := b.Update([]float64{1}, []float64{2}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := a.Merge(b); !errors.Is(err, goMetrics.ErrIncompatibleInput) {
		t.Fatalf("expected ErrIncompatibleInput, got %v", err)
	}
}

func TestR2Score(t *testing.T) {
	m := NewR2Score()

	if _, ok := m.Compute(); ok {
		t.Fatalf("expected not ok before first batch")
	}

	if err := m.Update([]float64{2.5, 0.0, 2.0, 8.0}, []float64{3.0, -0.5, 2.0, 7.0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if !closeEnough(got, 0.9486081370449679) {
		t.Fatalf("r2: got %v, want 0.9486081370449679", got)
	}
}

func TestR2ScorePerfectFit(t *testing.T) {
	m := NewR2Score()
	if err := m.Update([]float64{1.0, 2.0, 3.0}, []float64{1.0, 2.0, 3.0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, ok := m.Compute()
	if !ok {
		t.Fatalf("expected defined value")
	}
	if got != 1.0 {
		t.Fatalf("perfect fit: got %v, want 1.0", got)
	}
}

func TestR2ScoreUndefinedOnConstantTargets(t *testing.T) {
	m := NewR2Score()
	if err := m.Update([]float64{1.0, 2.0}, []float64{5.0, 5.0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, ok := m.Compute(); ok {
		t.Fatalf("constant targets must leave r2 undefined")
	}
}

func TestR2ScoreMergeMatchesSequential(t *testing.T) {
	preds := []float64{2.5, 0.0, 2.0, 8.0}
	targets := []float64{3.0, -0.5, 2.0, 7.0}

	whole := NewR2Score()
	a := NewR2Score()
	b := NewR2Score()
	if err := whole.Update(preds, targets); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := a.Update(preds[:2], targets[:2]); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := b.Update(preds[2:], targets[2:]); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	a.Merge(b)

	want, _ := whole.Compute()
	got, ok := a.Compute()
	if !ok {
		t.Fatalf("expected defined merged value")
	}
	if !closeEnough(got, want) {
		t.Fatalf("merged %v != sequential %v", got, want)
	}
}
