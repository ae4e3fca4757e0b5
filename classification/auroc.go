package classification

import (
	"fmt"
	"math"
	"sort"

	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/MrEthical07/goMetrics/internal/verify"
)

type scoredSample struct {
	score    float64
	positive bool
}

// BinaryAUROC estimates the area under the ROC curve: the probability that a
// randomly chosen positive sample scores higher than a randomly chosen
// negative one.
//
// The estimator runs in one of two modes, fixed at construction:
//
//   - Exact (bins == 0): every (score, label) pair is retained. Compute sorts
//     by descending score and sweeps once, processing all equal-score samples
//     as a single block so that ties contribute trapezoidal area instead of
//     an order-dependent bias. Memory grows with the sample count.
//   - Binned (bins >= 2): scores are quantized to round(score*(bins-1)) and
//     counted in two fixed histograms, one per label. Compute sweeps buckets
//     from the highest score down with the same trapezoidal rule. Memory is
//     O(bins); ties within a bucket are always merged. As bins grows the
//     estimate converges to the exact value.
type BinaryAUROC struct {
	bins int // 0 means exact mode

	samples []scoredSample // exact mode only
	posHist []uint64       // binned mode only
	negHist []uint64
}

// NewBinaryAUROC creates the estimator. bins == 0 selects exact mode;
// bins >= 2 selects binned mode with that many histogram buckets. bins == 1
// (and negative counts) are rejected: a single bucket cannot order any pair
// of scores.
func NewBinaryAUROC(bins int) (*BinaryAUROC, error) {
	switch {
	case bins == 0:
		return &BinaryAUROC{}, nil
	case bins >= 2:
		return &BinaryAUROC{
			bins:    bins,
			posHist: make([]uint64, bins),
			negHist: make([]uint64, bins),
		}, nil
	default:
		return nil, fmt.Errorf("%w: bins %d (want 0 for exact or >= 2 for binned)",
			goMetrics.ErrInvalidConfig, bins)
	}
}

// Exact reports whether the estimator retains individual samples.
func (m *BinaryAUROC) Exact() bool {
	return m.bins == 0
}

// Bins reports the histogram size, or 0 in exact mode.
func (m *BinaryAUROC) Bins() int {
	return m.bins
}

// Update incorporates one batch of scores in [0, 1] and 0/1 targets. The
// whole batch is validated before any state moves.
func (m *BinaryAUROC) Update(predictions []float64, targets []int) error {
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

	if m.bins == 0 {
		for i, p := range predictions {
			m.samples = append(m.samples, scoredSample{score: p, positive: targets[i] == 1})
		}
		return nil
	}

	maxBin := float64(m.bins - 1)
	for i, p := range predictions {
		bucket := int(math.Round(p * maxBin))
		if targets[i] == 1 {
			m.posHist[bucket]++
		} else {
			m.negHist[bucket]++
		}
	}
	return nil
}

// Reset returns the estimator to the state of fresh construction with the
// same mode.
func (m *BinaryAUROC) Reset() {
	if m.bins == 0 {
		m.samples = nil
		return
	}
	for i := range m.posHist {
		m.posHist[i] = 0
		m.negHist[i] = 0
	}
}

// Merge adds the accumulated samples of other into m. Both estimators must
// share the same mode and bin count. Histogram and sample merging are
// associative, so per-worker sharding with a final merge matches a single
// sequential accumulator.
func (m *BinaryAUROC) Merge(other *BinaryAUROC) error {
	if other == nil {
		return nil
	}
	if other.bins != m.bins {
		return fmt.Errorf("%w: merge across bin counts %d and %d",
			goMetrics.ErrIncompatibleInput, m.bins, other.bins)
	}
	if m.bins == 0 {
		m.samples = append(m.samples, other.samples...)
		return nil
	}
	for i := range m.posHist {
		m.posHist[i] += other.posHist[i]
		m.negHist[i] += other.negHist[i]
	}
	return nil
}

// Compute reports the AUROC estimate in [0, 1]. ok is false until at least
// one positive and one negative sample have been observed; with a single
// class present the curve is degenerate and the area undefined.
func (m *BinaryAUROC) Compute() (float64, bool) {
	if m.bins == 0 {
		return m.computeExact()
	}
	return m.computeBinned()
}

func (m *BinaryAUROC) computeExact() (float64, bool) {
	var positives, negatives uint64
	for _, s := range m.samples {
		if s.positive {
			positives++
		} else {
			negatives++
		}
	}
	if positives == 0 || negatives == 0 {
		return 0, false
	}

	// Compute must stay a pure read; sort a copy.
	sorted := make([]scoredSample, len(m.samples))
	copy(sorted, m.samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].score > sorted[j].score
	})

	var tp uint64
	area := 0.0
	for i := 0; i < len(sorted); {
		var groupPos, groupNeg uint64
		j := i
		for j < len(sorted) && sorted[j].score == sorted[i].score {
			if sorted[j].positive {
				groupPos++
			} else {
				groupNeg++
			}
			j++
		}
		// Trapezoid over the whole equal-score block.
		area += float64(groupNeg) * (float64(tp) + float64(tp+groupPos)) / 2
		tp += groupPos
		i = j
	}

	return area / (float64(positives) * float64(negatives)), true
}

func (m *BinaryAUROC) computeBinned() (float64, bool) {
	var positives, negatives uint64
	for i := range m.posHist {
		positives += m.posHist[i]
		negatives += m.negHist[i]
	}
	if positives == 0 || negatives == 0 {
		return 0, false
	}

	var tp uint64
	area := 0.0
	for b := m.bins - 1; b >= 0; b-- {
		groupPos := m.posHist[b]
		groupNeg := m.negHist[b]
		area += float64(groupNeg) * (float64(tp) + float64(tp+groupPos)) / 2
		tp += groupPos
	}

	return area / (float64(positives) * float64(negatives)), true
}
