package text

import (
	"fmt"
	"math"

	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/MrEthical07/goMetrics/internal/verify"
)

// smoothedPrecision stands in for a zero n-gram precision when smoothing is
// enabled, keeping the geometric mean finite.
const smoothedPrecision = 1e-9

// Bleu accumulates corpus-level BLEU over prediction/reference sentence
// pairs: clipped n-gram precision counts per order plus running token
// lengths, reduced to the brevity-penalized geometric mean at Compute.
type Bleu struct {
	nGram  int
	smooth bool

	numerator   []float64
	denominator []float64
	predsLen    uint64
	targetsLen  uint64
}

// NewBleu creates the metric using n-gram orders 1 through nGram (4 is the
// conventional choice). smooth replaces zero precisions with a small epsilon
// instead of collapsing the score to zero.
func NewBleu(nGram int, smooth bool) (*Bleu, error) {
	if nGram < 1 {
		return nil, fmt.Errorf("%w: nGram %d, need at least 1", goMetrics.ErrInvalidConfig, nGram)
	}
	return &Bleu{
		nGram:       nGram,
		smooth:      smooth,
		numerator:   make([]float64, nGram),
		denominator: make([]float64, nGram),
	}, nil
}

// Update incorporates one batch of prediction/reference sentence pairs.
// Sentences are whitespace-tokenized.
func (m *Bleu) Update(predictions, targets []string) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i, prediction := range predictions {
		predTokens := Tokenize(prediction)
		targetTokens := Tokenize(targets[i])
		m.predsLen += uint64(len(predTokens))
		m.targetsLen += uint64(len(targetTokens))

		for n := 1; n <= m.nGram; n++ {
			predCounts := ngramCounts(predTokens, n)
			targetCounts := ngramCounts(targetTokens, n)

			var clipped, total uint64
			for gram, count := range predCounts {
				total += count
				if refCount, ok := targetCounts[gram]; ok {
					if count < refCount {
						clipped += count
					} else {
						clipped += refCount
					}
				}
			}
			m.numerator[n-1] += float64(clipped)
			m.denominator[n-1] += float64(total)
		}
	}
	return nil
}

// Reset clears accumulated state. Configuration is kept.
func (m *Bleu) Reset() {
	for i := range m.numerator {
		m.numerator[i] = 0
		m.denominator[i] = 0
	}
	m.predsLen = 0
	m.targetsLen = 0
}

// Compute reports the corpus BLEU score in [0, 1]. ok is false until every
// n-gram order has seen at least one candidate n-gram; without smoothing a
// zero precision at any order collapses the score to 0.
func (m *Bleu) Compute() (float64, bool) {
	for _, den := range m.denominator {
		if den == 0 {
			return 0, false
		}
	}

	precisions := make([]float64, m.nGram)
	anyPositive := false
	for i := range precisions {
		p := m.numerator[i] / m.denominator[i]
		if p == 0 && m.smooth {
			p = smoothedPrecision
		}
		if p > 0 {
			anyPositive = true
		}
		precisions[i] = p
	}
	if !anyPositive {
		return 0, true
	}

	logSum := 0.0
	for _, p := range precisions {
		logSum += math.Log(math.Max(p, 1e-16))
	}
	geoMean := math.Exp(logSum / float64(m.nGram))

	// Brevity penalty: exp(1 - r/c) for candidates shorter than the
	// reference, 1 otherwise.
	bp := 1.0
	if c, r := float64(m.predsLen), float64(m.targetsLen); c < r {
		bp = math.Exp(1 - r/c)
	}

	return bp * geoMean, true
}
