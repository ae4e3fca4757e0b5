package text

import (
	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/MrEthical07/goMetrics/internal/verify"
)

// Levenshtein reports the minimum number of single-rune insertions,
// deletions, and substitutions that turn a into b.
func Levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	// Two-row DP keeps memory at O(len(b)).
	prev := make([]int, len(br)+1)
	cur := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		cur[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			best := prev[j] + 1
			if v := cur[j-1] + 1; v < best {
				best = v
			}
			if v := prev[j-1] + cost; v < best {
				best = v
			}
			cur[j] = best
		}
		prev, cur = cur, prev
	}
	return prev[len(br)]
}

// EditDistance accumulates per-pair Levenshtein distances under a reduction.
// Distances fold into a running aggregate, so memory stays constant
// regardless of how many pairs have been observed.
type EditDistance struct {
	agg *goMetrics.Aggregator
}

// NewEditDistance creates the metric; reduction selects how per-pair
// distances combine (typically [goMetrics.ReductionMean] or
// [goMetrics.ReductionSum]).
func NewEditDistance(reduction goMetrics.Reduction) *EditDistance {
	return &EditDistance{agg: goMetrics.NewAggregator(reduction)}
}

// Update incorporates one batch of prediction/target string pairs.
func (m *EditDistance) Update(predictions, targets []string) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i, p := range predictions {
		m.agg.Add(float64(Levenshtein(p, targets[i])))
	}
	return nil
}

// Reset clears accumulated state. The reduction is kept.
func (m *EditDistance) Reset() {
	m.agg.Reset()
}

// Compute reports the reduced edit distance. ok is false until a batch has
// been observed.
func (m *EditDistance) Compute() (float64, bool) {
	return m.agg.Compute()
}
