package text

import "github.com/MrEthical07/goMetrics/internal/verify"

// rougeKeys are the score families RougeScore reports, in output order.
var rougeKeys = [...]string{"rouge1", "rouge2", "rougeL", "rougeLsum"}

// rougeSums accumulates per-sample precision/recall/fmeasure for one family.
type rougeSums struct {
	precision float64
	recall    float64
	fmeasure  float64
}

func (s *rougeSums) add(precision, recall, fmeasure float64) {
	s.precision += precision
	s.recall += recall
	s.fmeasure += fmeasure
}

// RougeScore accumulates ROUGE-1, ROUGE-2, ROUGE-L, and ROUGE-Lsum over
// prediction/reference pairs. Per-sample scores are averaged over the number
// of pairs observed, matching the rouge-score reference aggregation.
//
// rougeL runs the longest-common-subsequence over the whole text; rougeLsum
// inserts sentence boundaries at newlines first, so a subsequence cannot
// cross sentences.
type RougeScore struct {
	sums  [len(rougeKeys)]rougeSums
	total uint64
}

// NewRougeScore creates an empty accumulator.
func NewRougeScore() *RougeScore {
	return &RougeScore{}
}

// Update incorporates one batch of prediction/reference pairs.
func (m *RougeScore) Update(predictions, targets []string) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	for i, prediction := range predictions {
		predTokens := tokenizeWords(prediction)
		targetTokens := tokenizeWords(targets[i])

		m.sums[0].add(rougeN(predTokens, targetTokens, 1))
		m.sums[1].add(rougeN(predTokens, targetTokens, 2))
		m.sums[2].add(rougeL(predTokens, targetTokens))
		m.sums[3].add(rougeL(tokenizeWithNewlines(prediction), tokenizeWithNewlines(targets[i])))
		m.total++
	}
	return nil
}

// Reset clears accumulated state.
func (m *RougeScore) Reset() {
	*m = RougeScore{}
}

// Compute reports "<family>_precision", "<family>_recall", and
// "<family>_fmeasure" for each family. ok is false until a batch has been
// observed.
func (m *RougeScore) Compute() (map[string]float64, bool) {
	if m.total == 0 {
		return nil, false
	}
	denom := float64(m.total)
	scores := make(map[string]float64, 3*len(rougeKeys))
	for i, key := range rougeKeys {
		scores[key+"_precision"] = m.sums[i].precision / denom
		scores[key+"_recall"] = m.sums[i].recall / denom
		scores[key+"_fmeasure"] = m.sums[i].fmeasure / denom
	}
	return scores, true
}

// rougeN scores n-gram overlap between candidate and reference tokens.
func rougeN(predTokens, targetTokens []string, n int) (precision, recall, fmeasure float64) {
	if len(predTokens) < n || len(targetTokens) < n {
		return 0, 0, 0
	}
	predCounts := ngramCounts(predTokens, n)
	targetCounts := ngramCounts(targetTokens, n)

	var overlap uint64
	for gram, count := range predCounts {
		if refCount, ok := targetCounts[gram]; ok {
			if count < refCount {
				overlap += count
			} else {
				overlap += refCount
			}
		}
	}
	return scoreTriple(overlap, uint64(len(predTokens)+1-n), uint64(len(targetTokens)+1-n))
}

// rougeL scores the longest common subsequence between the token streams.
func rougeL(predTokens, targetTokens []string) (precision, recall, fmeasure float64) {
	if len(predTokens) == 0 || len(targetTokens) == 0 {
		return 0, 0, 0
	}
	lcs := lcsLength(predTokens, targetTokens)
	return scoreTriple(lcs, uint64(len(predTokens)), uint64(len(targetTokens)))
}

// lcsLength is the classic two-row LCS dynamic program.
func lcsLength(a, b []string) uint64 {
	prev := make([]uint64, len(b)+1)
	cur := make([]uint64, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
		for j := range cur {
			cur[j] = 0
		}
	}
	return prev[len(b)]
}

func scoreTriple(overlap, predTotal, targetTotal uint64) (precision, recall, fmeasure float64) {
	if overlap == 0 || predTotal == 0 || targetTotal == 0 {
		return 0, 0, 0
	}
	precision = float64(overlap) / float64(predTotal)
	recall = float64(overlap) / float64(targetTotal)
	fmeasure = 2 * precision * recall / (precision + recall)
	return precision, recall, fmeasure
}
