package clustering

import (
	"math"

	"github.com/MrEthical07/goMetrics/internal/verify"
)

// MutualInfoScore measures, in nats, how much knowing one clustering tells
// you about the other. 0 means the assignments are independent; the score is
// invariant under relabeling of either side.
type MutualInfoScore struct {
	preds   []int
	targets []int
}

// NewMutualInfoScore creates an empty accumulator.
func NewMutualInfoScore() *MutualInfoScore {
	return &MutualInfoScore{}
}

// Update incorporates one batch of predicted and target cluster IDs. IDs are
// opaque labels; they carry no range constraint beyond being non-negative
// only by convention.
func (m *MutualInfoScore) Update(predictions, targets []int) error {
	if err := verify.BatchLen(len(predictions), len(targets)); err != nil {
		return err
	}
	m.preds = append(m.preds, predictions...)
	m.targets = append(m.targets, targets...)
	return nil
}

// Reset clears all retained assignments.
func (m *MutualInfoScore) Reset() {
	m.preds = nil
	m.targets = nil
}

// Merge appends the retained assignments of other into m. Concatenation
// commutes with the joint-distribution computation, so per-worker sharding
// with a final merge matches a single sequential accumulator.
func (m *MutualInfoScore) Merge(other *MutualInfoScore) {
	if other == nil {
		return
	}
	m.preds = append(m.preds, other.preds...)
	m.targets = append(m.targets, other.targets...)
}

// Compute reports the mutual information in nats. ok is false until a batch
// has been observed.
func (m *MutualInfoScore) Compute() (float64, bool) {
	if len(m.preds) == 0 {
		return 0, false
	}
	total := float64(len(m.preds))

	type pair struct{ target, pred int }
	joint := make(map[pair]uint64)
	targetCounts := make(map[int]uint64)
	predCounts := make(map[int]uint64)
	for i := range m.preds {
		joint[pair{m.targets[i], m.preds[i]}]++
		targetCounts[m.targets[i]]++
		predCounts[m.preds[i]]++
	}

	mi := 0.0
	for p, count := range joint {
		c := float64(count)
		tc := float64(targetCounts[p.target])
		pc := float64(predCounts[p.pred])
		mi += (c / total) * math.Log(total*c/(tc*pc))
	}
	return mi, true
}
