package goMetrics

// Reduction selects how an [Aggregator] folds observed values into one scalar.
type Reduction uint8

const (
	// ReductionMean reports the arithmetic mean of observed values.
	ReductionMean Reduction = iota
	// ReductionSum reports the sum of observed values.
	ReductionSum
	// ReductionMax reports the largest observed value.
	ReductionMax
	// ReductionMin reports the smallest observed value.
	ReductionMin
)

// Aggregator folds a stream of scalar observations into a single value under
// a fixed [Reduction]. It keeps only the running sum, count, min, and max, so
// memory stays constant regardless of stream length.
//
// The zero value aggregates with [ReductionMean].
type Aggregator struct {
	reduction Reduction
	total     uint64
	sum       float64
	min       float64
	max       float64
}

// NewAggregator creates an aggregator with the given reduction.
func NewAggregator(reduction Reduction) *Aggregator {
	return &Aggregator{reduction: reduction}
}

// Add records one observation.
func (a *Aggregator) Add(value float64) {
	if a.total == 0 {
		a.min = value
		a.max = value
	} else {
		if value < a.min {
			a.min = value
		}
		if value > a.max {
			a.max = value
		}
	}
	a.total++
	a.sum += value
}

// Reset clears all accumulated state. The reduction is kept.
func (a *Aggregator) Reset() {
	a.total = 0
	a.sum = 0
	a.min = 0
	a.max = 0
}

// Count reports the number of observations since the last Reset.
func (a *Aggregator) Count() uint64 {
	return a.total
}

// Compute reports the reduced value. ok is false before the first observation.
func (a *Aggregator) Compute() (float64, bool) {
	if a.total == 0 {
		return 0, false
	}
	switch a.reduction {
	case ReductionSum:
		return a.sum, true
	case ReductionMax:
		return a.max, true
	case ReductionMin:
		return a.min, true
	default:
		return a.sum / float64(a.total), true
	}
}
