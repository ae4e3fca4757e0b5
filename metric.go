package goMetrics

// Metric is the contract shared by every streaming accumulator in this module.
// P is the prediction batch type and T the target batch type; both are
// caller-owned slices that Update never retains unless documented otherwise.
//
// Update incorporates one batch and is all-or-nothing: a validation error
// leaves the accumulator exactly as it was. Reset returns the accumulator to
// the state of fresh construction with the same configuration.
//
// Compute is deliberately absent from this interface because output types
// vary (scalar, matrix, score map). Scalar-valued metrics additionally
// satisfy [Scalar] and can be registered on a [Suite].
type Metric[P, T any] interface {
	Update(preds P, targets T) error
	Reset()
}

// Scalar is the read surface shared by scalar-valued metrics. Compute returns
// false until at least one batch has been observed, or when the accumulated
// counts leave the metric undefined (e.g. precision with no predicted
// positives). A false ok is distinct from a computed value of zero.
type Scalar interface {
	Compute() (float64, bool)
	Reset()
}
