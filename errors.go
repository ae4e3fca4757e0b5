package goMetrics

import "errors"

var (
	// ErrLengthMismatch reports prediction and target batches of different sizes.
	// The offending batch is rejected before any counter mutation.
	ErrLengthMismatch = errors.New("prediction and target batch lengths differ")
	// ErrInvalidClassIndex reports a class label outside the configured range.
	ErrInvalidClassIndex = errors.New("class index outside configured number of classes")
	// ErrInvalidLabelShape reports a prediction row whose width does not match
	// the configured number of classes.
	ErrInvalidLabelShape = errors.New("prediction shape does not match number of classes")
	// ErrIncompatibleInput reports a value outside its expected numeric range or
	// label domain, e.g. a probability outside [0,1].
	ErrIncompatibleInput = errors.New("input outside expected domain")
	// ErrInvalidConfig reports invalid construction parameters, e.g. a threshold
	// outside [0,1] or an AUROC bin count of 1.
	ErrInvalidConfig = errors.New("invalid metric configuration")
)
