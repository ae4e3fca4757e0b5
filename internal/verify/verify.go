// Package verify holds the input-domain checks shared by every metric
// package. All helpers return nil or an error wrapping one of the goMetrics
// sentinel kinds, so callers can match with errors.Is.
//
// # What this package must NOT do
//
//   - Mutate inputs or accumulate any state.
//   - Import any metric subpackage.
package verify

import (
	"fmt"

	goMetrics "github.com/MrEthical07/goMetrics"
)

// BatchLen checks that a prediction batch and a target batch have equal size.
func BatchLen(predictions, targets int) error {
	if predictions != targets {
		return fmt.Errorf("%w: %d predictions, %d targets",
			goMetrics.ErrLengthMismatch, predictions, targets)
	}
	return nil
}

// Range checks that v lies inside [min, max]. NaN is always rejected.
func Range(v, min, max float64) error {
	if v >= min && v <= max {
		return nil
	}
	return fmt.Errorf("%w: value %v outside [%v, %v]",
		goMetrics.ErrIncompatibleInput, v, min, max)
}

// Probability checks that v is a valid probability in [0, 1].
func Probability(v float64) error {
	if v >= 0 && v <= 1 {
		return nil
	}
	return fmt.Errorf("%w: probability %v outside [0, 1]",
		goMetrics.ErrIncompatibleInput, v)
}

// Label checks that class is a valid index for numClasses classes.
func Label(class, numClasses int) error {
	if class >= 0 && class < numClasses {
		return nil
	}
	return fmt.Errorf("%w: label %d with %d classes",
		goMetrics.ErrInvalidClassIndex, class, numClasses)
}

// BinaryLabel checks that class is 0 or 1.
func BinaryLabel(class int) error {
	if class == 0 || class == 1 {
		return nil
	}
	return fmt.Errorf("%w: binary label must be 0 or 1, got %d",
		goMetrics.ErrIncompatibleInput, class)
}

// RowWidth checks that a prediction row has exactly numClasses entries.
func RowWidth(width, numClasses int) error {
	if width == numClasses {
		return nil
	}
	return fmt.Errorf("%w: row width %d, want %d",
		goMetrics.ErrInvalidLabelShape, width, numClasses)
}
