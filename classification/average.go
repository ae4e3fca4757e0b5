package classification

import (
	"fmt"

	goMetrics "github.com/MrEthical07/goMetrics"
)

// Average selects how per-class binary metrics combine into one multiclass
// scalar.
type Average uint8

const (
	// AverageMicro pools numerators and denominators across classes before
	// dividing once, equivalent to treating all classes as one binary problem.
	AverageMicro Average = iota
	// AverageMacro computes the metric per class and takes the unweighted mean
	// over classes with a defined (non-zero-denominator) value.
	AverageMacro
	// AverageWeighted weights each defined per-class value by its support
	// (true positives + false negatives) and divides by the summed support of
	// the defined classes.
	AverageWeighted
)

func checkAverage(avg Average) error {
	switch avg {
	case AverageMicro, AverageMacro, AverageWeighted:
		return nil
	default:
		return fmt.Errorf("%w: unknown averaging policy %d", goMetrics.ErrInvalidConfig, avg)
	}
}

// reduceCounts combines per-class numerator/denominator count pairs under the
// given policy. Every multiclass metric routes through here so that
// zero-denominator classes are handled identically: they are excluded from
// macro and weighted accumulation (numerator, denominator, and support alike)
// rather than treated as zero. ok is false when no class has a defined value.
func reduceCounts(avg Average, nums, denoms, supports []uint64) (float64, bool) {
	switch avg {
	case AverageMicro:
		var num, den uint64
		for i := range nums {
			num += nums[i]
			den += denoms[i]
		}
		if den == 0 {
			return 0, false
		}
		return float64(num) / float64(den), true

	case AverageMacro:
		sum := 0.0
		defined := 0
		for i := range nums {
			if denoms[i] == 0 {
				continue
			}
			sum += float64(nums[i]) / float64(denoms[i])
			defined++
		}
		if defined == 0 {
			return 0, false
		}
		return sum / float64(defined), true

	default: // AverageWeighted
		weighted := 0.0
		var supportTotal uint64
		for i := range nums {
			if denoms[i] == 0 {
				continue
			}
			weighted += float64(supports[i]) * float64(nums[i]) / float64(denoms[i])
			supportTotal += supports[i]
		}
		if supportTotal == 0 {
			return 0, false
		}
		return weighted / float64(supportTotal), true
	}
}

// addCounts returns the elementwise sum of a and b. Helper for metrics whose
// per-class denominator is a sum of stat-score vectors.
func addCounts(a, b []uint64) []uint64 {
	out := make([]uint64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}
