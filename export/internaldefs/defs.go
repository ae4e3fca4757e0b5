package internaldefs

import "strings"

// Prefix namespaces every exported instrument so suite keys cannot collide
// with metrics from other libraries in the same registry.
const Prefix = "gometrics_"

// DefaultHelp describes exported suite gauges when the key itself is all the
// context available.
const DefaultHelp = "Computed metric value from the evaluation suite."

// MetricName maps a suite key to a stable exported instrument name: the key
// is sanitized to the common [a-zA-Z0-9_] instrument alphabet and prefixed.
// Distinct keys that sanitize to the same name will collide; keys are
// expected to already be exporter-friendly (for example "accuracy/micro"
// becomes "gometrics_accuracy_micro").
func MetricName(key string) string {
	return Prefix + Sanitize(key)
}

// Sanitize replaces every rune outside [a-zA-Z0-9_] with an underscore and
// guards a leading digit with one.
func Sanitize(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 1)
	for i, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
