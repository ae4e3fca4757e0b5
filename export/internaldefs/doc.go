// Package internaldefs exposes the stable instrument naming shared by
// exporter implementations.
//
// Name sanitization and the gometrics_ prefix live here so that the
// Prometheus and OTel exporters report identical instrument names for the
// same suite key. Changes to naming in this package affect all exporters
// simultaneously.
//
// # What this package must NOT do
//
//   - Import goMetrics or any exporter package.
//   - Perform I/O.
package internaldefs
