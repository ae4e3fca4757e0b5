// Package otel provides OpenTelemetry metric bindings for evaluation-suite
// values.
//
// [NewOTelExporter] registers one Float64ObservableGauge per suite key and a
// single callback that reads [goMetrics.Suite.MetricsSnapshot] on each
// collection cycle. Keys whose value is undefined for the observed data are
// simply not observed that cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider. Callers supply the Meter.
//   - Mutate suite state.
package otel
