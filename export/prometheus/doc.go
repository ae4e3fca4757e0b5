// Package prometheus renders evaluation-suite metrics in Prometheus text
// exposition format.
//
// [NewPrometheusExporter] accepts a [goMetrics.Suite] and exposes an
// [net/http.Handler] that serves every registered metric as a
// gometrics_-prefixed gauge. Metrics whose value is undefined for the
// observed data are omitted from the scrape, not rendered as zero.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry. Callers mount the
//     Handler.
//   - Mutate suite state.
package prometheus
