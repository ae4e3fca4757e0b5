// Package goMetrics provides streaming evaluation metrics computed incrementally
// over batches of predictions and targets, without retaining full history.
//
// Metric families live in subpackages: classification (stat-scores, accuracy,
// precision/recall, F1, Jaccard, AUROC, confusion matrix, hinge), regression
// (MSE, MAE, MAPE, NRMSE, R²), text (edit distance, BLEU, ROUGE, embedding
// similarity), and clustering (mutual information). This root package holds
// the shared contract: the [Metric] interface, the error taxonomy, the
// [Aggregator] reduction helper, and the [Suite] registry read by the
// exporters under export/.
//
// # Lifecycle
//
// Every metric follows the same three-operation contract:
//
//	m, err := classification.NewBinaryAccuracy(0.5)
//	err = m.Update(preds, targets)   // incorporate one batch, all-or-nothing
//	v, ok := m.Compute()             // pure read; ok is false until data arrives
//	m.Reset()                        // back to freshly constructed state
//
// A failed Update never mutates accumulator state: batches are validated in
// full before any counter moves.
//
// # Architecture boundaries
//
// goMetrics is the public surface. Shared validation lives under
// internal/verify and is never exported. Exporters (Prometheus text
// exposition, OpenTelemetry observable gauges) live under export/ and read
// [Suite.MetricsSnapshot]; they never mutate metric state.
//
// # Concurrency
//
// Metric accumulators are exclusively owned by their caller and perform no
// internal locking. To aggregate from concurrent producers, shard one
// accumulator per worker and combine with Merge; stat-scores counters and
// AUROC histograms merge associatively. [Suite] is the exception: it is safe
// for concurrent use because exporters read it from scrape goroutines.
//
// # What this package must NOT do
//
//   - Perform I/O, persist state, or aggregate across processes.
//   - Import any of its metric subpackages (they import goMetrics for the
//     shared contract; the reverse would cycle).
//   - Return 0 where "no data observed" is meant. Compute is comma-ok.
package goMetrics
