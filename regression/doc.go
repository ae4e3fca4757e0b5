// Package regression provides streaming error metrics over real-valued
// predictions: MSE, MAE, MAPE, NRMSE under four normalization schemes, and
// the R2 coefficient of determination.
//
// Every metric folds batches into a fixed set of running sums, so memory
// stays constant regardless of how many samples have been observed. NRMSE
// tracks target mean and variance online with Welford's recurrence to avoid
// the cancellation that naive sum-of-squares accumulation suffers.
//
// # Architecture boundaries
//
// This package owns the regression accumulators and nothing else. Shared
// input validation lives in internal/verify; the Compute contract (value
// plus ok flag) is defined by the root package.
//
// # What this package must NOT do
//
//   - No internal locking. Accumulators are single-writer; use one per
//     goroutine and combine with Merge.
//   - No retained samples. Everything is reducible to running sums.
package regression
