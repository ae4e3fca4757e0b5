// Package classification provides streaming classification metrics built on
// confusion-matrix accumulators.
//
// # Design
//
// [BinaryStatScores] and [MulticlassStatScores] are the core: they fold
// batches of predictions into true/false positive/negative counts. Every
// derived metric (accuracy, precision, recall, F1, Jaccard, confusion matrix)
// is a pure read of those counts. Multiclass metrics combine per-class counts
// under one of three averaging policies ([AverageMicro], [AverageMacro],
// [AverageWeighted]) through a single shared reduction routine, so
// zero-denominator handling is identical across all of them: classes with an
// undefined per-class ratio are excluded from macro and weighted means, never
// counted as zero.
//
// [BinaryAUROC] is the one rank-based metric. It runs in either exact mode
// (every sample retained, tie-aware trapezoidal sweep over sorted scores) or
// binned mode (two fixed histograms, O(bins) memory), chosen at construction.
//
// # Architecture boundaries
//
// Accumulators are caller-owned and unsynchronized; shard per worker and
// combine with Merge for parallel aggregation. Input validation is complete
// before any counter mutation, so a rejected batch leaves state untouched.
//
// # What this package must NOT do
//
//   - Retain caller slices beyond Update (exact AUROC copies sample values).
//   - Guess tie-breaks: argmax resolves ties to the first maximum.
//   - Return 0 for "no data observed". Compute is comma-ok.
package classification
