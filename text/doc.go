// Package text provides streaming text-comparison metrics: corpus BLEU,
// ROUGE (1, 2, L, Lsum), Levenshtein edit distance, and cosine similarity
// over sentence embeddings.
//
// BLEU and ROUGE tokenize on whitespace; ROUGE additionally lowercases and
// strips non-alphanumeric characters the way the reference rouge-score
// implementation does. Edit distance operates on runes, not bytes, so
// multi-byte characters count as single edits.
//
// # What this package must NOT do
//
//   - No model inference. Embedding similarity consumes vectors the caller
//     already computed; producing them is out of scope.
//   - No internal locking. Accumulators are single-writer.
package text
