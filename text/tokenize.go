package text

import (
	"strings"
	"unicode"
)

// Tokenize splits text on runs of whitespace. Empty input yields no tokens.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// normalizeText lowercases and replaces every non-alphanumeric rune with a
// space, matching the rouge-score reference tokenizer.
func normalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// tokenizeWords is the ROUGE token stream: normalized then whitespace-split.
func tokenizeWords(text string) []string {
	return Tokenize(normalizeText(text))
}

// sentenceBoundary separates sentences in the rougeLsum token stream. It can
// never collide with a real token because normalization strips '<' and '>'.
const sentenceBoundary = "<n>"

// tokenizeWithNewlines is the rougeLsum token stream: each newline-separated
// sentence contributes its words followed by a boundary marker, so an LCS
// cannot span sentences.
func tokenizeWithNewlines(text string) []string {
	var tokens []string
	for _, sentence := range strings.Split(text, "\n") {
		if strings.TrimSpace(sentence) == "" {
			continue
		}
		tokens = append(tokens, tokenizeWords(sentence)...)
		tokens = append(tokens, sentenceBoundary)
	}
	if n := len(tokens); n > 0 && tokens[n-1] == sentenceBoundary {
		tokens = tokens[:n-1]
	}
	return tokens
}

// ngramCounts maps each n-gram of tokens, joined with a unit separator, to
// its occurrence count. Returns an empty map when fewer than n tokens exist.
func ngramCounts(tokens []string, n int) map[string]uint64 {
	counts := make(map[string]uint64)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], "\x1f")]++
	}
	return counts
}
