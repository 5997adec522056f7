// Package textproc normalizes free text into comparable token sets.
// It lower-cases input, splits on non-alphanumeric boundaries, and
// removes stop-words and short noise tokens. Normalization is pure and
// idempotent: re-normalizing already-normalized text yields the same
// set.
package textproc

import (
	"strings"
	"unicode"

	"go-resume-analyzer/internal/domain"
)

// DefaultMinTokenLen drops tokens shorter than this many characters.
const DefaultMinTokenLen = 3

var stopWords = map[string]struct{}{
	"and": {}, "are": {}, "but": {}, "can": {}, "each": {},
	"for": {}, "from": {}, "had": {}, "has": {}, "have": {},
	"its": {}, "not": {}, "that": {}, "the": {}, "their": {},
	"they": {}, "this": {}, "was": {}, "were": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "who": {}, "will": {},
	"with": {}, "you": {}, "your": {},
}

// Normalizer builds AnalyzedText values with a configurable minimum
// token length.
type Normalizer struct {
	minTokenLen int
}

func NewNormalizer(minTokenLen int) *Normalizer {
	if minTokenLen <= 0 {
		minTokenLen = DefaultMinTokenLen
	}
	return &Normalizer{minTokenLen: minTokenLen}
}

// Normalize returns the token set for text.
func (n *Normalizer) Normalize(text string) domain.TokenSet {
	tokens := make(domain.TokenSet)
	for _, word := range SplitWords(text) {
		if len(word) < n.minTokenLen {
			continue
		}
		if _, isStop := stopWords[word]; isStop {
			continue
		}
		tokens[word] = struct{}{}
	}
	return tokens
}

// Analyze returns the full normalized view of text: lowercased raw
// text for substring scans, the token set, and the word count.
func (n *Normalizer) Analyze(text string) domain.AnalyzedText {
	return domain.AnalyzedText{
		Lower:     strings.ToLower(text),
		Tokens:    n.Normalize(text),
		WordCount: len(strings.Fields(text)),
	}
}

// SplitWords lowercases text and splits it on any run of
// non-alphanumeric characters.
func SplitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
