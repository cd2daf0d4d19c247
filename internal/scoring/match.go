// Package scoring implements the resume scoring engine: six independent sub-scorers,
// a weighted aggregator and a templated feedback generator.
package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-scorer/internal/types"
)

// nonWordChar must surround a whole-word match unless it sits at the start or end of text.
const nonWordChar = `[^\p{L}\p{N}_]`

// wordPattern compiles a case-insensitive regex that matches expr only as a whole word.
// Boundaries are "start/end of text or a non-word character", so terms ending in
// symbols (c++, c#, node.js) still match when followed by a space or punctuation.
func wordPattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|` + nonWordChar + `)(?:` + expr + `)(?:$|` + nonWordChar + `)`)
}

// termPattern compiles a whole-word matcher for a literal term.
func termPattern(term string) *regexp.Regexp {
	return wordPattern(regexp.QuoteMeta(strings.TrimSpace(term)))
}

// clampScore bounds a category score to [0, MaxCategoryScore].
func clampScore(score int) int {
	return max(0, min(types.MaxCategoryScore, score))
}
