package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-scorer/internal/types"
)

// keywordIncrement is awarded once per dictionary category with at least one hit
const keywordIncrement = 2

type compiledCategory struct {
	keywords []string
	patterns []*regexp.Regexp
}

// KeywordMatcher scans text against a precompiled keyword dictionary.
// It is immutable and safe for concurrent use.
type KeywordMatcher struct {
	categories []compiledCategory
}

// NewKeywordMatcher compiles every keyword of dict. Blank keywords are skipped.
func NewKeywordMatcher(dict types.KeywordDictionary) *KeywordMatcher {
	m := &KeywordMatcher{categories: make([]compiledCategory, 0, len(dict))}
	for _, category := range dict {
		cc := compiledCategory{}
		for _, kw := range category.Keywords {
			if strings.TrimSpace(kw) == "" {
				continue
			}
			cc.keywords = append(cc.keywords, kw)
			cc.patterns = append(cc.patterns, termPattern(kw))
		}
		m.categories = append(m.categories, cc)
	}
	return m
}

// Score returns the keyword score and the matched keywords in dictionary order.
// Only the first matching keyword of each category counts.
func (m *KeywordMatcher) Score(text string) (int, []string) {
	score := 0
	matched := []string{}
	if text == "" {
		return 0, matched
	}

	for _, category := range m.categories {
		for i, pattern := range category.patterns {
			if pattern.MatchString(text) {
				score += keywordIncrement
				matched = append(matched, category.keywords[i])
				break
			}
		}
	}

	return clampScore(score), matched
}

// ScoreKeywords scores text against dict. See KeywordMatcher.Score.
func ScoreKeywords(text string, dict types.KeywordDictionary) (int, []string) {
	return NewKeywordMatcher(dict).Score(text)
}
