package scoring

import (
	"regexp"
	"strings"
)

// MaxJDScore is the score for a resume containing every JD keyword.
const MaxJDScore = 20

// tokenPattern extracts lowercase tokens of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// MatchJDKeywords returns the distinct JD keywords present in text and the number of
// distinct keywords considered. A keyword is present when its token sequence occurs
// contiguously in the text's token sequence; keywords that produce no tokens never match.
func MatchJDKeywords(text string, keywords []string) (matched []string, total int) {
	matched = []string{}
	seen := make(map[string]bool, len(keywords))

	joined := " " + strings.Join(tokenize(text), " ") + " "

	for _, kw := range keywords {
		key := strings.ToLower(strings.TrimSpace(kw))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		total++

		kwTokens := tokenize(key)
		if len(kwTokens) == 0 {
			continue
		}
		if strings.Contains(joined, " "+strings.Join(kwTokens, " ")+" ") {
			matched = append(matched, kw)
		}
	}

	return matched, total
}

// ScoreJDMatch scales the fraction of JD keywords present in text to [0,20], rounding down.
// An empty keyword list scores 0.
func ScoreJDMatch(text string, keywords []string) int {
	matched, total := MatchJDKeywords(text, keywords)
	if total == 0 {
		return 0
	}
	return clampScore(len(matched) * MaxJDScore / total)
}
