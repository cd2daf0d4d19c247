package scoring

import (
	"regexp"
	"unicode/utf8"
)

const (
	formattingBaseline = 10

	shortTextLimit   = 200
	shortTextPenalty = 5
	longTextLimit    = 10000
	longTextPenalty  = 2
)

var sectionHeaders = []string{"experience", "education", "skills", "projects", "objective", "summary"}

var sectionPatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(sectionHeaders))
	for i, s := range sectionHeaders {
		out[i] = termPattern(s)
	}
	return out
}()

// bulletPattern counts every bullet glyph, hyphen, asterisk and "N." occurrence.
var bulletPattern = regexp.MustCompile(`•|-|\*|\d+\.`)

// tier awards bonus once a count reaches threshold.
type tier struct {
	threshold int
	bonus     int
}

var sectionTiers = []tier{{4, 5}, {2, 2}} // count >= threshold
var bulletTiers = []tier{{10, 5}, {5, 3}} // count > threshold

// CountSections returns how many distinct section headers appear in text.
func CountSections(text string) int {
	n := 0
	for _, p := range sectionPatterns {
		if p.MatchString(text) {
			n++
		}
	}
	return n
}

// CountBullets returns the number of bullet and numbered-list markers in text.
func CountBullets(text string) int {
	return len(bulletPattern.FindAllStringIndex(text, -1))
}

// ScoreFormatting scores structural quality from a baseline of 10, clamped to [0,20].
func ScoreFormatting(text string) int {
	score := formattingBaseline

	length := utf8.RuneCountInString(text)
	switch {
	case length < shortTextLimit:
		score -= shortTextPenalty
	case length > longTextLimit:
		score -= longTextPenalty
	}

	sections := CountSections(text)
	for _, t := range sectionTiers {
		if sections >= t.threshold {
			score += t.bonus
			break
		}
	}

	bullets := CountBullets(text)
	for _, t := range bulletTiers {
		if bullets > t.threshold {
			score += t.bonus
			break
		}
	}

	return clampScore(score)
}
