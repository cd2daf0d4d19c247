package scoring

import (
	"regexp"
)

// DegreeLevel is the highest degree detected in a resume.
type DegreeLevel int

// Degree levels, lowest to highest.
const (
	DegreeNone DegreeLevel = iota
	DegreeDiploma
	DegreeBachelor
	DegreeMaster
	DegreeDoctorate
)

const (
	pointsPerDegreeLevel = 5
	prestigeBonus        = 5
)

type degreeRule struct {
	level   DegreeLevel
	pattern *regexp.Regexp
}

// degreeRules is evaluated top-down and the first hit wins.
// It must stay ordered from the highest level to the lowest.
var degreeRules = []degreeRule{
	{DegreeDoctorate, wordPattern(`ph\.?d|doctor|doctorate`)},
	{DegreeMaster, wordPattern(`masters|mba|m\.tech|m\.sc|m\.e|mca`)},
	{DegreeBachelor, wordPattern(`bachelor|b\.tech|b\.e|bca|b\.sc|engineering`)},
	{DegreeDiploma, wordPattern(`diploma|certificate|12th|intermediate`)},
}

var prestigePattern = wordPattern(`iit|nit|bits|iisc|top|prestigious`)

// EducationLevel classifies text into exactly one degree level.
func EducationLevel(text string) DegreeLevel {
	if text == "" {
		return DegreeNone
	}
	for _, rule := range degreeRules {
		if rule.pattern.MatchString(text) {
			return rule.level
		}
	}
	return DegreeNone
}

// HasPrestigeMarker reports whether text names a top-tier institution or uses a prestige superlative.
func HasPrestigeMarker(text string) bool {
	return prestigePattern.MatchString(text)
}

// ScoreEducation returns level*5 plus a prestige bonus, clamped to [0,20].
func ScoreEducation(text string) int {
	score := int(EducationLevel(text)) * pointsPerDegreeLevel
	if HasPrestigeMarker(text) {
		score += prestigeBonus
	}
	return clampScore(score)
}
