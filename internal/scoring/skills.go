package scoring

import (
	"regexp"
)

// skillPointsPerTerm is multiplied by the number of distinct recognized terms
const skillPointsPerTerm = 2

// SkillCategory names one of the fixed technical term groups.
type SkillCategory string

// Skill categories, in scan order.
const (
	SkillLanguages  SkillCategory = "languages"
	SkillFrameworks SkillCategory = "frameworks"
	SkillDatabases  SkillCategory = "databases"
	SkillTools      SkillCategory = "tools"
)

type skillTerm struct {
	name    string
	pattern *regexp.Regexp
}

type skillGroup struct {
	category SkillCategory
	terms    []skillTerm
}

func newSkillGroup(category SkillCategory, names ...string) skillGroup {
	g := skillGroup{category: category, terms: make([]skillTerm, 0, len(names))}
	for _, name := range names {
		g.terms = append(g.terms, skillTerm{name: name, pattern: termPattern(name)})
	}
	return g
}

// skillGroups counts c++, c# and node.js when followed by a space or punctuation; a
// \b-delimited matcher never counts them, so totals differ from such matchers for these terms.
var skillGroups = []skillGroup{
	newSkillGroup(SkillLanguages,
		"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "rust", "swift"),
	newSkillGroup(SkillFrameworks,
		"react", "angular", "vue", "django", "flask", "spring", "laravel", "express", "node.js", "tensorflow", "pytorch"),
	newSkillGroup(SkillDatabases,
		"sql", "mysql", "postgresql", "mongodb", "oracle", "sqlite", "nosql", "redis"),
	newSkillGroup(SkillTools,
		"git", "docker", "kubernetes", "aws", "azure", "gcp", "linux", "ci/cd", "jenkins", "agile", "scrum"),
}

// SkillMatches lists the distinct recognized terms found per category.
type SkillMatches map[SkillCategory][]string

// Count returns the total number of distinct terms across categories.
// A term listed under two categories counts once per category.
func (m SkillMatches) Count() int {
	n := 0
	for _, terms := range m {
		n += len(terms)
	}
	return n
}

// DetectSkills returns the recognized technical terms in text, deduplicated per category.
func DetectSkills(text string) SkillMatches {
	matches := SkillMatches{}
	if text == "" {
		return matches
	}
	for _, group := range skillGroups {
		for _, term := range group.terms {
			if term.pattern.MatchString(text) {
				matches[group.category] = append(matches[group.category], term.name)
			}
		}
	}
	return matches
}

// ScoreSkills returns 2 points per distinct recognized term, clamped to [0,20].
func ScoreSkills(text string) int {
	return clampScore(DetectSkills(text).Count() * skillPointsPerTerm)
}
