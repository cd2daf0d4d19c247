// Package jobdesc derives a JD keyword list from raw job description text.
package jobdesc

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-scorer/internal/config"
	"github.com/jonathan/cv-scorer/internal/ingestion"
	"github.com/jonathan/cv-scorer/internal/scoring"
)

// aliases maps common spelling variants to the canonical vocabulary term
var aliases = map[string]string{
	"golang":   "go",
	"js":       "javascript",
	"ts":       "typescript",
	"k8s":      "kubernetes",
	"react.js": "react",
	"reactjs":  "react",
	"vue.js":   "vue",
	"vuejs":    "vue",
	"nodejs":   "node.js",
	"postgres": "postgresql",
	"ml":       "machine learning",
}

// phraseAliases are multi-word variants, rewritten before single tokens
var phraseAliases = []struct {
	pattern   *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`\bamazon web services\b`), "aws"},
	{regexp.MustCompile(`\bgoogle cloud\b`), "gcp"},
	{regexp.MustCompile(`\bgo lang\b`), "go"},
}

// aliasTokenPattern keeps dotted names such as node.js together as one token
var aliasTokenPattern = regexp.MustCompile(`[\p{L}\p{N}_.+#]+`)

// NormalizeJD cleans text, lowercases it and rewrites known aliases.
// It is applied to JD text, vocabulary terms and resume text alike so all three compare equal.
func NormalizeJD(text string) string {
	normalized := strings.ToLower(ingestion.CleanText(text))
	for _, alias := range phraseAliases {
		normalized = alias.pattern.ReplaceAllString(normalized, alias.canonical)
	}
	return aliasTokenPattern.ReplaceAllStringFunc(normalized, func(token string) string {
		word := strings.TrimRight(token, ".")
		if canonical, ok := aliases[word]; ok {
			return canonical + token[len(word):]
		}
		return token
	})
}

// ExtractKeywords returns the vocabulary terms mentioned in the job description,
// in vocabulary order and in their alias-normalized form: a vocabulary entry
// "golang" matched by a JD saying "Go" is returned as "go". Resume text must go
// through NormalizeJD as well before matching against the result.
func ExtractKeywords(jdText string, vocabulary []string) []string {
	normalized := NormalizeJD(jdText)

	var out []string
	seen := make(map[string]bool)
	for _, term := range vocabulary {
		canonical := NormalizeJD(term)
		if canonical == "" || seen[canonical] {
			continue
		}
		if matched, _ := scoring.MatchJDKeywords(normalized, []string{canonical}); len(matched) > 0 {
			seen[canonical] = true
			out = append(out, canonical)
		}
	}
	return out
}

// Vocabulary returns the configured JD keywords followed by every keyword dictionary
// term, deduplicated case-insensitively.
func Vocabulary(cfg *config.ScoringConfig) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(term string) {
		key := strings.ToLower(strings.TrimSpace(term))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, key)
	}

	for _, kw := range cfg.JDKeywords {
		add(kw)
	}
	for _, category := range cfg.Keywords {
		for _, kw := range category.Keywords {
			add(kw)
		}
	}
	return out
}

// MissingKeywords returns the JD keywords that do not appear in the resume text.
// Both sides are alias-normalized, so "JS" in a resume satisfies "javascript".
func MissingKeywords(resumeText string, jdKeywords []string) []string {
	text := NormalizeJD(resumeText)
	found := make(map[string]bool, len(jdKeywords))
	for _, kw := range jdKeywords {
		if matched, _ := scoring.MatchJDKeywords(text, []string{NormalizeJD(kw)}); len(matched) > 0 {
			found[strings.ToLower(strings.TrimSpace(kw))] = true
		}
	}

	missing := []string{}
	seen := make(map[string]bool)
	for _, kw := range jdKeywords {
		key := strings.ToLower(strings.TrimSpace(kw))
		if key == "" || found[key] || seen[key] {
			continue
		}
		seen[key] = true
		missing = append(missing, kw)
	}
	return missing
}
