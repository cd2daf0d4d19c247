package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/cv-scorer/internal/schemas"
	"github.com/jonathan/cv-scorer/internal/types"
)

// ScoringConfig is the static configuration consumed by the scoring engine.
// Treat a loaded value as read-only; use Clone before modifying a copy.
type ScoringConfig struct {
	Keywords   types.KeywordDictionary `json:"keywords"`
	JDKeywords []string                `json:"jd_keywords"`
	Weights    types.WeightTable       `json:"weights"`
}

// DefaultScoringConfig returns the built-in keyword dictionary, JD keywords and weight table.
// The default weights sum to 500 so that a resume scoring 20 in every category totals 100.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		Keywords: types.KeywordDictionary{
			{Name: "Programming", Keywords: []string{"python", "java", "javascript", "golang", "c++", "typescript"}},
			{Name: "Data", Keywords: []string{"machine learning", "data analysis", "statistics", "pandas", "sql"}},
			{Name: "Cloud", Keywords: []string{"aws", "azure", "gcp", "docker", "kubernetes"}},
			{Name: "Web", Keywords: []string{"react", "angular", "html", "css", "rest api"}},
			{Name: "Methodology", Keywords: []string{"agile", "scrum", "ci/cd", "devops", "tdd"}},
			{Name: "Leadership", Keywords: []string{"leadership", "mentoring", "project management", "stakeholder"}},
			{Name: "Communication", Keywords: []string{"communication", "teamwork", "collaboration", "presentation"}},
		},
		JDKeywords: []string{
			"python", "sql", "aws", "docker", "api", "agile",
			"testing", "git", "communication", "machine learning",
		},
		Weights: types.WeightTable{
			types.CategoryEducation:  100,
			types.CategoryExperience: 125,
			types.CategorySkills:     125,
			types.CategoryFormatting: 50,
			types.CategoryJDMatch:    100,
		},
	}
}

// LoadScoringConfig loads a scoring configuration from a JSON file.
// The document is checked against the scoring config schema before decoding.
func LoadScoringConfig(path string) (*ScoringConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("scoring config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scoring config %s: %w", path, err)
	}

	return ParseScoringConfig(data)
}

// ParseScoringConfig validates and decodes scoring configuration JSON.
func ParseScoringConfig(data []byte) (*ScoringConfig, error) {
	if err := schemas.ValidateScoringConfig(data); err != nil {
		return nil, err
	}

	var cfg ScoringConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scoring config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks category names, keyword entries and weights.
func (c *ScoringConfig) Validate() error {
	seen := make(map[string]bool, len(c.Keywords))
	for i, category := range c.Keywords {
		name := strings.TrimSpace(category.Name)
		if name == "" {
			return fmt.Errorf("config error: keyword category %d has no name", i)
		}
		if seen[strings.ToLower(name)] {
			return fmt.Errorf("config error: duplicate keyword category %q", name)
		}
		seen[strings.ToLower(name)] = true
		for _, kw := range category.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("config error: keyword category %q contains a blank keyword", name)
			}
		}
	}

	for category, weight := range c.Weights {
		if !types.IsKnownCategory(category) {
			return fmt.Errorf("config error: unknown weight category %q", category)
		}
		if weight < 0 {
			return fmt.Errorf("config error: weight for %q must be non-negative", category)
		}
	}

	return nil
}

// Clone returns a deep copy.
func (c *ScoringConfig) Clone() *ScoringConfig {
	return &ScoringConfig{
		Keywords:   c.Keywords.Clone(),
		JDKeywords: append([]string(nil), c.JDKeywords...),
		Weights:    c.Weights.Clone(),
	}
}

// WithJDKeywords returns a copy using keywords as the default JD keyword list.
func (c *ScoringConfig) WithJDKeywords(keywords []string) *ScoringConfig {
	out := c.Clone()
	out.JDKeywords = append([]string(nil), keywords...)
	return out
}
