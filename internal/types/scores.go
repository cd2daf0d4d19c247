package types

import (
	"encoding/json"
	"math"
)

// Category names a weighted scoring category.
type Category string

// Recognized scoring categories.
const (
	CategoryEducation  Category = "Education"
	CategoryExperience Category = "Experience"
	CategorySkills     Category = "Skills"
	CategoryFormatting Category = "Formatting"
	CategoryJDMatch    Category = "JD Match"
)

// Categories is the fixed iteration order for category output.
// Feedback text and strength/weakness lists follow this order.
var Categories = []Category{
	CategoryEducation,
	CategoryExperience,
	CategorySkills,
	CategoryFormatting,
	CategoryJDMatch,
}

// IsKnownCategory reports whether c is one of Categories.
func IsKnownCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

const (
	// MaxCategoryScore is the ceiling of every category score
	MaxCategoryScore = 20
	// StrengthThreshold is the minimum score for a category to count as a strength
	StrengthThreshold = 15
	// ImprovementThreshold is the score below which a category needs improvement
	ImprovementThreshold = 10
)

// CategoryScores maps each category to its bounded [0,20] score.
type CategoryScores map[Category]int

// Strengths returns the categories scoring at or above StrengthThreshold, in Categories order.
func (s CategoryScores) Strengths() []Category {
	out := []Category{}
	for _, c := range Categories {
		if score, ok := s[c]; ok && score >= StrengthThreshold {
			out = append(out, c)
		}
	}
	return out
}

// AreasToImprove returns the categories scoring below ImprovementThreshold, in Categories order.
func (s CategoryScores) AreasToImprove() []Category {
	out := []Category{}
	for _, c := range Categories {
		if score, ok := s[c]; ok && score < ImprovementThreshold {
			out = append(out, c)
		}
	}
	return out
}

// WeightTable maps categories to percentage weights.
// Each category contributes score*weight/100 to the total.
type WeightTable map[Category]float64

// Sum returns the sum of all weights.
func (w WeightTable) Sum() float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

// MaxTotal returns the total score produced when every known category scores MaxCategoryScore.
func (w WeightTable) MaxTotal() int {
	total := 0.0
	for _, c := range Categories {
		total += float64(MaxCategoryScore) * w[c] / 100
	}
	return int(math.RoundToEven(total))
}

// Clone returns a copy of the table.
func (w WeightTable) Clone() WeightTable {
	out := make(WeightTable, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// ScoringResult is the outcome of scoring one resume.
// Strengths and areas to improve are derived from Scores and cannot be set independently.
type ScoringResult struct {
	Scores          CategoryScores `json:"scores"`
	TotalScore      int            `json:"total_score"`
	KeywordScore    int            `json:"keyword_score"`
	MatchedKeywords []string       `json:"matched_keywords"`
	Feedback        string         `json:"feedback"`
}

// Strengths returns the categories scoring at or above StrengthThreshold.
func (r *ScoringResult) Strengths() []Category {
	return r.Scores.Strengths()
}

// AreasToImprove returns the categories scoring below ImprovementThreshold.
func (r *ScoringResult) AreasToImprove() []Category {
	return r.Scores.AreasToImprove()
}

// MarshalJSON includes the derived strength and improvement lists.
func (r ScoringResult) MarshalJSON() ([]byte, error) {
	type plain ScoringResult
	matched := r.MatchedKeywords
	if matched == nil {
		matched = []string{}
	}
	p := plain(r)
	p.MatchedKeywords = matched
	return json.Marshal(struct {
		plain
		Strengths      []Category `json:"strengths"`
		AreasToImprove []Category `json:"areas_to_improve"`
	}{
		plain:          p,
		Strengths:      r.Scores.Strengths(),
		AreasToImprove: r.Scores.AreasToImprove(),
	})
}
