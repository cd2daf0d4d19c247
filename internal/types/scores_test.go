package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryScores_StrengthsAndAreas(t *testing.T) {
	scores := CategoryScores{
		CategoryJDMatch:    15,
		CategoryEducation:  20,
		CategoryExperience: 10,
		CategorySkills:     9,
		CategoryFormatting: 14,
	}

	assert.Equal(t, []Category{CategoryEducation, CategoryJDMatch}, scores.Strengths())
	assert.Equal(t, []Category{CategorySkills}, scores.AreasToImprove())
}

func TestCategoryScores_EmptyListsAreNonNil(t *testing.T) {
	scores := CategoryScores{CategoryEducation: 12}

	assert.NotNil(t, scores.Strengths())
	assert.Empty(t, scores.Strengths())
	assert.NotNil(t, scores.AreasToImprove())
	assert.Empty(t, scores.AreasToImprove())
}

func TestWeightTable(t *testing.T) {
	w := WeightTable{
		CategoryEducation:  100,
		CategoryExperience: 125,
		CategorySkills:     125,
		CategoryFormatting: 50,
		CategoryJDMatch:    100,
	}

	assert.Equal(t, 500.0, w.Sum())
	assert.Equal(t, 100, w.MaxTotal())

	clone := w.Clone()
	clone[CategorySkills] = 0
	assert.Equal(t, 125.0, w[CategorySkills])

	assert.Equal(t, 4, WeightTable{CategoryEducation: 20}.MaxTotal())
	assert.Equal(t, 0, WeightTable{}.MaxTotal())
}

func TestIsKnownCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, IsKnownCategory(c))
	}
	assert.False(t, IsKnownCategory("Charisma"))
	assert.False(t, IsKnownCategory("education"))
}

func TestScoringResult_MarshalJSON(t *testing.T) {
	result := ScoringResult{
		Scores: CategoryScores{
			CategoryEducation:  20,
			CategoryExperience: 12,
			CategorySkills:     4,
			CategoryFormatting: 10,
			CategoryJDMatch:    0,
		},
		TotalScore:   42,
		KeywordScore: 6,
		Feedback:     "Strengths:\n",
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, float64(42), decoded["total_score"])
	assert.Equal(t, float64(6), decoded["keyword_score"])
	assert.Equal(t, []any{}, decoded["matched_keywords"])
	assert.Equal(t, []any{"Education"}, decoded["strengths"])
	assert.Equal(t, []any{"Skills", "JD Match"}, decoded["areas_to_improve"])
	assert.Equal(t, "Strengths:\n", decoded["feedback"])

	scores, ok := decoded["scores"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(20), scores["Education"])
	assert.Len(t, scores, 5)
}

func TestScoringResult_MarshalJSON_Pointer(t *testing.T) {
	result := &ScoringResult{
		Scores:          CategoryScores{CategorySkills: 16},
		MatchedKeywords: []string{"aws"},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"strengths":["Skills"]`)
	assert.Contains(t, string(data), `"matched_keywords":["aws"]`)
}
