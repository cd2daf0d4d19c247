package scoring

import (
	"testing"

	"github.com/jonathan/cv-scorer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScoreKeywords_FirstMatchPerCategory(t *testing.T) {
	dict := types.KeywordDictionary{
		{Name: "Cloud", Keywords: []string{"aws", "gcp"}},
		{Name: "Languages", Keywords: []string{"rust", "python"}},
		{Name: "Empty", Keywords: nil},
	}

	score, matched := ScoreKeywords("Python services on AWS and GCP", dict)

	// Cloud contributes once even though both aws and gcp appear
	assert.Equal(t, 4, score)
	assert.Equal(t, []string{"aws", "python"}, matched)
}

func TestScoreKeywords_EmptyInputs(t *testing.T) {
	score, matched := ScoreKeywords("", types.KeywordDictionary{{Name: "A", Keywords: []string{"go"}}})
	assert.Equal(t, 0, score)
	assert.Empty(t, matched)

	score, matched = ScoreKeywords("go go go", nil)
	assert.Equal(t, 0, score)
	assert.Empty(t, matched)
}

func TestScoreKeywords_ClampsToTwenty(t *testing.T) {
	dict := types.KeywordDictionary{}
	for i := 0; i < 11; i++ {
		dict = append(dict, types.KeywordCategory{Name: string(rune('a' + i)), Keywords: []string{"docker"}})
	}

	score, matched := ScoreKeywords("docker", dict)
	assert.Equal(t, 20, score)
	assert.Len(t, matched, 11)
}

func TestScoreKeywords_WholeWordCaseInsensitive(t *testing.T) {
	dict := types.KeywordDictionary{
		{Name: "Cloud", Keywords: []string{"aws"}},
		{Name: "Languages", Keywords: []string{"c++"}},
		{Name: "Data", Keywords: []string{"machine learning"}},
	}

	tests := []struct {
		name    string
		text    string
		matched []string
	}{
		{"substring is not a word", "awesome awsome", []string{}},
		{"upper case", "Deployed on AWS.", []string{"aws"}},
		{"symbol terminated term", "Senior C++ developer", []string{"c++"}},
		{"multi word term", "Applied MACHINE LEARNING daily", []string{"machine learning"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, matched := ScoreKeywords(tt.text, dict)
			assert.Equal(t, tt.matched, matched)
			assert.Equal(t, 2*len(tt.matched), score)
		})
	}
}

func TestKeywordMatcher_SkipsBlankKeywords(t *testing.T) {
	m := NewKeywordMatcher(types.KeywordDictionary{{Name: "A", Keywords: []string{"  ", "git"}}})

	score, matched := m.Score("git and github")
	assert.Equal(t, 2, score)
	assert.Equal(t, []string{"git"}, matched)
}
