package scoring

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jonathan/cv-scorer/internal/config"
	"github.com/jonathan/cv-scorer/internal/scorelog"
	"github.com/jonathan/cv-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = "PhD in Computer Science from IIT. Developed Python and Go services on AWS with Docker."

func newDefaultEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	engine, err := NewEngine(nil, opts...)
	require.NoError(t, err)
	return engine
}

func TestEngine_Score_Sample(t *testing.T) {
	engine := newDefaultEngine(t)

	result := engine.Score(types.ResumeInput{Text: sampleResume, YearsExperience: 6}, nil)

	assert.Equal(t, types.CategoryScores{
		types.CategoryEducation:  20,
		types.CategoryExperience: 20,
		types.CategorySkills:     8,
		types.CategoryFormatting: 5,
		types.CategoryJDMatch:    6,
	}, result.Scores)
	// 20 + 25 + 10 + 2.5 + 6 = 63.5, rounded half to even
	assert.Equal(t, 64, result.TotalScore)
	assert.Equal(t, 4, result.KeywordScore)
	assert.Equal(t, []string{"python", "aws"}, result.MatchedKeywords)

	assert.Equal(t, []types.Category{types.CategoryEducation, types.CategoryExperience}, result.Strengths())
	assert.Equal(t,
		[]types.Category{types.CategorySkills, types.CategoryFormatting, types.CategoryJDMatch},
		result.AreasToImprove())
	assert.Contains(t, result.Feedback, ClosingModerate)
	assert.Contains(t, result.Feedback, "key terms like: python, aws.")
}

func TestEngine_Score_EmptyText(t *testing.T) {
	engine := newDefaultEngine(t)

	result := engine.Score(types.ResumeInput{}, nil)

	assert.Equal(t, 0, result.Scores[types.CategoryEducation])
	assert.Equal(t, 5, result.Scores[types.CategoryExperience])
	assert.Equal(t, 0, result.Scores[types.CategorySkills])
	assert.Equal(t, 5, result.Scores[types.CategoryFormatting])
	assert.Equal(t, 0, result.Scores[types.CategoryJDMatch])
	// 5*1.25 + 5*0.5 = 8.75
	assert.Equal(t, 9, result.TotalScore)
	assert.Equal(t, 0, result.KeywordScore)
	assert.Empty(t, result.MatchedKeywords)
	assert.Empty(t, result.Strengths())
	assert.Len(t, result.AreasToImprove(), len(types.Categories))
	assert.Contains(t, result.Feedback, ClosingWeak)
}

func TestEngine_Score_Bounds(t *testing.T) {
	engine := newDefaultEngine(t)
	maxTotal := engine.Weights().MaxTotal()

	inputs := []types.ResumeInput{
		{Text: ""},
		{Text: "1234567890 42 3.14"},
		{Text: strings.Repeat("Python • ", 2000), YearsExperience: 30},
		{Text: "Ünïcödé résumé ✓ 日本語 履歴書", YearsExperience: 2},
		{Text: sampleResume, YearsExperience: 1},
	}

	for _, input := range inputs {
		result := engine.Score(input, nil)
		for _, c := range types.Categories {
			score, ok := result.Scores[c]
			require.True(t, ok, "missing category %s", c)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, types.MaxCategoryScore)
		}
		assert.GreaterOrEqual(t, result.TotalScore, 0)
		assert.LessOrEqual(t, result.TotalScore, maxTotal)
		assert.GreaterOrEqual(t, result.KeywordScore, 0)
		assert.LessOrEqual(t, result.KeywordScore, types.MaxCategoryScore)

		for _, s := range result.Strengths() {
			assert.NotContains(t, result.AreasToImprove(), s)
		}
	}
}

func TestEngine_Score_Idempotent(t *testing.T) {
	engine := newDefaultEngine(t)
	input := types.ResumeInput{Text: sampleResume, YearsExperience: 4}

	first := engine.Score(input, nil)
	second := engine.Score(input, nil)

	assert.Equal(t, first, second)
}

func TestEngine_Score_JDOverride(t *testing.T) {
	engine := newDefaultEngine(t)
	input := types.ResumeInput{Text: "Rust and Elixir"}

	assert.Equal(t, 0, engine.Score(input, nil).Scores[types.CategoryJDMatch])
	assert.Equal(t, 20, engine.Score(input, []string{"rust", "elixir"}).Scores[types.CategoryJDMatch])
	assert.Equal(t, 10, engine.Score(input, []string{"rust", "erlang"}).Scores[types.CategoryJDMatch])
	// a non-nil empty override disables the configured list
	assert.Equal(t, 0, engine.Score(types.ResumeInput{Text: "python"}, []string{}).Scores[types.CategoryJDMatch])
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	cfg.Weights["Charisma"] = 10

	_, err := NewEngine(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scoring config")
}

func TestNewEngine_CopiesConfig(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	engine, err := NewEngine(cfg)
	require.NoError(t, err)

	input := types.ResumeInput{Text: sampleResume, YearsExperience: 6}
	before := engine.Score(input, nil)

	cfg.Weights[types.CategoryEducation] = 0
	cfg.JDKeywords[0] = "cobol"
	cfg.Keywords[0].Keywords[0] = "fortran"

	assert.Equal(t, before, engine.Score(input, nil))
}

func TestEngine_ScoreNamed_RecordsEvent(t *testing.T) {
	sink := &scorelog.MemorySink{}
	engine := newDefaultEngine(t, WithSink(sink))

	result := engine.ScoreNamed(context.Background(), "alice.txt",
		types.ResumeInput{Text: sampleResume, YearsExperience: 6}, nil)

	entries := sink.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "alice.txt", entries[0].Filename)
	assert.Equal(t, result.TotalScore, entries[0].Score)
}

func TestEngine_ScoreNamed_NilSinkKeepsDefault(t *testing.T) {
	engine := newDefaultEngine(t, WithSink(nil))

	result := engine.ScoreNamed(context.Background(), "x.txt", types.ResumeInput{}, nil)
	assert.NotNil(t, result)
}

type failingSink struct{ calls int }

func (s *failingSink) Record(context.Context, string, int) error {
	s.calls++
	return errors.New("disk full")
}

func TestEngine_ScoreNamed_SinkFailureKeepsResult(t *testing.T) {
	sink := &failingSink{}
	engine := newDefaultEngine(t, WithSink(sink))
	input := types.ResumeInput{Text: sampleResume, YearsExperience: 6}

	result := engine.ScoreNamed(context.Background(), "x.txt", input, nil)

	assert.Equal(t, 1, sink.calls)
	assert.Equal(t, engine.Score(input, nil), result)
}

func TestEngine_WithJDNormalizer(t *testing.T) {
	aliases := strings.NewReplacer("js", "javascript", "golang", "go")
	norm := func(s string) string { return aliases.Replace(strings.ToLower(s)) }
	input := types.ResumeInput{Text: "Wrote JS and Go services"}
	jd := []string{"javascript", "golang"}

	plain := newDefaultEngine(t).Score(input, jd)
	assert.Equal(t, 0, plain.Scores[types.CategoryJDMatch])

	normalized := newDefaultEngine(t, WithJDNormalizer(norm)).Score(input, jd)
	assert.Equal(t, MaxJDScore, normalized.Scores[types.CategoryJDMatch])
	assert.Equal(t, plain.Scores[types.CategorySkills], normalized.Scores[types.CategorySkills])
}

func TestEngine_ConcurrentUse(t *testing.T) {
	sink := &scorelog.MemorySink{}
	engine := newDefaultEngine(t, WithSink(sink))
	want := engine.Score(types.ResumeInput{Text: sampleResume, YearsExperience: 6}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := engine.ScoreNamed(context.Background(), "r.txt",
				types.ResumeInput{Text: sampleResume, YearsExperience: 6}, nil)
			assert.Equal(t, want.TotalScore, got.TotalScore)
		}()
	}
	wg.Wait()

	assert.Len(t, sink.Entries(), 16)
}
