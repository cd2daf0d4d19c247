package scoring

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/cv-scorer/internal/config"
	"github.com/jonathan/cv-scorer/internal/scorelog"
	"github.com/jonathan/cv-scorer/internal/types"
)

// Engine scores resumes against an immutable scoring configuration.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cfg      *config.ScoringConfig
	keywords *KeywordMatcher
	sink     scorelog.Sink
	jdNorm   func(string) string
}

// Option configures an Engine.
type Option func(*Engine)

// WithSink sets the sink that receives (filename, total score) events from ScoreNamed.
func WithSink(sink scorelog.Sink) Option {
	return func(e *Engine) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// WithJDNormalizer rewrites both the resume text and the JD keywords with norm before
// JD matching, so spelling variants (e.g. "JS" and "javascript") compare equal.
// Other categories always see the text unchanged.
func WithJDNormalizer(norm func(string) string) Option {
	return func(e *Engine) {
		e.jdNorm = norm
	}
}

// NewEngine validates cfg and returns an engine holding a private copy of it.
// A nil cfg selects config.DefaultScoringConfig.
func NewEngine(cfg *config.ScoringConfig, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultScoringConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}

	owned := cfg.Clone()
	e := &Engine{
		cfg:      owned,
		keywords: NewKeywordMatcher(owned.Keywords),
		sink:     scorelog.NopSink{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Weights returns a copy of the engine's weight table.
func (e *Engine) Weights() types.WeightTable {
	return e.cfg.Weights.Clone()
}

// Score runs every sub-scorer on input and builds the result.
// jdKeywords overrides the configured JD keyword list when non-nil.
// Score never fails: empty or unmatched text degrades to minimum scores.
func (e *Engine) Score(input types.ResumeInput, jdKeywords []string) *types.ScoringResult {
	if jdKeywords == nil {
		jdKeywords = e.cfg.JDKeywords
	}
	text := input.Text

	keywordScore, matched := e.keywords.Score(text)

	scores := types.CategoryScores{
		types.CategoryEducation:  ScoreEducation(text),
		types.CategoryExperience: ScoreExperience(text, input.YearsExperience),
		types.CategorySkills:     ScoreSkills(text),
		types.CategoryFormatting: ScoreFormatting(text),
		types.CategoryJDMatch:    ScoreJDMatch(text, jdKeywords),
	}

	total := CalculateTotalScore(scores, e.cfg.Weights)

	return &types.ScoringResult{
		Scores:          scores,
		TotalScore:      total,
		KeywordScore:    keywordScore,
		MatchedKeywords: matched,
		Feedback:        GenerateFeedback(scores, matched, total),
	}
}

func (e *Engine) scoreJDMatch(text string, jdKeywords []string) int {
	if e.jdNorm == nil {
		return ScoreJDMatch(text, jdKeywords)
	}
	normalized := make([]string, len(jdKeywords))
	for i, kw := range jdKeywords {
		normalized[i] = e.jdNorm(kw)
	}
	return ScoreJDMatch(e.jdNorm(text), normalized)
}

// ScoreNamed scores input and emits (filename, total score) to the configured sink.
// Sink failures are logged and do not affect the result.
func (e *Engine) ScoreNamed(ctx context.Context, filename string, input types.ResumeInput, jdKeywords []string) *types.ScoringResult {
	result := e.Score(input, jdKeywords)
	if err := e.sink.Record(ctx, filename, result.TotalScore); err != nil {
		log.Printf("Warning: failed to record score for %s: %v", filename, err)
	}
	return result
}
