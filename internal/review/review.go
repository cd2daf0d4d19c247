// Package review asks an LLM for a screening verdict on a resume: a score out of 100
// and three highlight bullets. It complements the deterministic scoring engine and is
// never used to compute the engine's totals.
package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/cv-scorer/internal/llm"
	"github.com/jonathan/cv-scorer/internal/prompts"
)

const (
	// MaxScore is the top of the review scale
	MaxScore = 100
	// HighlightCount is the number of bullets requested from the model
	HighlightCount = 3
)

// ErrEmptyResume is returned when there is no resume text to review
var ErrEmptyResume = errors.New("resume text is empty")

// Review is the model's screening verdict.
type Review struct {
	Score      int      `json:"score"`
	Highlights []string `json:"highlights"`
}

// Reviewer produces screening reviews with an LLM client.
type Reviewer struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewReviewer creates a Reviewer using client.
func NewReviewer(client llm.Client) *Reviewer {
	return &Reviewer{client: client, tier: llm.TierStandard}
}

// BuildPrompt renders the screening prompt. An empty jobDescription selects the generic variant.
func BuildPrompt(resumeText, jobDescription string) (string, error) {
	key := "screening"
	if strings.TrimSpace(jobDescription) == "" {
		key = "screening-no-jd"
	}

	template, err := prompts.Get(prompts.ReviewFile, key)
	if err != nil {
		return "", err
	}

	return prompts.Format(template, map[string]string{
		"JobDescription": jobDescription,
		"Resume":         resumeText,
	}), nil
}

// Review asks the model to screen resumeText against jobDescription.
func (r *Reviewer) Review(ctx context.Context, resumeText, jobDescription string) (*Review, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyResume
	}

	prompt, err := BuildPrompt(resumeText, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to build review prompt: %w", err)
	}

	resp, err := r.client.GenerateJSON(ctx, prompt, r.tier)
	if err != nil {
		return nil, fmt.Errorf("review request failed: %w", err)
	}

	return ParseReview(resp)
}

// ParseReview decodes a model response, clamping the score to [0,100] and keeping at most
// three non-empty highlights.
func ParseReview(resp string) (*Review, error) {
	var rev Review
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(resp)), &rev); err != nil {
		return nil, fmt.Errorf("failed to parse review JSON: %w", err)
	}

	rev.Score = max(0, min(MaxScore, rev.Score))

	highlights := make([]string, 0, HighlightCount)
	for _, h := range rev.Highlights {
		h = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(h), "-•*"))
		if h == "" {
			continue
		}
		highlights = append(highlights, h)
		if len(highlights) == HighlightCount {
			break
		}
	}
	if len(highlights) == 0 {
		return nil, fmt.Errorf("review response has no highlights")
	}
	rev.Highlights = highlights

	return &rev, nil
}
