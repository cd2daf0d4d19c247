// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-scorer/internal/review"
	"github.com/jonathan/cv-scorer/internal/scorelog"
	"github.com/jonathan/cv-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// historyTimeLayout formats event times in the history box
	historyTimeLayout = "2006-01-02 15:04"
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most width characters, marking the cut with "..."
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// scoreBar renders a category score as a fixed-width bar
func scoreBar(score int) string {
	filled := max(0, min(types.MaxCategoryScore, score))
	return strings.Repeat("█", filled) + strings.Repeat("░", types.MaxCategoryScore-filled)
}

// PrintScoringResult outputs the category breakdown, total and matched keywords of one resume.
func (p *Printer) PrintScoringResult(name string, result *types.ScoringResult, maxTotal int) {
	if result == nil {
		return
	}

	var sb strings.Builder
	for _, c := range types.Categories {
		score, ok := result.Scores[c]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-11s %2d/%d %s\n", c, score, types.MaxCategoryScore, scoreBar(score)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total:    %d/%d\n", result.TotalScore, maxTotal))
	sb.WriteString(fmt.Sprintf("Keywords: %d/%d", result.KeywordScore, types.MaxCategoryScore))

	if len(result.MatchedKeywords) > 0 {
		sb.WriteString("\n\nMatched keywords:\n")
		count := min(len(result.MatchedKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MatchedKeywords[i]))
		}
		if len(result.MatchedKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MatchedKeywords)-maxItemsToShow))
		}
	}

	p.printBox("SCORE: "+name, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJDKeywords outputs the JD keywords in use and those the resume is missing.
func (p *Printer) PrintJDKeywords(keywords, missing []string) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("JD keywords (%d):\n", len(keywords)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(keywords, ", ")))

	if len(missing) > 0 {
		sb.WriteString("\nMissing from resume:\n")
		for _, kw := range missing {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", kw))
		}
	}

	p.printBox("JOB DESCRIPTION MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHistory outputs the scoring events read from the log, oldest first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHistory(entries []scorelog.Entry) {
	if len(entries) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "No score logs found.")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for _, e := range entries {
		when := "                "
		if !e.Time.IsZero() {
			when = e.Time.Local().Format(historyTimeLayout)
		}
		sb.WriteString(fmt.Sprintf("%s  %3d  %s\n", when, e.Score, e.Filename))
	}

	p.printBox(fmt.Sprintf("SCORE HISTORY (%d)", len(entries)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReview outputs an LLM screening review.
func (p *Printer) PrintReview(r *review.Review) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n", r.Score))
	if len(r.Highlights) > 0 {
		sb.WriteString("\n")
		for _, h := range r.Highlights {
			sb.WriteString(fmt.Sprintf("• %s\n", h))
		}
	}

	p.printBox("SCREENING REVIEW", strings.TrimSuffix(sb.String(), "\n"))
}
