package scoring

import (
	"strings"

	"github.com/jonathan/cv-scorer/internal/types"
)

// maxFeedbackKeywords caps the matched keywords quoted in recommendations
const maxFeedbackKeywords = 5

var strengthSentences = map[types.Category]string{
	types.CategoryEducation:  "Your educational background is relevant and well-presented.",
	types.CategoryExperience: "Your work experience demonstrates relevant skills for this role.",
	types.CategorySkills:     "You have a strong technical skill set matching our requirements.",
	types.CategoryFormatting: "Your resume is well-structured and professional in presentation.",
	types.CategoryJDMatch:    "Your profile is well-aligned with the job requirements.",
}

var improvementSentences = map[types.Category]string{
	types.CategoryEducation:  "Consider highlighting your education more prominently or adding relevant courses/certifications.",
	types.CategoryExperience: "Try to provide more specific details about your roles and achievements.",
	types.CategorySkills:     "You could strengthen your technical skills section by adding more specific technologies.",
	types.CategoryFormatting: "Consider improving your resume format for better readability and structure.",
	types.CategoryJDMatch:    "Your resume could be better tailored to highlight skills relevant to the job description.",
}

// Closing sentences, selected by total score tier.
const (
	ClosingStrong   = "Overall, your profile is strong. If you've included a cover letter, ensure it highlights your enthusiasm for this specific role."
	ClosingModerate = "Consider adding more specific achievements with measurable results to stand out from other candidates."
	ClosingWeak     = "We recommend updating your resume to better highlight your qualifications that match the job requirements."
)

const (
	strongTotalTier   = 75
	moderateTotalTier = 50
)

// Feedback section headings.
const (
	HeadingStrengths       = "Strengths:"
	HeadingAreasToImprove  = "Areas to Improve:"
	HeadingRecommendations = "Recommendations:"
)

// ClosingSentence returns the recommendation closing for a total score.
func ClosingSentence(total int) string {
	switch {
	case total >= strongTotalTier:
		return ClosingStrong
	case total >= moderateTotalTier:
		return ClosingModerate
	default:
		return ClosingWeak
	}
}

// GenerateFeedback renders the strengths, areas to improve and recommendations blocks.
// Empty strength or improvement blocks are omitted; recommendations are always present.
// Blocks are separated by a single "\n", so output with no strengths starts directly at
// "Areas to Improve:" instead of with the blank line the plain-text original emitted.
func GenerateFeedback(scores types.CategoryScores, matchedKeywords []string, total int) string {
	var blocks []string

	if strengths := scores.Strengths(); len(strengths) > 0 {
		blocks = append(blocks, renderBlock(HeadingStrengths, sentencesFor(strengths, strengthSentences)))
	}
	if areas := scores.AreasToImprove(); len(areas) > 0 {
		blocks = append(blocks, renderBlock(HeadingAreasToImprove, sentencesFor(areas, improvementSentences)))
	}

	var recs []string
	if len(matchedKeywords) > 0 {
		quoted := matchedKeywords[:min(len(matchedKeywords), maxFeedbackKeywords)]
		recs = append(recs, "You've effectively included key terms like: "+strings.Join(quoted, ", ")+".")
	}
	recs = append(recs, ClosingSentence(total))
	blocks = append(blocks, renderBlock(HeadingRecommendations, recs))

	return strings.Join(blocks, "\n")
}

func sentencesFor(categories []types.Category, table map[types.Category]string) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if s, ok := table[c]; ok {
			out = append(out, s)
		}
	}
	return out
}

func renderBlock(heading string, lines []string) string {
	var sb strings.Builder
	sb.WriteString(heading)
	sb.WriteString("\n")
	for _, line := range lines {
		sb.WriteString("- ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
