package advisor

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-advisor/internal/prompts"
	"github.com/jonathan/career-advisor/internal/types"
)

// BuildPrompt constructs the analysis instruction from the student profile.
func BuildPrompt(input types.ProfileInput) string {
	resume := strings.TrimSpace(input.ResumeText)
	if resume == "" {
		resume = "(no resume provided)"
	}

	interests := strings.Join(input.Interests, ", ")
	if interests == "" {
		interests = "(none stated)"
	}

	return prompts.MustAnalysis(prompts.AnalysisArgs{
		Academics: formatAcademics(input.AcademicDetails),
		Interests: interests,
		Resume:    resume,
	})
}

// formatAcademics renders the academic percentages for the prompt,
// omitting figures the student did not supply.
func formatAcademics(a types.AcademicDetails) string {
	parts := []string{fmt.Sprintf("10th grade: %.1f%%", a.TenthPercentage)}
	if a.TwelfthPercentage != nil {
		parts = append(parts, fmt.Sprintf("12th grade: %.1f%%", *a.TwelfthPercentage))
	}
	if a.DiplomaUGPercentage != nil {
		parts = append(parts, fmt.Sprintf("diploma/undergraduate: %.1f%%", *a.DiplomaUGPercentage))
	}
	return strings.Join(parts, ", ")
}
