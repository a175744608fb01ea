// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysisResult outputs a human-readable summary of the whole analysis,
// one box per career path plus the resume insights when present.
func (p *Printer) PrintAnalysisResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggested career paths: %d\n", len(result.SuggestedCareerPaths)))
	for i, path := range result.SuggestedCareerPaths {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, path.Name))
	}
	p.printBox("CAREER ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))

	for i := range result.SuggestedCareerPaths {
		p.PrintCareerPath(&result.SuggestedCareerPaths[i])
	}

	p.PrintResumeInsights(result.ResumeInsights)
}

// PrintCareerPath outputs one career path with its skill gaps and roadmap.
func (p *Printer) PrintCareerPath(path *types.CareerPath) {
	if path == nil {
		return
	}

	var sb strings.Builder

	if len(path.RequiredSkills) > 0 {
		skills := strings.Join(path.RequiredSkills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Required: %s\n", skills))
	}

	if len(path.SkillGapReport) > 0 {
		sb.WriteString("\nSkill Gaps:\n")
		count := min(len(path.SkillGapReport), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := path.SkillGapReport[i]
			sb.WriteString(fmt.Sprintf("  • %s", gap.Skill))
			if gap.YourLevel != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", gap.YourLevel))
			}
			sb.WriteString("\n")
		}
		if len(path.SkillGapReport) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(path.SkillGapReport)-maxItemsToShow))
		}
	}

	if len(path.Roadmap) > 0 {
		sb.WriteString("\nRoadmap:\n")
		for _, stage := range path.Roadmap {
			sb.WriteString(fmt.Sprintf("  %s (%d steps)\n", stage.Title, len(stage.Steps)))
		}
	}

	if len(path.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("\nTags: %s\n", strings.Join(path.Tags, ", ")))
	}

	p.printBox(strings.ToUpper(path.Name), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeInsights outputs fallback diagnostics when the live analysis
// did not produce usable output. Prints nothing for a nil insights block.
func (p *Printer) PrintResumeInsights(insights *types.ResumeInsights) {
	if insights == nil {
		return
	}

	var sb strings.Builder
	if len(insights.Pros) > 0 {
		sb.WriteString("Pros:\n")
		for _, pro := range insights.Pros {
			sb.WriteString(fmt.Sprintf("  + %s\n", pro))
		}
	}
	if len(insights.Cons) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Cons:\n")
		for _, con := range insights.Cons {
			sb.WriteString(fmt.Sprintf("  - %s\n", con))
		}
	}

	p.printBox("RESUME INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}
