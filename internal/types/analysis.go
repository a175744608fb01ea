// Package types provides type definitions for structured data used throughout the career-advisor system.
package types

// SkillLevel represents a student's assessed proficiency in a single skill.
type SkillLevel string

// Skill proficiency levels used in skill-gap reports.
const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
)

// Course is a single course recommendation attached to a skill gap.
type Course struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// SkillGap is a per-skill assessment with remediation courses.
type SkillGap struct {
	Skill              string     `json:"skill"`
	YourLevel          SkillLevel `json:"yourLevel"`
	RecommendedCourses []Course   `json:"recommendedCourses"`
}

// ProjectSuggestion is a portfolio project recommended for a career path.
type ProjectSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// RoadmapStage is one stage of a learning roadmap with ordered steps.
type RoadmapStage struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// CareerPath is one suggested occupation with its associated skills,
// courses, and roadmap. Produced either by the model (post-normalization)
// or by the fallback generator; consumed read-only by renderers/exporters.
type CareerPath struct {
	Name               string              `json:"name"`
	RequiredSkills     []string            `json:"requiredSkills"`
	MissingSkills      []string            `json:"missingSkills"`
	WeakSkills         []string            `json:"weakSkills"`
	ProjectSuggestions []ProjectSuggestion `json:"projectSuggestions"`
	Roadmap            []RoadmapStage      `json:"roadmap"`
	Tags               []string            `json:"tags"`
	SkillGapReport     []SkillGap          `json:"skillGapReport"`
}

// ResumeInsights summarizes strengths and weaknesses found in a resume.
// Nil when the model returned usable paths but no insights.
type ResumeInsights struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// AnalysisResult is the terminal output of one analysis request.
type AnalysisResult struct {
	SuggestedCareerPaths []CareerPath    `json:"suggestedCareerPaths"`
	ResumeInsights       *ResumeInsights `json:"resumeInsights,omitempty"`
}
