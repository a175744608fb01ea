// Package fallback synthesizes deterministic career-path suggestions from
// the local catalog when the model is unavailable or returned nothing usable.
package fallback

import (
	"fmt"
	"net/url"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

// maxGapSkills caps how many required skills get a skill-gap entry.
const maxGapSkills = 3

// Generate builds career-path records for the given interests in input
// order. Interests missing from the catalog contribute nothing; career-path
// names are deduplicated first-seen-wins across interests. With no catalog
// hit at all it returns a single generic generalist record. Deterministic
// and safe on an empty interest list.
func Generate(interests []string) []types.CareerPath {
	var out []types.CareerPath
	seen := make(map[string]bool)

	for _, interest := range interests {
		for _, entry := range catalog.Lookup(interest) {
			if seen[entry.Path] {
				continue
			}
			seen[entry.Path] = true
			out = append(out, buildPath(entry, interest))
		}
	}

	if len(out) == 0 {
		return []types.CareerPath{generalistPath()}
	}
	return out
}

// buildPath assembles one catalog entry into a full CareerPath record.
func buildPath(entry catalog.Entry, interest string) types.CareerPath {
	gaps := make([]types.SkillGap, 0, maxGapSkills)
	missing := make([]string, 0, maxGapSkills)
	for i, skill := range entry.RequiredSkills {
		if i >= maxGapSkills {
			break
		}
		gaps = append(gaps, types.SkillGap{
			Skill:              skill,
			YourLevel:          types.LevelBeginner,
			RecommendedCourses: courseLinks(skill),
		})
		missing = append(missing, skill)
	}

	return types.CareerPath{
		Name:           entry.Path,
		RequiredSkills: entry.RequiredSkills,
		MissingSkills:  missing,
		WeakSkills:     []string{},
		ProjectSuggestions: []types.ProjectSuggestion{
			{
				Title:       fmt.Sprintf("Starter %s Portfolio Project", entry.Path),
				Description: fmt.Sprintf("Build a small end-to-end project that demonstrates the core skills of a %s and publish it with a write-up.", entry.Path),
			},
		},
		Roadmap:        defaultRoadmap(),
		Tags:           []string{interest},
		SkillGapReport: gaps,
	}
}

// courseLinks returns the two synthetic course recommendations for a skill:
// a YouTube search and a Coursera search, skill percent-encoded into the query.
func courseLinks(skill string) []types.Course {
	q := url.QueryEscape(skill)
	return []types.Course{
		{Title: fmt.Sprintf("%s tutorials on YouTube", skill), Link: "https://www.youtube.com/results?search_query=" + q},
		{Title: fmt.Sprintf("%s courses on Coursera", skill), Link: "https://www.coursera.org/search?query=" + q},
	}
}

// defaultRoadmap returns the fixed three-stage learning roadmap attached to
// every catalog-derived path.
func defaultRoadmap() []types.RoadmapStage {
	return []types.RoadmapStage{
		{Title: "Foundations", Steps: []string{
			"Learn the fundamentals of the first two required skills",
			"Complete one guided beginner course end to end",
		}},
		{Title: "Intermediate", Steps: []string{
			"Build two small projects applying what you learned",
			"Read production-quality code in the field and take notes",
		}},
		{Title: "Advanced", Steps: []string{
			"Contribute to an open source project in the field",
			"Prepare a portfolio and practice interview questions",
		}},
	}
}

// generalistPath is the record returned when no interest matched the catalog.
func generalistPath() types.CareerPath {
	return types.CareerPath{
		Name:               "Generalist Software Engineer",
		RequiredSkills:     []string{"Programming Fundamentals", "Data Structures", "Git", "Problem Solving"},
		MissingSkills:      []string{},
		WeakSkills:         []string{},
		ProjectSuggestions: []types.ProjectSuggestion{},
		Roadmap:            []types.RoadmapStage{},
		Tags:               []string{},
		SkillGapReport:     []types.SkillGap{},
	}
}
