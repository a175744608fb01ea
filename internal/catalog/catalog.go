// Package catalog provides the static interest-to-career-path reference
// table used when the external model is unavailable or unusable.
package catalog

import "strings"

// Entry is one catalog career path: a name and its required skills in
// recommended learning order.
type Entry struct {
	Path           string
	RequiredSkills []string
}

// paths maps a canonical interest label (lowercased) to its career paths.
// Path names are unique across the whole table so cross-interest
// deduplication never collapses unrelated entries.
var paths = map[string][]Entry{
	"artificial intelligence": {
		{Path: "Machine Learning Engineer", RequiredSkills: []string{"Python", "Machine Learning", "Deep Learning", "MLOps", "Mathematics"}},
		{Path: "AI Research Assistant", RequiredSkills: []string{"Python", "PyTorch", "Research Methods", "Linear Algebra"}},
	},
	"web development": {
		{Path: "Full-Stack Developer", RequiredSkills: []string{"HTML/CSS", "JavaScript", "React", "Node.js", "SQL"}},
		{Path: "Frontend Developer", RequiredSkills: []string{"HTML/CSS", "JavaScript", "React", "Accessibility"}},
	},
	"data science": {
		{Path: "Data Scientist", RequiredSkills: []string{"Python", "Statistics", "Pandas", "Data Visualization", "SQL"}},
		{Path: "Data Analyst", RequiredSkills: []string{"SQL", "Excel", "Data Visualization", "Statistics"}},
	},
	"cybersecurity": {
		{Path: "Security Analyst", RequiredSkills: []string{"Networking", "Linux", "SIEM Tools", "Incident Response"}},
		{Path: "Penetration Tester", RequiredSkills: []string{"Networking", "Scripting", "Web Security", "Ethical Hacking"}},
	},
	"cloud computing": {
		{Path: "Cloud Engineer", RequiredSkills: []string{"AWS", "Linux", "Terraform", "Networking"}},
		{Path: "Site Reliability Engineer", RequiredSkills: []string{"Kubernetes", "Monitoring", "Go", "Incident Management"}},
	},
	"mobile development": {
		{Path: "Android Developer", RequiredSkills: []string{"Kotlin", "Android SDK", "REST APIs"}},
		{Path: "iOS Developer", RequiredSkills: []string{"Swift", "SwiftUI", "REST APIs"}},
	},
	"game development": {
		{Path: "Game Developer", RequiredSkills: []string{"C#", "Unity", "3D Mathematics", "Game Design"}},
	},
	"ui/ux design": {
		{Path: "UX Designer", RequiredSkills: []string{"Figma", "User Research", "Wireframing", "Prototyping"}},
	},
	"devops": {
		{Path: "DevOps Engineer", RequiredSkills: []string{"CI/CD", "Docker", "Kubernetes", "Scripting"}},
	},
	"blockchain": {
		{Path: "Blockchain Developer", RequiredSkills: []string{"Solidity", "Smart Contracts", "Cryptography"}},
	},
}

// Lookup returns the career paths for an interest label, or nil if the
// interest is not in the catalog. Matching is case-insensitive and ignores
// surrounding whitespace; the label text itself is not fuzzy-matched.
func Lookup(interest string) []Entry {
	return paths[strings.ToLower(strings.TrimSpace(interest))]
}
