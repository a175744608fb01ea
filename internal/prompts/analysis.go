// Package prompts embeds the LLM prompt templates and renders them with
// typed arguments. Prompt wording lives in JSON files next to this package
// so it can change without touching orchestration code.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

//go:embed *.json
var promptFiles embed.FS

// AnalysisArgs carries the profile substitutions for the career-analysis
// prompt. All fields are pre-formatted text, not raw domain values.
type AnalysisArgs struct {
	Academics string
	Interests string
	Resume    string
}

var (
	analysisOnce sync.Once
	analysisTmpl *template.Template
	analysisErr  error
)

// Analysis renders the career-analysis prompt. The embedded template is
// parsed on first use and reused afterwards.
func Analysis(args AnalysisArgs) (string, error) {
	analysisOnce.Do(func() {
		analysisTmpl, analysisErr = loadTemplate("analysis.json", "career-analysis")
	})
	if analysisErr != nil {
		return "", analysisErr
	}

	var sb strings.Builder
	if err := analysisTmpl.Execute(&sb, args); err != nil {
		return "", fmt.Errorf("failed to render career-analysis prompt: %w", err)
	}
	return sb.String(), nil
}

// MustAnalysis renders the career-analysis prompt, panicking on failure.
// The template is embedded, so a failure here is a build defect, not a
// runtime condition.
func MustAnalysis(args AnalysisArgs) string {
	prompt, err := Analysis(args)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// loadTemplate reads a keyed prompt file and parses the named entry.
func loadTemplate(filename, key string) (*template.Template, error) {
	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	text, ok := entries[key]
	if !ok {
		return nil, fmt.Errorf("prompt key %q not found in %s", key, filename)
	}

	tmpl, err := template.New(key).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template %q: %w", key, err)
	}
	return tmpl, nil
}
