// Package advisor orchestrates a single profile analysis: prompt
// construction, model invocation, response normalization, and the catalog
// fallback policy. Analyze always produces a usable result; model failures
// are logged and absorbed, never surfaced to the caller.
package advisor

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/career-advisor/internal/fallback"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/normalize"
	"github.com/jonathan/career-advisor/internal/types"
)

// Analyzer runs profile analyses against an LLM client.
type Analyzer struct {
	client llm.Client
}

// New creates an Analyzer backed by the given client.
func New(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// fallbackReason discriminates why the local catalog was substituted.
type fallbackReason int

const (
	reasonModelUnavailable fallbackReason = iota
	reasonEmptyOutput
)

// Analyze performs one analysis request. A single model attempt, no retry:
// on call failure, empty normalization, or undecodable records the catalog
// fallback is substituted with generic resume insights naming the cause.
func (a *Analyzer) Analyze(ctx context.Context, input types.ProfileInput) *types.AnalysisResult {
	prompt := BuildPrompt(input)

	raw, err := a.client.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("[advisor] model call failed, substituting catalog fallback: %v",
			&APICallError{Message: "career analysis request", Cause: err})
		return a.fallbackResult(input, reasonModelUnavailable)
	}

	items := normalize.CareerPaths(raw)
	if len(items) == 0 {
		log.Printf("[advisor] model output had no recognizable career paths, substituting catalog fallback")
		return a.fallbackResult(input, reasonEmptyOutput)
	}

	paths, err := decodePaths(items)
	if err != nil {
		log.Printf("[advisor] %v, substituting catalog fallback", err)
		return a.fallbackResult(input, reasonEmptyOutput)
	}

	// Model output is trusted at field level once it decodes; resume
	// insights are only attached on the fallback path.
	return &types.AnalysisResult{SuggestedCareerPaths: paths}
}

// decodePaths converts normalized generic records into typed career paths.
// Records are decoded leniently: absent fields stay zero-valued, but a type
// mismatch anywhere fails the whole batch so the fallback can take over.
func decodePaths(items []any) ([]types.CareerPath, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return nil, &DecodeError{Message: "failed to re-encode normalized records", Cause: err}
	}

	var paths []types.CareerPath
	if err := json.Unmarshal(data, &paths); err != nil {
		return nil, &DecodeError{Message: "career-path records did not match expected shape", Cause: err}
	}
	if len(paths) == 0 {
		return nil, &DecodeError{Message: "no career-path records after decoding"}
	}
	return paths, nil
}

// fallbackResult builds the catalog-derived result with generic insights.
func (a *Analyzer) fallbackResult(input types.ProfileInput, reason fallbackReason) *types.AnalysisResult {
	cons := "The AI returned empty or unusable output; default suggestions were generated from the local career catalog."
	if reason == reasonModelUnavailable {
		cons = "The live analysis service was unavailable; default suggestions were generated from the local career catalog."
	}

	return &types.AnalysisResult{
		SuggestedCareerPaths: fallback.Generate(input.Interests),
		ResumeInsights: &types.ResumeInsights{
			Pros: []string{
				"Your stated interests map to well-established career paths",
				"Each suggested path includes a concrete starter roadmap",
			},
			Cons: []string{cons},
		},
	}
}
