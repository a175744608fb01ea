package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/fallback"
	"github.com/jonathan/career-advisor/internal/types"
)

func TestValidateAnalysisResult_FallbackOutputConforms(t *testing.T) {
	result := &types.AnalysisResult{
		SuggestedCareerPaths: fallback.Generate([]string{"Artificial Intelligence", "Web Development"}),
		ResumeInsights: &types.ResumeInsights{
			Pros: []string{"p"},
			Cons: []string{"c"},
		},
	}

	doc, err := json.MarshalIndent(result, "", "  ")
	require.NoError(t, err)

	assert.NoError(t, ValidateAnalysisResult(doc))
}

func TestValidateAnalysisResult_MissingPaths(t *testing.T) {
	err := ValidateAnalysisResult([]byte(`{"resumeInsights":{"pros":[],"cons":[]}}`))

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateAnalysisResult_BadSkillLevel(t *testing.T) {
	doc := []byte(`{
		"suggestedCareerPaths": [
			{"name": "X", "skillGapReport": [{"skill": "Go", "yourLevel": "Wizard"}]}
		]
	}`)

	err := ValidateAnalysisResult(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yourLevel")
}

func TestValidateAnalysisResult_NotJSON(t *testing.T) {
	assert.Error(t, ValidateAnalysisResult([]byte("nope")))
}
