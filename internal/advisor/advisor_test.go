package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/types"
)

// fakeClient is an llm.Client that returns canned output.
type fakeClient struct {
	output string
	err    error

	lastPrompt string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.output, f.err
}

func (f *fakeClient) Model() string { return "fake-model" }
func (f *fakeClient) Close() error  { return nil }

func testInput() types.ProfileInput {
	twelfth := 85.0
	return types.ProfileInput{
		ResumeText: "Built a small web app in Go.",
		AcademicDetails: types.AcademicDetails{
			TenthPercentage:   88.5,
			TwelfthPercentage: &twelfth,
		},
		Interests: []string{"Artificial Intelligence"},
	}
}

func TestAnalyze_ModelFailureFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	result := New(client).Analyze(context.Background(), testInput())

	require.NotNil(t, result)
	assert.Len(t, result.SuggestedCareerPaths, 2, "AI interest yields two catalog paths")
	require.NotNil(t, result.ResumeInsights)
	require.NotEmpty(t, result.ResumeInsights.Cons)
	assert.Contains(t, result.ResumeInsights.Cons[0], "unavailable")
}

func TestAnalyze_EmptyModelOutputFallsBack(t *testing.T) {
	client := &fakeClient{output: `{"suggestedCareerPaths":[]}`}
	result := New(client).Analyze(context.Background(), testInput())

	require.NotNil(t, result)
	assert.Len(t, result.SuggestedCareerPaths, 2)
	require.NotNil(t, result.ResumeInsights)
	require.NotEmpty(t, result.ResumeInsights.Cons)
	assert.Contains(t, result.ResumeInsights.Cons[0], "empty or unusable")
}

func TestAnalyze_GarbageModelOutputFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"not JSON at all", "I am sorry, I cannot help with that."},
		{"scalar JSON", "42"},
		{"object with no arrays", `{"verdict":"promising"}`},
		{"records of wrong type", `[{"name": 12, "requiredSkills": "Go"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{output: tt.output}
			result := New(client).Analyze(context.Background(), testInput())

			require.NotNil(t, result)
			require.NotNil(t, result.ResumeInsights, "fallback must attach insights")
			assert.NotEmpty(t, result.SuggestedCareerPaths)
		})
	}
}

func TestAnalyze_WellFormedArrayReturnedUnchanged(t *testing.T) {
	client := &fakeClient{output: `[
		{"name":"Backend Engineer","requiredSkills":["Go","SQL"],"missingSkills":["Kubernetes"],"tags":["Backend"]},
		{"name":"Data Engineer","requiredSkills":["Python"]},
		{"name":"Platform Engineer"},
		{"name":"SRE"},
		{"name":"Solutions Architect"}
	]`}

	result := New(client).Analyze(context.Background(), testInput())

	require.NotNil(t, result)
	require.Len(t, result.SuggestedCareerPaths, 5)
	assert.Nil(t, result.ResumeInsights, "model-backed results carry no insights")

	first := result.SuggestedCareerPaths[0]
	assert.Equal(t, "Backend Engineer", first.Name)
	assert.Equal(t, []string{"Go", "SQL"}, first.RequiredSkills)
	assert.Equal(t, []string{"Kubernetes"}, first.MissingSkills)
	assert.Equal(t, []string{"Backend"}, first.Tags)
}

func TestAnalyze_WrappedObjectOutput(t *testing.T) {
	client := &fakeClient{output: `{"suggestedCareerPaths":[{"name":"ML Engineer","skillGapReport":[{"skill":"PyTorch","yourLevel":"Intermediate","recommendedCourses":[{"title":"Course","link":"https://example.com"}]}]}]}`}

	result := New(client).Analyze(context.Background(), testInput())

	require.Len(t, result.SuggestedCareerPaths, 1)
	cp := result.SuggestedCareerPaths[0]
	assert.Equal(t, "ML Engineer", cp.Name)
	require.Len(t, cp.SkillGapReport, 1)
	assert.Equal(t, types.LevelIntermediate, cp.SkillGapReport[0].YourLevel)
}

func TestAnalyze_PromptCarriesProfile(t *testing.T) {
	client := &fakeClient{output: `[{"name":"Anything"}]`}
	New(client).Analyze(context.Background(), testInput())

	assert.Contains(t, client.lastPrompt, "88.5")
	assert.Contains(t, client.lastPrompt, "Artificial Intelligence")
	assert.Contains(t, client.lastPrompt, "Built a small web app in Go.")
}

func TestDecodePaths_Lenient(t *testing.T) {
	items := []any{map[string]any{"name": "X", "unknownField": true}}

	paths, err := decodePaths(items)
	require.NoError(t, err, "unknown fields are ignored")
	require.Len(t, paths, 1)
	assert.Equal(t, "X", paths[0].Name)
}

func TestDecodePaths_TypeMismatchFailsBatch(t *testing.T) {
	items := []any{
		map[string]any{"name": "OK"},
		map[string]any{"name": "Bad", "requiredSkills": "not-an-array"},
	}

	_, err := decodePaths(items)
	require.Error(t, err)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
