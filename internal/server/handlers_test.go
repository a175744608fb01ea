package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/export"
	"github.com/jonathan/career-advisor/internal/types"
)

// stubClient is an llm.Client returning canned output for handler tests.
type stubClient struct {
	output string
	err    error
}

func (c *stubClient) GenerateJSON(context.Context, string) (string, error) { return c.output, c.err }
func (c *stubClient) Model() string                                        { return "stub" }
func (c *stubClient) Close() error                                         { return nil }

func newTestServer(t *testing.T, client *stubClient) *Server {
	t.Helper()
	store := NewStore(time.Minute)
	t.Cleanup(store.Stop)
	return &Server{
		analyzer: advisor.New(client),
		store:    store,
		renderer: export.NewPDFRenderer(),
	}
}

func profileJSON() string {
	return `{"academic_details":{"tenth_percentage":85},"interests":["Web Development"]}`
}

func TestHandleAnalyze_JSONBody(t *testing.T) {
	s := newTestServer(t, &stubClient{output: `[{"name":"Frontend Developer","requiredSkills":["React"]}]`})

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(profileJSON()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.handleAnalyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AnalysisID)
	require.NotNil(t, resp.Result)
	require.Len(t, resp.Result.SuggestedCareerPaths, 1)
	assert.Equal(t, "Frontend Developer", resp.Result.SuggestedCareerPaths[0].Name)
	assert.Nil(t, resp.Result.ResumeInsights)
}

func TestHandleAnalyze_ModelDownStillSucceeds(t *testing.T) {
	s := newTestServer(t, &stubClient{err: errors.New("boom")})

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(profileJSON()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.handleAnalyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "model failure must not fail the request")
	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result.ResumeInsights)
	assert.Contains(t, resp.Result.ResumeInsights.Cons[0], "unavailable")
	assert.Len(t, resp.Result.SuggestedCareerPaths, 2)
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	s := newTestServer(t, &stubClient{})

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.handleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_MissingInterests(t *testing.T) {
	s := newTestServer(t, &stubClient{})

	req := httptest.NewRequest(http.MethodPost, "/analyze",
		strings.NewReader(`{"academic_details":{"tenth_percentage":85},"interests":[]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.handleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_MultipartWithResume(t *testing.T) {
	s := newTestServer(t, &stubClient{output: `[{"name":"Frontend Developer"}]`})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("profile", profileJSON()))
	fw, err := mw.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Jane Doe, frontend intern"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	s.handleAnalyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHandleGetAnalysis(t *testing.T) {
	s := newTestServer(t, &stubClient{})
	id := s.store.Put(&types.AnalysisResult{
		SuggestedCareerPaths: []types.CareerPath{{Name: "Data Analyst"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/analyses/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	s.handleGetAnalysis(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Data Analyst", result.SuggestedCareerPaths[0].Name)
}

func TestHandleGetAnalysis_NotFound(t *testing.T) {
	s := newTestServer(t, &stubClient{})

	req := httptest.NewRequest(http.MethodGet, "/analyses/5c0d4f77-4c0b-4a5a-8b1c-0a9a0b1c2d3e", nil)
	req.SetPathValue("id", "5c0d4f77-4c0b-4a5a-8b1c-0a9a0b1c2d3e")
	rec := httptest.NewRecorder()

	s.handleGetAnalysis(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetAnalysis_BadID(t *testing.T) {
	s := newTestServer(t, &stubClient{})

	req := httptest.NewRequest(http.MethodGet, "/analyses/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	s.handleGetAnalysis(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExportJSON(t *testing.T) {
	s := newTestServer(t, &stubClient{})
	id := s.store.Put(&types.AnalysisResult{
		SuggestedCareerPaths: []types.CareerPath{{Name: "Data Analyst"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/analyses/"+id.String()+"/report.json", nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	s.handleExportJSON(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	disposition := rec.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "career-analysis-")
	assert.Contains(t, disposition, ".json")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "{\n"), "export is pretty-printed")
}

func TestHandleExportPDF_PathNotFound(t *testing.T) {
	s := newTestServer(t, &stubClient{})
	id := s.store.Put(&types.AnalysisResult{
		SuggestedCareerPaths: []types.CareerPath{{Name: "Data Analyst"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/analyses/"+id.String()+"/paths/Astronaut/report.pdf", nil)
	req.SetPathValue("id", id.String())
	req.SetPathValue("name", "Astronaut")
	rec := httptest.NewRecorder()

	s.handleExportPDF(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFindPath_SanitizedNameMatch(t *testing.T) {
	result := &types.AnalysisResult{
		SuggestedCareerPaths: []types.CareerPath{{Name: "Machine Learning Engineer"}},
	}

	assert.NotNil(t, findPath(result, "Machine Learning Engineer"))
	assert.NotNil(t, findPath(result, "Machine-Learning-Engineer"))
	assert.NotNil(t, findPath(result, "machine-learning-engineer"))
	assert.Nil(t, findPath(result, "Astronaut"))
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, &stubClient{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.handleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
