package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-advisor/internal/export"
	"github.com/jonathan/career-advisor/internal/resume"
	"github.com/jonathan/career-advisor/internal/types"
)

// maxResumeUploadBytes caps the resume part of a multipart analyze request.
const maxResumeUploadBytes = 8 << 20 // 8 MiB

// AnalyzeResponse represents the response for POST /analyze.
type AnalyzeResponse struct {
	AnalysisID string                `json:"analysis_id"`
	Result     *types.AnalysisResult `json:"result"`
}

// handleAnalyze runs one profile analysis. Accepts either a JSON
// ProfileInput body or a multipart form with a "profile" JSON field and an
// optional "resume" file (PDF or plain text).
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	input, err := s.decodeAnalyzeRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := input.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}

	// Analyze never fails: model errors degrade to the catalog fallback.
	result := s.analyzer.Analyze(r.Context(), *input)
	id := s.store.Put(result)

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		AnalysisID: id.String(),
		Result:     result,
	})
}

// decodeAnalyzeRequest extracts the ProfileInput from either request form.
func (s *Server) decodeAnalyzeRequest(r *http.Request) (*types.ProfileInput, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = "application/json"
	}

	if mediaType != "multipart/form-data" {
		var input types.ProfileInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return nil, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
		}
		return &input, nil
	}

	if err := r.ParseMultipartForm(maxResumeUploadBytes); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid multipart form: " + err.Error()}
	}

	profileJSON := r.FormValue("profile")
	if profileJSON == "" {
		return nil, &ErrValidation{Field: "profile", Message: "profile field is required"}
	}

	var input types.ProfileInput
	if err := json.Unmarshal([]byte(profileJSON), &input); err != nil {
		return nil, &ErrValidation{Field: "profile", Message: "invalid JSON: " + err.Error()}
	}

	file, _, err := r.FormFile("resume")
	if err == http.ErrMissingFile {
		return &input, nil
	}
	if err != nil {
		return nil, &ErrValidation{Field: "resume", Message: "could not read resume upload: " + err.Error()}
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeUploadBytes))
	if err != nil {
		return nil, &ErrValidation{Field: "resume", Message: "could not read resume upload: " + err.Error()}
	}

	text, err := resume.ExtractText(data)
	if err != nil {
		return nil, &ErrValidation{Field: "resume", Message: "could not extract resume text: " + err.Error()}
	}
	input.ResumeText = text
	return &input, nil
}

// handleGetAnalysis returns a stored analysis result.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := s.lookupAnalysis(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleExportJSON serves the pretty-printed report as a download.
func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	result, err := s.lookupAnalysis(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	data, err := export.MarshalReport(result)
	if err != nil {
		log.Printf("JSON export failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Export failed, please retry")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.JSONReportFilename(time.Now())))
	_, _ = w.Write(data)
}

// handleExportPDF renders one career path as a PDF download. The {name}
// segment matches either the exact path name or its sanitized form.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	result, err := s.lookupAnalysis(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	name := r.PathValue("name")
	cp := findPath(result, name)
	if cp == nil {
		notFound := &ErrPathNotFound{Name: name}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	data, err := s.renderer.RenderCareerPath(r.Context(), *cp)
	if err != nil {
		log.Printf("PDF export failed for %q: %v", cp.Name, err)
		s.errorResponse(w, http.StatusInternalServerError, "Export failed, please retry")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.SanitizePathName(cp.Name)+".pdf"))
	_, _ = w.Write(data)
}

// lookupAnalysis resolves the {id} path segment into a stored result.
func (s *Server) lookupAnalysis(r *http.Request) (*types.AnalysisResult, error) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: "invalid analysis ID format"}
	}

	result := s.store.Get(id)
	if result == nil {
		return nil, &ErrAnalysisNotFound{ID: id}
	}
	return result, nil
}

// findPath locates a career path by exact or sanitized name.
func findPath(result *types.AnalysisResult, name string) *types.CareerPath {
	for i := range result.SuggestedCareerPaths {
		cp := &result.SuggestedCareerPaths[i]
		if cp.Name == name || strings.EqualFold(export.SanitizePathName(cp.Name), name) {
			return cp
		}
	}
	return nil
}
