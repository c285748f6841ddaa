package server

import (
	"encoding/json"
	"net/http"

	"github.com/careerwise/careerwise/internal/analysis"
)

// analyzeResumeRequest is the payload for a standalone resume review.
type analyzeResumeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
}

// handleAnalyzeResume returns the model's structured review of a resume.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req analyzeResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if s.llmClient == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Resume review requires an LLM API key")
		return
	}

	review, err := analysis.ReviewResume(r.Context(), s.llmClient, req.ResumeText)
	if err != nil {
		logHandlerError("Resume review failed", err)
		s.errorResponse(w, http.StatusBadGateway, "Resume review failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"review": review})
}

// analyzeMatchRequest is the payload for the combined score plus narrative
// comparison.
type analyzeMatchRequest struct {
	ResumeText     string   `json:"resume_text" validate:"required"`
	JobDescription string   `json:"job_description" validate:"required"`
	ExtraSkills    []string `json:"extra_skills,omitempty"`
}

// handleAnalyzeMatch runs the deterministic scorer and the model comparison
// together. Model failures degrade to scores-only output.
func (s *Server) handleAnalyzeMatch(w http.ResponseWriter, r *http.Request) {
	var req analyzeMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	comparison, err := s.analyzer.Compare(r.Context(), req.ResumeText, req.JobDescription, req.ExtraSkills)
	if err != nil {
		logHandlerError("Match analysis canceled", err)
		s.errorResponse(w, http.StatusGatewayTimeout, "Match analysis canceled")
		return
	}

	s.jsonResponse(w, http.StatusOK, comparison)
}
