package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/careerwise/careerwise/internal/scoring"
)

// matchRequest is the payload for deterministic resume/JD scoring.
type matchRequest struct {
	ResumeText     string   `json:"resume_text" validate:"required"`
	JobDescription string   `json:"job_description" validate:"required"`
	ExtraSkills    []string `json:"extra_skills,omitempty"`
}

// handleMatch scores a resume against a job description without calling
// the model.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	report := s.scorer.ComputeMatch(req.ResumeText, req.JobDescription, req.ExtraSkills)
	s.jsonResponse(w, http.StatusOK, report)
}

// skillsRequest is the payload for standalone skill extraction.
type skillsRequest struct {
	Text        string   `json:"text" validate:"required"`
	ExtraSkills []string `json:"extra_skills,omitempty"`
}

// handleSkills extracts known skill keywords from free text.
func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	var req skillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	skills := scoring.ExtractSkills(req.Text, req.ExtraSkills)
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

func logHandlerError(context string, err error) {
	log.Printf("%s: %v", context, err)
}
