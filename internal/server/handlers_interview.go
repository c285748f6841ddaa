package server

import (
	"encoding/json"
	"net/http"

	"github.com/careerwise/careerwise/internal/interview"
)

// questionsRequest is the payload for question generation.
type questionsRequest struct {
	JobTitle       string `json:"job_title,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
	Mode           string `json:"mode,omitempty" validate:"omitempty,oneof=behavioral technical"`
	Level          string `json:"level,omitempty"`
	Count          int    `json:"count,omitempty" validate:"omitempty,min=1,max=10"`
}

func (q questionsRequest) options() interview.QuestionOptions {
	return interview.QuestionOptions{
		JobTitle:       q.JobTitle,
		JobDescription: q.JobDescription,
		Mode:           q.Mode,
		Level:          q.Level,
		Count:          q.Count,
	}
}

// handleQuestions generates interview questions for a role. Falls back to
// the built-in question bank when the model is unavailable.
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	questions := interview.GenerateQuestions(r.Context(), s.llmClient, req.options())
	s.jsonResponse(w, http.StatusOK, map[string]any{"questions": questions})
}

// critiqueRequest is the payload for a standalone answer critique.
type critiqueRequest struct {
	Question       string `json:"question" validate:"required"`
	Answer         string `json:"answer" validate:"required"`
	Mode           string `json:"mode,omitempty" validate:"omitempty,oneof=behavioral technical"`
	JobDescription string `json:"job_description,omitempty"`
}

// handleCritique critiques one interview answer. Model failures fall back
// to the deterministic rubric.
func (s *Server) handleCritique(w http.ResponseWriter, r *http.Request) {
	var req critiqueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	critique := interview.CritiqueAnswer(r.Context(), s.llmClient, interview.CritiqueRequest{
		Question:       req.Question,
		Answer:         req.Answer,
		Mode:           req.Mode,
		JobDescription: req.JobDescription,
	})
	s.jsonResponse(w, http.StatusOK, critique)
}

// handleCreateSession starts a multi-turn practice session.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req questionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	opts := req.options()
	questions := interview.GenerateQuestions(r.Context(), s.llmClient, opts)
	session := s.sessions.Create(opts, questions)
	s.jsonResponse(w, http.StatusCreated, session)
}

// handleGetSession returns the current state of a practice session.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, httpStatusFor(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, session)
}

// answerRequest is the payload for answering a session's current question.
type answerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// handleSubmitAnswer critiques the answer to the session's current
// question and advances the session.
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	id := r.PathValue("id")
	session, err := s.sessions.Get(id)
	if err != nil {
		s.errorResponse(w, httpStatusFor(err), err.Error())
		return
	}
	if session.Done() {
		completeErr := &interview.ErrSessionComplete{ID: id}
		s.errorResponse(w, httpStatusFor(completeErr), completeErr.Error())
		return
	}

	critique := interview.CritiqueAnswer(r.Context(), s.llmClient, interview.CritiqueRequest{
		Question: session.CurrentQuestion(),
		Answer:   req.Answer,
		Mode:     session.Mode,
	})

	updated, err := s.sessions.Submit(id, req.Answer, critique)
	if err != nil {
		s.errorResponse(w, httpStatusFor(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}
