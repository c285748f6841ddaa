package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/careerwise/careerwise/internal/extraction"
	"github.com/careerwise/careerwise/internal/ingestion"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// handleExtract accepts a PDF upload (multipart field "file") and returns
// its text. Unreadable files return an empty text field rather than an
// error so callers can fall back to manual paste.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Expected multipart form with a 'file' field")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'file' field in form")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	text, err := extraction.Text(data)
	if err != nil {
		logHandlerError("PDF extraction failed", err)
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}

// ingestURLRequest is the payload for fetching a job posting by URL.
type ingestURLRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// handleIngestURL fetches a job posting page and returns its main text.
func (s *Server) handleIngestURL(w http.ResponseWriter, r *http.Request) {
	var req ingestURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	text, err := ingestion.FetchJobDescription(r.Context(), req.URL)
	if err != nil {
		logHandlerError("Job description fetch failed", err)
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job description from URL")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}
