package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerwise/careerwise/internal/analysis"
	"github.com/careerwise/careerwise/internal/llm"
)

// stubClient returns canned responses for both generation modes.
type stubClient struct {
	text    string
	jsonOut string
	err     error
}

func (c *stubClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.text, c.err
}

func (c *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.jsonOut, c.err
}

func (c *stubClient) Close() error { return nil }

// newTestServer builds a server without a real LLM backend. A non-nil
// client swaps in a stub.
func newTestServer(t *testing.T, client llm.Client) *Server {
	t.Helper()

	s, err := New(context.Background(), Config{Port: 0})
	require.NoError(t, err)

	if client != nil {
		s.llmClient = client
		s.analyzer = analysis.NewAnalyzer(client, s.scorer)
	}
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["llm_available"])
}

func TestMatchEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/match", map[string]any{
		"resume_text":     "Senior engineer with Python and SQL experience",
		"job_description": "Looking for Python and AWS skills",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Cosine          float64  `json:"cosine"`
		SkillsOverlap   float64  `json:"skills_overlap"`
		Hybrid          float64  `json:"hybrid"`
		ResumeSkills    []string `json:"resume_skills"`
		EngineAvailable bool     `json:"engine_available"`
	}
	decodeBody(t, rec, &body)

	assert.True(t, body.EngineAvailable)
	assert.Contains(t, body.ResumeSkills, "python")
	assert.Contains(t, body.ResumeSkills, "sql")
	assert.GreaterOrEqual(t, body.Hybrid, 0.0)
	assert.LessOrEqual(t, body.Hybrid, 1.0)
}

func TestMatchEndpointMissingField(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/match", map[string]any{
		"resume_text": "Python developer",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Contains(t, body["error"], "required")
}

func TestMatchEndpointInvalidJSON(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSkillsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/skills", map[string]any{
		"text":         "Built C++ services on Kubernetes, provisioned with Terraform",
		"extra_skills": []string{"Terraform"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Skills []string `json:"skills"`
	}
	decodeBody(t, rec, &body)
	assert.ElementsMatch(t, []string{"c++", "kubernetes", "terraform"}, body.Skills)
}

func TestAnalyzeResumeRequiresClient(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/analyze/resume", map[string]any{
		"resume_text": "Experienced data engineer",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAnalyzeResumeWithClient(t *testing.T) {
	s := newTestServer(t, &stubClient{text: "Strengths:\n- Solid Python background"})

	rec := doJSON(t, s, http.MethodPost, "/analyze/resume", map[string]any{
		"resume_text": "Experienced data engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Contains(t, body["review"], "Solid Python background")
}

func TestAnalyzeMatchDegradesWithoutClient(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/analyze/match", map[string]any{
		"resume_text":     "Python and SQL engineer",
		"job_description": "Python role with SQL and AWS",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Scores struct {
			Hybrid          float64 `json:"hybrid"`
			EngineAvailable bool    `json:"engine_available"`
		} `json:"scores"`
		Narrative string `json:"narrative"`
		LLMError  string `json:"llm_error"`
	}
	decodeBody(t, rec, &body)

	assert.True(t, body.Scores.EngineAvailable)
	assert.Greater(t, body.Scores.Hybrid, 0.0)
	assert.Empty(t, body.Narrative)
	assert.NotEmpty(t, body.LLMError)
}

func TestAnalyzeMatchWithNarrative(t *testing.T) {
	narrative := "Match Score: 7/10\n\nMatched Skills:\n- python\n\nMissing Skills:\n- aws\n"
	s := newTestServer(t, &stubClient{text: narrative})

	rec := doJSON(t, s, http.MethodPost, "/analyze/match", map[string]any{
		"resume_text":     "Python engineer",
		"job_description": "Python and AWS role",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Narrative string `json:"narrative"`
		Parsed    struct {
			Score    int    `json:"score"`
			HasScore bool   `json:"has_score"`
			Missing  string `json:"missing"`
		} `json:"parsed"`
	}
	decodeBody(t, rec, &body)

	assert.Equal(t, narrative, body.Narrative)
	assert.True(t, body.Parsed.HasScore)
	assert.Equal(t, 7, body.Parsed.Score)
	assert.Contains(t, body.Parsed.Missing, "aws")
}

func TestQuestionsFallbackWithoutClient(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/interview/questions", map[string]any{
		"mode":  "technical",
		"count": 3,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Questions []string `json:"questions"`
	}
	decodeBody(t, rec, &body)
	assert.Len(t, body.Questions, 3)
}

func TestQuestionsRejectsUnknownMode(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/interview/questions", map[string]any{
		"mode": "improv",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCritiqueHeuristicWithoutClient(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/interview/critique", map[string]any{
		"question": "Tell me about a conflict you resolved.",
		"answer":   "In my last role the situation was tense, so my task was to de-escalate. The action I took was scheduling a one on one, and as a result we shipped on time.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Scores struct {
			Clarity int `json:"clarity"`
		} `json:"scores"`
		Heuristic bool `json:"heuristic"`
	}
	decodeBody(t, rec, &body)
	assert.True(t, body.Heuristic)
	assert.GreaterOrEqual(t, body.Scores.Clarity, 1)
	assert.LessOrEqual(t, body.Scores.Clarity, 5)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/interview/sessions", map[string]any{
		"mode":  "behavioral",
		"count": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID        string   `json:"id"`
		Questions []string `json:"questions"`
	}
	decodeBody(t, rec, &created)
	require.NotEmpty(t, created.ID)
	require.Len(t, created.Questions, 2)

	rec = doJSON(t, s, http.MethodGet, "/interview/sessions/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for i := 0; i < 2; i++ {
		rec = doJSON(t, s, http.MethodPost,
			fmt.Sprintf("/interview/sessions/%s/answers", created.ID),
			map[string]any{"answer": "My situation required careful planning and the result was a successful launch."})
		require.Equal(t, http.StatusOK, rec.Code, "answer %d", i+1)
	}

	// Session is complete; further answers conflict.
	rec = doJSON(t, s, http.MethodPost,
		fmt.Sprintf("/interview/sessions/%s/answers", created.ID),
		map[string]any{"answer": "one more"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetUnknownSession(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/interview/sessions/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIngestURLRejectsInvalidURL(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/ingest/url", map[string]any{
		"url": "not a url",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractRequiresMultipart(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflightAllowed(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/match", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
