package analysis

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerwise/careerwise/internal/llm"
	"github.com/careerwise/careerwise/internal/scoring"
)

// fakeClient is a canned-response llm.Client for tests.
type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestCompare_MergesScoresAndNarrative(t *testing.T) {
	client := &fakeClient{response: sampleComparison}
	analyzer := NewAnalyzer(client, nil)

	comparison, err := analyzer.Compare(context.Background(),
		"Experienced Python and SQL developer with AWS deployment experience",
		"Looking for a Python developer with AWS and Docker skills",
		nil,
	)

	require.NoError(t, err)
	assert.InDelta(t, 0.5, comparison.Scores.SkillsOverlap, 1e-9)
	assert.True(t, comparison.Scores.EngineAvailable)
	assert.Equal(t, sampleComparison, comparison.Narrative)
	assert.True(t, comparison.Parsed.HasScore)
	assert.Equal(t, 7, comparison.Parsed.Score)
	assert.Empty(t, comparison.LLMError)
}

func TestCompare_LLMFailureDegrades(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("model unreachable")}
	analyzer := NewAnalyzer(client, nil)

	comparison, err := analyzer.Compare(context.Background(), "python", "python", nil)

	require.NoError(t, err)
	assert.Empty(t, comparison.Narrative)
	assert.Contains(t, comparison.LLMError, "model unreachable")
	// Deterministic scores survive the model failure.
	assert.InDelta(t, 1.0, comparison.Scores.SkillsOverlap, 1e-9)
}

func TestCompare_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &fakeClient{err: ctx.Err()}
	analyzer := NewAnalyzer(client, nil)

	_, err := analyzer.Compare(ctx, "a", "b", nil)

	assert.Error(t, err)
}

func TestScore_UsesInjectedScorer(t *testing.T) {
	analyzer := NewAnalyzer(&fakeClient{}, scoring.NewScorer(scoring.NewNullBackend()))

	report := analyzer.Score("python and aws", "python and docker", nil)

	assert.False(t, report.EngineAvailable)
	assert.Equal(t, 0.0, report.Cosine)
}

func TestReviewResume_PassesThroughModelOutput(t *testing.T) {
	client := &fakeClient{response: "Strengths:\n- concise"}

	out, err := ReviewResume(context.Background(), client, "my resume")

	require.NoError(t, err)
	assert.Contains(t, out, "Strengths")
}
