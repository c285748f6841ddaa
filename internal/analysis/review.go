// Package analysis produces LLM-backed resume feedback: a standalone resume
// review and a resume-vs-job-description comparison. The free-form model
// output is parsed best-effort into labeled sections; the deterministic
// match score comes from the scoring package and never depends on the model.
package analysis

import (
	"context"
	"errors"

	"github.com/careerwise/careerwise/internal/llm"
	"github.com/careerwise/careerwise/internal/prompts"
)

// ErrNoClient is returned when an LLM-backed operation runs without a
// configured model client.
var ErrNoClient = errors.New("no LLM client configured")

// ReviewResume asks the model for a structured review of the resume text
// (strengths, weaknesses, suggestions, overall score) and returns the raw
// text produced by the model.
func ReviewResume(ctx context.Context, client llm.Client, resumeText string) (string, error) {
	if client == nil {
		return "", ErrNoClient
	}
	prompt := prompts.Format(prompts.MustGet("analysis.json", "resume_review"), map[string]string{
		"Resume": resumeText,
	})
	return client.GenerateContent(ctx, prompt, llm.TierStandard)
}

// CompareResumeJD asks the model to compare the resume against the job
// description and returns the raw labeled-section text it produces. Use
// ParseMatchReport to turn the output into structured fields.
func CompareResumeJD(ctx context.Context, client llm.Client, resumeText, jdText string) (string, error) {
	if client == nil {
		return "", ErrNoClient
	}
	prompt := prompts.Format(prompts.MustGet("analysis.json", "resume_vs_jd"), map[string]string{
		"Resume":         resumeText,
		"JobDescription": jdText,
	})
	return client.GenerateContent(ctx, prompt, llm.TierStandard)
}
