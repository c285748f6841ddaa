package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careerwise/careerwise/internal/analysis"
	"github.com/careerwise/careerwise/internal/interview"
	"github.com/careerwise/careerwise/internal/types"
)

func sampleReport() types.ScoreReport {
	return types.ScoreReport{
		Cosine:          0.42,
		SkillsOverlap:   0.5,
		Hybrid:          0.448,
		ResumeSkills:    types.NewSkillSet("python", "sql"),
		JDSkills:        types.NewSkillSet("python", "aws"),
		EngineAvailable: true,
	}
}

func TestPrintScoreSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreSummary(sampleReport())

	assert.Equal(t, "Match score: 44.8%\n", buf.String())
}

func TestPrintScoreBreakdown(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreBreakdown(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "Score Breakdown")
	assert.Contains(t, out, "Hybrid score:     44.8%")
	assert.Contains(t, out, "Skills overlap:   50.0%")
	assert.Contains(t, out, "python")
	assert.NotContains(t, out, "unavailable")
}

func TestPrintScoreBreakdownUnavailableEngine(t *testing.T) {
	report := sampleReport()
	report.Cosine = 0
	report.EngineAvailable = false

	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreBreakdown(report)

	assert.Contains(t, buf.String(), "unavailable")
}

func TestPrintComparisonUsesParsedSections(t *testing.T) {
	comparison := &analysis.Comparison{
		Narrative: "Match Score: 7/10\nMatched Skills:\n- python",
		Parsed: analysis.MatchReport{
			Score:    7,
			HasScore: true,
			Matched:  "- python",
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintComparison(comparison)

	out := buf.String()
	assert.Contains(t, out, "Model score: 7/10")
	assert.Contains(t, out, "- python")
}

func TestPrintComparisonFallsBackToNarrative(t *testing.T) {
	comparison := &analysis.Comparison{
		Narrative: "The resume is a reasonable fit overall.",
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintComparison(comparison)

	assert.Contains(t, buf.String(), "reasonable fit")
}

func TestPrintComparisonNilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintComparison(nil)

	assert.Empty(t, buf.String())
}

func TestPrintCritique(t *testing.T) {
	critique := interview.Critique{
		Scores: interview.RubricScores{
			Clarity:        3,
			Structure:      4,
			TechnicalDepth: 3,
			Impact:         4,
			Conciseness:    4,
		},
		Summary:     "Good structure, add more metrics.",
		Suggestions: []string{"Quantify the outcome", "Name the tools used"},
		Heuristic:   true,
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintCritique(critique)

	out := buf.String()
	assert.Contains(t, out, "Critique (heuristic)")
	assert.Contains(t, out, "Structure:       4/5")
	assert.Contains(t, out, "Quantify the outcome")
}
