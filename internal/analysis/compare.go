package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/careerwise/careerwise/internal/llm"
	"github.com/careerwise/careerwise/internal/scoring"
	"github.com/careerwise/careerwise/internal/types"
)

// Comparison bundles the deterministic score report with the model's
// narrative comparison. The two halves are independent: Scores is always
// populated, while Narrative and Parsed are empty when the model call
// failed (LLMError carries the reason).
type Comparison struct {
	Scores    types.ScoreReport `json:"scores"`
	Narrative string            `json:"narrative,omitempty"`
	Parsed    MatchReport       `json:"parsed"`
	LLMError  string            `json:"llm_error,omitempty"`
}

// Analyzer combines the scoring core with the chat model.
type Analyzer struct {
	client llm.Client
	scorer *scoring.Scorer
}

// NewAnalyzer creates an Analyzer. A nil scorer selects the default TF-IDF
// backed scorer.
func NewAnalyzer(client llm.Client, scorer *scoring.Scorer) *Analyzer {
	if scorer == nil {
		scorer = scoring.NewScorer(nil)
	}
	return &Analyzer{client: client, scorer: scorer}
}

// Compare runs the deterministic scorer and the model comparison
// concurrently and merges the results. The scoring branch cannot fail; a
// model failure degrades to an empty narrative with LLMError set, matching
// the best-effort contract of the rest of the pipeline. The returned error
// is non-nil only when the context was canceled.
func (a *Analyzer) Compare(ctx context.Context, resumeText, jdText string, extraSkillKeywords []string) (*Comparison, error) {
	comparison := &Comparison{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		comparison.Scores = a.scorer.ComputeMatch(resumeText, jdText, extraSkillKeywords)
		return nil
	})

	g.Go(func() error {
		narrative, err := CompareResumeJD(gCtx, a.client, resumeText, jdText)
		if err != nil {
			if gCtx.Err() != nil {
				return gCtx.Err()
			}
			comparison.LLMError = err.Error()
			return nil
		}
		comparison.Narrative = narrative
		comparison.Parsed = ParseMatchReport(narrative)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return comparison, nil
}

// Score runs only the deterministic scoring core.
func (a *Analyzer) Score(resumeText, jdText string, extraSkillKeywords []string) types.ScoreReport {
	return a.scorer.ComputeMatch(resumeText, jdText, extraSkillKeywords)
}
