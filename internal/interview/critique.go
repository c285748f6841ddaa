package interview

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/careerwise/careerwise/internal/llm"
	"github.com/careerwise/careerwise/internal/prompts"
)

// Rubric score bounds.
const (
	minRubricScore = 1
	maxRubricScore = 5
)

// RubricScores holds the 1-5 ratings of an answer across the five rubric
// dimensions.
type RubricScores struct {
	Clarity        int `json:"clarity"`
	Structure      int `json:"structure"`
	TechnicalDepth int `json:"technical_depth"`
	Impact         int `json:"impact"`
	Conciseness    int `json:"conciseness"`
}

// Critique is the structured feedback for one interview answer. Heuristic
// reports whether the deterministic fallback produced it instead of the
// model.
type Critique struct {
	Scores         RubricScores `json:"scores"`
	Summary        string       `json:"summary"`
	Suggestions    []string     `json:"suggestions"`
	ImprovedAnswer string       `json:"improved_answer"`
	Heuristic      bool         `json:"heuristic"`
}

// CritiqueRequest identifies the answer to critique.
type CritiqueRequest struct {
	Question       string
	Answer         string
	Mode           string // ModeBehavioral or ModeTechnical
	JobDescription string // optional
}

// critiqueSchema validates the model's rubric JSON before it is trusted.
const critiqueSchema = `{
  "type": "object",
  "required": ["scores", "summary", "suggestions", "improved_answer"],
  "properties": {
    "scores": {
      "type": "object",
      "required": ["clarity", "structure", "technical_depth", "impact", "conciseness"],
      "properties": {
        "clarity": {"type": "integer", "minimum": 1, "maximum": 5},
        "structure": {"type": "integer", "minimum": 1, "maximum": 5},
        "technical_depth": {"type": "integer", "minimum": 1, "maximum": 5},
        "impact": {"type": "integer", "minimum": 1, "maximum": 5},
        "conciseness": {"type": "integer", "minimum": 1, "maximum": 5}
      }
    },
    "summary": {"type": "string"},
    "suggestions": {"type": "array", "items": {"type": "string"}},
    "improved_answer": {"type": "string"}
  }
}`

// CritiqueAnswer evaluates an interview answer. It asks the model for a
// JSON rubric, validates the response against critiqueSchema, and falls
// back to the deterministic heuristic critique on any failure. The returned
// critique is always fully populated.
func CritiqueAnswer(ctx context.Context, client llm.Client, req CritiqueRequest) Critique {
	if req.Mode == "" {
		req.Mode = ModeBehavioral
	}

	if client != nil {
		if critique, ok := critiqueViaModel(ctx, client, req); ok {
			return critique
		}
	}

	return heuristicCritique(req)
}

// critiqueViaModel requests and decodes the model's rubric JSON.
func critiqueViaModel(ctx context.Context, client llm.Client, req CritiqueRequest) (Critique, bool) {
	prompt := prompts.Format(prompts.MustGet("interview.json", "critique"), map[string]string{
		"Question":       req.Question,
		"Answer":         req.Answer,
		"Mode":           req.Mode,
		"JobDescription": orNA(strings.TrimSpace(req.JobDescription)),
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return Critique{}, false
	}

	return decodeCritique(raw)
}

// decodeCritique validates and decodes rubric JSON from model output,
// recovering an embedded object from surrounding prose when necessary.
func decodeCritique(raw string) (Critique, bool) {
	candidates := []string{llm.CleanJSONBlock(raw)}
	if extracted := llm.ExtractJSONObject(raw); extracted != "" {
		candidates = append(candidates, extracted)
	}

	schemaLoader := gojsonschema.NewStringLoader(critiqueSchema)
	for _, candidate := range candidates {
		result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(candidate))
		if err != nil || !result.Valid() {
			continue
		}

		var critique Critique
		if err := json.Unmarshal([]byte(candidate), &critique); err != nil {
			continue
		}
		critique.Heuristic = false
		return critique, true
	}
	return Critique{}, false
}

// heuristicCritique scores an answer without the model: word count for
// clarity and conciseness, digit presence for measurable impact, and STAR
// keyword hits for structure.
func heuristicCritique(req CritiqueRequest) Critique {
	words := len(strings.Fields(req.Answer))
	hasNumbers := strings.ContainsAny(req.Answer, "0123456789")

	lowered := strings.ToLower(req.Answer)
	starHits := 0
	for _, keyword := range []string{"situation", "task", "action", "result"} {
		if strings.Contains(lowered, keyword) {
			starHits++
		}
	}

	scores := RubricScores{
		Clarity:        pick(words >= 40, 3, 2),
		Structure:      clampRubric(2 + starHits),
		TechnicalDepth: pick(hasNumbers, 4, 3),
		Impact:         pick(hasNumbers, 4, 3),
		Conciseness:    concisenessScore(words),
	}

	return Critique{
		Scores:  scores,
		Summary: "Decent start. Sharpen structure and make outcomes measurable.",
		Suggestions: []string{
			"Use STAR: briefly set context, then focus on actions and results.",
			"Quantify impact (e.g., %, time saved, errors reduced).",
			"Explain trade-offs and tools used; keep it within 2 minutes.",
		},
		ImprovedAnswer: "Situation: Briefly describe the context and goal.\n" +
			"Task: Your specific responsibility.\n" +
			"Action: 2-3 concrete steps you took, including tools and trade-offs.\n" +
			"Result: Quantified outcome (e.g., 23% faster, 2 bugs/week -> 0.3).\n" +
			"Reflection: One learning or improvement you'd make.",
		Heuristic: true,
	}
}

// concisenessScore rewards answers in the 60-220 word sweet spot.
func concisenessScore(words int) int {
	switch {
	case words >= 60 && words <= 220:
		return 4
	case words < 60:
		return 3
	default:
		return 2
	}
}

// clampRubric bounds a score to the 1-5 rubric range.
func clampRubric(score int) int {
	if score < minRubricScore {
		return minRubricScore
	}
	if score > maxRubricScore {
		return maxRubricScore
	}
	return score
}

// pick returns a when cond holds, otherwise b.
func pick(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}
