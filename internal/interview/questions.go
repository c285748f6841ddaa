// Package interview implements the interview-practice coach: question
// generation, answer critique, and multi-turn practice sessions. Model
// output is decoded best-effort; every operation has a deterministic
// fallback so a malformed or unreachable model never fails the caller.
package interview

import (
	"context"
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"

	"github.com/careerwise/careerwise/internal/llm"
	"github.com/careerwise/careerwise/internal/prompts"
)

// Interview modes.
const (
	ModeBehavioral = "behavioral"
	ModeTechnical  = "technical"
)

// defaultQuestionCount is used when the caller does not specify one.
const defaultQuestionCount = 5

// behavioralQuestions is the fallback bank for behavioral practice.
var behavioralQuestions = []string{
	"Tell me about a time you had to learn something quickly.",
	"Describe a conflict on a team and how you resolved it.",
	"Tell me about a time you made a mistake. What did you learn?",
	"Give an example of a time you worked under a tight deadline.",
	"Tell me about a time you influenced a decision without authority.",
	"Describe a time you handled ambiguous requirements.",
	"Tell me about a time you prioritized tasks with limited resources.",
}

// technicalQuestions is the fallback bank for technical practice.
var technicalQuestions = []string{
	"Explain the Big-O of an algorithm you recently optimized.",
	"What data structure would you use to implement an LRU cache and why?",
	"How would you design a rate limiter for an API? Outline components and trade-offs.",
	"Explain ACID vs BASE and when eventual consistency is acceptable.",
	"Given a large log file, how would you find the top K frequent entries?",
	"How do you track down a memory leak in a long-running service?",
	"What is the difference between concurrency and parallelism? Give examples.",
}

// QuestionOptions configures question generation.
type QuestionOptions struct {
	JobTitle       string
	JobDescription string
	Mode           string // ModeBehavioral or ModeTechnical
	Level          string // e.g. "Entry", "Mid", "Senior"
	Count          int
}

// GenerateQuestions produces interview questions aligned to the job
// description via the model, expecting a JSON array of strings. Any model
// or decoding failure falls back to the built-in question bank for the
// requested mode, shuffled. The result always has between 1 and Count
// entries.
func GenerateQuestions(ctx context.Context, client llm.Client, opts QuestionOptions) []string {
	if opts.Count <= 0 {
		opts.Count = defaultQuestionCount
	}
	if opts.Mode == "" {
		opts.Mode = ModeBehavioral
	}

	if client != nil {
		if questions := generateViaModel(ctx, client, opts); len(questions) > 0 {
			return questions
		}
	}

	return fallbackQuestions(opts.Mode, opts.Count)
}

// generateViaModel asks the model for questions and decodes the JSON list.
// Returns nil on any failure.
func generateViaModel(ctx context.Context, client llm.Client, opts QuestionOptions) []string {
	prompt := prompts.Format(prompts.MustGet("interview.json", "questions"), map[string]string{
		"Count":          strconv.Itoa(opts.Count),
		"Mode":           opts.Mode,
		"Level":          orNA(opts.Level),
		"JobTitle":       orNA(opts.JobTitle),
		"JobDescription": orNA(strings.TrimSpace(opts.JobDescription)),
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil
	}

	questions := decodeQuestionList(raw)
	if len(questions) > opts.Count {
		questions = questions[:opts.Count]
	}
	return questions
}

// decodeQuestionList decodes a JSON array of strings, recovering the array
// from surrounding prose when necessary. Returns nil when nothing usable
// can be decoded.
func decodeQuestionList(raw string) []string {
	candidates := []string{llm.CleanJSONBlock(raw)}
	if extracted := llm.ExtractJSONArray(raw); extracted != "" {
		candidates = append(candidates, extracted)
	}

	for _, candidate := range candidates {
		var questions []string
		if err := json.Unmarshal([]byte(candidate), &questions); err != nil {
			continue
		}
		cleaned := make([]string, 0, len(questions))
		for _, q := range questions {
			q = strings.TrimSpace(q)
			if q != "" {
				cleaned = append(cleaned, q)
			}
		}
		if len(cleaned) > 0 {
			return cleaned
		}
	}
	return nil
}

// fallbackQuestions returns up to n shuffled questions from the bank for
// the given mode.
func fallbackQuestions(mode string, n int) []string {
	bank := technicalQuestions
	if strings.HasPrefix(strings.ToLower(mode), "behav") {
		bank = behavioralQuestions
	}

	shuffled := make([]string, len(bank))
	copy(shuffled, bank)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// orNA substitutes "N/A" for empty prompt values.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
