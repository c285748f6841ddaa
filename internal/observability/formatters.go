// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/careerwise/careerwise/internal/analysis"
	"github.com/careerwise/careerwise/internal/interview"
	"github.com/careerwise/careerwise/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for the terminal
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreSummary outputs the hybrid score on one line.
func (p *Printer) PrintScoreSummary(report types.ScoreReport) {
	fmt.Fprintf(p.out, "Match score: %.1f%%\n", report.Hybrid*100)
}

// PrintScoreBreakdown outputs the full deterministic score report.
func (p *Printer) PrintScoreBreakdown(report types.ScoreReport) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Hybrid score:     %.1f%%\n", report.Hybrid*100))
	sb.WriteString(fmt.Sprintf("Text similarity:  %.1f%%", report.Cosine*100))
	if !report.EngineAvailable {
		sb.WriteString(" (unavailable)")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills overlap:   %.1f%%\n", report.SkillsOverlap*100))
	sb.WriteString("\n")

	appendSkillList(&sb, "Resume skills", report.ResumeSkills)
	appendSkillList(&sb, "Job skills", report.JDSkills)

	p.printBox("Score Breakdown", strings.TrimRight(sb.String(), "\n"))
}

// PrintComparison outputs the model's parsed comparison sections, falling
// back to the raw narrative when no sections were recognized.
func (p *Printer) PrintComparison(comparison *analysis.Comparison) {
	if comparison == nil || comparison.Narrative == "" {
		return
	}

	parsed := comparison.Parsed

	var sb strings.Builder
	if parsed.HasScore {
		sb.WriteString(fmt.Sprintf("Model score: %d/10\n\n", parsed.Score))
	}
	appendSection(&sb, "Matched", parsed.Matched)
	appendSection(&sb, "Missing", parsed.Missing)
	appendSection(&sb, "Suggestions", parsed.Suggestions)

	content := strings.TrimRight(sb.String(), "\n")
	if content == "" {
		content = strings.TrimSpace(comparison.Narrative)
	}

	p.printBox("LLM Comparison", content)
}

// PrintCritique outputs an interview answer critique.
func (p *Printer) PrintCritique(critique interview.Critique) {
	var sb strings.Builder

	scores := critique.Scores
	sb.WriteString(fmt.Sprintf("Clarity:         %d/5\n", scores.Clarity))
	sb.WriteString(fmt.Sprintf("Structure:       %d/5\n", scores.Structure))
	sb.WriteString(fmt.Sprintf("Technical depth: %d/5\n", scores.TechnicalDepth))
	sb.WriteString(fmt.Sprintf("Impact:          %d/5\n", scores.Impact))
	sb.WriteString(fmt.Sprintf("Conciseness:     %d/5\n", scores.Conciseness))

	if critique.Summary != "" {
		sb.WriteString("\n")
		sb.WriteString(critique.Summary)
		sb.WriteString("\n")
	}

	if len(critique.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(critique.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", critique.Suggestions[i]))
		}
	}

	title := "Critique"
	if critique.Heuristic {
		title = "Critique (heuristic)"
	}
	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// appendSkillList writes a titled, truncated skill list.
func appendSkillList(sb *strings.Builder, title string, skills types.SkillSet) {
	sorted := skills.Sorted()
	if len(sorted) == 0 {
		return
	}

	sb.WriteString(title + ":\n")
	count := min(len(sorted), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", sorted[i]))
	}
	if len(sorted) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(sorted)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// appendSection writes a titled free-text section when non-empty.
func appendSection(sb *strings.Builder, title, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	sb.WriteString(title + ":\n")
	sb.WriteString(body)
	sb.WriteString("\n\n")
}
