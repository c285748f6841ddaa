package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// MatchReport holds the structured fields recovered from the model's
// resume-vs-JD comparison text. Parsing is best-effort: fields the model
// omitted stay empty, and HasScore is false when no score line was found.
type MatchReport struct {
	Score       int    `json:"score"`
	HasScore    bool   `json:"has_score"`
	Matched     string `json:"matched"`
	Missing     string `json:"missing"`
	Suggestions string `json:"suggestions"`
	Strengths   string `json:"strengths"`
}

// scoreLine matches "Match score: 8/10", optionally prefixed with markdown
// heading markers.
var scoreLine = regexp.MustCompile(`(?i)^\s*(?:#+\s*)?match\s*score\s*[:\-]?\s*(\d+)\s*/\s*10`)

// sectionLabels maps a report field to the heading variants models produce
// for it. Matching is case-insensitive on the heading text with trailing
// ':' or '-' stripped.
var sectionLabels = map[string][]string{
	"matched":     {"matched skills/experience", "matched skills / experience", "matched skills", "matched experience"},
	"missing":     {"missing or weak areas", "missing", "weak areas", "gaps"},
	"suggestions": {"suggestions for tailoring the resume", "suggestions", "improvements", "recommendations"},
	"strengths":   {"strengths"},
}

// ParseMatchReport extracts the match score and labeled sections from
// free-form comparison text. It never fails; unparseable input yields a
// zero-valued report. Strengths falls back to the matched section when the
// model produced no explicit strengths heading.
func ParseMatchReport(text string) MatchReport {
	var report MatchReport
	if strings.TrimSpace(text) == "" {
		return report
	}

	sections := make(map[string][]string)
	current := ""

	for _, line := range strings.Split(text, "\n") {
		if !report.HasScore {
			if m := scoreLine.FindStringSubmatch(line); m != nil {
				if score, err := strconv.Atoi(m[1]); err == nil {
					report.Score = score
					report.HasScore = true
				}
				current = ""
				continue
			}
		}

		if field := sectionField(line); field != "" {
			current = field
			continue
		}

		if current != "" {
			sections[current] = append(sections[current], line)
		}
	}

	report.Matched = joinSection(sections["matched"])
	report.Missing = joinSection(sections["missing"])
	report.Suggestions = joinSection(sections["suggestions"])
	report.Strengths = joinSection(sections["strengths"])
	if report.Strengths == "" {
		report.Strengths = report.Matched
	}

	return report
}

// sectionField returns the report field a heading line introduces, or "".
func sectionField(line string) string {
	heading := strings.TrimSpace(line)
	heading = strings.TrimLeft(heading, "#")
	heading = strings.TrimSpace(heading)
	heading = strings.TrimRight(heading, ":-")
	heading = strings.TrimSpace(strings.ToLower(heading))
	if heading == "" {
		return ""
	}

	for field, labels := range sectionLabels {
		for _, label := range labels {
			if heading == label {
				return field
			}
		}
	}
	return ""
}

// joinSection trims surrounding blank lines from a section body.
func joinSection(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
