package scoring

import (
	"strings"

	"github.com/careerwise/careerwise/internal/types"
)

// DefaultCatalog lists the skill keywords recognized out of the box. All
// entries are lower-case; multi-word phrases and punctuated tokens such as
// "power bi" and "c++" are matched literally against the lower-cased input.
// The catalog is read-only configuration: callers extend it per invocation
// via the extra keywords argument, never by mutating this slice.
var DefaultCatalog = []string{
	"python", "java", "c", "c++", "html", "css", "javascript", "typescript", "react", "node",
	"sql", "postgres", "postgresql", "mysql", "mongodb",
	"aws", "gcp", "azure", "docker", "kubernetes",
	"linux", "git", "bash", "powershell",
	"pandas", "numpy", "scikit-learn", "sklearn", "tensorflow", "pytorch",
	"tableau", "power bi", "excel",
	"airflow", "dbt", "spark", "hadoop", "kafka", "etl", "mlops", "ci/cd",
}

// ExtractSkills detects catalog keywords in the text via whole-word matching
// and returns the matched subset. The working catalog is the union of
// DefaultCatalog and extra (lower-cased). The input is lower-cased but not
// otherwise normalized, so punctuated keywords like "c++" and "ci/cd" remain
// detectable. Empty text yields an empty set.
//
// A match requires a word boundary on both sides: the runes adjacent to the
// keyword occurrence must not be letters, digits, or '+'. This keeps "java"
// from matching inside "javascript" while still matching literal "c++".
func ExtractSkills(text string, extra []string) types.SkillSet {
	found := types.NewSkillSet()
	if text == "" {
		return found
	}

	corpus := strings.ToLower(text)

	catalog := make(map[string]struct{}, len(DefaultCatalog)+len(extra))
	for _, keyword := range DefaultCatalog {
		catalog[keyword] = struct{}{}
	}
	for _, keyword := range extra {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" {
			catalog[keyword] = struct{}{}
		}
	}

	for keyword := range catalog {
		if containsWord(corpus, keyword) {
			found.Add(keyword)
		}
	}

	return found
}

// containsWord reports whether keyword occurs in corpus delimited by word
// boundaries on both sides.
func containsWord(corpus, keyword string) bool {
	if keyword == "" {
		return false
	}

	for start := 0; ; {
		idx := strings.Index(corpus[start:], keyword)
		if idx < 0 {
			return false
		}
		idx += start

		end := idx + len(keyword)
		if boundaryBefore(corpus, idx) && boundaryAfter(corpus, end) {
			return true
		}
		start = idx + 1
	}
}

// boundaryBefore reports whether position idx starts at a word boundary.
func boundaryBefore(corpus string, idx int) bool {
	if idx == 0 {
		return true
	}
	return !isWordByte(corpus[idx-1])
}

// boundaryAfter reports whether position end sits at a word boundary.
func boundaryAfter(corpus string, end int) bool {
	if end >= len(corpus) {
		return true
	}
	return !isWordByte(corpus[end])
}

// isWordByte treats ASCII letters, digits, and '+' as word characters for
// boundary purposes. '+' counts as a word character so that "c" does not
// match inside "c++".
func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '+':
		return true
	default:
		return false
	}
}
