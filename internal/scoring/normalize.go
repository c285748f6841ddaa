// Package scoring implements the deterministic resume / job-description
// match score: text normalization, catalog-based skill extraction, TF-IDF
// cosine similarity, and the weighted hybrid score. The package is pure and
// stateless; every function is total over string inputs.
package scoring

import "strings"

// Normalize lower-cases the input, replaces every rune that is not a
// lower-case letter, digit, '+', or whitespace with a single space, collapses
// consecutive whitespace, and trims. The '+' is preserved so tokens like
// "c++" survive normalization.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	var sb strings.Builder
	sb.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+':
			sb.WriteRune(r)
		default:
			sb.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}
