// Package types defines shared domain types used across the CareerWise packages.
package types

import (
	"encoding/json"
	"sort"
	"strings"
)

// SkillSet is an unordered set of lower-cased skill tokens.
// A SkillSet is treated as immutable once returned by the extractor.
type SkillSet map[string]struct{}

// NewSkillSet builds a SkillSet from the given tokens, lower-casing and
// deduplicating them. Empty tokens are skipped.
func NewSkillSet(tokens ...string) SkillSet {
	set := make(SkillSet, len(tokens))
	for _, token := range tokens {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}

// Contains reports whether the set contains the given skill (case-insensitive).
func (s SkillSet) Contains(skill string) bool {
	_, ok := s[strings.ToLower(skill)]
	return ok
}

// Add inserts a lower-cased skill into the set.
func (s SkillSet) Add(skill string) {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill == "" {
		return
	}
	s[skill] = struct{}{}
}

// Sorted returns the skills as a sorted slice for stable output.
func (s SkillSet) Sorted() []string {
	skills := make([]string, 0, len(s))
	for skill := range s {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// Jaccard returns the Jaccard index of the two sets in [0,1].
// The union size is treated as at least 1, so two empty sets yield 0.0
// rather than an undefined value.
func (s SkillSet) Jaccard(other SkillSet) float64 {
	intersection := 0
	for skill := range s {
		if _, ok := other[skill]; ok {
			intersection++
		}
	}

	union := len(s) + len(other) - intersection
	if union < 1 {
		union = 1
	}

	return float64(intersection) / float64(union)
}

// MarshalJSON encodes the set as a sorted JSON array of strings.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of strings into the set.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return err
	}
	*s = NewSkillSet(tokens...)
	return nil
}
