package scoring

import "github.com/careerwise/careerwise/internal/types"

// Scorer is the public entry point of the scoring core. It orchestrates
// normalization, skill extraction, the similarity backend, and the hybrid
// score. A Scorer holds no mutable state; ComputeMatch calls may run
// concurrently without coordination.
type Scorer struct {
	backend Backend
}

// NewScorer returns a Scorer using the given similarity backend. A nil
// backend selects the real TF-IDF implementation.
func NewScorer(backend Backend) *Scorer {
	if backend == nil {
		backend = NewTFIDFBackend()
	}
	return &Scorer{backend: backend}
}

// ComputeMatch compares resume text against job-description text and returns
// a fully populated ScoreReport. Skill extraction runs on the raw text of
// each document independently; the similarity backend sees both documents.
// The function never fails for any string inputs, including empty strings,
// and every numeric field of the report is in [0,1].
func (s *Scorer) ComputeMatch(resumeText, jdText string, extraSkillKeywords []string) types.ScoreReport {
	resumeSkills := ExtractSkills(resumeText, extraSkillKeywords)
	jdSkills := ExtractSkills(jdText, extraSkillKeywords)
	skillsOverlap := resumeSkills.Jaccard(jdSkills)

	cosine := clamp01(s.backend.Cosine(resumeText, jdText))
	available := s.backend.Available()

	return types.ScoreReport{
		Cosine:          cosine,
		SkillsOverlap:   skillsOverlap,
		Hybrid:          HybridScore(cosine, skillsOverlap, available),
		ResumeSkills:    resumeSkills,
		JDSkills:        jdSkills,
		EngineAvailable: available,
	}
}
