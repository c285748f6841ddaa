package types

// ScoreReport is the aggregate result of a resume / job-description comparison.
// All numeric fields are in the closed interval [0,1]. A report is created
// fresh per comparison call; the caller owns it.
type ScoreReport struct {
	// Cosine is the TF-IDF cosine similarity between the two documents.
	// It is 0.0 when the similarity engine is unavailable or the input is
	// degenerate (see EngineAvailable).
	Cosine float64 `json:"cosine"`

	// SkillsOverlap is the Jaccard index of ResumeSkills and JDSkills.
	SkillsOverlap float64 `json:"skills_overlap"`

	// Hybrid is the weighted combination of Cosine and SkillsOverlap.
	Hybrid float64 `json:"hybrid"`

	// ResumeSkills holds the catalog skills detected in the resume text.
	ResumeSkills SkillSet `json:"resume_skills"`

	// JDSkills holds the catalog skills detected in the job description.
	JDSkills SkillSet `json:"jd_skills"`

	// EngineAvailable reports whether the similarity engine contributed to
	// the score. When false the scorer ran in degraded mode and Cosine
	// carries no signal.
	EngineAvailable bool `json:"engine_available"`
}
