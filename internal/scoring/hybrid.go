package scoring

// Weights for the hybrid score. When the similarity engine is unavailable
// the cosine weight is dropped entirely rather than redistributed, so a
// degraded run can never outscore a full run on skill overlap alone.
const (
	cosineWeight        = 0.65
	skillsOverlapWeight = 0.35
)

// HybridScore combines cosine similarity and skill-set overlap into one
// weighted score in [0,1]. Pure arithmetic, no error conditions.
func HybridScore(cosine, skillsOverlap float64, engineAvailable bool) float64 {
	if !engineAvailable {
		return skillsOverlapWeight * skillsOverlap
	}
	return cosineWeight*cosine + skillsOverlapWeight*skillsOverlap
}
