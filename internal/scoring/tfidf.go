package scoring

import (
	"math"
	"strings"
)

// minTokenLength filters out single-character tokens during vectorization.
const minTokenLength = 2

// Backend computes the cosine similarity between two documents. It is the
// guarded capability behind the scorer: a real TF-IDF implementation or a
// null implementation that signals degraded mode. The backend is selected
// once at scorer construction, not per call.
type Backend interface {
	// Cosine returns the similarity of the two raw documents in [0,1].
	// It never fails; degenerate input yields 0.0.
	Cosine(docA, docB string) float64
	// Available reports whether Cosine carries real signal. A false value
	// switches the hybrid score to its degraded weighting.
	Available() bool
}

// TFIDFBackend computes cosine similarity over smoothed TF-IDF vectors built
// from the two-document corpus, with English stop words removed. It holds no
// state and is safe for concurrent use.
type TFIDFBackend struct{}

// NewTFIDFBackend returns the real similarity backend.
func NewTFIDFBackend() *TFIDFBackend {
	return &TFIDFBackend{}
}

// Available always reports true for the real backend.
func (*TFIDFBackend) Available() bool { return true }

// Cosine normalizes and tokenizes both documents, weights terms with
// smoothed TF-IDF over the two-document corpus, and returns the cosine of
// the angle between the two vectors. An empty vocabulary after stop-word
// removal yields 0.0 rather than an error.
func (*TFIDFBackend) Cosine(docA, docB string) float64 {
	termsA := tokenize(Normalize(docA))
	termsB := tokenize(Normalize(docB))

	tfA := termFrequencies(termsA)
	tfB := termFrequencies(termsB)
	if len(tfA) == 0 || len(tfB) == 0 {
		return 0.0
	}

	idf := inverseDocumentFrequencies(tfA, tfB)

	vecA := weight(tfA, idf)
	vecB := weight(tfB, idf)

	cos := dot(vecA, vecB) / (norm(vecA) * norm(vecB))
	return clamp01(cos)
}

// NullBackend is the fallback when vectorization is unavailable. Cosine is a
// fixed neutral 0.0 and Available reports false so the hybrid scorer can
// drop the cosine weight.
type NullBackend struct{}

// NewNullBackend returns the degraded-mode backend.
func NewNullBackend() *NullBackend {
	return &NullBackend{}
}

// Cosine always returns the neutral fallback value.
func (*NullBackend) Cosine(_, _ string) float64 { return 0.0 }

// Available always reports false for the null backend.
func (*NullBackend) Available() bool { return false }

// tokenize splits normalized text into lower-case alphanumeric tokens of at
// least minTokenLength runes, excluding stop words. The '+' kept by Normalize
// is dropped here: it matters for skill extraction, not for vectorization.
func tokenize(normalized string) []string {
	var tokens []string
	for _, field := range strings.Fields(normalized) {
		field = strings.Trim(field, "+")
		if len(field) < minTokenLength || isStopWord(field) {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// termFrequencies counts raw term occurrences.
func termFrequencies(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		tf[token]++
	}
	return tf
}

// inverseDocumentFrequencies computes smoothed IDF weights over the
// two-document corpus: idf(t) = ln((1+n)/(1+df(t))) + 1 with n = 2.
func inverseDocumentFrequencies(tfA, tfB map[string]float64) map[string]float64 {
	const corpusSize = 2.0

	idf := make(map[string]float64, len(tfA)+len(tfB))
	for term := range tfA {
		df := 1.0
		if _, ok := tfB[term]; ok {
			df = 2.0
		}
		idf[term] = math.Log((1+corpusSize)/(1+df)) + 1
	}
	for term := range tfB {
		if _, ok := idf[term]; ok {
			continue
		}
		idf[term] = math.Log((1+corpusSize)/2) + 1
	}
	return idf
}

// weight multiplies term frequencies by their IDF weights.
func weight(tf, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(tf))
	for term, freq := range tf {
		vec[term] = freq * idf[term]
	}
	return vec
}

// dot computes the sparse dot product of two vectors.
func dot(a, b map[string]float64) float64 {
	// Iterate over the smaller vector.
	if len(b) < len(a) {
		a, b = b, a
	}
	sum := 0.0
	for term, av := range a {
		if bv, ok := b[term]; ok {
			sum += av * bv
		}
	}
	return sum
}

// norm computes the Euclidean norm of a sparse vector.
func norm(vec map[string]float64) float64 {
	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// clamp01 bounds a value to [0,1] and maps NaN to 0.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0.0
	case v > 1:
		return 1.0
	default:
		return v
	}
}
