package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTFIDFBackend_IdenticalDocuments(t *testing.T) {
	backend := NewTFIDFBackend()
	doc := "Python developer with AWS deployment experience"

	assert.InDelta(t, 1.0, backend.Cosine(doc, doc), 1e-9)
}

func TestTFIDFBackend_DisjointDocuments(t *testing.T) {
	backend := NewTFIDFBackend()

	cos := backend.Cosine("python sql postgres", "marketing sales outreach")
	assert.Equal(t, 0.0, cos)
}

func TestTFIDFBackend_PartialOverlapWithinBounds(t *testing.T) {
	backend := NewTFIDFBackend()

	cos := backend.Cosine(
		"Experienced Python and SQL developer with AWS deployment experience",
		"Looking for a Python developer with AWS and Docker skills",
	)
	assert.Greater(t, cos, 0.0)
	assert.Less(t, cos, 1.0)
}

func TestTFIDFBackend_EmptyInput(t *testing.T) {
	backend := NewTFIDFBackend()

	assert.Equal(t, 0.0, backend.Cosine("", ""))
	assert.Equal(t, 0.0, backend.Cosine("python developer", ""))
	assert.Equal(t, 0.0, backend.Cosine("", "python developer"))
}

func TestTFIDFBackend_StopWordsOnly(t *testing.T) {
	backend := NewTFIDFBackend()

	// After stop-word removal the vocabulary is empty; the backend must
	// recover locally and return 0.0, never fail.
	assert.Equal(t, 0.0, backend.Cosine("the and of", "with for from"))
}

func TestTFIDFBackend_Available(t *testing.T) {
	assert.True(t, NewTFIDFBackend().Available())
}

func TestNullBackend(t *testing.T) {
	backend := NewNullBackend()

	assert.Equal(t, 0.0, backend.Cosine("python", "python"))
	assert.False(t, backend.Available())
}

func TestTokenize_FiltersShortTokensAndStopWords(t *testing.T) {
	tokens := tokenize(Normalize("The quick brown fox, a fox!"))

	assert.ElementsMatch(t, []string{"quick", "brown", "fox", "fox"}, tokens)
}

func TestTokenize_DropsPlusFromTokens(t *testing.T) {
	// '+' matters for skill extraction, not vectorization: "c++" reduces
	// to the single-char token "c" and is filtered by length.
	tokens := tokenize(Normalize("C++ and Go"))

	assert.ElementsMatch(t, []string{"go"}, tokens)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 1.0, clamp01(1.5))
	assert.Equal(t, 0.25, clamp01(0.25))
}
