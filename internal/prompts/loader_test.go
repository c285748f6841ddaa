package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompt(t *testing.T) {
	prompt, err := Get("interview.json", "questions")

	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Count}}")
	assert.Contains(t, prompt, "JSON list of strings")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("interview.json", "does_not_exist")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does_not_exist")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "questions")

	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("interview.json", "nope")
	})
}

func TestFormat(t *testing.T) {
	result := Format("Generate {{.Count}} {{.Mode}} questions", map[string]string{
		"Count": "5",
		"Mode":  "Behavioral",
	})

	assert.Equal(t, "Generate 5 Behavioral questions", result)
}

func TestFormat_MissingKeyLeftIntact(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})

	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestAllPromptsParse(t *testing.T) {
	for _, file := range []string{"analysis.json", "interview.json"} {
		prompts, err := loadFile(file)
		require.NoError(t, err, file)
		assert.NotEmpty(t, prompts, file)
		for key, prompt := range prompts {
			assert.False(t, strings.TrimSpace(prompt) == "", "%s/%s is empty", file, key)
		}
	}
}
