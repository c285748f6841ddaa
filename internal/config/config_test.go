package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeTempConfig(t, `{
	  "job_url": "https://example.com/job",
	  "extra_skills": ["rustlang", "terraform"],
	  "port": 9090
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, []string{"rustlang", "terraform"}, cfg.ExtraSkills)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, "{not json")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_JobAndJobURLExclusive(t *testing.T) {
	jobFile := writeTempConfig(t, "some job text")

	cfg := &Config{Job: jobFile, JobURL: "https://example.com"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: "/does/not/exist.pdf"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestValidate_PortRange(t *testing.T) {
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.NoError(t, (&Config{Port: 8080}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{JobURL: "https://example.com/job"}
	defaults := Config{
		JobURL:      "ignored",
		APIKey:      "default-key",
		ExtraSkills: []string{"rustlang"},
		Port:        8080,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "https://example.com/job", merged.JobURL)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, []string{"rustlang"}, merged.ExtraSkills)
	assert.Equal(t, 8080, merged.Port)
}
