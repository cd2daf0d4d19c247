package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"scoring_config": "scoring.json",
		"log_file": "logs/system.log",
		"jd_keywords": ["python", "aws"],
		"years_experience": 4,
		"port": 9090,
		"workers": 8,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "scoring.json", cfg.ScoringConfig)
	assert.Equal(t, "logs/system.log", cfg.LogFile)
	assert.Equal(t, []string{"python", "aws"}, cfg.JDKeywords)
	assert.Equal(t, 4, cfg.YearsExperience)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		msg  string
	}{
		{"years", Config{YearsExperience: -1}, "years_experience"},
		{"port", Config{Port: 70000}, "port"},
		{"workers", Config{Workers: -2}, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{ScoringConfig: "/nonexistent/scoring.json"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "scoring config file not found")

	cfg = &Config{JD: "/nonexistent/jd.txt"}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "job description file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	jd := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(jd, []byte("python"), 0644))

	cfg := &Config{
		JD:              jd,
		YearsExperience: 3,
		Port:            8080,
		Workers:         4,
	}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		LogFile: "cli.log",
		Port:    9000,
	}

	defaults := Config{
		ScoringConfig: "default-scoring.json",
		LogFile:       "default.log",
		JDKeywords:    []string{"go"},
		APIKey:        "key",
		Port:          8080,
		Workers:       4,
	}

	result := cfg.MergeWithDefaults(defaults)

	// CLI values should be preserved
	assert.Equal(t, "cli.log", result.LogFile)
	assert.Equal(t, 9000, result.Port)

	// Empty values should use defaults
	assert.Equal(t, "default-scoring.json", result.ScoringConfig)
	assert.Equal(t, []string{"go"}, result.JDKeywords)
	assert.Equal(t, "key", result.APIKey)
	assert.Equal(t, 4, result.Workers)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{
		JD:      "jd.txt",
		Workers: 2,
	}

	result := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "jd.txt", result.JD)
	assert.Equal(t, 2, result.Workers)
	assert.Empty(t, result.LogFile)
}

func TestLoadScoring_DefaultsWhenUnset(t *testing.T) {
	cfg := &Config{}

	scoring, err := cfg.LoadScoring()
	require.NoError(t, err)
	assert.Equal(t, DefaultScoringConfig(), scoring)
}
