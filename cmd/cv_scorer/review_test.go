package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useReviewConfig(t *testing.T, path string) {
	t.Helper()
	reviewConfigPath = path
	t.Cleanup(func() { reviewConfigPath = "" })
}

func TestRunReview_RequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	useReviewConfig(t, "")

	err := runReview(reviewCmd, []string{"resume.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestRunReview_APIKeyFromConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	dir := t.TempDir()
	useReviewConfig(t, writeFile(t, dir, "config.json", `{"api_key": "from-config"}`))

	// the key is accepted, so the command gets as far as reading the resume
	err := runReview(reviewCmd, []string{filepath.Join(dir, "missing.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume")
}
