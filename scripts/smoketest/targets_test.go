package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTargets_Defaults(t *testing.T) {
	targets, err := LoadTargets("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8003", targets.Services[ServiceResumeAnalyzer])
	assert.Equal(t, "http://localhost:8006", targets.Services[ServiceProfile])
	assert.Equal(t, "http://localhost:8000", targets.Services[ServiceGateway])
	assert.Equal(t, "test-user-12345", targets.UserID)
}

func TestLoadTargets_MergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.yaml")
	content := `
services:
  resume-analyzer: http://analyzer.internal:9000
  learning-path: http://paths.internal:8010
user_id: smoke-user
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	targets, err := LoadTargets(path)
	require.NoError(t, err)

	assert.Equal(t, "http://analyzer.internal:9000", targets.Services[ServiceResumeAnalyzer])
	assert.Equal(t, "http://localhost:8006", targets.Services[ServiceProfile])
	assert.Equal(t, "http://paths.internal:8010", targets.Services["learning-path"])
	assert.Equal(t, "smoke-user", targets.UserID)
}

func TestLoadTargets_Errors(t *testing.T) {
	_, err := LoadTargets(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading targets file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("services: [not, a, map]"), 0o600))
	_, err = LoadTargets(path)
	assert.ErrorContains(t, err, "parsing targets file")
}

func TestTargets_Ordered(t *testing.T) {
	targets := &Targets{Services: map[string]string{
		"zeta":                "http://z",
		ServiceResumeAnalyzer: "http://a",
		"alpha":               "http://b",
		ServiceGateway:        "http://g",
	}}

	assert.Equal(t, []string{ServiceGateway, ServiceResumeAnalyzer, "alpha", "zeta"}, targets.Ordered())
}
