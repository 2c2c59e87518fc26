package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/OnnIInnO/Recruiting2.0/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCommand_PrintsResult(t *testing.T) {
	out, err := executeCommand(t, "match",
		"--user", "testdata/user.json",
		"--job", "testdata/job.json",
		"--company", "testdata/company.json",
	)
	require.NoError(t, err)

	var result types.MatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output should be a match result: %s", out)
	assert.InDelta(t, 1.0, result.OverallMatch, 1e-9)
	assert.Equal(t, []string{"wellbeing_profile", "skills_profile"}, result.MatchedDimensions)
}

func TestMatchCommand_WithoutCompany(t *testing.T) {
	out, err := executeCommand(t, "match", "-u", "testdata/user.json", "-j", "testdata/job.json")
	require.NoError(t, err)
	assert.Contains(t, out, `"overall_match"`)
}

func TestMatchCommand_WritesOutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "match.json")

	out, err := executeCommand(t, "match",
		"--user", "testdata/user.json",
		"--job", "testdata/job.json",
		"--out", outPath,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Match written to")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var result types.MatchResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.NotEmpty(t, result.MatchedDimensions)
}

func TestMatchCommand_MissingRequiredFlag(t *testing.T) {
	_, err := executeCommand(t, "match", "--user", "testdata/user.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job")
}

func TestMatchCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		wantErr string
	}{
		{"missing file", "testdata/nonexistent.json", "failed to read"},
		{"wrong category", "testdata/user_wrong_category.json", "not part of the skills assessment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, "match", "--user", tt.user, "--job", "testdata/job.json")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMatchCommand_SchemaViolation(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "user.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"skills_profile": {"TECHNICAL": 11}}`), 0644))

	_, err := executeCommand(t, "match", "--user", bad, "--job", "testdata/job.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestMatchCommand_Verbose(t *testing.T) {
	stdout, stderr, err := executeCommandWithStderr(t, "match",
		"--user", "testdata/user.json",
		"--job", "testdata/job.json",
		"--verbose",
	)
	require.NoError(t, err)

	var result types.MatchResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result), "stdout should hold only JSON")
	assert.Contains(t, stderr, "MATCH RESULT")
	assert.Contains(t, stderr, "USER PROFILE")
}
