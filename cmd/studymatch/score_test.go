package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/studymatch/internal/types"
)

func writeProfileFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeProfileFile(t, tmpDir, "profile.json", `{
		"id": "p1",
		"subjects": ["math", "physics"],
		"timezone": "UTC+2",
		"skill_level": "INTERMEDIATE"
	}`)

	profile, err := loadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "p1", profile.ID)
	assert.Equal(t, []string{"math", "physics"}, profile.Subjects)
	assert.Equal(t, "UTC+2", profile.Timezone)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := loadProfile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile file")
}

func TestLoadProfile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeProfileFile(t, tmpDir, "bad.json", `{not json`)

	_, err := loadProfile(path)
	assert.Error(t, err)
}

func TestScoreCommand_MissingProfileFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	profileA := writeProfileFile(t, tmpDir, "a.json", `{"subjects": ["math"]}`)

	cmd := exec.Command(binaryPath, "score", "--profile-a", profileA)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestScoreCommand_IdenticalProfiles(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	content := `{
		"subjects": ["math", "physics"],
		"timezone": "UTC+1",
		"skill_level": "INTERMEDIATE",
		"available_days": ["monday"],
		"available_hours": ["evening"],
		"study_style": "COLLABORATIVE"
	}`
	profileA := writeProfileFile(t, tmpDir, "a.json", content)
	profileB := writeProfileFile(t, tmpDir, "b.json", content)
	outputFile := filepath.Join(tmpDir, "score.json")

	cmd := exec.Command(binaryPath, "score",
		"--profile-a", profileA,
		"--profile-b", profileB,
		"--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", string(output))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var result struct {
		types.MatchScore
		Label string `json:"label"`
		Color string `json:"color"`
	}
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 100, result.TotalScore)
	assert.Equal(t, "Excellent Match", result.Label)
	assert.Equal(t, "green", result.Color)
}

func TestScoreCommand_InvalidProfileFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	profileA := writeProfileFile(t, tmpDir, "a.json", `{"subjects": ["math"]}`)
	profileB := writeProfileFile(t, tmpDir, "b.json", `not json at all`)

	cmd := exec.Command(binaryPath, "score",
		"--profile-a", profileA,
		"--profile-b", profileB)
	_, err := cmd.CombinedOutput()

	assert.Error(t, err)
}
