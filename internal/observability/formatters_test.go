package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordan/studymatch/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.Profile{
		ID:            "profile-1",
		Subjects:      []string{"math", "physics"},
		Timezone:      "UTC+2",
		SkillLevel:    types.SkillIntermediate,
		AvailableDays: []string{"monday", "wednesday"},
		StudyStyle:    types.StyleCollaborative,
	}

	p.PrintProfile("STUDY PROFILE", profile)
	output := buf.String()

	assert.Contains(t, output, "STUDY PROFILE")
	assert.Contains(t, output, "profile-1")
	assert.Contains(t, output, "UTC+2")
	assert.Contains(t, output, "INTERMEDIATE")
	assert.Contains(t, output, "math, physics")
	assert.Contains(t, output, "monday, wednesday")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile("STUDY PROFILE", nil)

	assert.Empty(t, buf.String())
}

func TestPrintProfile_EmptyFieldsShowDash(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile("STUDY PROFILE", &types.Profile{})

	assert.Contains(t, buf.String(), "Timezone:    -")
}

func TestPrintMatchScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchScore(types.MatchScore{
		TotalScore: 85,
		Breakdown: types.MatchBreakdown{
			Subjects:     100,
			Timezone:     95,
			SkillLevel:   90,
			Availability: 60,
			StudyStyle:   80,
		},
		Details: types.MatchDetails{
			SharedSubjects: []string{"math", "physics"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "COMPATIBILITY SCORE")
	assert.Contains(t, output, "Total:        85  (Excellent Match)")
	assert.Contains(t, output, "Availability: 60")
	assert.Contains(t, output, "Shared subjects: math, physics")
}

func TestPrintRankedCandidates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := []types.RankedCandidate{
		{
			Profile: types.Profile{ID: "cand-1"},
			Score: types.MatchScore{
				TotalScore: 92,
				Details:    types.MatchDetails{SharedSubjects: []string{"math"}},
			},
		},
		{
			Profile: types.Profile{ID: "cand-2"},
			Score:   types.MatchScore{TotalScore: 47},
		},
	}

	p.PrintRankedCandidates(ranked)
	output := buf.String()

	assert.Contains(t, output, "TOP RANKED CANDIDATES")
	assert.Contains(t, output, "#1  cand-1")
	assert.Contains(t, output, "Score: 92 (Excellent Match)")
	assert.Contains(t, output, "#2  cand-2")
	assert.Contains(t, output, "Score: 47 (Possible Match)")
}

func TestPrintRankedCandidates_Truncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := make([]types.RankedCandidate, 8)
	for i := range ranked {
		ranked[i] = types.RankedCandidate{
			Profile: types.Profile{ID: "cand"},
			Score:   types.MatchScore{TotalScore: 50},
		}
	}

	p.PrintRankedCandidates(ranked)

	assert.Contains(t, buf.String(), "... and 3 more candidates")
}

func TestPrintRankedCandidates_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedCandidates(nil)

	assert.Contains(t, buf.String(), "No candidates above threshold")
}
