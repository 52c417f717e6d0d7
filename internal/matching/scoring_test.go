package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordan/studymatch/internal/types"
)

func TestScoreSubjects_CaseInsensitiveOverlap(t *testing.T) {
	a := &types.Profile{Subjects: []string{"Math", "CS"}}
	b := &types.Profile{Subjects: []string{"math", "physics"}}

	score, shared := scoreSubjects(a, b)

	// One shared subject out of two, no multi-subject bonus.
	assert.InDelta(t, 0.5, score, 0.001)
	assert.Equal(t, []string{"Math"}, shared, "shared list keeps profile a's casing")
}

func TestScoreSubjects_DisjointSets(t *testing.T) {
	a := &types.Profile{Subjects: []string{"Biology", "Chemistry"}}
	b := &types.Profile{Subjects: []string{"History", "Art"}}

	score, shared := scoreSubjects(a, b)

	assert.Equal(t, 0.0, score)
	assert.Empty(t, shared)
}

func TestScoreSubjects_EmptyListIsZeroNotNeutral(t *testing.T) {
	a := &types.Profile{Subjects: []string{"Math"}}
	b := &types.Profile{}

	score, shared := scoreSubjects(a, b)

	assert.Equal(t, 0.0, score)
	assert.Empty(t, shared)
}

func TestScoreSubjects_MultiOverlapBonus(t *testing.T) {
	a := &types.Profile{Subjects: []string{"Math", "Physics", "CS"}}
	b := &types.Profile{Subjects: []string{"math", "physics", "chemistry"}}

	score, shared := scoreSubjects(a, b)

	// 2/3 overlap with a 1.1 bonus for the second shared subject.
	assert.InDelta(t, 2.0/3.0*1.1, score, 0.001)
	assert.Equal(t, []string{"Math", "Physics"}, shared)
}

func TestScoreSubjects_BonusCappedAtFullScore(t *testing.T) {
	subjects := []string{"Math", "Physics", "CS", "Biology", "Chemistry"}
	a := &types.Profile{Subjects: subjects}
	b := &types.Profile{Subjects: subjects}

	score, shared := scoreSubjects(a, b)

	// Full overlap times the bonus would exceed 1.0; it is capped.
	assert.Equal(t, 1.0, score)
	assert.Len(t, shared, 5)
}

func TestScoreTimezone_Identical(t *testing.T) {
	a := &types.Profile{Timezone: "UTC+0"}
	b := &types.Profile{Timezone: "UTC+0"}

	score, compatible := scoreTimezone(a, b)

	assert.Equal(t, 1.0, score)
	assert.True(t, compatible)
}

func TestScoreTimezone_FiveHourGap(t *testing.T) {
	a := &types.Profile{Timezone: "UTC+3"}
	b := &types.Profile{Timezone: "UTC-2"}

	score, compatible := scoreTimezone(a, b)

	assert.InDelta(t, 0.70, score, 0.001)
	assert.True(t, compatible)
}

func TestScoreTimezone_NineHourGapIncompatible(t *testing.T) {
	a := &types.Profile{Timezone: "UTC+5"}
	b := &types.Profile{Timezone: "UTC-4"}

	score, compatible := scoreTimezone(a, b)

	assert.LessOrEqual(t, score, 0.30)
	assert.False(t, compatible)
}

func TestScoreTimezone_ExtremeGapFloorsAtZero(t *testing.T) {
	a := &types.Profile{Timezone: "UTC+14"}
	b := &types.Profile{Timezone: "UTC-12"}

	score, compatible := scoreTimezone(a, b)

	assert.Equal(t, 0.0, score)
	assert.False(t, compatible)
}

func TestScoreTimezone_MissingIsNeutral(t *testing.T) {
	a := &types.Profile{Timezone: "UTC+3"}
	b := &types.Profile{}

	score, compatible := scoreTimezone(a, b)

	assert.Equal(t, neutralScore, score)
	assert.True(t, compatible, "unknown data is never penalized")
}

func TestScoreTimezone_HalfHourOffsetFallsBackToNeutral(t *testing.T) {
	// Fractional offsets are a documented parsing gap.
	a := &types.Profile{Timezone: "UTC+5:30"}
	b := &types.Profile{Timezone: "UTC+5"}

	score, compatible := scoreTimezone(a, b)

	assert.Equal(t, neutralScore, score)
	assert.True(t, compatible)
}

func TestParseUTCOffset(t *testing.T) {
	tests := []struct {
		input  string
		offset int
		ok     bool
	}{
		{"UTC+0", 0, true},
		{"UTC+3", 3, true},
		{"UTC-2", -2, true},
		{"UTC-11", -11, true},
		{"utc+4", 4, true},
		{"UTC", 0, false},
		{"UTC+5:30", 0, false},
		{"GMT+2", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		offset, ok := parseUTCOffset(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if tt.ok {
			assert.Equal(t, tt.offset, offset, "input %q", tt.input)
		}
	}
}

func TestScoreSkillLevel_TwoLevelGap(t *testing.T) {
	a := &types.Profile{SkillLevel: types.SkillBeginner}
	b := &types.Profile{SkillLevel: types.SkillAdvanced}

	score, gap := scoreSkillLevel(a, b)

	assert.InDelta(t, 0.7, score, 0.001)
	assert.Equal(t, 2, gap)
}

func TestScoreSkillLevel_OneLevelGapNearlyFull(t *testing.T) {
	a := &types.Profile{SkillLevel: types.SkillIntermediate}
	b := &types.Profile{SkillLevel: types.SkillAdvanced}

	score, gap := scoreSkillLevel(a, b)

	// A one-level gap has peer-teaching value and barely costs anything.
	assert.InDelta(t, 0.9, score, 0.001)
	assert.Equal(t, 1, gap)
}

func TestScoreSkillLevel_UnrecognizedIsNeutral(t *testing.T) {
	a := &types.Profile{SkillLevel: "WIZARD"}
	b := &types.Profile{SkillLevel: types.SkillExpert}

	score, gap := scoreSkillLevel(a, b)

	assert.Equal(t, neutralScore, score)
	assert.Equal(t, 0, gap)
}

func TestScoreAvailability_EmptyDaysIsNeutral(t *testing.T) {
	a := &types.Profile{}
	b := &types.Profile{}

	score, days, hours := scoreAvailability(a, b)

	assert.Equal(t, neutralScore, score)
	assert.Empty(t, days)
	assert.Empty(t, hours)
}

func TestScoreAvailability_DisjointDaysIsHardZero(t *testing.T) {
	a := &types.Profile{AvailableDays: []string{"Monday", "Tuesday"}}
	b := &types.Profile{AvailableDays: []string{"Saturday", "Sunday"}}

	score, days, hours := scoreAvailability(a, b)

	assert.Equal(t, 0.0, score, "no shared days means no shared study time")
	assert.Empty(t, days)
	assert.Empty(t, hours)
}

func TestScoreAvailability_SharedDaysAndHours(t *testing.T) {
	a := &types.Profile{
		AvailableDays:  []string{"Monday", "Wednesday"},
		AvailableHours: []string{"Evening"},
	}
	b := &types.Profile{
		AvailableDays:  []string{"monday", "wednesday"},
		AvailableHours: []string{"evening", "morning"},
	}

	score, days, hours := scoreAvailability(a, b)

	// Full day overlap plus an hour match: 0.6*1.0 + 0.4*1.0.
	assert.InDelta(t, 1.0, score, 0.001)
	assert.Equal(t, []string{"Monday", "Wednesday"}, days)
	assert.Equal(t, []string{"Evening"}, hours)
}

func TestScoreAvailability_SharedDaysDisjointHours(t *testing.T) {
	a := &types.Profile{
		AvailableDays:  []string{"Monday", "Tuesday"},
		AvailableHours: []string{"Morning"},
	}
	b := &types.Profile{
		AvailableDays:  []string{"Monday"},
		AvailableHours: []string{"Evening"},
	}

	score, days, hours := scoreAvailability(a, b)

	// Day ratio 1/2 blended with the 0.3 hour-mismatch score.
	assert.InDelta(t, 0.6*0.5+0.4*0.3, score, 0.001)
	assert.Equal(t, []string{"Monday"}, days)
	assert.Empty(t, hours)
}

func TestScoreAvailability_MissingHoursIsNeutralHourScore(t *testing.T) {
	a := &types.Profile{AvailableDays: []string{"Monday"}}
	b := &types.Profile{
		AvailableDays:  []string{"Monday"},
		AvailableHours: []string{"Evening"},
	}

	score, days, hours := scoreAvailability(a, b)

	assert.InDelta(t, 0.6*1.0+0.4*neutralScore, score, 0.001)
	assert.Equal(t, []string{"Monday"}, days)
	assert.Empty(t, hours)
}

func TestScoreStudyStyle_Identical(t *testing.T) {
	a := &types.Profile{StudyStyle: types.StyleVisual}
	b := &types.Profile{StudyStyle: "visual"}

	score, compatible := scoreStudyStyle(a, b)

	assert.Equal(t, 1.0, score)
	assert.True(t, compatible)
}

func TestScoreStudyStyle_AdjacentEitherDirection(t *testing.T) {
	a := &types.Profile{StudyStyle: types.StyleMixed}
	b := &types.Profile{StudyStyle: types.StyleCollaborative}

	score, compatible := scoreStudyStyle(a, b)
	assert.InDelta(t, 0.8, score, 0.001)
	assert.True(t, compatible)

	// Adjacency is symmetric even though the table is not mirrored.
	score, compatible = scoreStudyStyle(b, a)
	assert.InDelta(t, 0.8, score, 0.001)
	assert.True(t, compatible)
}

func TestScoreStudyStyle_Mismatch(t *testing.T) {
	a := &types.Profile{StudyStyle: types.StyleCollaborative}
	b := &types.Profile{StudyStyle: types.StyleSolo}

	score, compatible := scoreStudyStyle(a, b)

	assert.InDelta(t, styleMismatchScore, score, 0.001)
	assert.False(t, compatible)
}

func TestScoreStudyStyle_MissingIsNeutral(t *testing.T) {
	a := &types.Profile{StudyStyle: types.StyleVisual}
	b := &types.Profile{}

	score, compatible := scoreStudyStyle(a, b)

	assert.Equal(t, neutralScore, score)
	assert.True(t, compatible)
}

func TestScoreCompatibility_SelfMatchIsFull(t *testing.T) {
	p := &types.Profile{
		ID:             "profile_001",
		Subjects:       []string{"Math", "Physics"},
		Timezone:       "UTC+2",
		SkillLevel:     types.SkillAdvanced,
		AvailableDays:  []string{"Monday", "Wednesday"},
		AvailableHours: []string{"Evening"},
		StudyStyle:     types.StyleVisual,
	}

	score := ScoreCompatibility(p, p)

	assert.Equal(t, 100, score.TotalScore)
	assert.Equal(t, 100, score.Breakdown.Subjects)
	assert.Equal(t, 100, score.Breakdown.Timezone)
	assert.Equal(t, 100, score.Breakdown.SkillLevel)
	assert.Equal(t, 100, score.Breakdown.Availability)
	assert.Equal(t, 100, score.Breakdown.StudyStyle)
}

func TestScoreCompatibility_WorkedExample(t *testing.T) {
	a := &types.Profile{
		ID:             "a",
		Subjects:       []string{"Math", "CS"},
		Timezone:       "UTC+0",
		SkillLevel:     types.SkillIntermediate,
		AvailableDays:  []string{"Monday", "Tuesday"},
		AvailableHours: []string{"Morning"},
		StudyStyle:     types.StyleMixed,
	}
	b := &types.Profile{
		ID:             "b",
		Subjects:       []string{"math"},
		Timezone:       "UTC+2",
		SkillLevel:     types.SkillAdvanced,
		AvailableDays:  []string{"Monday"},
		AvailableHours: []string{"Evening"},
		StudyStyle:     types.StyleCollaborative,
	}

	score := ScoreCompatibility(a, b)

	assert.Equal(t, 50, score.Breakdown.Subjects)
	assert.Equal(t, 90, score.Breakdown.Timezone)
	assert.Equal(t, 90, score.Breakdown.SkillLevel)
	assert.Equal(t, 42, score.Breakdown.Availability)
	assert.Equal(t, 80, score.Breakdown.StudyStyle)
	// 0.35*0.5 + 0.25*0.9 + 0.15*0.9 + 0.15*0.42 + 0.10*0.8 = 0.678
	assert.Equal(t, 68, score.TotalScore)
	assert.Equal(t, []string{"Math"}, score.Details.SharedSubjects)
	assert.Equal(t, 1, score.Details.SkillLevelGap)
	assert.True(t, score.Details.TimezoneCompatible)
	assert.True(t, score.Details.StyleCompatible)
}

func TestScoreCompatibility_EmptyProfilesStayInBounds(t *testing.T) {
	a := &types.Profile{ID: "a"}
	b := &types.Profile{ID: "b"}

	score := ScoreCompatibility(a, b)

	// Subjects score 0, the four other factors neutral:
	// 0.25*0.5 + 0.15*0.5 + 0.15*0.5 + 0.10*0.5 = 0.325.
	assert.Equal(t, 33, score.TotalScore)
	assert.GreaterOrEqual(t, score.TotalScore, 0)
	assert.LessOrEqual(t, score.TotalScore, 100)
}

func TestScoreCompatibility_NumericScoreIsSymmetric(t *testing.T) {
	a := &types.Profile{
		ID:             "a",
		Subjects:       []string{"Math", "CS", "Art"},
		Timezone:       "UTC-5",
		SkillLevel:     types.SkillBeginner,
		AvailableDays:  []string{"Friday", "Saturday"},
		AvailableHours: []string{"Afternoon"},
		StudyStyle:     types.StyleAuditory,
	}
	b := &types.Profile{
		ID:             "b",
		Subjects:       []string{"math", "History"},
		Timezone:       "UTC+1",
		SkillLevel:     types.SkillExpert,
		AvailableDays:  []string{"saturday"},
		AvailableHours: []string{"afternoon", "evening"},
		StudyStyle:     types.StyleMixed,
	}

	forward := ScoreCompatibility(a, b)
	backward := ScoreCompatibility(b, a)

	assert.Equal(t, forward.TotalScore, backward.TotalScore)
	assert.Equal(t, forward.Breakdown, backward.Breakdown)
}

func TestScoreCompatibility_BreakdownWithinBounds(t *testing.T) {
	profiles := []*types.Profile{
		{ID: "empty"},
		{ID: "tz", Timezone: "UTC+9"},
		{ID: "full", Subjects: []string{"Math"}, Timezone: "UTC-3", SkillLevel: types.SkillExpert,
			AvailableDays: []string{"Sunday"}, AvailableHours: []string{"Night"}, StudyStyle: types.StyleSolo},
		{ID: "junk", Subjects: []string{""}, Timezone: "not-a-zone", SkillLevel: "??", StudyStyle: "??"},
	}

	for _, a := range profiles {
		for _, b := range profiles {
			score := ScoreCompatibility(a, b)
			assert.GreaterOrEqual(t, score.TotalScore, 0)
			assert.LessOrEqual(t, score.TotalScore, 100)
			for _, sub := range []int{
				score.Breakdown.Subjects,
				score.Breakdown.Timezone,
				score.Breakdown.SkillLevel,
				score.Breakdown.Availability,
				score.Breakdown.StudyStyle,
			} {
				assert.GreaterOrEqual(t, sub, 0)
				assert.LessOrEqual(t, sub, 100)
			}
		}
	}
}

func TestScoreCompatibility_CustomWeights(t *testing.T) {
	// A subjects-only weight profile isolates the subjects factor.
	scorer := NewScorer(Weights{Subjects: 1.0})

	a := &types.Profile{Subjects: []string{"Math", "CS"}, Timezone: "UTC+0"}
	b := &types.Profile{Subjects: []string{"math"}, Timezone: "UTC+9"}

	score := scorer.ScoreCompatibility(a, b)

	assert.Equal(t, 50, score.TotalScore)
}

func TestScoreCompatibility_DoesNotMutateInputs(t *testing.T) {
	a := &types.Profile{ID: "a", Subjects: []string{"Math", "CS"}, AvailableDays: []string{"Monday"}}
	b := &types.Profile{ID: "b", Subjects: []string{"math"}, AvailableDays: []string{"monday"}}

	_ = ScoreCompatibility(a, b)

	assert.Equal(t, []string{"Math", "CS"}, a.Subjects)
	assert.Equal(t, []string{"math"}, b.Subjects)
	assert.Equal(t, []string{"Monday"}, a.AvailableDays)
	assert.Equal(t, []string{"monday"}, b.AvailableDays)
}
