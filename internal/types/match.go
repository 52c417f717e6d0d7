package types

// MatchBreakdown holds the five per-factor sub-scores on a 0-100 scale.
type MatchBreakdown struct {
	Subjects     int `json:"subjects"`
	Timezone     int `json:"timezone"`
	SkillLevel   int `json:"skill_level"`
	Availability int `json:"availability"`
	StudyStyle   int `json:"study_style"`
}

// MatchDetails carries factor-specific explanatory data for a computed score.
type MatchDetails struct {
	SharedSubjects     []string `json:"shared_subjects"`
	TimezoneCompatible bool     `json:"timezone_compatible"`
	SkillLevelGap      int      `json:"skill_level_gap"`
	SharedDays         []string `json:"shared_days"`
	SharedHours        []string `json:"shared_hours"`
	StyleCompatible    bool     `json:"style_compatible"`
}

// MatchScore is the result of comparing two profiles. It is a value type
// created fresh per comparison; the total is always the rounded weighted sum
// of the breakdown factors.
type MatchScore struct {
	TotalScore int            `json:"total_score"`
	Breakdown  MatchBreakdown `json:"breakdown"`
	Details    MatchDetails   `json:"details"`
}

// RankedCandidate pairs a candidate profile with its score against the
// reference profile.
type RankedCandidate struct {
	Profile Profile    `json:"profile"`
	Score   MatchScore `json:"score"`
}
