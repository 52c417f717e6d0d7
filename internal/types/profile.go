// Package types provides type definitions for structured data used throughout the studymatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Skill levels ordered from least to most experienced.
const (
	SkillBeginner     = "BEGINNER"
	SkillIntermediate = "INTERMEDIATE"
	SkillAdvanced     = "ADVANCED"
	SkillExpert       = "EXPERT"
)

// Study style preferences.
const (
	StyleCollaborative  = "COLLABORATIVE"
	StyleIndependent    = "INDEPENDENT"
	StyleMixed          = "MIXED"
	StyleVisual         = "VISUAL"
	StyleAuditory       = "AUDITORY"
	StyleKinesthetic    = "KINESTHETIC"
	StyleReadingWriting = "READING_WRITING"
	StyleSolo           = "SOLO"
)

// Profile describes one student's study preferences and availability.
// Every field besides ID is optional: missing or unrecognized values are
// valid states that the scorer resolves to neutral defaults, never errors.
type Profile struct {
	ID             string   `json:"id"`
	Subjects       []string `json:"subjects,omitempty"`
	Timezone       string   `json:"timezone,omitempty"` // "UTC+2", "UTC-7"
	SkillLevel     string   `json:"skill_level,omitempty"`
	AvailableDays  []string `json:"available_days,omitempty"`
	AvailableHours []string `json:"available_hours,omitempty"`
	StudyStyle     string   `json:"study_style,omitempty"`

	// Goals and interests are carried for display only; the scorer does not
	// consume them.
	Goals     []string `json:"goals,omitempty"`
	Interests []string `json:"interests,omitempty"`
}
