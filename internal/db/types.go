package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jordan/studymatch/internal/types"
)

// User represents a user account row
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StudyProfile represents a user's study preference row. One profile per user.
type StudyProfile struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"user_id"`
	Subjects       StringArray `json:"subjects"`        // JSONB array
	Timezone       string      `json:"timezone"`        // "UTC+2"
	SkillLevel     string      `json:"skill_level"`
	AvailableDays  StringArray `json:"available_days"`  // JSONB array
	AvailableHours StringArray `json:"available_hours"` // JSONB array
	StudyStyle     string      `json:"study_style"`
	Goals          StringArray `json:"goals"`     // JSONB array
	Interests      StringArray `json:"interests"` // JSONB array
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// ToProfile converts the stored row into the plain attribute record the
// scorer consumes. The scorer side identifies profiles by the row ID.
func (p *StudyProfile) ToProfile() types.Profile {
	return types.Profile{
		ID:             p.ID.String(),
		Subjects:       p.Subjects,
		Timezone:       p.Timezone,
		SkillLevel:     p.SkillLevel,
		AvailableDays:  p.AvailableDays,
		AvailableHours: p.AvailableHours,
		StudyStyle:     p.StudyStyle,
		Goals:          p.Goals,
		Interests:      p.Interests,
	}
}

// MatchRecord represents one persisted ranking result: the score computed
// between a user's profile and a partner's profile at ranking time.
type MatchRecord struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	PartnerProfileID uuid.UUID `json:"partner_profile_id"`
	TotalScore       int       `json:"total_score"`
	Breakdown        []byte    `json:"breakdown"` // JSONB MatchBreakdown
	Details          []byte    `json:"details"`   // JSONB MatchDetails
	CreatedAt        time.Time `json:"created_at"`
}

// Score reassembles the stored JSONB columns into a MatchScore.
func (m *MatchRecord) Score() (types.MatchScore, error) {
	score := types.MatchScore{TotalScore: m.TotalScore}
	if len(m.Breakdown) > 0 {
		if err := json.Unmarshal(m.Breakdown, &score.Breakdown); err != nil {
			return types.MatchScore{}, errors.New("failed to decode match breakdown")
		}
	}
	if len(m.Details) > 0 {
		if err := json.Unmarshal(m.Details, &score.Details); err != nil {
			return types.MatchScore{}, errors.New("failed to decode match details")
		}
	}
	return score, nil
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
