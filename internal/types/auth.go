package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateUserRequest represents the request to register a new user with password authentication.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User represents a user account for API responses (avoids import cycle with db package).
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse represents the login/register response with user data and authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// UpsertProfileRequest represents a create-or-replace request for the
// authenticated user's study profile. All preference fields are optional;
// skill level and study style are only checked against the known enumerations
// when present.
type UpsertProfileRequest struct {
	Subjects       []string `json:"subjects,omitempty"`
	Timezone       string   `json:"timezone,omitempty"`
	SkillLevel     string   `json:"skill_level,omitempty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	AvailableDays  []string `json:"available_days,omitempty"`
	AvailableHours []string `json:"available_hours,omitempty"`
	StudyStyle     string   `json:"study_style,omitempty" validate:"omitempty,oneof=COLLABORATIVE INDEPENDENT MIXED VISUAL AUDITORY KINESTHETIC READING_WRITING SOLO"`
	Goals          []string `json:"goals,omitempty"`
	Interests      []string `json:"interests,omitempty"`
}

// Validate validates the CreateUserRequest using the validator.
func (r *CreateUserRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpsertProfileRequest using the validator.
func (r *UpsertProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
