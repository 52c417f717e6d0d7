package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jordan/studymatch/internal/db"
	"github.com/jordan/studymatch/internal/server/middleware"
	"github.com/jordan/studymatch/internal/types"
)

// handleUpsertProfile creates or replaces the authenticated user's study profile.
func (s *Server) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req types.UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":   "validation_failed",
			"details": extractValidationErrors(err),
		})
		return
	}

	profile := &db.StudyProfile{
		UserID:         userID,
		Subjects:       req.Subjects,
		Timezone:       req.Timezone,
		SkillLevel:     req.SkillLevel,
		AvailableDays:  req.AvailableDays,
		AvailableHours: req.AvailableHours,
		StudyStyle:     req.StudyStyle,
		Goals:          req.Goals,
		Interests:      req.Interests,
	}

	saved, err := s.db.UpsertProfile(r.Context(), profile)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to upsert profile")
		s.errorResponse(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, saved)
}

// handleGetOwnProfile returns the authenticated user's study profile.
func (s *Server) handleGetOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := s.db.GetProfileByUser(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to load profile")
		s.errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if profile == nil {
		notFound := &ErrProfileNotFound{ID: userID.String()}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleGetProfile returns a study profile by its ID.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile ID")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), profileID)
	if err != nil {
		log.Error().Err(err).Str("profile_id", profileID.String()).Msg("Failed to load profile")
		s.errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if profile == nil {
		notFound := &ErrProfileNotFound{ID: profileID.String()}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}
