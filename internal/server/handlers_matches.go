package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jordan/studymatch/internal/matching"
	"github.com/jordan/studymatch/internal/server/middleware"
	"github.com/jordan/studymatch/internal/types"
)

// scoreRequest carries two inline profiles to score against each other.
type scoreRequest struct {
	ProfileA types.Profile `json:"profile_a"`
	ProfileB types.Profile `json:"profile_b"`
}

// scoreResponse is a MatchScore plus its presentation attributes.
type scoreResponse struct {
	types.MatchScore
	Label string `json:"label"`
	Color string `json:"color"`
}

// rankRequest optionally overrides the server's ranking defaults.
type rankRequest struct {
	Limit    *int `json:"limit,omitempty"`
	MinScore *int `json:"min_score,omitempty"`
}

// rankedMatch is one entry of a ranking response.
type rankedMatch struct {
	Profile types.Profile    `json:"profile"`
	Score   types.MatchScore `json:"score"`
	Label   string           `json:"label"`
	Color   string           `json:"color"`
}

// historyEntry is one persisted match result in API form.
type historyEntry struct {
	PartnerProfileID uuid.UUID        `json:"partner_profile_id"`
	Score            types.MatchScore `json:"score"`
	Label            string           `json:"label"`
	Color            string           `json:"color"`
	CreatedAt        time.Time        `json:"created_at"`
}

// handleScore scores two profiles supplied inline. No stored state is
// touched, so the endpoint does not require authentication.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	score := s.scorer.ScoreCompatibility(&req.ProfileA, &req.ProfileB)
	s.jsonResponse(w, http.StatusOK, scoreResponse{
		MatchScore: score,
		Label:      matching.ScoreLabel(score.TotalScore),
		Color:      matching.ScoreColor(score.TotalScore),
	})
}

// handleRank ranks all other stored profiles against the authenticated
// user's profile and persists the results as match history.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	opts := matching.RankOptions{Limit: s.defaultLimit, MinScore: s.defaultMinScore}
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}
	if req.Limit != nil {
		opts.Limit = *req.Limit
	}
	if req.MinScore != nil {
		opts.MinScore = *req.MinScore
	}

	own, err := s.db.GetProfileByUser(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to load profile")
		s.errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if own == nil {
		notFound := &ErrProfileNotFound{ID: userID.String()}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	stored, err := s.db.ListCandidateProfiles(r.Context(), userID, candidatePoolLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list candidate profiles")
		s.errorResponse(w, http.StatusInternalServerError, "failed to load candidates")
		return
	}

	reference := own.ToProfile()
	candidates := make([]types.Profile, len(stored))
	for i := range stored {
		candidates[i] = stored[i].ToProfile()
	}

	ranked := s.scorer.RankCandidates(&reference, candidates, opts)

	results := make([]rankedMatch, 0, len(ranked))
	for _, rc := range ranked {
		results = append(results, rankedMatch{
			Profile: rc.Profile,
			Score:   rc.Score,
			Label:   matching.ScoreLabel(rc.Score.TotalScore),
			Color:   matching.ScoreColor(rc.Score.TotalScore),
		})

		partnerID, err := uuid.Parse(rc.Profile.ID)
		if err != nil {
			continue
		}
		if err := s.db.SaveMatchResult(r.Context(), userID, partnerID, rc.Score); err != nil {
			// History is best effort; the ranking itself already succeeded.
			log.Warn().Err(err).Str("partner_profile_id", partnerID.String()).Msg("Failed to save match result")
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matches": results,
		"count":   len(results),
	})
}

// handleMatchHistory returns the authenticated user's persisted match
// results, best scores first.
func (s *Server) handleMatchHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	records, err := s.db.ListMatchHistory(r.Context(), userID, candidatePoolLimit)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to load match history")
		s.errorResponse(w, http.StatusInternalServerError, "failed to load match history")
		return
	}

	entries := make([]historyEntry, 0, len(records))
	for i := range records {
		score, err := records[i].Score()
		if err != nil {
			log.Warn().Err(err).Str("match_id", records[i].ID.String()).Msg("Skipping undecodable match record")
			continue
		}
		entries = append(entries, historyEntry{
			PartnerProfileID: records[i].PartnerProfileID,
			Score:            score,
			Label:            matching.ScoreLabel(score.TotalScore),
			Color:            matching.ScoreColor(score.TotalScore),
			CreatedAt:        records[i].CreatedAt,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"history": entries,
		"count":   len(entries),
	})
}
