package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jordan/studymatch/internal/types"
)

// SaveMatchResult persists one computed score from a ranking pass. The latest
// result per (user, partner profile) pair wins.
func (db *DB) SaveMatchResult(ctx context.Context, userID, partnerProfileID uuid.UUID, score types.MatchScore) error {
	breakdown, err := json.Marshal(score.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal match breakdown: %w", err)
	}
	details, err := json.Marshal(score.Details)
	if err != nil {
		return fmt.Errorf("failed to marshal match details: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_results (user_id, partner_profile_id, total_score, breakdown, details)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, partner_profile_id) DO UPDATE SET
		   total_score = $3, breakdown = $4, details = $5, created_at = NOW()`,
		userID, partnerProfileID, score.TotalScore, breakdown, details,
	)
	if err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}
	return nil
}

// ListMatchHistory returns a user's stored match results, best score first.
func (db *DB) ListMatchHistory(ctx context.Context, userID uuid.UUID, limit int) ([]MatchRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, partner_profile_id, total_score, breakdown, details, created_at
		 FROM match_results
		 WHERE user_id = $1
		 ORDER BY total_score DESC, created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match history: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var m MatchRecord
		err := rows.Scan(&m.ID, &m.UserID, &m.PartnerProfileID, &m.TotalScore,
			&m.Breakdown, &m.Details, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match record: %w", err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match history: %w", err)
	}
	return records, nil
}
