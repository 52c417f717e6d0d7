package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, user_id, subjects, timezone, skill_level,
	available_days, available_hours, study_style, goals, interests,
	created_at, updated_at`

func scanProfile(row pgx.Row) (*StudyProfile, error) {
	var p StudyProfile
	err := row.Scan(&p.ID, &p.UserID, &p.Subjects, &p.Timezone, &p.SkillLevel,
		&p.AvailableDays, &p.AvailableHours, &p.StudyStyle, &p.Goals, &p.Interests,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProfile creates or replaces the study profile for a user and returns
// the stored row. Each user has at most one profile.
func (db *DB) UpsertProfile(ctx context.Context, profile *StudyProfile) (*StudyProfile, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO study_profiles
		   (user_id, subjects, timezone, skill_level, available_days,
		    available_hours, study_style, goals, interests)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id) DO UPDATE SET
		   subjects = $2, timezone = $3, skill_level = $4, available_days = $5,
		   available_hours = $6, study_style = $7, goals = $8, interests = $9,
		   updated_at = NOW()
		 RETURNING `+profileColumns,
		profile.UserID, profile.Subjects, profile.Timezone, profile.SkillLevel,
		profile.AvailableDays, profile.AvailableHours, profile.StudyStyle,
		profile.Goals, profile.Interests,
	)

	stored, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return stored, nil
}

// GetProfile retrieves a study profile by its ID. Returns nil without error when not found.
func (db *DB) GetProfile(ctx context.Context, profileID uuid.UUID) (*StudyProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM study_profiles WHERE id = $1`,
		profileID,
	)

	profile, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// GetProfileByUser retrieves the study profile owned by a user. Returns nil
// without error when the user has no profile yet.
func (db *DB) GetProfileByUser(ctx context.Context, userID uuid.UUID) (*StudyProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM study_profiles WHERE user_id = $1`,
		userID,
	)

	profile, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile by user: %w", err)
	}
	return profile, nil
}

// ListCandidateProfiles returns every study profile except the one owned by
// the given user, newest first. The ranking pass filters and truncates, so
// the pool limit only bounds the query cost.
func (db *DB) ListCandidateProfiles(ctx context.Context, excludeUserID uuid.UUID, limit int) ([]StudyProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM study_profiles
		 WHERE user_id != $1
		 ORDER BY updated_at DESC
		 LIMIT $2`,
		excludeUserID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate profiles: %w", err)
	}
	defer rows.Close()

	var profiles []StudyProfile
	for rows.Next() {
		var p StudyProfile
		err := rows.Scan(&p.ID, &p.UserID, &p.Subjects, &p.Timezone, &p.SkillLevel,
			&p.AvailableDays, &p.AvailableHours, &p.StudyStyle, &p.Goals, &p.Interests,
			&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidate profiles: %w", err)
	}
	return profiles, nil
}
