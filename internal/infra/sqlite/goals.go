package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

// ─── Goal Operations ────────────────────────────────────────────────────────

// InsertGoal stores a new goal.
func (db *DB) InsertGoal(g domain.Goal) error {
	_, err := db.db.Exec(`
		INSERT INTO goals (id, user_id, variant, category, start_date, end_date, baseline, target, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, g.ID, g.UserID, string(g.Variant), string(g.Category),
		g.StartDate.UTC().Format(time.RFC3339), g.EndDate.UTC().Format(time.RFC3339),
		g.Baseline, g.Target, string(g.Status), g.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

// GetGoal retrieves one goal owned by the user.
func (db *DB) GetGoal(userID, id string) (*domain.Goal, error) {
	row := db.db.QueryRow(`
		SELECT id, user_id, variant, category, start_date, end_date, baseline, target, status, created_at
		FROM goals WHERE id = ? AND user_id = ?
	`, id, userID)

	g, err := scanGoal(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ActiveGoal returns the user's active goal of the given variant, or nil.
// Expiry is lazy: a goal whose end date has passed is filtered out here, not
// swept by a background job.
func (db *DB) ActiveGoal(userID string, variant domain.GoalVariant, now time.Time) (*domain.Goal, error) {
	row := db.db.QueryRow(`
		SELECT id, user_id, variant, category, start_date, end_date, baseline, target, status, created_at
		FROM goals
		WHERE user_id = ? AND variant = ? AND status = 'active' AND end_date > ?
		ORDER BY created_at DESC LIMIT 1
	`, userID, string(variant), now.UTC().Format(time.RFC3339))

	g, err := scanGoal(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateGoalStatus archives or completes a goal.
func (db *DB) UpdateGoalStatus(userID, id string, status domain.GoalStatus) error {
	res, err := db.db.Exec(`
		UPDATE goals SET status = ? WHERE id = ? AND user_id = ?
	`, string(status), id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	var variant, category, status, start, end, created string

	err := row.Scan(&g.ID, &g.UserID, &variant, &category, &start, &end, &g.Baseline, &g.Target, &status, &created)
	if err != nil {
		return nil, err
	}

	g.Variant = domain.GoalVariant(variant)
	g.Category = domain.Category(category)
	g.Status = domain.GoalStatus(status)
	if g.StartDate, err = time.Parse(time.RFC3339, start); err != nil {
		return nil, fmt.Errorf("parse start_date: %w", err)
	}
	if g.EndDate, err = time.Parse(time.RFC3339, end); err != nil {
		return nil, fmt.Errorf("parse end_date: %w", err)
	}
	if g.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	return &g, nil
}
