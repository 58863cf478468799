package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

// ─── Activity Operations ────────────────────────────────────────────────────

// InsertActivity stores a new activity with its derived footprint.
func (db *DB) InsertActivity(a domain.Activity) error {
	details, err := json.Marshal(a.Details)
	if err != nil {
		return fmt.Errorf("encode details: %w", err)
	}
	_, err = db.db.Exec(`
		INSERT INTO activities (id, user_id, name, description, category, quantity_value, quantity_unit, details_json, carbon_footprint, emission_factor, logged_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.UserID, a.Name, a.Description, string(a.Category), a.Quantity.Value, string(a.Quantity.Unit),
		string(details), a.CarbonFootprint, a.EmissionFactor,
		a.LoggedAt.UTC().Format(time.RFC3339), a.CreatedAt.UTC().Format(time.RFC3339), a.UpdatedAt.UTC().Format(time.RFC3339))
	return err
}

// UpdateActivity overwrites a stored activity. The caller has already
// recomputed carbon_footprint and emission_factor for the new inputs.
func (db *DB) UpdateActivity(a domain.Activity) error {
	details, err := json.Marshal(a.Details)
	if err != nil {
		return fmt.Errorf("encode details: %w", err)
	}
	res, err := db.db.Exec(`
		UPDATE activities SET
			name             = ?,
			description      = ?,
			category         = ?,
			quantity_value   = ?,
			quantity_unit    = ?,
			details_json     = ?,
			carbon_footprint = ?,
			emission_factor  = ?,
			logged_at        = ?,
			updated_at       = ?
		WHERE id = ? AND user_id = ?
	`, a.Name, a.Description, string(a.Category), a.Quantity.Value, string(a.Quantity.Unit),
		string(details), a.CarbonFootprint, a.EmissionFactor,
		a.LoggedAt.UTC().Format(time.RFC3339), time.Now().UTC().Format(time.RFC3339),
		a.ID, a.UserID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

// DeleteActivity removes an activity owned by the user.
func (db *DB) DeleteActivity(userID, id string) error {
	res, err := db.db.Exec(`DELETE FROM activities WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

// GetActivity retrieves one activity owned by the user.
func (db *DB) GetActivity(userID, id string) (*domain.Activity, error) {
	row := db.db.QueryRow(`
		SELECT id, user_id, name, description, category, quantity_value, quantity_unit, details_json, carbon_footprint, emission_factor, logged_at, created_at, updated_at
		FROM activities WHERE id = ? AND user_id = ?
	`, id, userID)

	a, err := scanActivity(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListActivities returns activities matching the filter, newest first.
func (db *DB) ListActivities(f domain.ActivityFilter) ([]domain.Activity, error) {
	q := `SELECT id, user_id, name, description, category, quantity_value, quantity_unit, details_json, carbon_footprint, emission_factor, logged_at, created_at, updated_at
		  FROM activities WHERE user_id = ?`
	args := []any{f.UserID}

	if f.Category != "" && f.Category != domain.CategoryAll {
		q += ` AND category = ?`
		args = append(args, string(f.Category))
	}
	if !f.From.IsZero() {
		q += ` AND logged_at >= ?`
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if !f.To.IsZero() {
		q += ` AND logged_at < ?`
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}
	q += ` ORDER BY logged_at DESC`
	if f.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := db.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	return result, rows.Err()
}

// ─── Aggregate Queries ──────────────────────────────────────────────────────

// SumFootprint totals carbon footprint for a user over [from, to), optionally
// filtered by category.
func (db *DB) SumFootprint(userID string, category domain.Category, from, to time.Time) (float64, error) {
	q := `SELECT COALESCE(SUM(carbon_footprint), 0) FROM activities
		  WHERE user_id = ? AND logged_at >= ? AND logged_at < ?`
	args := []any{userID, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339)}
	if category != "" && category != domain.CategoryAll {
		q += ` AND category = ?`
		args = append(args, string(category))
	}

	var sum float64
	err := db.db.QueryRow(q, args...).Scan(&sum)
	return sum, err
}

// CategoryTotals groups footprint totals by category over [from, to).
func (db *DB) CategoryTotals(userID string, from, to time.Time) (map[domain.Category]float64, error) {
	rows, err := db.db.Query(`
		SELECT category, COALESCE(SUM(carbon_footprint), 0)
		FROM activities
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ?
		GROUP BY category
	`, userID, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[domain.Category]float64)
	for rows.Next() {
		var cat string
		var total float64
		if err := rows.Scan(&cat, &total); err != nil {
			return nil, err
		}
		totals[domain.Category(cat)] = total
	}
	return totals, rows.Err()
}

// CategoryAverage returns the mean footprint per activity and the sample count
// for one category over [from, to).
func (db *DB) CategoryAverage(userID string, category domain.Category, from, to time.Time) (float64, int, error) {
	var avg sql.NullFloat64
	var count int
	err := db.db.QueryRow(`
		SELECT AVG(carbon_footprint), COUNT(*)
		FROM activities
		WHERE user_id = ? AND category = ? AND logged_at >= ? AND logged_at < ?
	`, userID, string(category), from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339)).Scan(&avg, &count)
	if err != nil {
		return 0, 0, err
	}
	if !avg.Valid {
		return 0, 0, nil
	}
	return avg.Float64, count, nil
}

// DailyTotals returns one bucket per day with logged activity, ascending.
func (db *DB) DailyTotals(userID string, from, to time.Time) ([]domain.EmissionBucket, error) {
	rows, err := db.db.Query(`
		SELECT date(logged_at), COALESCE(SUM(carbon_footprint), 0)
		FROM activities
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ?
		GROUP BY date(logged_at)
		ORDER BY date(logged_at)
	`, userID, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []domain.EmissionBucket
	for rows.Next() {
		var day string
		var total float64
		if err := rows.Scan(&day, &total); err != nil {
			return nil, err
		}
		period, err := time.Parse(time.DateOnly, day)
		if err != nil {
			return nil, fmt.Errorf("parse bucket date %q: %w", day, err)
		}
		buckets = append(buckets, domain.EmissionBucket{Period: period, Total: total})
	}
	return buckets, rows.Err()
}

// ActivityDays returns the distinct days with at least one activity,
// ascending, at midnight UTC.
func (db *DB) ActivityDays(userID string, from, to time.Time) ([]time.Time, error) {
	rows, err := db.db.Query(`
		SELECT DISTINCT date(logged_at)
		FROM activities
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ?
		ORDER BY date(logged_at)
	`, userID, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		d, err := time.Parse(time.DateOnly, day)
		if err != nil {
			return nil, fmt.Errorf("parse activity day %q: %w", day, err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// TotalsByUser returns per-user footprint totals over [from, to), ascending by
// total — the lowest footprint leads the board.
func (db *DB) TotalsByUser(from, to time.Time, limit int) ([]domain.UserTotal, error) {
	rows, err := db.db.Query(`
		SELECT user_id, COALESCE(SUM(carbon_footprint), 0), COUNT(*)
		FROM activities
		WHERE logged_at >= ? AND logged_at < ?
		GROUP BY user_id
		ORDER BY SUM(carbon_footprint) ASC
		LIMIT ?
	`, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.UserTotal
	for rows.Next() {
		var r domain.UserTotal
		if err := rows.Scan(&r.UserID, &r.Total, &r.ActivityCount); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// ─── Scan Helpers ───────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var a domain.Activity
	var category, unit, detailsJSON, loggedAt, createdAt, updatedAt string

	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Description, &category,
		&a.Quantity.Value, &unit, &detailsJSON, &a.CarbonFootprint, &a.EmissionFactor,
		&loggedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	a.Category = domain.Category(category)
	a.Quantity.Unit = domain.Unit(unit)
	if err := json.Unmarshal([]byte(detailsJSON), &a.Details); err != nil {
		return nil, fmt.Errorf("decode details: %w", err)
	}
	if a.LoggedAt, err = time.Parse(time.RFC3339, loggedAt); err != nil {
		return nil, fmt.Errorf("parse logged_at: %w", err)
	}
	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if a.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &a, nil
}
