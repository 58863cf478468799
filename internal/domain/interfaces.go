package domain

import "time"

// ─── Store Interfaces ───────────────────────────────────────────────────────
// These interfaces define boundaries between layers.
// Infrastructure implements them; application layer depends on them.
// The calculation core never owns persistence — it reads consistent snapshots
// supplied through these queries.

// ActivityFilter narrows an activity listing.
type ActivityFilter struct {
	UserID   string
	Category Category // CategoryAll or empty means no category filter
	From     time.Time
	To       time.Time // exclusive; zero means unbounded
	Limit    int
}

// ActivityStore abstracts activity persistence and aggregation.
type ActivityStore interface {
	InsertActivity(a Activity) error
	UpdateActivity(a Activity) error
	DeleteActivity(userID, id string) error
	GetActivity(userID, id string) (*Activity, error)
	ListActivities(f ActivityFilter) ([]Activity, error)

	// SumFootprint totals carbon footprint for a user over [from, to),
	// optionally filtered by category (CategoryAll or empty = no filter).
	SumFootprint(userID string, category Category, from, to time.Time) (float64, error)

	// CategoryTotals groups footprint totals by category over [from, to).
	CategoryTotals(userID string, from, to time.Time) (map[Category]float64, error)

	// CategoryAverage returns the mean footprint per activity and the sample
	// count for one category over [from, to). Count 0 means no history.
	CategoryAverage(userID string, category Category, from, to time.Time) (avg float64, count int, err error)

	// DailyTotals returns one bucket per day with logged activity, ascending.
	DailyTotals(userID string, from, to time.Time) ([]EmissionBucket, error)

	// ActivityDays returns the distinct days with at least one activity,
	// ascending, truncated to midnight UTC.
	ActivityDays(userID string, from, to time.Time) ([]time.Time, error)

	// TotalsByUser returns per-user footprint totals over [from, to),
	// ascending by total (lowest footprint first).
	TotalsByUser(from, to time.Time, limit int) ([]UserTotal, error)
}

// GoalStore abstracts goal persistence.
type GoalStore interface {
	InsertGoal(g Goal) error
	GetGoal(userID, id string) (*Goal, error)

	// ActiveGoal returns the user's active goal of the given variant, or nil.
	// Expiry is lazy: a goal whose end date has passed is not returned.
	ActiveGoal(userID string, variant GoalVariant, now time.Time) (*Goal, error)

	UpdateGoalStatus(userID, id string, status GoalStatus) error
}
