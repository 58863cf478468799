package goals

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack-app/ecotrack/internal/domain"
	"github.com/ecotrack-app/ecotrack/internal/infra/sqlite"
)

func newTestService(t *testing.T, now time.Time) (*Service, *sqlite.DB) {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s := NewService(db, db)
	s.now = func() time.Time { return now }
	return s, db
}

func logActivity(t *testing.T, db *sqlite.DB, userID string, category domain.Category, footprint float64, at time.Time) {
	t.Helper()
	err := db.InsertActivity(domain.Activity{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            "test",
		Category:        category,
		Quantity:        domain.Quantity{Value: 1, Unit: domain.UnitKg},
		CarbonFootprint: footprint,
		LoggedAt:        at,
		CreatedAt:       at,
		UpdatedAt:       at,
	})
	if err != nil {
		t.Fatalf("insert activity: %v", err)
	}
}

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// ─── Progress Tests ─────────────────────────────────────────────────────────

func TestProgress_FixedEmission(t *testing.T) {
	s, db := newTestService(t, testNow)

	g := domain.Goal{
		ID:        "g1",
		UserID:    "user-1",
		Variant:   domain.GoalFixedEmission,
		Category:  domain.CategoryAll,
		StartDate: testNow.AddDate(0, 0, -3),
		EndDate:   testNow.AddDate(0, 0, 4),
		Baseline:  100,
		Target:    80,
		Status:    domain.GoalActive,
	}
	logActivity(t, db, "user-1", domain.CategoryFood, 90, testNow.AddDate(0, 0, -1))

	p, err := s.Progress(g)
	if err != nil {
		t.Fatalf("Progress() error: %v", err)
	}
	if p.Current != 90 {
		t.Errorf("Current = %v, want 90", p.Current)
	}
	if p.ProgressPct != 112.5 {
		t.Errorf("ProgressPct = %v, want 112.5", p.ProgressPct)
	}
	if p.OnTrack {
		t.Error("OnTrack = true, want false (90 > 80)")
	}
	if p.DaysRemaining != 4 {
		t.Errorf("DaysRemaining = %d, want 4", p.DaysRemaining)
	}
	if p.Expired {
		t.Error("Expired = true, want false")
	}
}

func TestProgress_WeeklyReduction(t *testing.T) {
	s, db := newTestService(t, testNow)

	g := domain.Goal{
		ID:        "g2",
		UserID:    "user-1",
		Variant:   domain.GoalWeeklyReduction,
		Category:  domain.CategoryAll,
		StartDate: testNow.AddDate(0, 0, -2),
		EndDate:   testNow.AddDate(0, 0, 5),
		Baseline:  40,
		Target:    30,
		Status:    domain.GoalActive,
	}
	logActivity(t, db, "user-1", domain.CategoryTransport, 10, testNow.AddDate(0, 0, -1))

	p, err := s.Progress(g)
	if err != nil {
		t.Fatalf("Progress() error: %v", err)
	}
	// (40 − 10) / 40 × 100 = 75% reduction achieved
	if p.ProgressPct != 75 {
		t.Errorf("ProgressPct = %v, want 75", p.ProgressPct)
	}
	if !p.OnTrack {
		t.Error("OnTrack = false, want true (10 ≤ 30)")
	}
}

func TestProgress_ZeroBaselineGuard(t *testing.T) {
	s, db := newTestService(t, testNow)

	g := domain.Goal{
		ID:        "g3",
		UserID:    "user-1",
		Variant:   domain.GoalWeeklyReduction,
		Category:  domain.CategoryAll,
		StartDate: testNow.AddDate(0, 0, -2),
		EndDate:   testNow.AddDate(0, 0, 5),
		Baseline:  0,
		Target:    30,
		Status:    domain.GoalActive,
	}
	logActivity(t, db, "user-1", domain.CategoryTransport, 25, testNow.AddDate(0, 0, -1))

	p, err := s.Progress(g)
	if err != nil {
		t.Fatalf("Progress() error: %v", err)
	}
	if p.ProgressPct != 0 {
		t.Errorf("zero baseline must yield progress 0, got %v", p.ProgressPct)
	}
}

func TestProgress_ZeroTargetGuard(t *testing.T) {
	s, _ := newTestService(t, testNow)

	g := domain.Goal{
		ID:        "g4",
		UserID:    "user-1",
		Variant:   domain.GoalFixedEmission,
		Category:  domain.CategoryAll,
		StartDate: testNow.AddDate(0, 0, -2),
		EndDate:   testNow.AddDate(0, 0, 5),
		Target:    0,
		Status:    domain.GoalActive,
	}

	p, err := s.Progress(g)
	if err != nil {
		t.Fatalf("Progress() error: %v", err)
	}
	if p.ProgressPct != 0 {
		t.Errorf("zero target must yield progress 0, got %v", p.ProgressPct)
	}
}

func TestProgress_CategoryFilter(t *testing.T) {
	s, db := newTestService(t, testNow)

	g := domain.Goal{
		ID:        "g5",
		UserID:    "user-1",
		Variant:   domain.GoalFixedEmission,
		Category:  domain.CategoryTransport,
		StartDate: testNow.AddDate(0, 0, -3),
		EndDate:   testNow.AddDate(0, 0, 4),
		Target:    50,
		Status:    domain.GoalActive,
	}
	logActivity(t, db, "user-1", domain.CategoryTransport, 12, testNow.AddDate(0, 0, -1))
	logActivity(t, db, "user-1", domain.CategoryFood, 30, testNow.AddDate(0, 0, -1))

	p, err := s.Progress(g)
	if err != nil {
		t.Fatalf("Progress() error: %v", err)
	}
	if p.Current != 12 {
		t.Errorf("Current = %v, want 12 (transport only)", p.Current)
	}
}

func TestProgress_ExpiredGoal(t *testing.T) {
	s, _ := newTestService(t, testNow)

	g := domain.Goal{
		ID:        "g6",
		UserID:    "user-1",
		Variant:   domain.GoalFixedEmission,
		Category:  domain.CategoryAll,
		StartDate: testNow.AddDate(0, 0, -14),
		EndDate:   testNow.AddDate(0, 0, -2),
		Target:    50,
		Status:    domain.GoalActive,
	}

	p, err := s.Progress(g)
	if err != nil {
		t.Fatalf("Progress() error: %v", err)
	}
	if !p.Expired {
		t.Error("Expired = false, want true")
	}
	if p.DaysRemaining > 0 {
		t.Errorf("DaysRemaining = %d, want ≤ 0", p.DaysRemaining)
	}
}

// ─── Create Tests ───────────────────────────────────────────────────────────

func TestCreate_CapturesBaseline(t *testing.T) {
	s, db := newTestService(t, testNow)

	// Prior comparable window for a weekly goal: [now−14d, now−7d)
	logActivity(t, db, "user-1", domain.CategoryFood, 18, testNow.AddDate(0, 0, -10))
	logActivity(t, db, "user-1", domain.CategoryFood, 7, testNow.AddDate(0, 0, -9))
	// Inside the current week — must not count toward the baseline
	logActivity(t, db, "user-1", domain.CategoryFood, 99, testNow.AddDate(0, 0, -2))

	g, err := s.Create("user-1", CreateParams{Variant: domain.GoalWeeklyReduction, Target: 20})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.Baseline != 25 {
		t.Errorf("Baseline = %v, want 25", g.Baseline)
	}
	if g.Category != domain.CategoryAll {
		t.Errorf("Category = %q, want all", g.Category)
	}
	if got := g.EndDate.Sub(g.StartDate); got != 7*24*time.Hour {
		t.Errorf("window = %v, want 168h", got)
	}
}

func TestCreate_FixedWindow(t *testing.T) {
	s, _ := newTestService(t, testNow)

	g, err := s.Create("user-1", CreateParams{Variant: domain.GoalFixedEmission, Target: 100, WindowDays: 14})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if got := g.EndDate.Sub(g.StartDate); got != 14*24*time.Hour {
		t.Errorf("window = %v, want 336h", got)
	}
}

func TestCreate_ConflictOnSecondActiveGoal(t *testing.T) {
	s, _ := newTestService(t, testNow)

	if _, err := s.Create("user-1", CreateParams{Variant: domain.GoalFixedEmission, Target: 100}); err != nil {
		t.Fatalf("first Create() error: %v", err)
	}
	_, err := s.Create("user-1", CreateParams{Variant: domain.GoalFixedEmission, Target: 50})
	if !errors.Is(err, domain.ErrGoalConflict) {
		t.Errorf("expected ErrGoalConflict, got %v", err)
	}

	// A different variant is allowed alongside
	if _, err := s.Create("user-1", CreateParams{Variant: domain.GoalWeeklyReduction, Target: 50}); err != nil {
		t.Errorf("other variant should coexist, got %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	s, _ := newTestService(t, testNow)

	tests := []struct {
		name   string
		params CreateParams
	}{
		{"unknown variant", CreateParams{Variant: "yearly", Target: 10}},
		{"zero target", CreateParams{Variant: domain.GoalFixedEmission, Target: 0}},
		{"negative target", CreateParams{Variant: domain.GoalFixedEmission, Target: -5}},
		{"bad category", CreateParams{Variant: domain.GoalFixedEmission, Target: 10, Category: "commute"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Create("user-1", tt.params); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

// ─── Lifecycle Tests ────────────────────────────────────────────────────────

func TestActiveProgress_NoGoal(t *testing.T) {
	s, _ := newTestService(t, testNow)
	_, err := s.ActiveProgress("user-1", domain.GoalFixedEmission)
	if !errors.Is(err, domain.ErrNoActiveGoal) {
		t.Errorf("expected ErrNoActiveGoal, got %v", err)
	}
}

func TestAbandonFreesVariantSlot(t *testing.T) {
	s, _ := newTestService(t, testNow)

	g, err := s.Create("user-1", CreateParams{Variant: domain.GoalFixedEmission, Target: 100})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if err := s.Abandon("user-1", g.ID); err != nil {
		t.Fatalf("Abandon() error: %v", err)
	}
	if _, err := s.Create("user-1", CreateParams{Variant: domain.GoalFixedEmission, Target: 60}); err != nil {
		t.Errorf("Create() after abandon error: %v", err)
	}
}
