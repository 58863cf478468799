package domain

import (
	"testing"
	"time"
)

func day(offset int) time.Time {
	base := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestComputeStreak(t *testing.T) {
	today := day(0)

	tests := []struct {
		name    string
		days    []time.Time
		current int
		longest int
	}{
		{"no history", nil, 0, 0},
		{"single day today", []time.Time{day(0)}, 1, 1},
		{"run ending today", []time.Time{day(-2), day(-1), day(0)}, 3, 3},
		{"run ending yesterday survives", []time.Time{day(-3), day(-2), day(-1)}, 3, 3},
		{"two-day gap breaks the streak", []time.Time{day(-4), day(-3), day(-2)}, 0, 3},
		{"longest run is in the past", []time.Time{day(-9), day(-8), day(-7), day(-6), day(0)}, 1, 4},
		{"gap resets the trailing run", []time.Time{day(-5), day(-4), day(-1), day(0)}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStreak(tt.days, today)
			if got.CurrentDays != tt.current {
				t.Errorf("CurrentDays = %d, want %d", got.CurrentDays, tt.current)
			}
			if got.LongestDays != tt.longest {
				t.Errorf("LongestDays = %d, want %d", got.LongestDays, tt.longest)
			}
		})
	}
}

func TestComputeStreak_LastDate(t *testing.T) {
	got := ComputeStreak([]time.Time{day(-1), day(0)}, day(0))
	if !got.LastDate.Equal(day(0)) {
		t.Errorf("LastDate = %v, want %v", got.LastDate, day(0))
	}
}
