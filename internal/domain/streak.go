package domain

import "time"

// ComputeStreak derives streak figures from the distinct days a user logged
// activity on, ascending and truncated to midnight UTC. The current streak is
// the consecutive run ending today or yesterday — a day without logging breaks
// it, but today not being over yet does not.
func ComputeStreak(days []time.Time, today time.Time) Streak {
	if len(days) == 0 {
		return Streak{}
	}

	today = today.UTC().Truncate(24 * time.Hour)

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	last := days[len(days)-1]
	current := 0
	if gap := today.Sub(last); gap == 0 || gap == 24*time.Hour {
		current = run
	}

	return Streak{
		CurrentDays: current,
		LongestDays: longest,
		LastDate:    last,
	}
}
