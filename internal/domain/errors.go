package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Validation errors
	ErrValidation = errors.New("invalid input")

	// Activity errors
	ErrActivityNotFound = errors.New("activity not found")

	// Goal errors
	ErrGoalNotFound = errors.New("goal not found")
	ErrGoalConflict = errors.New("an active goal of this variant already exists")
	ErrNoActiveGoal = errors.New("no active goal")
)
