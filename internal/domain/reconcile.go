package domain

import "time"

// ReconcileStats holds statistics about one inbox reconciliation pass.
type ReconcileStats struct {
	Entries  int
	Created  int
	Merged   int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// SweepStats holds statistics about one duplicate-sweep pass.
type SweepStats struct {
	URLs     int
	Merged   int
	Deleted  int
	Errors   int
	Duration time.Duration
}
