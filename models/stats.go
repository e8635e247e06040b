package models

import "time"

// StatsData holds usage counters and the daily access streak.
type StatsData struct {
	// TotalScans counts every successful AddToHistory call. Never negative.
	TotalScans int `json:"totalScans"`
	// StreakDays is the number of consecutive calendar days with an access. At least 1.
	StreakDays int `json:"streakDays"`
	// LastAccessDate is the instant of the last recorded access.
	LastAccessDate time.Time `json:"lastAccessDate"`
}

// NewStats returns the stats record used when none was persisted yet.
func NewStats(now time.Time) StatsData {
	return StatsData{TotalScans: 0, StreakDays: 1, LastAccessDate: now}
}
