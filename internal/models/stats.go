package models

import "time"

// GameStats is the derived per-game aggregate. It is recomputed from the
// session history on demand and never stored.
type GameStats struct {
	TotalTime          int        `json:"totalTime"` // minutes
	SessionsCount      int        `json:"sessionsCount"`
	AverageSessionTime float64    `json:"averageSessionTime"` // minutes
	LastPlayed         *time.Time `json:"lastPlayed,omitempty"`
}
