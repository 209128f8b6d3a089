package models

import "time"

// Session represents one timed interval of play for a specific game.
// A session is active while EndTime is unset; stopping it assigns
// EndTime and Duration exactly once.
type Session struct {
	ID        uint       `json:"id"`
	GameID    uint       `json:"gameId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Duration  *int       `json:"duration,omitempty"` // minutes
	Notes     string     `json:"notes,omitempty"`
}

// Completed reports whether the session has been stopped.
func (s Session) Completed() bool {
	return s.EndTime != nil
}

// Minutes returns the recorded duration, or 0 while the session is active.
func (s Session) Minutes() int {
	if s.Duration == nil {
		return 0
	}
	return *s.Duration
}
