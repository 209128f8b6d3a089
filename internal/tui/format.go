package tui

import (
	"fmt"
	"time"
)

// FormatMinutes renders a minute total the way game cards show it:
// "2h 05m" style, collapsing to "45m" or "2h", with "< 1m" for games
// that have been played but rounded down to nothing.
func FormatMinutes(minutes int, hasPlayed bool) string {
	hours := minutes / 60
	mins := minutes % 60

	if hours == 0 && mins == 0 {
		if hasPlayed {
			return "< 1m"
		}
		return "0"
	}
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatElapsed renders a live session clock as hh:mm:ss
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// FormatLastPlayed renders a last-played timestamp, or a dash when the
// game was never played
func FormatLastPlayed(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("02 Jan 2006 15:04")
}

// FormatHours renders a one-decimal hour figure for the statistics screen
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}
