package ledger

import (
	"math"
	"sort"
)

// GlobalStats is the statistics-screen summary, derived over the whole
// session history and library.
type GlobalStats struct {
	TotalHours          float64
	TotalSessions       int
	AverageSessionHours float64
	TotalGames          int
}

// Period is one of the four fixed wall-clock windows used to bucket play
// time by time of day. End < Start marks the window wrapping past midnight.
type Period struct {
	Name  string
	Start int
	End   int
}

// Periods are keyed by the hour of a session's end time
var Periods = [4]Period{
	{Name: "Morning", Start: 5, End: 12},
	{Name: "Afternoon", Start: 12, End: 18},
	{Name: "Evening", Start: 18, End: 23},
	{Name: "Night", Start: 23, End: 5},
}

// GamePlaytime is one entry of the per-game playtime ranking
type GamePlaytime struct {
	Name  string
	Hours float64
}

// GlobalStats computes the statistics-screen totals. Hours are rounded to
// one decimal place; sessions without a recorded duration contribute nothing.
func (l *Ledger) GlobalStats() GlobalStats {
	totalMinutes := 0
	totalSessions := 0
	for _, s := range l.sessions {
		totalMinutes += s.Minutes()
		if s.Completed() {
			totalSessions++
		}
	}

	stats := GlobalStats{
		TotalHours:    round1(float64(totalMinutes) / 60),
		TotalSessions: totalSessions,
		TotalGames:    len(l.games),
	}
	if totalSessions > 0 {
		stats.AverageSessionHours = round1(float64(totalMinutes) / float64(totalSessions) / 60)
	}
	return stats
}

// PlaytimeByWeekday buckets play hours by the weekday a session ended on,
// Monday=0 through Sunday=6. A session's whole duration lands in one bucket.
func (l *Ledger) PlaytimeByWeekday() [7]float64 {
	var minutes [7]int
	for _, s := range l.sessions {
		if !s.Completed() || s.Duration == nil {
			continue
		}
		// time.Weekday counts Sunday as 0; shift so Monday is 0
		day := (int(s.EndTime.Weekday()) + 6) % 7
		minutes[day] += *s.Duration
	}

	var hours [7]float64
	for i, m := range minutes {
		hours[i] = round1(float64(m) / 60)
	}
	return hours
}

// PlaytimeByPeriod buckets play hours into the four fixed wall-clock
// windows, keyed by the hour of each session's end time.
func (l *Ledger) PlaytimeByPeriod() [4]float64 {
	var minutes [4]int
	for _, s := range l.sessions {
		if !s.Completed() || s.Duration == nil {
			continue
		}
		hour := s.EndTime.Hour()
		for i, p := range Periods {
			if p.contains(hour) {
				minutes[i] += *s.Duration
				break
			}
		}
	}

	var hours [4]float64
	for i, m := range minutes {
		hours[i] = round1(float64(m) / 60)
	}
	return hours
}

// TopGames ranks games by total play hours, descending, capped at n.
// Sessions cascade-deleted with their game never appear here.
func (l *Ledger) TopGames(n int) []GamePlaytime {
	minutesByGame := make(map[uint]int)
	for _, s := range l.sessions {
		if s.Duration == nil {
			continue
		}
		minutesByGame[s.GameID] += *s.Duration
	}

	ranking := make([]GamePlaytime, 0, len(minutesByGame))
	for gameID, m := range minutesByGame {
		name := "Unknown"
		if game := l.game(gameID); game != nil {
			name = game.Name
		}
		ranking = append(ranking, GamePlaytime{Name: name, Hours: round1(float64(m) / 60)})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Hours != ranking[j].Hours {
			return ranking[i].Hours > ranking[j].Hours
		}
		return ranking[i].Name < ranking[j].Name
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

func (p Period) contains(hour int) bool {
	if p.End > p.Start {
		return hour >= p.Start && hour < p.End
	}
	return hour >= p.Start || hour < p.End
}

// round1 rounds to one decimal place
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// WeekdayNames are the chart labels for PlaytimeByWeekday, index-aligned
var WeekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
