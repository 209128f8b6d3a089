package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okazarin/playtrack/internal/ledger"
)

// topGamesShown caps the per-game ranking on the statistics screen
const topGamesShown = 10

// StatsModel is the statistics screen. Everything it shows is derived from
// the session history when the model is created; nothing is cached between
// visits.
type StatsModel struct {
	width  int
	height int

	global   ledger.GlobalStats
	weekdays [7]float64
	periods  [4]float64
	top      []ledger.GamePlaytime
}

// NewStatsModel computes the aggregates for display
func NewStatsModel(l *ledger.Ledger) StatsModel {
	return StatsModel{
		global:   l.GlobalStats(),
		weekdays: l.PlaytimeByWeekday(),
		periods:  l.PlaytimeByPeriod(),
		top:      l.TopGames(topGamesShown),
	}
}

// Init initializes the model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc", "tab":
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the statistics screen
func (m StatsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).Bold(true).
		Render("📊 Statistics"))
	b.WriteString("\n\n")

	b.WriteString(m.renderGlobalCard())
	b.WriteString("\n\n")

	b.WriteString(m.renderSection("Play time by weekday", ledger.WeekdayNames[:], m.weekdays[:]))
	b.WriteString("\n")

	periodNames := make([]string, len(ledger.Periods))
	for i, p := range ledger.Periods {
		periodNames[i] = p.Name
	}
	b.WriteString(m.renderSection("Play time by period", periodNames, m.periods[:]))
	b.WriteString("\n")

	b.WriteString(m.renderTopGames())
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).
		Render("tab back to library · q quit"))

	return b.String()
}

func (m StatsModel) renderGlobalCard() string {
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	cell := func(value, label string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			valueStyle.Render(value),
			labelStyle.Render(label),
		)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		cell(FormatHours(m.global.TotalHours), "total play time"),
		"    ",
		cell(fmt.Sprintf("%d", m.global.TotalSessions), "sessions"),
		"    ",
		cell(FormatHours(m.global.AverageSessionHours), "avg / session"),
		"    ",
		cell(fmt.Sprintf("%d", m.global.TotalGames), "games"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 2).
		Render(row)
}

func (m StatsModel) renderSection(title string, labels []string, hours []float64) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true).
		Render(title))
	b.WriteString("\n")

	maxHours := 0.0
	for _, h := range hours {
		if h > maxHours {
			maxHours = h
		}
	}

	for i, label := range labels {
		b.WriteString(m.renderBar(label, hours[i], maxHours))
		b.WriteString("\n")
	}

	return b.String()
}

func (m StatsModel) renderTopGames() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true).
		Render("Most played"))
	b.WriteString("\n")

	if len(m.top) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("No completed sessions yet."))
		b.WriteString("\n")
		return b.String()
	}

	maxHours := m.top[0].Hours
	for _, entry := range m.top {
		b.WriteString(m.renderBar(entry.Name, entry.Hours, maxHours))
		b.WriteString("\n")
	}

	return b.String()
}

// renderBar draws one labelled horizontal bar scaled against maxHours
func (m StatsModel) renderBar(label string, hours, maxHours float64) string {
	barWidth := m.width - 34
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 40 {
		barWidth = 40
	}

	filled := 0
	if maxHours > 0 {
		filled = int(hours / maxHours * float64(barWidth))
	}
	if filled > barWidth {
		filled = barWidth
	}

	if len(label) > 12 {
		label = label[:11] + "…"
	}

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).
		Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)).
			Render(strings.Repeat("░", barWidth-filled))

	return fmt.Sprintf("%-12s %s %s",
		label,
		bar,
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(FormatHours(hours)))
}
