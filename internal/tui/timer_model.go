package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okazarin/playtrack/internal/ledger"
	"github.com/okazarin/playtrack/internal/models"
)

// TimerModel is the live session timer. It only displays elapsed wall-clock
// time; the stored duration is computed from absolute timestamps at stop,
// never from tick counts.
type TimerModel struct {
	width  int
	height int

	session *models.Session
	game    *models.Game

	elapsedTime time.Duration

	// Pulse state for the recording indicator
	pulseOn bool

	stopping bool // user pressed S, stop and save on exit
	exiting  bool // user left the timer, session keeps running
}

// timerTickMsg is sent every second to refresh the elapsed display
type timerTickMsg struct{}

// pulseTickMsg drives the blinking recording indicator
type pulseTickMsg struct{}

// NewTimerModel creates a timer for an in-progress session
func NewTimerModel(session *models.Session, game *models.Game) TimerModel {
	return TimerModel{
		session:     session,
		game:        game,
		elapsedTime: time.Since(session.StartTime),
		pulseOn:     true,
	}
}

// Init starts the timer and pulse tickers
func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return timerTickMsg{}
		}),
		tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
			return pulseTickMsg{}
		}),
	)
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		// Recompute from the session's start timestamp, not by accumulating
		m.elapsedTime = time.Since(m.session.StartTime)

		if !m.stopping && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return timerTickMsg{}
			})
		}
		return m, nil

	case pulseTickMsg:
		m.pulseOn = !m.pulseOn

		if !m.stopping && !m.exiting {
			return m, tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
				return pulseTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			// Stop the session and save
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Leave the timer, session keeps running
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the timer
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	indicator := "●"
	indicatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))
	if !m.pulseOn {
		indicatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	}

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Render(m.game.Name)

	clock := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Render(FormatElapsed(m.elapsedTime))

	started := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(fmt.Sprintf("Started at %s", m.session.StartTime.Format("15:04:05")))

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render("[s] stop & save   [esc] keep playing")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 4).
		Render(lipgloss.JoinVertical(
			lipgloss.Center,
			indicatorStyle.Render(indicator)+" "+title,
			"",
			clock,
			"",
			started,
			"",
			help,
		))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// RunTimerTUI shows the live timer for an in-progress session and, when the
// user stops it, ends the session through the ledger.
func RunTimerTUI(l *ledger.Ledger, session *models.Session, game *models.Game) error {
	model := NewTimerModel(session, game)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(TimerModel); ok {
		if m.stopping {
			stopped, err := l.EndSession()
			if err != nil {
				return err
			}
			if stopped != nil {
				fmt.Printf("⏹️  Stopped session for %s — %s played\n",
					game.Name, FormatMinutes(stopped.Minutes(), true))
			}
		} else if m.exiting {
			fmt.Printf("⏱️  Still tracking %s. Stop it with 'playtrack stop'.\n", game.Name)
		}
	}

	return nil
}
