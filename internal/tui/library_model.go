package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okazarin/playtrack/internal/ledger"
	"github.com/okazarin/playtrack/internal/models"
	"github.com/okazarin/playtrack/internal/parser"
)

// libraryMode is the current interaction state of the library screen
type libraryMode int

const (
	modeBrowse libraryMode = iota
	modeConfirmDelete
	modeEditTime
)

// libraryAction tells RunLibraryTUI what to do after the program exits
type libraryAction int

const (
	actionQuit libraryAction = iota
	actionOpenAdd
	actionOpenStats
)

// libraryTickMsg refreshes the live elapsed display once per second
type libraryTickMsg struct{}

// LibraryModel is the main game-library screen: a paginated list of games
// with their stats and hotkeys for every session operation.
type LibraryModel struct {
	ledger *ledger.Ledger
	games  []models.Game

	width  int
	height int

	selected int
	page     int
	perPage  int

	mode          libraryMode
	editInput     textinput.Model
	validationErr string

	statusMsg   string
	statusIsErr bool

	action libraryAction
}

// NewLibraryModel creates the library screen model
func NewLibraryModel(l *ledger.Ledger) LibraryModel {
	editInput := textinput.New()
	editInput.Placeholder = "2h30m"
	editInput.CharLimit = 10
	editInput.Width = 20
	editInput.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	editInput.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	editInput.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return LibraryModel{
		ledger:    l,
		games:     l.Games(),
		perPage:   10,
		editInput: editInput,
	}
}

// Init starts the refresh ticker
func (m LibraryModel) Init() tea.Cmd {
	return libraryTick()
}

func libraryTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return libraryTickMsg{}
	})
}

// Update handles messages
func (m LibraryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case libraryTickMsg:
		// The tick only forces a re-render so the active session's elapsed
		// time stays current
		return m, libraryTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		available := m.height - 12
		if available < 3 {
			available = 3
		}
		m.perPage = available
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeConfirmDelete:
			return m.handleConfirmDeleteKeys(msg)
		case modeEditTime:
			return m.handleEditTimeKeys(msg)
		default:
			return m.handleBrowseKeys(msg)
		}
	}

	return m, nil
}

func (m LibraryModel) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.action = actionQuit
		return m, tea.Quit

	case "up", "k":
		return m.moveSelectionUp(), nil

	case "down", "j":
		return m.moveSelectionDown(), nil

	case "left", "h":
		return m.prevPage(), nil

	case "right", "l":
		return m.nextPage(), nil

	case "s":
		game, ok := m.selectedGame()
		if !ok {
			return m, nil
		}
		if _, err := m.ledger.StartSession(game.ID); err != nil {
			return m.withError(err.Error()), nil
		}
		return m.withStatus(fmt.Sprintf("▶ Started tracking %s", game.Name)), nil

	case "x":
		stopped, err := m.ledger.EndSession()
		if err != nil {
			return m.withError(err.Error()), nil
		}
		if stopped == nil {
			return m.withError("no active session to stop"), nil
		}
		game := m.ledger.Game(stopped.GameID)
		name := "?"
		if game != nil {
			name = game.Name
		}
		m = m.refresh()
		return m.withStatus(fmt.Sprintf("⏹ Stopped %s — %s played", name, FormatMinutes(stopped.Minutes(), true))), nil

	case "f":
		game, ok := m.selectedGame()
		if !ok {
			return m, nil
		}
		if err := m.ledger.ToggleFavorite(game.ID); err != nil {
			return m.withError(err.Error()), nil
		}
		m = m.refresh()
		// Follow the game to its new position so the cursor stays on it
		for i, g := range m.games {
			if g.ID == game.ID {
				m.selected = i
				break
			}
		}
		m.page = m.selected / m.perPage
		return m, nil

	case "e":
		game, ok := m.selectedGame()
		if !ok {
			return m, nil
		}
		total := m.ledger.Stats(game.ID).TotalTime
		m.mode = modeEditTime
		m.validationErr = ""
		m.editInput.SetValue(fmt.Sprintf("%dh%dm", total/60, total%60))
		m.editInput.Focus()
		return m, textinput.Blink

	case "d":
		if _, ok := m.selectedGame(); !ok {
			return m, nil
		}
		m.mode = modeConfirmDelete
		return m, nil

	case "a":
		m.action = actionOpenAdd
		return m, tea.Quit

	case "tab":
		m.action = actionOpenStats
		return m, tea.Quit
	}

	return m, nil
}

func (m LibraryModel) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		game, ok := m.selectedGame()
		if !ok {
			m.mode = modeBrowse
			return m, nil
		}
		if err := m.ledger.DeleteGame(game.ID); err != nil {
			m.mode = modeBrowse
			return m.withError(err.Error()), nil
		}
		m.mode = modeBrowse
		m = m.refresh()
		if m.selected >= len(m.games) && m.selected > 0 {
			m.selected = len(m.games) - 1
		}
		return m.withStatus(fmt.Sprintf("🗑  Deleted %s and its sessions", game.Name)), nil

	case "n", "esc", "q":
		m.mode = modeBrowse
		return m, nil
	}

	return m, nil
}

func (m LibraryModel) handleEditTimeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.validationErr = ""
		return m, nil

	case "enter":
		game, ok := m.selectedGame()
		if !ok {
			m.mode = modeBrowse
			return m, nil
		}
		hours, minutes, err := parser.ParsePlaytime(m.editInput.Value())
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		if err := m.ledger.EditTime(game.ID, hours, minutes); err != nil {
			m.mode = modeBrowse
			return m.withError(err.Error()), nil
		}
		m.mode = modeBrowse
		m.validationErr = ""
		m = m.refresh()
		total := m.ledger.Stats(game.ID).TotalTime
		return m.withStatus(fmt.Sprintf("✏️  %s now has %s recorded", game.Name, FormatMinutes(total, true))), nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m LibraryModel) selectedGame() (models.Game, bool) {
	if m.selected < 0 || m.selected >= len(m.games) {
		return models.Game{}, false
	}
	return m.games[m.selected], true
}

func (m LibraryModel) refresh() LibraryModel {
	m.games = m.ledger.Games()
	if m.selected >= len(m.games) && len(m.games) > 0 {
		m.selected = len(m.games) - 1
	}
	return m
}

func (m LibraryModel) withStatus(s string) LibraryModel {
	m.statusMsg = s
	m.statusIsErr = false
	return m
}

func (m LibraryModel) withError(s string) LibraryModel {
	m.statusMsg = s
	m.statusIsErr = true
	return m
}

func (m LibraryModel) moveSelectionUp() LibraryModel {
	if m.selected > 0 {
		m.selected--
		if m.selected < m.page*m.perPage && m.page > 0 {
			m.page--
		}
	}
	return m
}

func (m LibraryModel) moveSelectionDown() LibraryModel {
	if m.selected < len(m.games)-1 {
		m.selected++
		if m.selected >= (m.page+1)*m.perPage {
			m.page++
		}
	}
	return m
}

func (m LibraryModel) prevPage() LibraryModel {
	if m.page > 0 {
		m.page--
		m.selected = m.page * m.perPage
	}
	return m
}

func (m LibraryModel) nextPage() LibraryModel {
	maxPages := (len(m.games) + m.perPage - 1) / m.perPage
	if m.page < maxPages-1 {
		m.page++
		m.selected = m.page * m.perPage
	}
	return m
}

// View renders the library screen
func (m LibraryModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.mode {
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	case modeEditTime:
		return m.viewEditTime()
	}
	return m.viewBrowse()
}

func (m LibraryModel) viewBrowse() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Render("🎮 playtrack")
	b.WriteString(title)
	b.WriteString("\n")

	if active := m.ledger.ActiveSession(); active != nil {
		name := "?"
		if game := m.ledger.Game(active.GameID); game != nil {
			name = game.Name
		}
		banner := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Render(fmt.Sprintf("▶ Playing %s — %s", name, FormatElapsed(time.Since(active.StartTime))))
		b.WriteString(banner)
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("No session running"))
	}
	b.WriteString("\n\n")

	if len(m.games) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Render("Your library is empty. Press 'a' to add a game."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m LibraryModel) renderTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	favStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFavorite))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-30s %-10s %-9s %-9s %s",
		"NAME", "PLAYED", "SESSIONS", "AVG", "LAST PLAYED")))
	b.WriteString("\n")

	active := m.ledger.ActiveSession()

	start := m.page * m.perPage
	end := start + m.perPage
	if end > len(m.games) {
		end = len(m.games)
	}

	for i := start; i < end; i++ {
		game := m.games[i]
		stats := m.ledger.Stats(game.ID)

		name := game.Name
		if len(name) > 27 {
			name = name[:24] + "..."
		}
		if game.IsFavorite {
			name = favStyle.Render("★ ") + name
		} else {
			name = "  " + name
		}

		played := FormatMinutes(stats.TotalTime, stats.SessionsCount > 0)
		if active != nil && active.GameID == game.ID {
			played = activeStyle.Render(FormatElapsed(time.Since(active.StartTime)))
		}

		avg := "—"
		if stats.SessionsCount > 0 {
			avg = FormatMinutes(int(stats.AverageSessionTime), true)
		}

		cursor := "  "
		style := rowStyle
		if i == m.selected {
			cursor = "❯ "
			style = selectedStyle
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(fmt.Sprintf("%-30s ", name)))
		b.WriteString(fmt.Sprintf("%-10s ", played))
		b.WriteString(style.Render(fmt.Sprintf("%-9d %-9s %s",
			stats.SessionsCount, avg, FormatLastPlayed(stats.LastPlayed))))
		b.WriteString("\n")
	}

	maxPages := (len(m.games) + m.perPage - 1) / m.perPage
	if maxPages > 1 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render(fmt.Sprintf("\npage %d/%d", m.page+1, maxPages)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m LibraryModel) renderFooter() string {
	var b strings.Builder

	if m.statusMsg != "" {
		color := ColorSuccess
		if m.statusIsErr {
			color = ColorError
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(m.statusMsg))
		b.WriteString("\n")
	}

	help := "s start · x stop · e edit time · f favorite · d delete · a add · tab stats · q quit"
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Render(help))
	return b.String()
}

func (m LibraryModel) viewConfirmDelete() string {
	game, ok := m.selectedGame()
	if !ok {
		return ""
	}
	sessions := m.ledger.Stats(game.ID).SessionsCount

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Bold(true).
			Render(fmt.Sprintf("Delete %s?", game.Name)),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).
			Render(fmt.Sprintf("This removes the game and its %d recorded sessions.", sessions)),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).
			Render("[y] delete   [n] keep"),
	)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorError)).
		Padding(1, 3).
		Render(body)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m LibraryModel) viewEditTime() string {
	game, ok := m.selectedGame()
	if !ok {
		return ""
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true).
			Render(fmt.Sprintf("Set total play time for %s", game.Name)),
		"",
		m.editInput.View(),
	}
	if m.validationErr != "" {
		lines = append(lines, "",
			lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(m.validationErr))
	}
	lines = append(lines, "",
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).
			Render("[enter] save   [esc] cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
