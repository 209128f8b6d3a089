package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okazarin/playtrack/internal/ledger"
	"github.com/okazarin/playtrack/internal/lookup"
	"github.com/okazarin/playtrack/internal/models"
)

// searchDebounce is how long typing must pause before a catalog request fires
const searchDebounce = 500 * time.Millisecond

// addMode switches between catalog search and manual entry
type addMode int

const (
	addModeSearch addMode = iota
	addModeManual
)

// debounceMsg fires after the debounce delay; stale generations are ignored
type debounceMsg struct {
	generation int
}

// resultsMsg carries a finished catalog search. Results from a superseded
// query carry an old generation and are discarded, so a slow response never
// overwrites a newer query's results.
type resultsMsg struct {
	generation int
	candidates []lookup.Candidate
	err        error
}

// AddGameModel is the add-game flow: a debounced catalog search with a
// result picker, and a manual-entry fallback with field validation.
type AddGameModel struct {
	ledger *ledger.Ledger
	client *lookup.Client

	width  int
	height int

	mode addMode

	// Search state
	queryInput textinput.Model
	generation int
	searching  bool
	searchErr  error
	results    []lookup.Candidate
	selected   int

	// Manual entry state
	nameInput     textinput.Model
	descInput     textinput.Model
	manualFocus   int
	validationErr string

	// Outcome
	completed bool
	cancelled bool
	added     *models.Game
	err       error
}

// NewAddGameModel creates the add-game flow model
func NewAddGameModel(l *ledger.Ledger, client *lookup.Client) AddGameModel {
	queryInput := textinput.New()
	queryInput.Placeholder = "Search the game catalog..."
	queryInput.CharLimit = 60
	queryInput.Width = 48
	queryInput.Focus()

	nameInput := textinput.New()
	nameInput.Placeholder = "Game name (2-30 characters)"
	nameInput.CharLimit = 30
	nameInput.Width = 48

	descInput := textinput.New()
	descInput.Placeholder = "Description (optional, Enter to skip)"
	descInput.CharLimit = 200
	descInput.Width = 48

	for _, input := range []*textinput.Model{&queryInput, &nameInput, &descInput} {
		input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	return AddGameModel{
		ledger:     l,
		client:     client,
		queryInput: queryInput,
		nameInput:  nameInput,
		descInput:  descInput,
	}
}

// Init initializes the model
func (m AddGameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddGameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case debounceMsg:
		if msg.generation != m.generation {
			// A newer keystroke superseded this timer
			return m, nil
		}
		query := strings.TrimSpace(m.queryInput.Value())
		if query == "" {
			m.results = nil
			m.searchErr = nil
			m.searching = false
			return m, nil
		}
		m.searching = true
		m.searchErr = nil
		return m, m.searchCmd(query, msg.generation)

	case resultsMsg:
		if msg.generation != m.generation {
			// Stale response for an abandoned query
			return m, nil
		}
		m.searching = false
		m.searchErr = msg.err
		if msg.err == nil {
			m.results = msg.candidates
			m.selected = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == addModeManual {
			return m.handleManualKeys(msg)
		}
		return m.handleSearchKeys(msg)
	}

	return m, nil
}

// searchCmd queries the catalog off the update loop
func (m AddGameModel) searchCmd(query string, generation int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		candidates, err := client.SearchGames(context.Background(), query)
		return resultsMsg{generation: generation, candidates: candidates, err: err}
	}
}

func (m AddGameModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit

	case "tab":
		// Switch to manual entry, carrying the query over as the name
		m.mode = addModeManual
		m.validationErr = ""
		m.nameInput.SetValue(strings.TrimSpace(m.queryInput.Value()))
		m.manualFocus = 0
		m.queryInput.Blur()
		m.nameInput.Focus()
		return m, textinput.Blink

	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down":
		if m.selected < len(m.results)-1 {
			m.selected++
		}
		return m, nil

	case "enter":
		if m.selected >= len(m.results) {
			return m, nil
		}
		candidate := m.results[m.selected]
		game, err := m.ledger.AddGame(models.Game{
			Name:        candidate.Title,
			CoverImage:  candidate.Thumbnail,
			Description: candidate.ShortDescription,
			Genre:       candidate.Genre,
			Platform:    candidate.Platform,
			Publisher:   candidate.Publisher,
			ReleaseDate: candidate.ReleaseDate,
		})
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.added = game
		m.completed = true
		return m, tea.Quit
	}

	// Any other key edits the query; re-arm the debounce timer
	var cmd tea.Cmd
	before := m.queryInput.Value()
	m.queryInput, cmd = m.queryInput.Update(msg)
	if m.queryInput.Value() == before {
		return m, cmd
	}

	m.generation++
	generation := m.generation
	debounce := tea.Tick(searchDebounce, func(t time.Time) tea.Msg {
		return debounceMsg{generation: generation}
	})
	return m, tea.Batch(cmd, debounce)
}

func (m AddGameModel) handleManualKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit

	case "tab":
		// Back to search mode
		m.mode = addModeSearch
		m.nameInput.Blur()
		m.descInput.Blur()
		m.queryInput.Focus()
		return m, textinput.Blink

	case "enter":
		if m.manualFocus == 0 {
			if err := ValidateGameName(m.nameInput.Value()); err != nil {
				m.validationErr = err.Error()
				return m, nil
			}
			m.validationErr = ""
			m.manualFocus = 1
			m.nameInput.Blur()
			m.descInput.Focus()
			return m, textinput.Blink
		}

		if err := ValidateDescription(m.descInput.Value()); err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		game, err := m.ledger.AddGame(models.Game{
			Name:        strings.TrimSpace(m.nameInput.Value()),
			Description: strings.TrimSpace(m.descInput.Value()),
		})
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.added = game
		m.completed = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.manualFocus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

// View renders the add-game flow
func (m AddGameModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.mode == addModeManual {
		return m.viewManual()
	}
	return m.viewSearch()
}

func (m AddGameModel) viewSearch() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).Bold(true).
		Render("Add a game"))
	b.WriteString("\n\n")
	b.WriteString(m.queryInput.View())
	b.WriteString("\n\n")

	switch {
	case m.searching:
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Render("Searching..."))
		b.WriteString("\n")
	case m.searchErr != nil:
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render(fmt.Sprintf("Search failed: %v — keep typing to retry", m.searchErr)))
		b.WriteString("\n")
	case len(m.results) == 0 && strings.TrimSpace(m.queryInput.Value()) != "":
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("No matches. Press tab to add it manually."))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderResults())
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).
		Render("↑/↓ pick · enter add · tab manual entry · esc cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m AddGameModel) renderResults() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))

	for i, candidate := range m.results {
		cursor := "  "
		style := titleStyle
		if i == m.selected {
			cursor = "❯ "
			style = selectedStyle
		}

		line := cursor + style.Render(candidate.Title)
		if m.ledger.HasGameNamed(candidate.Title) {
			// Advisory only: adding a duplicate is still allowed
			line += warnStyle.Render("  (already in library)")
		}
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString("    " + metaStyle.Render(fmt.Sprintf("%s · %s", candidate.Genre, candidate.Platform)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m AddGameModel) viewManual() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).Bold(true).
		Render("Add a game manually"))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	b.WriteString("\n")

	name := strings.TrimSpace(m.nameInput.Value())
	if name != "" && m.ledger.HasGameNamed(name) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).
			Render(fmt.Sprintf("⚠ \"%s\" is already in your library", name)))
		b.WriteString("\n")
	}

	if m.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).
			Render(m.validationErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).
		Render("enter next/save · tab back to search · esc cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
