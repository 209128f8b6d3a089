package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okazarin/playtrack/internal/ledger"
	"github.com/okazarin/playtrack/internal/lookup"
)

// RunLibraryTUI runs the interactive library. The add-game and statistics
// screens are separate programs; the library loops back after they close.
func RunLibraryTUI(l *ledger.Ledger, client *lookup.Client) error {
	for {
		p := tea.NewProgram(NewLibraryModel(l), tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		m, ok := finalModel.(LibraryModel)
		if !ok {
			return nil
		}

		switch m.action {
		case actionOpenAdd:
			if err := RunAddGameTUI(l, client); err != nil {
				return err
			}
		case actionOpenStats:
			if err := RunStatsTUI(l); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// RunAddGameTUI runs the add-game flow and reports the outcome
func RunAddGameTUI(l *ledger.Ledger, client *lookup.Client) error {
	p := tea.NewProgram(NewAddGameModel(l, client), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddGameModel); ok {
		if m.cancelled {
			fmt.Println("❌ Add game cancelled.")
		} else if m.completed && m.added != nil {
			fmt.Printf("✅ \"%s\" added to your library - ID: %d\n", m.added.Name, m.added.ID)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// RunStatsTUI shows the statistics screen
func RunStatsTUI(l *ledger.Ledger) error {
	p := tea.NewProgram(NewStatsModel(l), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
