package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressKey(m LibraryModel, key string) LibraryModel {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(LibraryModel)
}

func TestLibraryStartAndStopSession(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	_, err := l.AddManualGame("Celeste")
	require.NoError(t, err)

	m := NewLibraryModel(l)

	m = pressKey(m, "s")
	require.NotNil(t, l.ActiveSession())
	assert.False(t, m.statusIsErr)

	// Starting again while active surfaces the ledger's error
	m = pressKey(m, "s")
	assert.True(t, m.statusIsErr)

	m = pressKey(m, "x")
	assert.Nil(t, l.ActiveSession())
	assert.False(t, m.statusIsErr)
}

func TestLibraryStopWithoutActiveSession(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	_, err := l.AddManualGame("Celeste")
	require.NoError(t, err)

	m := NewLibraryModel(l)
	m = pressKey(m, "x")
	assert.True(t, m.statusIsErr)
}

func TestLibraryDeleteRequiresConfirmation(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	game, err := l.AddManualGame("Anthem")
	require.NoError(t, err)

	m := NewLibraryModel(l)

	// Backing out keeps the game
	m = pressKey(m, "d")
	assert.Equal(t, modeConfirmDelete, m.mode)
	m = pressKey(m, "n")
	assert.Equal(t, modeBrowse, m.mode)
	require.NotNil(t, l.Game(game.ID))

	// Confirming deletes it
	m = pressKey(m, "d")
	m = pressKey(m, "y")
	assert.Nil(t, l.Game(game.ID))
}

func TestLibraryEditTimeRejectsBadInput(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	game, err := l.AddManualGame("Celeste")
	require.NoError(t, err)

	m := NewLibraryModel(l)
	m = pressKey(m, "e")
	require.Equal(t, modeEditTime, m.mode)

	m.editInput.SetValue("not a time")
	m = pressKey(m, "enter")
	assert.Equal(t, modeEditTime, m.mode, "invalid input keeps the modal open")
	assert.NotEmpty(t, m.validationErr)

	m.editInput.SetValue("1h30m")
	m = pressKey(m, "enter")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, 90, l.Stats(game.ID).TotalTime)
}

func TestLibraryHotkeysSwitchScreens(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)

	m := pressKey(NewLibraryModel(l), "a")
	assert.Equal(t, actionOpenAdd, m.action)

	m = pressKey(NewLibraryModel(l), "tab")
	assert.Equal(t, actionOpenStats, m.action)

	m = pressKey(NewLibraryModel(l), "q")
	assert.Equal(t, actionQuit, m.action)
}
