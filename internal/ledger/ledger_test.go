package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okazarin/playtrack/internal/models"
)

// fakeGateway is an in-memory stand-in for the storage gateway
type fakeGateway struct {
	games    []models.Game
	sessions []models.Session
	active   *models.Session

	saveErr error
}

func (f *fakeGateway) LoadGames() ([]models.Game, error)       { return f.games, nil }
func (f *fakeGateway) LoadSessions() ([]models.Session, error) { return f.sessions, nil }
func (f *fakeGateway) LoadActiveSession() (*models.Session, error) {
	return f.active, nil
}

func (f *fakeGateway) SaveGames(games []models.Game) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.games = games
	return nil
}

func (f *fakeGateway) SaveSessions(sessions []models.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sessions = sessions
	return nil
}

func (f *fakeGateway) SaveActiveSession(session *models.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.active = session
	return nil
}

func newTestLedger(t *testing.T) (*Ledger, *fakeGateway) {
	t.Helper()
	gateway := &fakeGateway{}
	l, err := New(gateway)
	require.NoError(t, err)
	return l, gateway
}

func addTestGame(t *testing.T, l *Ledger, name string) *models.Game {
	t.Helper()
	game, err := l.AddManualGame(name)
	require.NoError(t, err)
	return game
}

// completedAt appends a finished session directly into the history
func completedAt(l *Ledger, gameID uint, end time.Time, minutes int) {
	start := end.Add(-time.Duration(minutes) * time.Minute)
	l.sessions = append(l.sessions, models.Session{
		ID:        l.nextSessionID(),
		GameID:    gameID,
		StartTime: start,
		EndTime:   &end,
		Duration:  &minutes,
	})
}

func TestStartAndEndSession(t *testing.T) {
	t.Parallel()

	l, gateway := newTestLedger(t)
	game := addTestGame(t, l, "Hollow Knight")

	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return start }

	session, err := l.StartSession(game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.ID, session.GameID)
	assert.Equal(t, start, session.StartTime)
	assert.False(t, session.Completed())
	require.NotNil(t, gateway.active)

	end := start.Add(90 * time.Minute)
	l.now = func() time.Time { return end }

	stopped, err := l.EndSession()
	require.NoError(t, err)
	require.NotNil(t, stopped)
	require.NotNil(t, stopped.EndTime)
	assert.Equal(t, end, *stopped.EndTime)
	assert.Equal(t, 90, stopped.Minutes())
	assert.Nil(t, l.ActiveSession())
	assert.Nil(t, gateway.active)

	stats := l.Stats(game.ID)
	assert.Equal(t, 90, stats.TotalTime)
	assert.Equal(t, 1, stats.SessionsCount)
	assert.InDelta(t, 90, stats.AverageSessionTime, 0.001)
	require.NotNil(t, stats.LastPlayed)
	assert.Equal(t, end, *stats.LastPlayed)
}

func TestStartSessionWhileActiveFails(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	first := addTestGame(t, l, "Celeste")
	second := addTestGame(t, l, "Hades")

	_, err := l.StartSession(first.ID)
	require.NoError(t, err)

	_, err = l.StartSession(second.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already active")
}

func TestStartSessionUnknownGame(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	_, err := l.StartSession(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestEndSessionWithoutActiveIsNoop(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	stopped, err := l.EndSession()
	require.NoError(t, err)
	assert.Nil(t, stopped)
}

func TestEndSessionClampsNegativeDuration(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	game := addTestGame(t, l, "Outer Wilds")

	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return start }
	_, err := l.StartSession(game.ID)
	require.NoError(t, err)

	// Clock moved backwards between start and stop
	l.now = func() time.Time { return start.Add(-30 * time.Minute) }
	stopped, err := l.EndSession()
	require.NoError(t, err)
	require.NotNil(t, stopped)
	assert.Equal(t, 0, stopped.Minutes())
}

func TestSingleActiveSessionInvariant(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	game := addTestGame(t, l, "Stardew Valley")

	session, err := l.StartSession(game.ID)
	require.NoError(t, err)

	open := 0
	for _, s := range l.Sessions() {
		if !s.Completed() {
			open++
			assert.Equal(t, session.ID, s.ID)
		}
	}
	assert.Equal(t, 1, open)

	active := l.ActiveSession()
	require.NotNil(t, active)
	assert.Equal(t, session.ID, active.ID)
}

func TestEditTimeAdjustsMostRecentSession(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	game := addTestGame(t, l, "Factorio")

	end := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	completedAt(l, game.ID, end, 30)
	completedAt(l, game.ID, end.Add(time.Hour), 45)

	require.NoError(t, l.EditTime(game.ID, 2, 0))

	sessions := l.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, 30, sessions[0].Minutes(), "earlier sessions must keep their durations")
	assert.Equal(t, 90, sessions[1].Minutes(), "most recent session absorbs the delta")
	assert.Equal(t, 120, l.Stats(game.ID).TotalTime)
}

func TestEditTimeClampsLastSessionToZero(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	game := addTestGame(t, l, "Factorio")

	end := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	completedAt(l, game.ID, end, 30)
	completedAt(l, game.ID, end.Add(time.Hour), 45)

	// Target below the sum of the other sessions: the last one clamps to
	// zero and the true total stays above the requested value
	require.NoError(t, l.EditTime(game.ID, 0, 10))

	sessions := l.Sessions()
	assert.Equal(t, 30, sessions[0].Minutes())
	assert.Equal(t, 0, sessions[1].Minutes())
	assert.Equal(t, 30, l.Stats(game.ID).TotalTime)
}

func TestEditTimeCreatesSyntheticSession(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	game := addTestGame(t, l, "Baldur's Gate 3")

	now := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	require.NoError(t, l.EditTime(game.ID, 1, 30))

	sessions := l.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, 90, sessions[0].Minutes())
	assert.Equal(t, now, sessions[0].StartTime)
	require.NotNil(t, sessions[0].EndTime)
	assert.Equal(t, now, *sessions[0].EndTime)
}

func TestEditTimeZeroTargetWithoutSessionsIsNoop(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	game := addTestGame(t, l, "Baldur's Gate 3")

	require.NoError(t, l.EditTime(game.ID, 0, 0))
	assert.Empty(t, l.Sessions())
}

func TestEditTimeIgnoresActiveSession(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	game := addTestGame(t, l, "Rimworld")

	end := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	completedAt(l, game.ID, end, 30)

	_, err := l.StartSession(game.ID)
	require.NoError(t, err)

	require.NoError(t, l.EditTime(game.ID, 1, 0))

	sessions := l.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, 60, sessions[0].Minutes())
	assert.False(t, sessions[1].Completed(), "the in-progress session must stay untouched")
}

func TestDeleteGameCascades(t *testing.T) {
	t.Parallel()

	l, gateway := newTestLedger(t)
	doomed := addTestGame(t, l, "Anthem")
	kept := addTestGame(t, l, "Celeste")

	end := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	completedAt(l, doomed.ID, end, 30)
	completedAt(l, kept.ID, end, 45)

	_, err := l.StartSession(doomed.ID)
	require.NoError(t, err)

	require.NoError(t, l.DeleteGame(doomed.ID))

	assert.Nil(t, l.Game(doomed.ID))
	assert.Nil(t, l.ActiveSession(), "deleting the active game discards the in-progress session")
	assert.Nil(t, gateway.active)

	sessions := l.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, kept.ID, sessions[0].GameID)
}

func TestToggleFavorite(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	game := addTestGame(t, l, "Celeste")
	assert.False(t, l.Game(game.ID).IsFavorite)

	require.NoError(t, l.ToggleFavorite(game.ID))
	assert.True(t, l.Game(game.ID).IsFavorite)

	require.NoError(t, l.ToggleFavorite(game.ID))
	assert.False(t, l.Game(game.ID).IsFavorite)
}

func TestUpdateImage(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	game := addTestGame(t, l, "Celeste")

	require.NoError(t, l.UpdateImage(game.ID, "https://example.com/cover.png"))
	assert.Equal(t, "https://example.com/cover.png", l.Game(game.ID).CoverImage)
}

func TestStatsOverMixedDurations(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	game := addTestGame(t, l, "Celeste")

	end := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	completedAt(l, game.ID, end, 30)
	completedAt(l, game.ID, end.Add(time.Hour), 45)
	completedAt(l, game.ID, end.Add(2*time.Hour), 0)

	stats := l.Stats(game.ID)
	assert.Equal(t, 75, stats.TotalTime)
	assert.Equal(t, 3, stats.SessionsCount)
	assert.InDelta(t, 25, stats.AverageSessionTime, 0.001)
}

func TestGamesSortOrder(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	zelda := addTestGame(t, l, "Zelda")
	apex := addTestGame(t, l, "Apex")
	apexLower := addTestGame(t, l, "apex")

	require.NoError(t, l.ToggleFavorite(apex.ID))

	games := l.Games()
	require.Len(t, games, 3)
	assert.Equal(t, apex.ID, games[0].ID, "favorites come first")
	assert.Equal(t, apexLower.ID, games[1].ID, "case-insensitive name order within non-favorites")
	assert.Equal(t, zelda.ID, games[2].ID)
}

func TestGamesSortIsStableForEqualNames(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	first := addTestGame(t, l, "Doom")
	second := addTestGame(t, l, "Doom")

	games := l.Games()
	require.Len(t, games, 2)
	assert.Equal(t, first.ID, games[0].ID, "insertion order breaks ties")
	assert.Equal(t, second.ID, games[1].ID)
}

func TestIDsStayUniqueAfterDelete(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	first := addTestGame(t, l, "One")
	second := addTestGame(t, l, "Two")
	require.NoError(t, l.DeleteGame(first.ID))

	third := addTestGame(t, l, "Three")
	assert.Greater(t, third.ID, second.ID)
}

func TestGameByNameIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	l, _ := newTestLedger(t)
	game := addTestGame(t, l, "Hollow Knight")

	found := l.GameByName("hollow knight")
	require.NotNil(t, found)
	assert.Equal(t, game.ID, found.ID)
	assert.True(t, l.HasGameNamed("HOLLOW KNIGHT"))
	assert.False(t, l.HasGameNamed("Silksong"))
}

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	t.Parallel()

	l, gateway := newTestLedger(t)
	game := addTestGame(t, l, "Celeste")

	gateway.saveErr = errors.New("disk full")

	_, err := l.StartSession(game.ID)
	require.Error(t, err)

	// The mutation stays applied even though the save failed
	require.NotNil(t, l.ActiveSession())
	assert.Len(t, l.Sessions(), 1)
}
