package ledger

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/okazarin/playtrack/internal/models"
)

// Gateway is the persistence contract the ledger depends on. Storage is
// whole-collection overwrite; a nil active session clears the stored pointer.
type Gateway interface {
	LoadGames() ([]models.Game, error)
	SaveGames([]models.Game) error
	LoadSessions() ([]models.Session, error)
	SaveSessions([]models.Session) error
	LoadActiveSession() (*models.Session, error)
	SaveActiveSession(*models.Session) error
}

// Ledger owns the game library, the session history, and the single
// active-session pointer. All mutation goes through its methods, which run
// to completion on one logical sequence; the ledger does no locking.
//
// Mutating methods apply the in-memory change first and then persist the
// affected collections. A persistence failure is returned to the caller but
// never rolls back the in-memory state.
type Ledger struct {
	store    Gateway
	games    []models.Game
	sessions []models.Session
	active   *models.Session

	now func() time.Time
}

// New loads the stored state into a ledger backed by store
func New(store Gateway) (*Ledger, error) {
	games, err := store.LoadGames()
	if err != nil {
		return nil, err
	}
	sessions, err := store.LoadSessions()
	if err != nil {
		return nil, err
	}
	active, err := store.LoadActiveSession()
	if err != nil {
		return nil, err
	}

	return &Ledger{
		store:    store,
		games:    games,
		sessions: sessions,
		active:   active,
		now:      time.Now,
	}, nil
}

// StartSession begins tracking play time for a game. It fails when the game
// does not exist or when another session is already active; the at-most-one
// active session invariant is enforced here, not just in the UI.
func (l *Ledger) StartSession(gameID uint) (*models.Session, error) {
	if l.active != nil {
		return nil, fmt.Errorf("session already active for game #%d, stop it first with 'playtrack stop'", l.active.GameID)
	}
	if l.game(gameID) == nil {
		return nil, fmt.Errorf("game #%d not found", gameID)
	}

	session := models.Session{
		ID:        l.nextSessionID(),
		GameID:    gameID,
		StartTime: l.now(),
	}
	l.sessions = append(l.sessions, session)
	l.active = &session

	if err := l.store.SaveSessions(l.sessions); err != nil {
		return &session, err
	}
	return &session, l.store.SaveActiveSession(l.active)
}

// EndSession stops the active session, recording its end time and duration
// in whole minutes. Calling it with no active session is a no-op.
func (l *Ledger) EndSession() (*models.Session, error) {
	if l.active == nil {
		return nil, nil
	}

	now := l.now()
	minutes := int(math.Round(now.Sub(l.active.StartTime).Minutes()))
	if minutes < 0 {
		// Device clock moved backwards between start and stop
		minutes = 0
	}

	var stopped *models.Session
	for i := range l.sessions {
		if l.sessions[i].ID == l.active.ID {
			l.sessions[i].EndTime = &now
			l.sessions[i].Duration = &minutes
			stopped = &l.sessions[i]
			break
		}
	}
	l.active = nil

	if err := l.store.SaveSessions(l.sessions); err != nil {
		return stopped, err
	}
	return stopped, l.store.SaveActiveSession(nil)
}

// EditTime reconciles a game's recorded total against its session history.
// The most recent completed session absorbs the delta, clamped at zero, so
// every other session's duration is preserved. A game with no completed
// sessions gets one synthetic session carrying the whole total.
func (l *Ledger) EditTime(gameID uint, hours, minutes int) error {
	if l.game(gameID) == nil {
		return fmt.Errorf("game #%d not found", gameID)
	}

	target := hours*60 + minutes

	lastIdx := -1
	othersTotal := 0
	for i := range l.sessions {
		if l.sessions[i].GameID != gameID || !l.sessions[i].Completed() {
			continue
		}
		if lastIdx >= 0 {
			othersTotal += l.sessions[lastIdx].Minutes()
		}
		lastIdx = i
	}

	if lastIdx >= 0 {
		newDuration := target - othersTotal
		if newDuration < 0 {
			newDuration = 0
		}
		l.sessions[lastIdx].Duration = &newDuration
		return l.store.SaveSessions(l.sessions)
	}

	if target <= 0 {
		return nil
	}

	now := l.now()
	session := models.Session{
		ID:        l.nextSessionID(),
		GameID:    gameID,
		StartTime: now,
		EndTime:   &now,
		Duration:  &target,
	}
	l.sessions = append(l.sessions, session)
	return l.store.SaveSessions(l.sessions)
}

// AddGame inserts a game into the library, assigning the next ID. Duplicate
// names are allowed; duplicate detection is advisory and presentation-only.
func (l *Ledger) AddGame(game models.Game) (*models.Game, error) {
	game.ID = l.nextGameID()
	game.IsFavorite = false
	l.games = append(l.games, game)
	return &game, l.store.SaveGames(l.games)
}

// AddManualGame inserts a game with only a name
func (l *Ledger) AddManualGame(name string) (*models.Game, error) {
	return l.AddGame(models.Game{Name: strings.TrimSpace(name)})
}

// DeleteGame removes a game and cascades: every session of the game is
// dropped, and an in-progress session for it is discarded along with its
// elapsed time. All three sub-steps apply before anything is persisted.
func (l *Ledger) DeleteGame(gameID uint) error {
	if l.game(gameID) == nil {
		return fmt.Errorf("game #%d not found", gameID)
	}

	kept := l.sessions[:0]
	for _, s := range l.sessions {
		if s.GameID != gameID {
			kept = append(kept, s)
		}
	}
	l.sessions = kept

	clearedActive := false
	if l.active != nil && l.active.GameID == gameID {
		l.active = nil
		clearedActive = true
	}

	for i := range l.games {
		if l.games[i].ID == gameID {
			l.games = append(l.games[:i], l.games[i+1:]...)
			break
		}
	}

	if err := l.store.SaveSessions(l.sessions); err != nil {
		return err
	}
	if clearedActive {
		if err := l.store.SaveActiveSession(nil); err != nil {
			return err
		}
	}
	return l.store.SaveGames(l.games)
}

// ToggleFavorite flips a game's favorite flag
func (l *Ledger) ToggleFavorite(gameID uint) error {
	game := l.game(gameID)
	if game == nil {
		return fmt.Errorf("game #%d not found", gameID)
	}
	game.IsFavorite = !game.IsFavorite
	return l.store.SaveGames(l.games)
}

// UpdateImage replaces a game's cover image reference
func (l *Ledger) UpdateImage(gameID uint, image string) error {
	game := l.game(gameID)
	if game == nil {
		return fmt.Errorf("game #%d not found", gameID)
	}
	game.CoverImage = image
	return l.store.SaveGames(l.games)
}

// Stats computes the derived aggregate for one game from its completed
// sessions. It is a plain scan over the history, recomputed on demand.
func (l *Ledger) Stats(gameID uint) models.GameStats {
	var stats models.GameStats
	for _, s := range l.sessions {
		if s.GameID != gameID || !s.Completed() {
			continue
		}
		stats.TotalTime += s.Minutes()
		stats.SessionsCount++
		stats.LastPlayed = s.EndTime
	}
	if stats.SessionsCount > 0 {
		stats.AverageSessionTime = float64(stats.TotalTime) / float64(stats.SessionsCount)
	}
	return stats
}

// nameCollator orders names case-insensitively, locale-aware. The ledger
// runs on a single sequence, so sharing the collator is safe.
var nameCollator = collate.New(language.Und, collate.IgnoreCase)

// Games returns the library sorted for display: favorites first, then
// case-insensitive name order, with insertion order breaking ties.
func (l *Ledger) Games() []models.Game {
	games := make([]models.Game, len(l.games))
	copy(games, l.games)

	sort.SliceStable(games, func(i, j int) bool {
		if games[i].IsFavorite != games[j].IsFavorite {
			return games[i].IsFavorite
		}
		return nameCollator.CompareString(games[i].Name, games[j].Name) < 0
	})
	return games
}

// Game returns a copy of the game with the given ID, or nil
func (l *Ledger) Game(gameID uint) *models.Game {
	game := l.game(gameID)
	if game == nil {
		return nil
	}
	g := *game
	return &g
}

// GameByName returns a copy of the first game whose name matches
// case-insensitively, or nil
func (l *Ledger) GameByName(name string) *models.Game {
	name = strings.TrimSpace(name)
	for i := range l.games {
		if strings.EqualFold(l.games[i].Name, name) {
			g := l.games[i]
			return &g
		}
	}
	return nil
}

// HasGameNamed reports whether a game with this name already exists. Used
// for the advisory duplicate flag in the add flow; it never blocks anything.
func (l *Ledger) HasGameNamed(name string) bool {
	return l.GameByName(name) != nil
}

// ActiveSession returns a copy of the in-progress session, or nil
func (l *Ledger) ActiveSession() *models.Session {
	if l.active == nil {
		return nil
	}
	s := *l.active
	return &s
}

// Sessions returns a copy of the full session history
func (l *Ledger) Sessions() []models.Session {
	sessions := make([]models.Session, len(l.sessions))
	copy(sessions, l.sessions)
	return sessions
}

// GameCount returns the number of games in the library
func (l *Ledger) GameCount() int {
	return len(l.games)
}

func (l *Ledger) game(gameID uint) *models.Game {
	for i := range l.games {
		if l.games[i].ID == gameID {
			return &l.games[i]
		}
	}
	return nil
}

// nextGameID assigns IDs as max+1 so they stay unique after deletes
func (l *Ledger) nextGameID() uint {
	var max uint
	for _, g := range l.games {
		if g.ID > max {
			max = g.ID
		}
	}
	return max + 1
}

func (l *Ledger) nextSessionID() uint {
	var max uint
	for _, s := range l.sessions {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}
