package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/okazarin/playtrack/internal/models"
)

// Storage keys. Every save overwrites the whole collection under its key;
// there is no partial-update API.
const (
	keyGames         = "game-tracker-games"
	keySessions      = "game-tracker-sessions"
	keyActiveSession = "game-tracker-active-session"
)

// record is one row of the key-value table backing the store.
type record struct {
	Key   string `gorm:"primaryKey"`
	Value []byte `gorm:"not null"`
}

// TableName overrides the GORM default
func (record) TableName() string {
	return "records"
}

// Store persists the game library, session history, and active-session
// pointer as opaque JSON blobs in a local SQLite file.
type Store struct {
	db *gorm.DB
}

// DefaultPath returns the on-device database location
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".playtrack", "playtrack.db"), nil
}

// Open opens the store at path, creating the file and schema if needed
func Open(path string) (*Store, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create playtrack directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveGames overwrites the stored game list
func (s *Store) SaveGames(games []models.Game) error {
	return s.save(keyGames, games)
}

// LoadGames returns the stored game list, empty when nothing is stored
func (s *Store) LoadGames() ([]models.Game, error) {
	var games []models.Game
	if _, err := s.load(keyGames, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// SaveSessions overwrites the stored session history
func (s *Store) SaveSessions(sessions []models.Session) error {
	return s.save(keySessions, sessions)
}

// LoadSessions returns the stored session history. Timestamp fields are
// reconstituted from their JSON form.
func (s *Store) LoadSessions() ([]models.Session, error) {
	var sessions []models.Session
	if _, err := s.load(keySessions, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// SaveActiveSession stores the active-session pointer; nil clears it
func (s *Store) SaveActiveSession(session *models.Session) error {
	if session == nil {
		return s.delete(keyActiveSession)
	}
	return s.save(keyActiveSession, session)
}

// LoadActiveSession returns the stored active session, or nil when no
// game is being played
func (s *Store) LoadActiveSession() (*models.Session, error) {
	var session models.Session
	found, err := s.load(keyActiveSession, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

// ClearAll removes every stored collection
func (s *Store) ClearAll() error {
	for _, key := range []string{keyGames, keySessions, keyActiveSession} {
		if err := s.delete(key); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	rec := record{Key: key, Value: data}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// load reports whether the key existed; a missing key is not an error
func (s *Store) load(key string, v any) (bool, error) {
	var rec record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(rec.Value, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) delete(key string) error {
	if err := s.db.Delete(&record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
