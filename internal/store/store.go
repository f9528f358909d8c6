// Package store persists the small amount of client-side state that must
// survive restarts: the session token and the terms-and-conditions
// acknowledgment.
package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ClientState is the single-row local state table.
type ClientState struct {
	ID           uint   `gorm:"primaryKey;column:id"`
	SessionToken string `gorm:"column:session_token"`
	TermsAgreed  bool   `gorm:"column:terms_agreed"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ClientState) TableName() string { return "client_state" }

const stateRowID = 1

type Store struct {
	db *gorm.DB
	lg *log.Logger
}

// Open opens (creating if needed) the local state database and migrates
// its schema.
func Open(path string, lg *log.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state dir %q: %w", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open state db %q: %w", path, err)
	}
	if err := db.AutoMigrate(&ClientState{}); err != nil {
		return nil, fmt.Errorf("migrate state db: %w", err)
	}
	return &Store{db: db, lg: lg}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) load() (ClientState, error) {
	var state ClientState
	err := s.db.First(&state, stateRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ClientState{ID: stateRowID}, nil
	}
	return state, err
}

func (s *Store) save(state ClientState) error {
	state.ID = stateRowID
	return s.db.Save(&state).Error
}

// SessionToken returns the persisted bearer token, empty when signed out.
func (s *Store) SessionToken() (string, error) {
	state, err := s.load()
	if err != nil {
		return "", err
	}
	return state.SessionToken, nil
}

// SetSessionToken persists a new bearer token.
func (s *Store) SetSessionToken(token string) error {
	state, err := s.load()
	if err != nil {
		return err
	}
	state.SessionToken = token
	return s.save(state)
}

// ClearSessionToken signs the client out locally.
func (s *Store) ClearSessionToken() error {
	return s.SetSessionToken("")
}

// TermsAccepted reports whether the user has acknowledged the terms and
// conditions. Errors degrade to "not accepted" so booking stays gated.
func (s *Store) TermsAccepted() bool {
	state, err := s.load()
	if err != nil {
		s.lg.Printf("⚠️  Failed to read terms acknowledgment: %v", err)
		return false
	}
	return state.TermsAgreed
}

// SetTermsAccepted records the acknowledgment (or its withdrawal).
func (s *Store) SetTermsAccepted(agreed bool) error {
	state, err := s.load()
	if err != nil {
		return err
	}
	state.TermsAgreed = agreed
	return s.save(state)
}
