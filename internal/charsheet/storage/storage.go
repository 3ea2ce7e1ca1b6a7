// Package storage defines the persistence contract for producer-side
// character records backing the stats API.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/zenstats/internal/charsheet"
)

// ErrNotFound reports that no character exists for the requested user.
var ErrNotFound = errors.New("character not found")

// CharacterRecord is one stored character snapshot keyed by chat user ID.
type CharacterRecord struct {
	UserID    string
	State     charsheet.CharacterState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store persists character records.
type Store interface {
	// UpsertCharacter inserts or replaces the record for its user ID.
	UpsertCharacter(ctx context.Context, record CharacterRecord) error
	// GetCharacter returns the record for a user, or ErrNotFound.
	GetCharacter(ctx context.Context, userID string) (CharacterRecord, error)
	// Close releases the underlying handle.
	Close() error
}
