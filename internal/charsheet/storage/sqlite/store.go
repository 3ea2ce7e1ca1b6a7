// Package sqlite provides a SQLite-backed character store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/zenstats/internal/charsheet"
	"github.com/louisbranch/zenstats/internal/charsheet/storage"
	"github.com/louisbranch/zenstats/internal/charsheet/storage/sqlite/migrations"
	"github.com/louisbranch/zenstats/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store persists character records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite character store at path and applies embedded
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// UpsertCharacter inserts or replaces the record for its user ID.
func (s *Store) UpsertCharacter(ctx context.Context, record storage.CharacterRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	userID := strings.TrimSpace(record.UserID)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	abilities, err := json.Marshal(append([]string{}, record.State.Abilities...))
	if err != nil {
		return fmt.Errorf("marshal abilities: %w", err)
	}
	now := time.Now().UTC()
	createdAt := record.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := record.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = now
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO characters (
		   user_id, name, class,
		   wisdom, intelligence, strength, dexterity, constitution, charisma,
		   hp, max_hp, energy, max_energy, karma, abilities,
		   created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   name = excluded.name,
		   class = excluded.class,
		   wisdom = excluded.wisdom,
		   intelligence = excluded.intelligence,
		   strength = excluded.strength,
		   dexterity = excluded.dexterity,
		   constitution = excluded.constitution,
		   charisma = excluded.charisma,
		   hp = excluded.hp,
		   max_hp = excluded.max_hp,
		   energy = excluded.energy,
		   max_energy = excluded.max_energy,
		   karma = excluded.karma,
		   abilities = excluded.abilities,
		   updated_at = excluded.updated_at`,
		userID,
		record.State.Name,
		record.State.Class,
		statColumn(record.State.Wisdom),
		statColumn(record.State.Intelligence),
		statColumn(record.State.Strength),
		statColumn(record.State.Dexterity),
		statColumn(record.State.Constitution),
		statColumn(record.State.Charisma),
		record.State.HP,
		record.State.MaxHP,
		record.State.Energy,
		record.State.MaxEnergy,
		record.State.Karma,
		string(abilities),
		createdAt.UnixMilli(),
		updatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert character: %w", err)
	}
	return nil
}

// GetCharacter returns the record for a user, or storage.ErrNotFound.
func (s *Store) GetCharacter(ctx context.Context, userID string) (storage.CharacterRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.CharacterRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.CharacterRecord{}, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return storage.CharacterRecord{}, fmt.Errorf("user id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT user_id, name, class,
		        wisdom, intelligence, strength, dexterity, constitution, charisma,
		        hp, max_hp, energy, max_energy, karma, abilities,
		        created_at, updated_at
		   FROM characters WHERE user_id = ?`,
		userID,
	)

	var (
		record    storage.CharacterRecord
		stats     [6]sql.NullString
		abilities string
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(
		&record.UserID,
		&record.State.Name,
		&record.State.Class,
		&stats[0], &stats[1], &stats[2], &stats[3], &stats[4], &stats[5],
		&record.State.HP,
		&record.State.MaxHP,
		&record.State.Energy,
		&record.State.MaxEnergy,
		&record.State.Karma,
		&abilities,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.CharacterRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.CharacterRecord{}, fmt.Errorf("get character: %w", err)
	}

	record.State.Wisdom = statFromColumn(stats[0])
	record.State.Intelligence = statFromColumn(stats[1])
	record.State.Strength = statFromColumn(stats[2])
	record.State.Dexterity = statFromColumn(stats[3])
	record.State.Constitution = statFromColumn(stats[4])
	record.State.Charisma = statFromColumn(stats[5])
	if err := json.Unmarshal([]byte(abilities), &record.State.Abilities); err != nil {
		return storage.CharacterRecord{}, fmt.Errorf("unmarshal abilities: %w", err)
	}
	if len(record.State.Abilities) == 0 {
		record.State.Abilities = nil
	}
	record.CreatedAt = time.UnixMilli(createdAt).UTC()
	record.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return record, nil
}

// statColumn maps an absent stat to NULL so presence survives storage.
func statColumn(stat charsheet.Stat) any {
	if !stat.Present() {
		return nil
	}
	return stat.Display()
}

func statFromColumn(column sql.NullString) charsheet.Stat {
	if !column.Valid {
		return charsheet.Stat{}
	}
	return charsheet.NewStat(column.String)
}
