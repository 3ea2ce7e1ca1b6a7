package sqlitemigrate

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

func TestApplyMigrationsRunsFilesInOrder(t *testing.T) {
	t.Parallel()

	migrationFS := fstest.MapFS{
		"0002_add_column.sql": {Data: []byte("ALTER TABLE notes ADD COLUMN body TEXT;")},
		"0001_create.sql":     {Data: []byte("CREATE TABLE notes (id INTEGER PRIMARY KEY);")},
		"readme.txt":          {Data: []byte("not a migration")},
	}
	sqlDB := openTestDB(t)

	if err := ApplyMigrations(context.Background(), sqlDB, migrationFS); err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}
	if _, err := sqlDB.Exec("INSERT INTO notes (id, body) VALUES (1, 'hello')"); err != nil {
		t.Fatalf("insert into migrated table: %v", err)
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	t.Parallel()

	migrationFS := fstest.MapFS{
		"0001_create.sql": {Data: []byte("CREATE TABLE notes (id INTEGER PRIMARY KEY);")},
	}
	sqlDB := openTestDB(t)

	if err := ApplyMigrations(context.Background(), sqlDB, migrationFS); err != nil {
		t.Fatalf("first ApplyMigrations() error = %v", err)
	}
	if err := ApplyMigrations(context.Background(), sqlDB, migrationFS); err != nil {
		t.Fatalf("second ApplyMigrations() error = %v", err)
	}

	var count int
	if err := sqlDB.QueryRow("SELECT COUNT(1) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if count != 1 {
		t.Fatalf("applied migrations = %d, want 1", count)
	}
}

func TestApplyMigrationsRequiresDB(t *testing.T) {
	t.Parallel()

	if err := ApplyMigrations(context.Background(), nil, fstest.MapFS{}); err == nil {
		t.Fatal("ApplyMigrations(nil db) expected error")
	}
}
