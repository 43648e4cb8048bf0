package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/geekcache/geekcache/internal/config"
)

func setupTestDB(t *testing.T) *Context {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("GEEKCACHE_DIR", tmp)

	ctx, err := CreateDatabase("")
	if err != nil {
		t.Fatalf("CreateDatabase returned error: %v", err)
	}

	t.Cleanup(func() {
		if err := CloseDatabase(ctx); err != nil {
			t.Fatalf("CloseDatabase error: %v", err)
		}
	})

	return ctx
}

func TestDatabaseCreationAndMigration(t *testing.T) {
	ctx := setupTestDB(t)

	dbPath := filepath.Join(config.GetDataDir(), "geekcache.db")
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database file to exist at %s: %v", dbPath, err)
	}

	tables := []string{"games", "users", "collection_items", "plays", "hot_games", "request_log"}
	for _, table := range tables {
		if !tableExists(t, ctx.DB, table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}
}

func TestCreateDatabaseIsIdempotent(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "geekcache.db")

	first, err := CreateDatabase(path)
	if err != nil {
		t.Fatalf("first CreateDatabase returned error: %v", err)
	}
	if err := CloseDatabase(first); err != nil {
		t.Fatalf("CloseDatabase error: %v", err)
	}

	// Reopening an already-migrated database must not fail.
	second, err := CreateDatabase(path)
	if err != nil {
		t.Fatalf("second CreateDatabase returned error: %v", err)
	}
	if err := CloseDatabase(second); err != nil {
		t.Fatalf("CloseDatabase error: %v", err)
	}
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		t.Fatalf("tableExists query failed for %s: %v", table, err)
	}
	return true
}
