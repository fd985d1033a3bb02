package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/khoahotran/portfolio/pkg/logger"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS submission_locks (
	client_id  TEXT PRIMARY KEY,
	state      INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
)`

// NewSQLiteDB opens (and creates if needed) the single-node lock database.
func NewSQLiteDB(path string, log logger.Logger) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// modernc sqlite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	log.Info("Open SQLite successfully.")
	return db, nil
}
