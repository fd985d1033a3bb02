package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

type sqliteLockStore struct {
	db *sql.DB
}

func NewSQLiteLockStore(db *sql.DB) contact.LockStore {
	return &sqliteLockStore{db: db}
}

func (s *sqliteLockStore) Get(ctx context.Context, key string) (contact.State, error) {
	var state int
	err := s.db.QueryRowContext(ctx, `SELECT state FROM submission_locks WHERE client_id = ?`, key).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return contact.NotSubmitted, nil
	}
	if err != nil {
		return contact.NotSubmitted, apperror.NewInternal("failed to read submission lock", err)
	}
	return contact.State(state), nil
}

func (s *sqliteLockStore) Set(ctx context.Context, key string, state contact.State) error {
	query := `
		INSERT INTO submission_locks (client_id, state, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (client_id) DO UPDATE SET
			state = excluded.state,
			updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query, key, int(state), time.Now().UTC().Unix())
	if err != nil {
		return apperror.NewInternal("failed to write submission lock", err)
	}
	return nil
}
