package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

var psqlContact = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const contactColumns = "id, client_id, name, email, subject, body, received_at"

// Save is idempotent on message id so redelivered events do not duplicate rows.
func (r *postgresContactRepo) Save(ctx context.Context, m *contact.Message) error {
	sql, args, err := psqlContact.Insert("contact_messages").
		Columns("id", "client_id", "name", "email", "subject", "body", "received_at").
		Values(m.ID, m.ClientID, m.Name, m.Email, m.Subject, m.Body, m.ReceivedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build save contact message query", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return apperror.NewInvalidInput("contact message violates a table constraint", err)
		}
		return apperror.NewInternal("failed to save contact message", err)
	}
	return nil
}

func (r *postgresContactRepo) List(ctx context.Context, limit, offset int) ([]*contact.Message, error) {
	sql, args, err := psqlContact.Select(contactColumns).
		From("contact_messages").
		OrderBy("received_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list contact messages query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query contact messages", err)
	}
	return scanMessages(rows)
}

func scanMessages(rows pgx.Rows) ([]*contact.Message, error) {
	defer rows.Close()
	messages := make([]*contact.Message, 0)

	for rows.Next() {
		m := &contact.Message{}
		if err := rows.Scan(&m.ID, &m.ClientID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.ReceivedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan contact message row", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating contact message rows", err)
	}
	return messages, nil
}
