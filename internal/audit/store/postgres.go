package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/platemenu/platemenu/internal/audit"
)

// Postgres is a PostgreSQL implementation of audit.Store.
//
// Expected schema:
//
//	CREATE TABLE admission_denials (
//	    id         UUID PRIMARY KEY,
//	    identity   TEXT        NOT NULL,
//	    action     TEXT        NOT NULL,
//	    "limit"    BIGINT      NOT NULL,
//	    remaining  BIGINT      NOT NULL,
//	    reset_time TIMESTAMPTZ NOT NULL,
//	    client_ip  TEXT,
//	    user_agent TEXT,
//	    request_id TEXT,
//	    denied_at  TIMESTAMPTZ NOT NULL
//	);
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new PostgreSQL-backed audit store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) SaveDenied(ctx context.Context, event *audit.DeniedEvent) error {
	query := `
		INSERT INTO admission_denials (id, identity, action, "limit", remaining, reset_time, client_ip, user_agent, request_id, denied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query,
		event.ID,
		event.Identity,
		event.Action,
		event.Limit,
		event.Remaining,
		event.ResetTime,
		nullableString(event.ClientIP),
		nullableString(event.UserAgent),
		nullableString(event.RequestID),
		event.DeniedAt,
	)

	return err
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
