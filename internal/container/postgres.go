package container

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do"
)

// ErrNoPostgres indicates the pool was requested without a configured DSN.
var ErrNoPostgres = errors.New("no postgres dsn configured")

// PostgresPackage provides the pgx pool. The provider only runs when a
// component actually needs the pool, so processes without a DSN never
// dial Postgres.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		options := do.MustInvoke[*Options](i)

		if options.PostgresDSN == "" {
			return nil, ErrNoPostgres
		}

		return pgxpool.New(context.Background(), options.PostgresDSN)
	})
}
