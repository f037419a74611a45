package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded schema migrations. Goose only speaks
// database/sql, so the pgx pool is bridged through stdlib; the wrapper shares
// the pool's underlying connections.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.ErrorContext(ctx, "failed to close migration connection", "error", err)
		}
	}()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(&slogAdapter{ctx: ctx, log: log})

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

// slogAdapter bridges goose's Printf-style logging to structured logging.
type slogAdapter struct {
	ctx context.Context
	log *slog.Logger
}

func (a *slogAdapter) Fatalf(format string, v ...any) {
	a.log.ErrorContext(a.ctx, fmt.Sprintf(format, v...))
}

func (a *slogAdapter) Printf(format string, v ...any) {
	a.log.InfoContext(a.ctx, fmt.Sprintf(format, v...))
}
