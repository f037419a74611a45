// Package postgres provides a PostgreSQL-backed order.Store built on the
// pgx/v5 connection pool. Line items, addresses, and the annotation bag are
// stored as JSONB columns; money columns are NUMERIC and round-trip through
// shopspring/decimal.
//
// Schema migrations are embedded and applied with goose:
//
//	pool, err := postgres.Connect(ctx, cfg)
//	if err != nil { ... }
//	if err := postgres.Migrate(ctx, pool, slog.Default()); err != nil { ... }
//	store := postgres.NewStore(pool)
package postgres
