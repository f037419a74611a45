package postgres

import "errors"

var (
	ErrFailedToParseConfig     = errors.New("order.postgres.errors.failed_to_parse_config")
	ErrFailedToOpenConnection  = errors.New("order.postgres.errors.failed_to_open_connection")
	ErrFailedToApplyMigrations = errors.New("order.postgres.errors.failed_to_apply_migrations")
)
