package sessioncache

import "errors"

var (
	// ErrNotFound is returned when no live entry exists for the key.
	ErrNotFound = errors.New("sessioncache.errors.not_found")

	ErrFailedToParseConnString = errors.New("sessioncache.errors.failed_to_parse_conn_string")
	ErrRedisNotReady           = errors.New("sessioncache.errors.redis_not_ready")
)
