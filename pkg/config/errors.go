package config

import "errors"

var (
	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("config.errors.nil_pointer")

	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the config struct.
	ErrParsingConfig = errors.New("config.errors.failed_to_parse_env")
)
