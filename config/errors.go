package config

import "errors"

var (
	// ErrNilPointer is returned when a nil target is passed to Load.
	ErrNilPointer = errors.New("config: target must be a non-nil pointer")

	// ErrParsingConfig wraps env parsing failures.
	ErrParsingConfig = errors.New("config: failed to parse environment")

	// ErrLoadingEnvFile wraps .env file loading failures.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")
)
