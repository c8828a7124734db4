package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot be used to start the server.
var (
	// ErrInvalidAppConfigs indicates missing or out-of-range token or
	// password hashing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates an unusable listen port or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
