package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidCredentialsConfigs indicates a missing email or password.
	ErrInvalidCredentialsConfigs = errors.New("invalid credentials configuration")
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid client behaviour settings
	// (for example, a negative transactions limit).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
