package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no token signing key was provided.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidTokenDuration indicates a non-positive token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
	// ErrInvalidPasswordHashCost indicates a bcrypt cost outside the allowed range.
	ErrInvalidPasswordHashCost = errors.New("invalid password hash cost")
	// ErrInvalidStorageConfigs indicates an unsupported or empty storage DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
