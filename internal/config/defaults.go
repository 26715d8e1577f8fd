package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied to fields left empty by every configuration source.
const (
	DefaultTokenIssuer          = "go-note-keeper"
	DefaultLoginTokenDuration   = 30 * time.Minute
	DefaultTokenDuration        = 15 * time.Minute
	DefaultVersion              = "dev"
	DefaultDSN                  = "memory"
	DefaultHTTPAddress          = "localhost:8000"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultAdapterAddress       = "http://localhost:8000"
	DefaultAdapterRequestTimout = 15 * time.Second
)

// Defaults returns the configuration used to fill zero fields after all
// sources are merged. The token signing key has no default.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          DefaultTokenIssuer,
			TokenDuration:        DefaultLoginTokenDuration,
			DefaultTokenDuration: DefaultTokenDuration,
			PasswordHashCost:     bcrypt.DefaultCost,
			Version:              DefaultVersion,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimout,
		},
	}
}
