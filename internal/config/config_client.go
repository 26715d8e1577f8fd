package config

import (
	"fmt"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter Adapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Unlike [GetStructuredConfig] it does not require server-only settings such
// as the token signing key.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: cfg.Adapter,
	}

	return clientCfg, clientCfg.validate()
}
