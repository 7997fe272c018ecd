package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ClientAdapter holds network settings used by the transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
}

// ClientSession holds credential token store settings.
type ClientSession struct {
	// DSN is the SQLite file path; empty selects the in-memory store.
	DSN string
}

// ClientStorage groups local storage settings.
type ClientStorage struct {
	// Session holds token store settings.
	Session ClientSession
}

// ClientLog holds the resolved logging settings.
type ClientLog struct {
	// Level is the minimum level emitted.
	Level zerolog.Level
}

// ClientConfig is the runtime configuration of the items client, assembled
// from [StructuredConfig].
type ClientConfig struct {
	// Adapter contains transport address and timeout.
	Adapter ClientAdapter
	// Storage contains token store settings.
	Storage ClientStorage
	// Log contains logging settings.
	Log ClientLog
}

// DefaultClientConfig returns the configuration used when nothing is set:
// local development backend, in-memory token store, info logging.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: ClientLog{Level: zerolog.InfoLevel},
	}
}

// GetClientConfig builds and validates a client config view from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields the
// client runtime needs, pins the request timeout to [DefaultRequestTimeout]
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	level := zerolog.InfoLevel
	if cfg.Log.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
		}
		level = parsed
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: ClientStorage{
			Session: ClientSession{DSN: cfg.Storage.Session.DSN},
		},
		Log: ClientLog{Level: level},
	}

	return clientCfg, clientCfg.validate()
}
