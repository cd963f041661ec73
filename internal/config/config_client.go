package config

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/moneydashboard/models"
)

const (
	// DotEnvFile is the .env file looked up by GetStructuredConfig.
	DotEnvFile = ".env"

	// DefaultTransactionsLimit is the limitTo value used when none is given.
	DefaultTransactionsLimit = 999

	// DefaultLogRole is the "role" field of client log entries.
	DefaultLogRole = "moneydashboard"
)

// ClientApp holds client behaviour settings.
type ClientApp struct {
	// TransactionsLimit is the default limitTo value; always positive.
	TransactionsLimit int
}

// ClientAdapter holds settings applied to every session the adapter opens.
type ClientAdapter struct {
	// RequestTimeout bounds each outbound request. Zero means no timeout.
	RequestTimeout time.Duration
	// Transport replaces http.DefaultTransport when non-nil. It cannot be set
	// from the environment.
	Transport http.RoundTripper
}

// ClientLog holds logger settings.
type ClientLog struct {
	Level string
	Role  string
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Credentials is the login pair used on every login cycle.
	Credentials models.Credentials
	// App contains client behaviour settings.
	App ClientApp
	// Adapter contains transport settings.
	Adapter ClientAdapter
	// Log contains logger settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client config view from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client, fills defaults and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig projects cfg into a [ClientConfig] and applies defaults.
// It does not validate.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Credentials: models.Credentials{
			Email:    cfg.Credentials.Email,
			Password: cfg.Credentials.Password,
		},
		App: ClientApp{
			TransactionsLimit: cfg.App.TransactionsLimit,
		},
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			Role:  cfg.Log.Role,
		},
	}

	if clientCfg.App.TransactionsLimit == 0 {
		clientCfg.App.TransactionsLimit = DefaultTransactionsLimit
	}
	if clientCfg.Log.Role == "" {
		clientCfg.Log.Role = DefaultLogRole
	}

	return clientCfg
}
