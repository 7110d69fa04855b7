// Package config loads, merges, and validates the gallery API
// configuration from environment variables, command-line flags, and an
// optional JSON file.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file, in that priority order.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token signing parameters.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds database and static-file settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Payments holds M-Pesa STK push credentials and endpoints.
	Payments Payments `envPrefix:"MPESA_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of environment and flag values when non-empty.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level security settings.
type App struct {
	// TokenSignKey is the secret key used to sign and verify identity
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after
	// issuance (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the persistence backends.
type Storage struct {
	// DB holds relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds static-file and upload directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// Driver selects the database driver: "pgx" for PostgreSQL or
	// "sqlite3" for an embedded SQLite file.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the driver-specific data source name: a PostgreSQL URI for
	// pgx, a file path for sqlite3.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings for static content and uploads.
type Files struct {
	// StaticDir is the root directory served under /static/**. Uploaded
	// images are written to its "uploads" subdirectory.
	// Env: STORAGE_FILES_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// Payments holds M-Pesa Daraja API settings for the STK push adapter.
type Payments struct {
	// BaseURL is the Daraja API root (sandbox or production).
	// Env: MPESA_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ConsumerKey and ConsumerSecret are the OAuth client credentials.
	ConsumerKey    string `env:"CONSUMER_KEY"`
	ConsumerSecret string `env:"CONSUMER_SECRET"`

	// Shortcode is the business paybill/till number.
	// Env: MPESA_SHORTCODE
	Shortcode string `env:"SHORTCODE"`

	// Passkey is the Lipa na M-Pesa online passkey used to derive the
	// request password.
	// Env: MPESA_PASSKEY
	Passkey string `env:"PASSKEY"`

	// CallbackURL receives the asynchronous payment result.
	// Env: MPESA_CALLBACK_URL
	CallbackURL string `env:"CALLBACK_URL"`

	// Timeout bounds each outbound Daraja call.
	// Env: MPESA_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in priority order (first source
// wins for non-zero fields): environment variables, command-line flags,
// JSON file, built-in defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
