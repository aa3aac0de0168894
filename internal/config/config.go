// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// recipe-keeper binaries. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password policy and the version string.
	App App `envPrefix:"APP_"`

	// Storage holds the database and image storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and rate-limit settings of the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings of the HTTP API client used by cmd/client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, password policy and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordMinLength is the minimum accepted password length.
	// Env: APP_PASSWORD_MIN_LENGTH
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH"`

	// Version is the version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Images holds the settings of the recipe image store.
	Images Images `envPrefix:"IMAGES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by scheme: "postgres://..." opens PostgreSQL
	// through pgx, "sqlite://path" or "file:path" opens SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Image storage backends.
const (
	ImagesBackendLocal = "local"
	ImagesBackendS3    = "s3"
)

// Images holds recipe image storage settings.
type Images struct {
	// Backend is either "local" or "s3".
	// Env: STORAGE_IMAGES_BACKEND
	Backend string `env:"BACKEND"`

	// MediaRoot is the directory the local backend writes into and
	// serves from under /media/.
	// Env: STORAGE_IMAGES_MEDIA_ROOT
	MediaRoot string `env:"MEDIA_ROOT"`

	// MaxUploadSize caps the size of an uploaded image in bytes.
	// Env: STORAGE_IMAGES_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// S3 holds the object storage settings used by the "s3" backend.
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds S3 (or S3-compatible) object storage settings.
type S3 struct {
	// Env: STORAGE_IMAGES_S3_BUCKET
	Bucket string `env:"BUCKET"`

	// Env: STORAGE_IMAGES_S3_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the AWS endpoint, e.g. for MinIO.
	// Env: STORAGE_IMAGES_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKeyID and SecretAccessKey are static credentials. When empty
	// the default AWS credential chain is used.
	// Env: STORAGE_IMAGES_S3_ACCESS_KEY_ID, STORAGE_IMAGES_S3_SECRET_ACCESS_KEY
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// UsePathStyle forces path-style addressing.
	// Env: STORAGE_IMAGES_S3_USE_PATH_STYLE
	UsePathStyle bool `env:"USE_PATH_STYLE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthRateLimit is the number of signup/token requests accepted per
	// client IP per minute.
	// Env: SERVER_AUTH_RATE_LIMIT
	AuthRateLimit int `env:"AUTH_RATE_LIMIT"`
}

// Adapter holds the settings of the outbound API client.
type Adapter struct {
	// HTTPAddress is the base URL of the API (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the API token sent with authenticated requests.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:       "recipe-keeper",
			TokenDuration:     24 * time.Hour,
			PasswordMinLength: 5,
		},
		Storage: Storage{
			Images: Images{
				Backend:       ImagesBackendLocal,
				MediaRoot:     "./media",
				MaxUploadSize: 10 << 20,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			AuthRateLimit:  20,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a .env file is loaded first when present)
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build((*StructuredConfig).validate)
}

// GetAdminConfig is like GetStructuredConfig without flags and validates
// only what the admin tooling needs: the database and the password policy.
func GetAdminConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		build((*StructuredConfig).validateStorage)
}

// GetClientConfig returns the adapter settings used by cmd/client,
// assembled from defaults, environment and the JSON file.
func GetClientConfig() (*Adapter, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		build((*StructuredConfig).validateAdapter)
	if err != nil {
		return nil, err
	}
	return &cfg.Adapter, nil
}
