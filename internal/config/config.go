// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the union of every setting either binary reads. The
// client and server views ([ClientConfig], [ServerConfig]) are cut from it
// after merging.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Storage Storage `envPrefix:"STORAGE_"`

	Server Server `envPrefix:"SERVER_"`

	Adapter Adapter `envPrefix:"ADAPTER_"`

	Workers Workers `envPrefix:"WORKERS_"`

	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath points at an optional JSON config file.
	JSONFilePath string `env:"CONFIG"`
}

type App struct {
	// OwnerID is the owner the client session starts with.
	OwnerID string `env:"OWNER_ID"`

	// TokenSignKey signs and verifies the owner JWTs shared by client and server.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	TokenIssuer string `env:"TOKEN_ISSUER"`

	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key of the HashSHA256 body integrity header.
	// Integrity checks are off when empty.
	HashKey string `env:"HASH_KEY"`

	Version string `env:"VERSION"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

type DB struct {
	// DSN is a PostgreSQL URL for the server and an SQLite file path for the client.
	DSN string `env:"DATABASE_URI"`
}

type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	GRPCAddress string `env:"GRPC_ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type Adapter struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type Workers struct {
	// SyncInterval is the period of the periodic and chained sync jobs.
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// SyncFlex is the window at the end of each period in which a periodic
	// job may run.
	SyncFlex time.Duration `env:"SYNC_FLEX"`

	// ListenInterval is how often the remote snapshot listener polls.
	ListenInterval time.Duration `env:"LISTEN_INTERVAL"`

	MaxAttempts int `env:"MAX_ATTEMPTS"`

	RetryBackoff time.Duration `env:"RETRY_BACKOFF"`
}

type Sync struct {
	ConflictPolicy string `env:"CONFLICT_POLICY"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "beer-battle",
			TokenDuration: time.Hour,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			SyncInterval:   15 * time.Minute,
			SyncFlex:       5 * time.Minute,
			ListenInterval: time.Minute,
			MaxAttempts:    3,
			RetryBackoff:   30 * time.Second,
		},
		Sync: Sync{
			ConflictPolicy: "remote_wins",
		},
	}
}
