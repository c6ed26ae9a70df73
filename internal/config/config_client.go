package config

import (
	"fmt"
	"time"
)

const defaultClientDSN = "beer-battle.db"

type ClientApp struct {
	OwnerID       string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	HashKey       string
}

type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

type ClientStorage struct {
	DB ClientDB
}

type ClientWorkers struct {
	SyncInterval   time.Duration
	SyncFlex       time.Duration
	ListenInterval time.Duration
	MaxAttempts    int
	RetryBackoff   time.Duration
}

type ClientSync struct {
	ConflictPolicy string
}

// ClientConfig is the configuration of the BeerBattle client runtime.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Sync    ClientSync
}

// ClientOverrides are settings given on the client command line. They take
// precedence over the JSON file and the defaults but not over the environment.
type ClientOverrides struct {
	JSONFilePath string
	DSN          string
	OwnerID      string
}

// GetClientConfig merges environment, overrides, JSON file and defaults into
// a validated [ClientConfig].
func GetClientConfig(overrides ClientOverrides) (*ClientConfig, error) {
	defaults := defaultConfig()
	defaults.Storage.DB.DSN = defaultClientDSN

	cfg, err := newConfigBuilder().
		withEnv().
		withConfig(&StructuredConfig{
			App:          App{OwnerID: overrides.OwnerID},
			Storage:      Storage{DB: DB{DSN: overrides.DSN}},
			JSONFilePath: overrides.JSONFilePath,
		}).
		withJSON().
		withDefaults(defaults).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			OwnerID:       cfg.App.OwnerID,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			HashKey:       cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:   cfg.Workers.SyncInterval,
			SyncFlex:       cfg.Workers.SyncFlex,
			ListenInterval: cfg.Workers.ListenInterval,
			MaxAttempts:    cfg.Workers.MaxAttempts,
			RetryBackoff:   cfg.Workers.RetryBackoff,
		},
		Sync: ClientSync{
			ConflictPolicy: cfg.Sync.ConflictPolicy,
		},
	}
}
