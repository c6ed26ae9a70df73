package config

import (
	"fmt"
)

type ServerApp struct {
	TokenSignKey string
	TokenIssuer  string
	HashKey      string
	Version      string
}

type ServerStorage struct {
	DB DB
}

// ServerConfig is the configuration of the remote document store server.
type ServerConfig struct {
	App     ServerApp
	Storage ServerStorage
	Server  Server
}

// GetServerConfig merges environment, command-line args, JSON file and
// defaults into a validated [ServerConfig]. args excludes the program name.
func GetServerConfig(name string, args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(name, args).
		withJSON().
		withDefaults(defaultConfig()).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
			HashKey:      cfg.App.HashKey,
			Version:      cfg.App.Version,
		},
		Storage: ServerStorage{
			DB: cfg.Storage.DB,
		},
		Server: cfg.Server,
	}
}
