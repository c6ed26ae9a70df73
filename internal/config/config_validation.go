// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/beer-battle/models"
)

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if (cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "") || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	w := cfg.Workers
	if w.SyncInterval <= 0 || w.ListenInterval <= 0 || w.MaxAttempts < 1 || w.RetryBackoff <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if w.SyncFlex < 0 || w.SyncFlex > w.SyncInterval {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if !models.ConflictPolicy(cfg.Sync.ConflictPolicy).Valid() {
		return ErrInvalidSyncConfigs
	}

	return nil
}
