// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/moneydashboard/internal/logger"
)

// validate checks the merged [StructuredConfig] for values no source may
// supply. Missing values are allowed here; [ClientConfig.validate] decides
// what the client requires.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.TransactionsLimit < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !cfg.Credentials.IsComplete() {
		return ErrInvalidCredentialsConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.TransactionsLimit <= 0 {
		return ErrInvalidAppConfigs
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}
