// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if a value cannot be converted to the target type
// (e.g. a malformed duration).
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvWithOptions(cfg, env.Options{})
}

// parseEnvFrom is parseEnv reading from environ instead of the process
// environment.
func parseEnvFrom(cfg *StructuredConfig, environ map[string]string) error {
	return parseEnvWithOptions(cfg, env.Options{Environment: environ})
}

func parseEnvWithOptions(cfg *StructuredConfig, opts env.Options) error {
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
