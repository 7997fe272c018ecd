// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from API_URL, STORAGE_SESSION_DSN, LOG_LEVEL and CONFIG.
// Unset variables leave their fields zero so the merge keeps the defaults.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading API_URL/STORAGE_SESSION_DSN/LOG_LEVEL/CONFIG: %w", err)
	}

	return nil
}
