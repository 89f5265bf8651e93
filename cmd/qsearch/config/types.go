// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared struct validator for config files.
var validate = validator.New()

// QsearchConfig is the on-disk configuration for the qsearch CLI.
type QsearchConfig struct {
	// Search holds the default search parameters; flags override them.
	Search SearchConfig `yaml:"search" validate:"required"`

	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig holds the per-search defaults.
type SearchConfig struct {
	// Qubits is the register size N; the search space is 2^N integers.
	// The upper bound tracks the statevector simulation cap.
	Qubits int `yaml:"qubits" validate:"gte=1,lte=20"`

	// Shots is the number of simulated measurement trials per search.
	Shots int `yaml:"shots" validate:"gte=1,lte=10000000"`

	// Seed, when set, makes the sampling backend deterministic.
	Seed *int64 `yaml:"seed,omitempty"`
}

// LoggingConfig controls log destinations and verbosity.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`

	// Dir enables JSON file logging into the given directory when set.
	// Supports ~ expansion.
	Dir string `yaml:"dir,omitempty"`
}

// DefaultConfig returns the configuration written on first run: the
// classic textbook setup of a 3-qubit register and 1024 shots.
func DefaultConfig() QsearchConfig {
	return QsearchConfig{
		Search: SearchConfig{
			Qubits: 3,
			Shots:  1024,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the loaded configuration against the struct tags above,
// so a hand-edited file fails fast with a field-level message instead of
// producing a broken search.
func (c *QsearchConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
