// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 3, cfg.Search.Qubits)
	assert.Equal(t, 1024, cfg.Search.Shots)
	assert.Nil(t, cfg.Search.Seed)
	assert.Equal(t, "info", cfg.Logging.Level)

	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QsearchConfig)
		wantErr bool
	}{
		{"defaults pass", func(c *QsearchConfig) {}, false},
		{"max qubits", func(c *QsearchConfig) { c.Search.Qubits = 20 }, false},
		{"zero qubits", func(c *QsearchConfig) { c.Search.Qubits = 0 }, true},
		{"qubits over cap", func(c *QsearchConfig) { c.Search.Qubits = 21 }, true},
		{"zero shots", func(c *QsearchConfig) { c.Search.Shots = 0 }, true},
		{"shots over cap", func(c *QsearchConfig) { c.Search.Shots = 10000001 }, true},
		{"empty level allowed", func(c *QsearchConfig) { c.Logging.Level = "" }, false},
		{"debug level", func(c *QsearchConfig) { c.Logging.Level = "debug" }, false},
		{"bad level", func(c *QsearchConfig) { c.Logging.Level = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qsearch.yaml")
	content := `search:
  qubits: 4
  shots: 2048
  seed: 42
logging:
  level: debug
  dir: /tmp/qsearch-logs
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Search.Qubits)
	assert.Equal(t, 2048, cfg.Search.Shots)
	require.NotNil(t, cfg.Search.Seed)
	assert.Equal(t, int64(42), *cfg.Search.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/qsearch-logs", cfg.Logging.Dir)
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: ["), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestLoadFromInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qsearch.yaml")
	content := `search:
  qubits: 0
  shots: 1024
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestCreateDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "qsearch.yaml")
	require.NoError(t, createDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg QsearchConfig
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, DefaultConfig(), cfg)
}
