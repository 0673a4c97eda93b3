// Copyright 2026 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prometheus/depq/depq"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "depq.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefault(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig, cfg)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, `
name: jobs
capacity: 3
mode: keep-lowest
priority_only: true
`))
	require.NoError(t, err)
	require.Equal(t, config{Name: "jobs", Capacity: 3, Mode: "keep-lowest", PriorityOnly: true}, cfg)

	opts, err := cfg.options(slog.Default())
	require.NoError(t, err)
	q, err := depq.New[string](opts...)
	require.NoError(t, err)
	require.Equal(t, 3, q.Cap())
	require.Equal(t, depq.KeepLowest, q.Mode())
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "capacity: 10\n"))
	require.NoError(t, err)
	require.Equal(t, "default", cfg.Name)
	require.Equal(t, "keep-highest", cfg.Mode)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	_, err = loadConfig(writeConfig(t, "capacity: 3\nsize: 4\n"))
	require.Error(t, err, "unknown fields are rejected")

	_, err = loadConfig(writeConfig(t, "capacity: [\n"))
	require.Error(t, err)
}

func TestConfigOptionsInvalid(t *testing.T) {
	_, err := config{Mode: "keep-some"}.options(slog.Default())
	require.ErrorIs(t, err, depq.ErrInvalidConfig)

	opts, err := config{Mode: "keep-highest", Capacity: -1}.options(slog.Default())
	require.NoError(t, err)
	_, err = depq.New[string](opts...)
	require.ErrorIs(t, err, depq.ErrInvalidConfig)
}
