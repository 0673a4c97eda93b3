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

	"github.com/efficientgo/core/errors"
	"gopkg.in/yaml.v2"

	"github.com/prometheus/depq/depq"
)

// config is the queue configuration read from -config.file. Flags given on
// the command line take precedence.
type config struct {
	// Name is the value of the queue label on exported metrics.
	Name string `yaml:"name"`
	// Capacity bounds the queue; 0 means unbounded.
	Capacity     int    `yaml:"capacity"`
	Mode         string `yaml:"mode"`
	PriorityOnly bool   `yaml:"priority_only"`
}

var defaultConfig = config{
	Name: "default",
	Mode: depq.KeepHighest.String(),
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return config{}, errors.Wrap(err, "read config file")
	}
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return config{}, errors.Wrapf(err, "parse config file %s", path)
	}
	return cfg, nil
}

// options translates cfg into queue options. Invalid values surface as
// depq.ErrInvalidConfig.
func (c config) options(logger *slog.Logger) ([]depq.Option, error) {
	mode, err := depq.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	opts := []depq.Option{depq.WithMode(mode), depq.WithLogger(logger)}
	if c.Capacity != 0 {
		opts = append(opts, depq.WithCapacity(c.Capacity))
	}
	if c.PriorityOnly {
		opts = append(opts, depq.WithPriorityOnlyOrdering())
	}
	return opts, nil
}
