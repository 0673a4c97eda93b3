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

package depq

import (
	"context"
	"fmt"
	"log/slog"
)

// Option configures a Queue.
type Option func(o *options) error

type options struct {
	capacity     int
	mode         Mode
	priorityOnly bool
	logger       *slog.Logger
}

var defaultOptions = options{
	mode: KeepHighest,
}

// WithCapacity bounds the number of live entries. Once the queue holds n
// entries, pushes are admitted or dropped according to the Mode.
func WithCapacity(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("%w: capacity must be a positive integer, got %d", ErrInvalidConfig, n)
		}
		o.capacity = n
		return nil
	}
}

// WithMode sets the eviction mode of a bounded queue. Defaults to
// KeepHighest. It has no effect without WithCapacity.
func WithMode(m Mode) Option {
	return func(o *options) error {
		if !m.valid() {
			return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, int(m))
		}
		o.mode = m
		return nil
	}
}

// WithPriorityOnlyOrdering compares entries by priority alone. By default
// equal priorities are ordered by insertion, so PopMin returns them first in
// first out and PopMax last in first out. With this option ties come out in
// whatever order the heap happens to hold them.
func WithPriorityOnlyOrdering() Option {
	return func(o *options) error {
		o.priorityOnly = true
		return nil
	}
}

// WithLogger sets the logger evictions and drops are reported to at debug
// level. By default, nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

type nopSlogHandler struct{}

func (n nopSlogHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (n nopSlogHandler) Handle(context.Context, slog.Record) error { return nil }
func (n nopSlogHandler) WithAttrs([]slog.Attr) slog.Handler        { return n }
func (n nopSlogHandler) WithGroup(string) slog.Handler             { return n }

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}
	if o.logger == nil {
		o.logger = slog.New(nopSlogHandler{})
	}
	return o, nil
}
