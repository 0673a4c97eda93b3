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
	"fmt"
	"strconv"
)

// Mode selects which entries a bounded queue keeps once it is full.
type Mode int

const (
	// KeepHighest evicts the lowest priority to admit a higher one.
	KeepHighest Mode = iota
	// KeepLowest evicts the highest priority to admit a lower one.
	KeepLowest
)

func (m Mode) valid() bool {
	return m == KeepHighest || m == KeepLowest
}

func (m Mode) String() string {
	switch m {
	case KeepHighest:
		return "keep-highest"
	case KeepLowest:
		return "keep-lowest"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode parses "keep-highest" or "keep-lowest". The short forms "max"
// and "min" are accepted as well.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "keep-highest", "max":
		return KeepHighest, nil
	case "keep-lowest", "min":
		return KeepLowest, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}
