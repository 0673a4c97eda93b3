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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Item is a queued payload together with its priority and the sequence
// number it was inserted with.
type Item[T comparable] struct {
	Priority float64
	Sequence uint64
	Payload  T
}

// Snapshot is a copy of the queued items in ascending priority order.
type Snapshot[T comparable] []Item[T]

// Payloads returns the payloads of s in order.
func (s Snapshot[T]) Payloads() []T {
	payloads := make([]T, len(s))
	for i, item := range s {
		payloads[i] = item.Payload
	}
	return payloads
}

// Fingerprint hashes priorities, sequences and payloads of s. Payloads are
// hashed through their default %v formatting, so payloads that format
// identically hash identically.
func (s Snapshot[T]) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [16]byte
	for _, item := range s {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(item.Priority))
		binary.LittleEndian.PutUint64(buf[8:], item.Sequence)
		_, _ = d.Write(buf[:])
		_, _ = fmt.Fprint(d, item.Payload)
		_, _ = d.Write([]byte{0xff})
	}
	return d.Sum64()
}
