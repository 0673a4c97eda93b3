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

// Package depq provides a double-ended priority queue: a container that
// hands out both its lowest- and its highest-priority payload in O(log n).
//
// A Queue is backed by a min-max heap, a binary heap whose even levels are
// ordered like a min-heap and whose odd levels are ordered like a
// max-heap. The minimum is always the root and the maximum is always one of
// the root's two children.
//
// Payloads are comparable values and double as keys: pushing a payload that
// is already queued updates its priority. Remove is O(1) because removed
// entries are only marked as dead ("tombstoned"); the heap drops them when a
// later pop or peek walks past them.
//
// A Queue may be bounded with WithCapacity. Once full, a push either evicts
// the current worst entry or is dropped, depending on the Mode:
//
//	q, err := depq.New[string](depq.WithCapacity(3), depq.WithMode(depq.KeepHighest))
//	if err != nil {
//		// handle ErrInvalidConfig
//	}
//	_ = q.Push("foo", 10)
//	_ = q.Push("bar", 7)
//	_ = q.Push("baz", 15)
//	_ = q.Push("buz", 12) // evicts "bar"
//	lowest, _ := q.PopMin() // "foo"
//
// A Queue is not safe for concurrent use. Use Locked to share one between
// goroutines, for example when its Stats are scraped by a
// collectors.NewQueueCollector.
package depq
