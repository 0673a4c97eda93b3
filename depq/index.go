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

// entryIndex maps every live payload to its entry. It holds pointers, so
// entries stay reachable however the heap reorders them.
type entryIndex[T comparable] map[T]*entry[T]

func (x entryIndex[T]) lookup(payload T) (*entry[T], bool) {
	e, ok := x[payload]
	return e, ok
}

func (x entryIndex[T]) add(e *entry[T]) {
	x[e.payload] = e
}

// tombstone unindexes payload and marks its entry as removed. It reports
// false if payload was not live.
func (x entryIndex[T]) tombstone(payload T) bool {
	e, ok := x[payload]
	if !ok {
		return false
	}
	delete(x, payload)
	var zero T
	e.payload = zero
	e.removed = true
	return true
}

// forget unindexes an entry that has left the heap alive.
func (x entryIndex[T]) forget(e *entry[T]) {
	delete(x, e.payload)
}
