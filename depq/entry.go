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

type entry[T comparable] struct {
	priority float64
	sequence uint64
	payload  T
	// removed marks a tombstone: the entry is no longer indexed and is
	// discarded by the next extraction that reaches it.
	removed bool
}

func (e *entry[T]) item() Item[T] {
	return Item[T]{
		Priority: e.priority,
		Sequence: e.sequence,
		Payload:  e.payload,
	}
}

// lessFunc reports whether a orders strictly before b.
type lessFunc[T comparable] func(a, b *entry[T]) bool

// bySequence orders by priority and breaks ties by insertion sequence.
func bySequence[T comparable](a, b *entry[T]) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.sequence < b.sequence
}

// byPriority leaves equal priorities order-equivalent.
func byPriority[T comparable](a, b *entry[T]) bool {
	return a.priority < b.priority
}

// bound places a heap slot relative to the real entries. Slots past the end
// of the heap are read as negInf or posInf, which order strictly before or
// after every entry, including entries with an infinite priority.
type bound int8

const (
	negInf bound = iota - 1
	finite
	posInf
)
