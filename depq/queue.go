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
	"log/slog"
	"math"
	"sort"
)

// Queue is a double-ended priority queue of comparable payloads. The zero
// value is not usable; create queues with New.
//
// A Queue is not safe for concurrent use.
type Queue[T comparable] struct {
	heap  minMaxHeap[T]
	index entryIndex[T]
	// next is the sequence number of the next inserted entry.
	next uint64

	capacity int
	mode     Mode
	admit    evictionPolicy[T]
	logger   *slog.Logger

	stats Stats
}

// Stats describes the state of a Queue and counts what happened to it.
// Counters only ever increase.
type Stats struct {
	// Entries is the number of live entries, as reported by Len.
	Entries int
	// Slots is the length of the backing heap, removed entries included.
	Slots int
	// Capacity is the configured bound, 0 if unbounded.
	Capacity int

	Pushes    uint64 // Entries inserted, updates included.
	Updates   uint64 // Pushes that replaced a live payload.
	Drops     uint64 // Pushes rejected by a full queue.
	Evictions uint64 // Entries evicted to admit a push.
	Removals  uint64 // Successful calls to Remove.
	MinPops   uint64
	MaxPops   uint64
	Discarded uint64 // Removed entries reclaimed from the heap.
}

// New returns an empty Queue. It returns an error wrapping ErrInvalidConfig
// if an option is invalid.
func New[T comparable](opts ...Option) (*Queue[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	less := lessFunc[T](bySequence[T])
	if o.priorityOnly {
		less = byPriority[T]
	}
	return &Queue[T]{
		heap:     newMinMaxHeap(less),
		index:    make(entryIndex[T]),
		capacity: o.capacity,
		mode:     o.mode,
		admit:    evictionPolicyFor[T](o.mode),
		logger:   o.logger,
	}, nil
}

// Push adds payload with the given priority. If payload is already queued,
// its old entry is removed first, so Push doubles as a priority update.
//
// On a full queue the push either evicts the current worst entry or is
// silently dropped, see Mode. A dropped push is not an error. Push only fails
// for a NaN priority, in which case the queue is left untouched.
func (q *Queue[T]) Push(payload T, priority float64) error {
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: NaN", ErrInvalidPriority)
	}

	if q.index.tombstone(payload) {
		q.stats.Updates++
	}
	if q.capacity > 0 && q.Len() >= q.capacity && !q.admit(q, priority) {
		q.stats.Drops++
		q.logger.Debug("dropped push to full queue", "mode", q.mode, "priority", priority)
		return nil
	}

	e := &entry[T]{
		priority: priority,
		sequence: q.next,
		payload:  payload,
	}
	q.next++
	q.heap.push(e)
	q.index.add(e)
	q.stats.Pushes++
	return nil
}

// PopMin removes and returns the payload with the lowest priority.
func (q *Queue[T]) PopMin() (T, error) {
	e, err := q.liveMin()
	if err != nil {
		var zero T
		return zero, err
	}
	q.heap.popMin()
	q.index.forget(e)
	q.stats.MinPops++
	return e.payload, nil
}

// PopMax removes and returns the payload with the highest priority.
func (q *Queue[T]) PopMax() (T, error) {
	e, err := q.liveMax()
	if err != nil {
		var zero T
		return zero, err
	}
	q.heap.popMax()
	q.index.forget(e)
	q.stats.MaxPops++
	return e.payload, nil
}

// PeekMin returns the payload with the lowest priority without removing it.
func (q *Queue[T]) PeekMin() (T, error) {
	item, err := q.PeekMinItem()
	return item.Payload, err
}

// PeekMax returns the payload with the highest priority without removing it.
func (q *Queue[T]) PeekMax() (T, error) {
	item, err := q.PeekMaxItem()
	return item.Payload, err
}

// PeekMinItem is like PeekMin but also returns priority and sequence.
func (q *Queue[T]) PeekMinItem() (Item[T], error) {
	e, err := q.liveMin()
	if err != nil {
		return Item[T]{}, err
	}
	return e.item(), nil
}

// PeekMaxItem is like PeekMax but also returns priority and sequence.
func (q *Queue[T]) PeekMaxItem() (Item[T], error) {
	e, err := q.liveMax()
	if err != nil {
		return Item[T]{}, err
	}
	return e.item(), nil
}

// Remove removes payload from the queue in constant time. It returns an
// error wrapping ErrNotFound if payload is not queued.
func (q *Queue[T]) Remove(payload T) error {
	if !q.index.tombstone(payload) {
		return fmt.Errorf("%w: %v", ErrNotFound, payload)
	}
	q.stats.Removals++
	return nil
}

// Contains reports whether payload is queued.
func (q *Queue[T]) Contains(payload T) bool {
	_, ok := q.index.lookup(payload)
	return ok
}

// Priority returns the priority payload is queued with.
func (q *Queue[T]) Priority(payload T) (float64, bool) {
	e, ok := q.index.lookup(payload)
	if !ok {
		return 0, false
	}
	return e.priority, true
}

// Len returns the number of queued payloads.
func (q *Queue[T]) Len() int {
	return len(q.index)
}

// Empty reports whether Len is zero.
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

// Cap returns the capacity bound, or 0 for an unbounded queue.
func (q *Queue[T]) Cap() int {
	return q.capacity
}

// Mode returns the eviction mode.
func (q *Queue[T]) Mode() Mode {
	return q.mode
}

// Snapshot returns every queued entry ordered by ascending priority. Equal
// priorities are listed in the order their entries were inserted.
func (q *Queue[T]) Snapshot() Snapshot[T] {
	entries := make([]*entry[T], 0, len(q.index))
	for _, e := range q.index {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return bySequence(entries[i], entries[j])
	})

	s := make(Snapshot[T], len(entries))
	for i, e := range entries {
		s[i] = e.item()
	}
	return s
}

// Stats returns the current statistics.
func (q *Queue[T]) Stats() Stats {
	s := q.stats
	s.Entries = q.Len()
	s.Slots = q.heap.len()
	s.Capacity = q.capacity
	return s
}

// liveMin discards removed entries from the bottom of the heap and returns
// the live minimum, leaving it in place.
func (q *Queue[T]) liveMin() (*entry[T], error) {
	if err := q.requireLive(); err != nil {
		return nil, err
	}
	for q.heap.min().removed {
		q.heap.popMin()
		q.stats.Discarded++
	}
	return q.heap.min(), nil
}

// liveMax discards removed entries from the top of the heap and returns the
// live maximum, leaving it in place.
func (q *Queue[T]) liveMax() (*entry[T], error) {
	if err := q.requireLive(); err != nil {
		return nil, err
	}
	for q.heap.max().removed {
		q.heap.popMax()
		q.stats.Discarded++
	}
	return q.heap.max(), nil
}

// requireLive returns ErrEmpty if no entry is live. The heap then only holds
// removed entries and is cleared at once.
func (q *Queue[T]) requireLive() error {
	if q.Len() > 0 {
		return nil
	}
	if n := q.heap.len(); n > 0 {
		q.stats.Discarded += uint64(n)
		q.heap.reset()
	}
	return ErrEmpty
}

// evict unindexes an entry the eviction policy has taken off the heap.
func (q *Queue[T]) evict(e *entry[T]) {
	q.index.forget(e)
	q.stats.Evictions++
	q.logger.Debug("evicted entry from full queue", "mode", q.mode, "priority", e.priority, "sequence", e.sequence)
}
