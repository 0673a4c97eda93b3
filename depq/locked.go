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

import "sync"

// Locked is a Queue guarded by a single mutex. It is safe for concurrent use.
type Locked[T comparable] struct {
	mtx sync.Mutex
	q   *Queue[T]
}

// NewLocked is like New but returns a Locked queue.
func NewLocked[T comparable](opts ...Option) (*Locked[T], error) {
	q, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	return &Locked[T]{q: q}, nil
}

// Push calls Queue.Push under the lock.
func (l *Locked[T]) Push(payload T, priority float64) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.Push(payload, priority)
}

// PopMin calls Queue.PopMin under the lock.
func (l *Locked[T]) PopMin() (T, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.PopMin()
}

// PopMax calls Queue.PopMax under the lock.
func (l *Locked[T]) PopMax() (T, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.PopMax()
}

func (l *Locked[T]) PeekMin() (T, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.PeekMin()
}

func (l *Locked[T]) PeekMax() (T, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.PeekMax()
}

func (l *Locked[T]) PeekMinItem() (Item[T], error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.PeekMinItem()
}

func (l *Locked[T]) PeekMaxItem() (Item[T], error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.PeekMaxItem()
}

func (l *Locked[T]) Remove(payload T) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.Remove(payload)
}

func (l *Locked[T]) Contains(payload T) bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.Contains(payload)
}

func (l *Locked[T]) Priority(payload T) (float64, bool) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.Priority(payload)
}

func (l *Locked[T]) Len() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.Len()
}

func (l *Locked[T]) Empty() bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.Empty()
}

// Cap and Mode are fixed at construction and need no lock.
func (l *Locked[T]) Cap() int   { return l.q.Cap() }
func (l *Locked[T]) Mode() Mode { return l.q.Mode() }

func (l *Locked[T]) Snapshot() Snapshot[T] {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.Snapshot()
}

// Stats calls Queue.Stats under the lock. It may be called from a metrics
// scrape while other goroutines use the queue.
func (l *Locked[T]) Stats() Stats {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.q.Stats()
}
