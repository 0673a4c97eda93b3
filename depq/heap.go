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

import "math/bits"

// minMaxHeap is an array-backed min-max heap. Nodes on even levels are no
// greater than any of their descendants, nodes on odd levels are no smaller.
// It knows nothing about tombstones; removed entries are ordered like any
// other until the queue pops them.
type minMaxHeap[T comparable] struct {
	entries []*entry[T]
	less    lessFunc[T]
}

func newMinMaxHeap[T comparable](less lessFunc[T]) minMaxHeap[T] {
	return minMaxHeap[T]{less: less}
}

func (h *minMaxHeap[T]) len() int {
	return len(h.entries)
}

func (h *minMaxHeap[T]) reset() {
	clear(h.entries)
	h.entries = h.entries[:0]
}

func parent(i int) int {
	return (i - 1) / 2
}

// isMinLevel reports whether index i sits on an even level, floor(log2(i+1)).
func isMinLevel(i int) bool {
	return (bits.Len(uint(i+1))-1)%2 == 0
}

func (h *minMaxHeap[T]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

func (h *minMaxHeap[T]) rank(i int, absent bound) bound {
	if i < len(h.entries) {
		return finite
	}
	return absent
}

// before reports whether slot i orders strictly before slot j. Slots past
// the end of the heap take the absent bound.
func (h *minMaxHeap[T]) before(i, j int, absent bound) bool {
	ri, rj := h.rank(i, absent), h.rank(j, absent)
	if ri != finite || rj != finite {
		return ri < rj
	}
	return h.less(h.entries[i], h.entries[j])
}

// after reports whether slot i orders strictly after slot j.
func (h *minMaxHeap[T]) after(i, j int, absent bound) bool {
	return h.before(j, i, absent)
}

func (h *minMaxHeap[T]) push(e *entry[T]) {
	h.entries = append(h.entries, e)
	i := len(h.entries) - 1
	if i == 0 {
		return
	}

	p := parent(i)
	if isMinLevel(i) {
		if h.less(h.entries[p], h.entries[i]) {
			h.swap(i, p)
			h.siftUpMax(p)
			return
		}
		h.siftUpMin(i)
		return
	}
	if h.less(h.entries[i], h.entries[p]) {
		h.swap(i, p)
		h.siftUpMin(p)
		return
	}
	h.siftUpMax(i)
}

// siftUpMin moves the node at i up through the min levels, one grandparent
// at a time. A grandparent exists for every i > 2.
func (h *minMaxHeap[T]) siftUpMin(i int) {
	for i > 2 {
		g := parent(parent(i))
		if !h.less(h.entries[i], h.entries[g]) {
			return
		}
		h.swap(i, g)
		i = g
	}
}

func (h *minMaxHeap[T]) siftUpMax(i int) {
	for i > 2 {
		g := parent(parent(i))
		if !h.less(h.entries[g], h.entries[i]) {
			return
		}
		h.swap(i, g)
		i = g
	}
}

// neighbourhood returns the children and grandchildren slots of i, in
// array order. Some of them may lie past the end of the heap.
func neighbourhood(i int) [6]int {
	return [6]int{2*i + 1, 2*i + 2, 4*i + 3, 4*i + 4, 4*i + 5, 4*i + 6}
}

// siftDownMin restores the invariant below a min-level node at i.
func (h *minMaxHeap[T]) siftDownMin(i int) {
	for 2*i+1 < len(h.entries) {
		m := i
		for _, c := range neighbourhood(i) {
			if h.before(c, m, posInf) {
				m = c
			}
		}
		if m == i {
			return
		}
		h.swap(i, m)
		if m <= 2*i+2 {
			return
		}
		if p := parent(m); h.less(h.entries[p], h.entries[m]) {
			h.swap(m, p)
		}
		i = m
	}
}

// siftDownMax restores the invariant below a max-level node at i.
func (h *minMaxHeap[T]) siftDownMax(i int) {
	for 2*i+1 < len(h.entries) {
		m := i
		for _, c := range neighbourhood(i) {
			if h.after(c, m, negInf) {
				m = c
			}
		}
		if m == i {
			return
		}
		h.swap(i, m)
		if m <= 2*i+2 {
			return
		}
		if p := parent(m); h.less(h.entries[m], h.entries[p]) {
			h.swap(m, p)
		}
		i = m
	}
}

// maxIndex returns the slot of the greatest entry, or -1 for an empty heap.
// Index 1 wins a tie with index 2.
func (h *minMaxHeap[T]) maxIndex() int {
	switch len(h.entries) {
	case 0:
		return -1
	case 1:
		return 0
	}
	if h.after(2, 1, negInf) {
		return 2
	}
	return 1
}

// min returns the root. The heap must not be empty.
func (h *minMaxHeap[T]) min() *entry[T] {
	return h.entries[0]
}

// max returns the greatest entry. The heap must not be empty.
func (h *minMaxHeap[T]) max() *entry[T] {
	return h.entries[h.maxIndex()]
}

// popMin removes and returns the root. The heap must not be empty.
func (h *minMaxHeap[T]) popMin() *entry[T] {
	return h.removeAt(0)
}

// popMax removes and returns the greatest entry. The heap must not be empty.
func (h *minMaxHeap[T]) popMax() *entry[T] {
	return h.removeAt(h.maxIndex())
}

// removeAt swaps slot i with the last slot, shrinks the heap and sifts the
// moved entry down from i. Only the root and the level one slots are valid
// arguments: the moved entry comes from a leaf, so nothing above i needs
// repairing.
func (h *minMaxHeap[T]) removeAt(i int) *entry[T] {
	last := len(h.entries) - 1
	h.swap(i, last)
	e := h.entries[last]
	h.entries[last] = nil
	h.entries = h.entries[:last]

	if i < last {
		if isMinLevel(i) {
			h.siftDownMin(i)
		} else {
			h.siftDownMax(i)
		}
	}
	return e
}
