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

// evictionPolicy decides whether a push with the given priority may enter a
// queue that is at capacity. When it returns true it has already made room.
type evictionPolicy[T comparable] func(q *Queue[T], priority float64) bool

func evictionPolicyFor[T comparable](m Mode) evictionPolicy[T] {
	if m == KeepLowest {
		return evictHighest[T]
	}
	return evictLowest[T]
}

// evictLowest admits only priorities strictly above the current minimum and
// evicts that minimum.
func evictLowest[T comparable](q *Queue[T], priority float64) bool {
	worst, err := q.liveMin()
	if err != nil {
		return true
	}
	if priority <= worst.priority {
		return false
	}
	q.heap.popMin()
	q.evict(worst)
	return true
}

// evictHighest admits only priorities strictly below the current maximum and
// evicts that maximum.
func evictHighest[T comparable](q *Queue[T], priority float64) bool {
	worst, err := q.liveMax()
	if err != nil {
		return true
	}
	if priority >= worst.priority {
		return false
	}
	q.heap.popMax()
	q.evict(worst)
	return true
}
