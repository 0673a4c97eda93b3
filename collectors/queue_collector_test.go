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

package collectors

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/prometheus/depq/depq"
)

func newTestQueue(t *testing.T) *depq.Locked[string] {
	t.Helper()
	q, err := depq.NewLocked[string](depq.WithCapacity(3), depq.WithMode(depq.KeepHighest))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []struct {
		payload  string
		priority float64
	}{
		{"foo", 10}, {"bar", 7}, {"baz", 15}, {"fiz", 9}, {"buz", 12},
	} {
		if err := q.Push(p.payload, p.priority); err != nil {
			t.Fatal(err)
		}
	}
	if err := q.Remove("foo"); err != nil {
		t.Fatal(err)
	}
	if _, err := q.PopMax(); err != nil {
		t.Fatal(err)
	}
	return q
}

func TestQueueCollector(t *testing.T) {
	c := NewQueueCollector(newTestQueue(t), "jobs")

	expected := `
# HELP depq_entries Number of live entries in the queue.
# TYPE depq_entries gauge
depq_entries{queue="jobs"} 1
# HELP depq_slots Number of heap slots in use, removed entries not yet reclaimed included.
# TYPE depq_slots gauge
depq_slots{queue="jobs"} 2
# HELP depq_tombstones Number of removed entries still occupying a heap slot.
# TYPE depq_tombstones gauge
depq_tombstones{queue="jobs"} 1
# HELP depq_capacity Maximum number of live entries, 0 if unbounded.
# TYPE depq_capacity gauge
depq_capacity{queue="jobs"} 3
# HELP depq_pushes_total Total number of entries inserted, priority updates included.
# TYPE depq_pushes_total counter
depq_pushes_total{queue="jobs"} 5
# HELP depq_evictions_total Total number of entries evicted to admit a push.
# TYPE depq_evictions_total counter
depq_evictions_total{queue="jobs"} 2
# HELP depq_drops_total Total number of pushes dropped by a full queue.
# TYPE depq_drops_total counter
depq_drops_total{queue="jobs"} 0
# HELP depq_removals_total Total number of entries removed by payload.
# TYPE depq_removals_total counter
depq_removals_total{queue="jobs"} 1
# HELP depq_pops_total Total number of entries popped, by end of the queue.
# TYPE depq_pops_total counter
depq_pops_total{end="max",queue="jobs"} 1
depq_pops_total{end="min",queue="jobs"} 0
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"depq_entries",
		"depq_slots",
		"depq_tombstones",
		"depq_capacity",
		"depq_pushes_total",
		"depq_evictions_total",
		"depq_drops_total",
		"depq_removals_total",
		"depq_pops_total",
	); err != nil {
		t.Error(err)
	}
}

func TestQueueCollectorCount(t *testing.T) {
	c := NewQueueCollector(newTestQueue(t), "jobs")
	if got, want := testutil.CollectAndCount(c), 12; got != want {
		t.Errorf("collected %d metrics, want %d", got, want)
	}
}

func TestQueueCollectorLint(t *testing.T) {
	c := NewQueueCollector(newTestQueue(t), "jobs")
	problems, err := testutil.CollectAndLint(c)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range problems {
		t.Errorf("lint problem in %s: %s", p.Metric, p.Text)
	}
}

func TestQueueCollectorRegistersTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := depq.New[int]()
	if err != nil {
		t.Fatal(err)
	}
	b, err := depq.New[int]()
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(NewQueueCollector(a, "a")); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(NewQueueCollector(b, "b")); err != nil {
		t.Fatalf("second queue with another name failed to register: %v", err)
	}
	if err := reg.Register(NewQueueCollector(b, "b")); err == nil {
		t.Error("duplicate queue name registered without error")
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, mf := range mfs {
		if mf.GetName() == "depq_entries" && len(mf.GetMetric()) != 2 {
			t.Errorf("depq_entries has %d series, want 2", len(mf.GetMetric()))
		}
	}
}
