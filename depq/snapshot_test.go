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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshotPayloads(t *testing.T) {
	q := newQueue[string](t)
	mustPush(t, q, "c", 3)
	mustPush(t, q, "a", 1)
	mustPush(t, q, "tie", 2)
	mustPush(t, q, "b", 2)

	if diff := cmp.Diff([]string{"a", "tie", "b", "c"}, q.Snapshot().Payloads()); diff != "" {
		t.Errorf("payloads mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotIgnoresRemoved(t *testing.T) {
	q := newQueue[string](t)
	mustPush(t, q, "a", 1)
	mustPush(t, q, "b", 2)
	if err := q.Remove("a"); err != nil {
		t.Fatal(err)
	}
	want := Snapshot[string]{{Priority: 2, Sequence: 1, Payload: "b"}}
	if diff := cmp.Diff(want, q.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotFingerprint(t *testing.T) {
	build := func(pushes ...string) Snapshot[string] {
		q := newQueue[string](t)
		for i, p := range pushes {
			mustPush(t, q, p, float64(i))
		}
		return q.Snapshot()
	}

	a, b := build("x", "y", "z"), build("x", "y", "z")
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal snapshots have different fingerprints")
	}
	if a.Fingerprint() == build("x", "z", "y").Fingerprint() {
		t.Error("different snapshots have equal fingerprints")
	}
	// Payload boundaries are part of the hash.
	if build("ab", "c").Fingerprint() == build("a", "bc").Fingerprint() {
		t.Error("fingerprint does not separate payloads")
	}
	if (Snapshot[string]{}).Fingerprint() != Snapshot[string](nil).Fingerprint() {
		t.Error("empty snapshots have different fingerprints")
	}
}
