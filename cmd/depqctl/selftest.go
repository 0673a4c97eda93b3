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

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/efficientgo/core/errors"

	"github.com/prometheus/depq/depq"
)

type scenario struct {
	name string
	run  func() error
}

var scenarios = []scenario{
	{name: "basics", run: basicsScenario},
	{name: "keep highest", run: boundedScenario(depq.KeepHighest, "foo", "buz", "baz")},
	{name: "keep lowest", run: boundedScenario(depq.KeepLowest, "bar", "fiz", "foo")},
	{name: "equal priorities", run: equalPrioritiesScenario},
	{name: "errors", run: errorsScenario},
}

// runSelfTest runs all scenarios, reporting each on w. It fails if any
// scenario does.
func runSelfTest(w io.Writer) error {
	failed := 0
	for _, s := range scenarios {
		if err := s.run(); err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", s.name, err)
			continue
		}
		fmt.Fprintf(w, "PASS %s\n", s.name)
	}
	if failed > 0 {
		return errors.Newf("%d of %d scenarios failed", failed, len(scenarios))
	}
	return nil
}

func expect(what, got, want string) error {
	if got != want {
		return errors.Newf("%s: got %q, want %q", what, got, want)
	}
	return nil
}

// step runs op and compares the payload it returns.
func step(what string, op func() (string, error), want string) error {
	got, err := op()
	if err != nil {
		return errors.Wrap(err, what)
	}
	return expect(what, got, want)
}

func basicsScenario() error {
	q, err := depq.New[string]()
	if err != nil {
		return err
	}
	for _, p := range []struct {
		payload  string
		priority float64
	}{{"foo", 10}, {"bar", 9}, {"baz", 11}} {
		if err := q.Push(p.payload, p.priority); err != nil {
			return err
		}
	}

	for _, s := range []struct {
		what string
		op   func() (string, error)
		want string
	}{
		{"peek min", q.PeekMin, "bar"},
		{"peek max", q.PeekMax, "baz"},
		{"pop min", q.PopMin, "bar"},
	} {
		if err := step(s.what, s.op, s.want); err != nil {
			return err
		}
	}
	if err := expect("len", strconv.Itoa(q.Len()), "2"); err != nil {
		return err
	}
	for _, s := range []struct {
		what string
		op   func() (string, error)
		want string
	}{
		{"pop max", q.PopMax, "baz"},
		{"peek min", q.PeekMin, "foo"},
		{"peek max", q.PeekMax, "foo"},
	} {
		if err := step(s.what, s.op, s.want); err != nil {
			return err
		}
	}
	return nil
}

func boundedScenario(m depq.Mode, want ...string) func() error {
	return func() error {
		q, err := depq.New[string](depq.WithCapacity(3), depq.WithMode(m))
		if err != nil {
			return err
		}
		for _, p := range []struct {
			payload  string
			priority float64
		}{{"foo", 10}, {"bar", 7}, {"baz", 15}, {"fiz", 9}, {"buz", 12}} {
			if err := q.Push(p.payload, p.priority); err != nil {
				return err
			}
		}
		return expect("live payloads", fmt.Sprint(q.Snapshot().Payloads()), fmt.Sprint(want))
	}
}

func equalPrioritiesScenario() error {
	const n = 20
	fill := func() (*depq.Queue[string], error) {
		q, err := depq.New[string]()
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if err := q.Push(strconv.Itoa(i), 0); err != nil {
				return nil, err
			}
		}
		return q, nil
	}

	q, err := fill()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := step("pop min", q.PopMin, strconv.Itoa(i)); err != nil {
			return err
		}
	}

	if q, err = fill(); err != nil {
		return err
	}
	for i := n - 1; i >= 0; i-- {
		if err := step("pop max", q.PopMax, strconv.Itoa(i)); err != nil {
			return err
		}
	}
	return nil
}

func errorsScenario() error {
	q, err := depq.New[string]()
	if err != nil {
		return err
	}
	if err := q.Remove("nope"); !errors.Is(err, depq.ErrNotFound) {
		return errors.Newf("remove of missing payload: got %v, want %v", err, depq.ErrNotFound)
	}
	if _, err := q.PopMin(); !errors.Is(err, depq.ErrEmpty) {
		return errors.Newf("pop min of empty queue: got %v, want %v", err, depq.ErrEmpty)
	}
	return nil
}
