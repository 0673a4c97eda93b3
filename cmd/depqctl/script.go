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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/efficientgo/core/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/prometheus/depq/depq"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// interpreter runs command scripts against a queue of string payloads. Each
// command writes exactly one line to out.
type interpreter struct {
	q   *depq.Locked[string]
	out io.Writer
}

func newInterpreter(q *depq.Locked[string], out io.Writer) *interpreter {
	return &interpreter{q: q, out: out}
}

// run executes the script read from r. Queue errors such as popping an empty
// queue are reported in the output; only malformed commands stop the script.
func (in *interpreter) run(r io.Reader) error {
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := in.exec(strings.Fields(text)); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
	}
	if err := s.Err(); err != nil {
		return errors.Wrap(err, "read script")
	}
	return nil
}

func (in *interpreter) exec(args []string) error {
	cmd, args := args[0], args[1:]

	want := 0
	switch cmd {
	case "push":
		want = 2
	case "remove":
		want = 1
	}
	if len(args) != want {
		return errors.Newf("%s: expected %d arguments, got %d", cmd, want, len(args))
	}

	switch cmd {
	case "push":
		priority, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return errors.Wrapf(err, "push: parse priority")
		}
		if err := in.q.Push(args[0], priority); err != nil {
			return in.printErr(err)
		}
		if !in.q.Contains(args[0]) {
			return in.println("dropped")
		}
		return in.println("ok")
	case "pop-min":
		return in.printPayload(in.q.PopMin())
	case "pop-max":
		return in.printPayload(in.q.PopMax())
	case "peek-min":
		return in.printPayload(in.q.PeekMin())
	case "peek-max":
		return in.printPayload(in.q.PeekMax())
	case "remove":
		if err := in.q.Remove(args[0]); err != nil {
			return in.printErr(err)
		}
		return in.println("ok")
	case "len":
		return in.println(strconv.Itoa(in.q.Len()))
	case "snapshot":
		return in.printJSON(snapshotJSON(in.q.Snapshot()))
	case "stats":
		return in.printJSON(statsJSON(in.q.Stats()))
	}
	return errors.Newf("unknown command %q", cmd)
}

func (in *interpreter) println(s string) error {
	_, err := fmt.Fprintln(in.out, s)
	return err
}

func (in *interpreter) printErr(err error) error {
	return in.println("error: " + err.Error())
}

func (in *interpreter) printPayload(payload string, err error) error {
	if err != nil {
		return in.printErr(err)
	}
	return in.println(payload)
}

func (in *interpreter) printJSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode json")
	}
	return in.println(string(b))
}

// item is the JSON form of a snapshot entry. Priorities are strings so that
// infinities survive encoding.
type item struct {
	Priority string `json:"priority"`
	Sequence uint64 `json:"sequence"`
	Payload  string `json:"payload"`
}

func formatPriority(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func snapshotJSON(s depq.Snapshot[string]) []item {
	items := make([]item, 0, len(s))
	for _, it := range s {
		items = append(items, item{
			Priority: formatPriority(it.Priority),
			Sequence: it.Sequence,
			Payload:  it.Payload,
		})
	}
	return items
}

type stats struct {
	Entries   int    `json:"entries"`
	Slots     int    `json:"slots"`
	Capacity  int    `json:"capacity"`
	Pushes    uint64 `json:"pushes"`
	Updates   uint64 `json:"updates"`
	Drops     uint64 `json:"drops"`
	Evictions uint64 `json:"evictions"`
	Removals  uint64 `json:"removals"`
	MinPops   uint64 `json:"min_pops"`
	MaxPops   uint64 `json:"max_pops"`
	Discarded uint64 `json:"discarded"`
}

func statsJSON(s depq.Stats) stats {
	return stats(s)
}
