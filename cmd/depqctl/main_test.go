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
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/prometheus/depq/collectors"
	"github.com/prometheus/depq/depq"
)

func TestWriteMetrics(t *testing.T) {
	q, err := depq.NewLocked[string](depq.WithCapacity(2))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, newInterpreter(q, &out).run(strings.NewReader("push a 1\npush b 2\npush c 3\npop-min\n")))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewQueueCollector(q, "script"))

	var buf bytes.Buffer
	require.NoError(t, writeMetrics(&buf, reg))
	text := buf.String()
	require.Contains(t, text, "# TYPE depq_entries gauge\n")
	require.Contains(t, text, `depq_entries{queue="script"} 1`+"\n")
	require.Contains(t, text, `depq_evictions_total{queue="script"} 1`+"\n")
	require.Contains(t, text, `depq_pops_total{end="min",queue="script"} 1`+"\n")

	mfs, err := reg.Gather()
	require.NoError(t, err)
	var capacity *dto.MetricFamily
	for _, mf := range mfs {
		if mf.GetName() == "depq_capacity" {
			capacity = mf
		}
	}
	require.NotNil(t, capacity)
	require.Equal(t, dto.MetricType_GAUGE, capacity.GetType())
	require.Len(t, capacity.GetMetric(), 1)
	require.Equal(t, 2.0, capacity.GetMetric()[0].GetGauge().GetValue())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown k=v")

	_, err = newLogger(&buf, "loud")
	require.Error(t, err)
}

func TestSelfTest(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runSelfTest(&out))
	require.Equal(t, `PASS basics
PASS keep highest
PASS keep lowest
PASS equal priorities
PASS errors
`, out.String())
}

func TestSelfTestReportsFailures(t *testing.T) {
	saved := scenarios
	t.Cleanup(func() { scenarios = saved })
	scenarios = []scenario{
		{name: "good", run: func() error { return nil }},
		{name: "bad", run: boundedScenario(depq.KeepLowest, "foo", "buz", "baz")},
	}

	var out bytes.Buffer
	err := runSelfTest(&out)
	require.EqualError(t, err, "1 of 2 scenarios failed")
	require.Contains(t, out.String(), "PASS good\n")
	require.Contains(t, out.String(), `FAIL bad: live payloads: got "[bar fiz foo]", want "[foo buz baz]"`)
}
