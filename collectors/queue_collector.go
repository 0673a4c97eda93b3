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

// Package collectors provides Prometheus collectors for depq queues.
package collectors

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/prometheus/depq/depq"
)

// StatsSource is implemented by depq.Queue and depq.Locked. Collect may run
// concurrently with other use of the queue, so register a Locked queue
// unless all access to it is serialized already.
type StatsSource interface {
	Stats() depq.Stats
}

type queueCollector struct {
	src StatsSource

	entries    *prometheus.Desc
	slots      *prometheus.Desc
	tombstones *prometheus.Desc
	capacity   *prometheus.Desc

	pushes    *prometheus.Desc
	updates   *prometheus.Desc
	drops     *prometheus.Desc
	evictions *prometheus.Desc
	removals  *prometheus.Desc
	pops      *prometheus.Desc
	discarded *prometheus.Desc
}

// NewQueueCollector returns a collector that exports the statistics of a
// queue. Every metric carries the constant label queue="<name>".
func NewQueueCollector(src StatsSource, name string) prometheus.Collector {
	fqName := func(name string) string {
		return "depq_" + name
	}
	labels := prometheus.Labels{"queue": name}
	return &queueCollector{
		src: src,
		entries: prometheus.NewDesc(
			fqName("entries"),
			"Number of live entries in the queue.",
			nil, labels,
		),
		slots: prometheus.NewDesc(
			fqName("slots"),
			"Number of heap slots in use, removed entries not yet reclaimed included.",
			nil, labels,
		),
		tombstones: prometheus.NewDesc(
			fqName("tombstones"),
			"Number of removed entries still occupying a heap slot.",
			nil, labels,
		),
		capacity: prometheus.NewDesc(
			fqName("capacity"),
			"Maximum number of live entries, 0 if unbounded.",
			nil, labels,
		),
		pushes: prometheus.NewDesc(
			fqName("pushes_total"),
			"Total number of entries inserted, priority updates included.",
			nil, labels,
		),
		updates: prometheus.NewDesc(
			fqName("updates_total"),
			"Total number of pushes that replaced a live entry.",
			nil, labels,
		),
		drops: prometheus.NewDesc(
			fqName("drops_total"),
			"Total number of pushes dropped by a full queue.",
			nil, labels,
		),
		evictions: prometheus.NewDesc(
			fqName("evictions_total"),
			"Total number of entries evicted to admit a push.",
			nil, labels,
		),
		removals: prometheus.NewDesc(
			fqName("removals_total"),
			"Total number of entries removed by payload.",
			nil, labels,
		),
		pops: prometheus.NewDesc(
			fqName("pops_total"),
			"Total number of entries popped, by end of the queue.",
			[]string{"end"}, labels,
		),
		discarded: prometheus.NewDesc(
			fqName("discarded_tombstones_total"),
			"Total number of removed entries reclaimed from the heap.",
			nil, labels,
		),
	}
}

// Describe implements Collector.
func (c *queueCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.slots
	ch <- c.tombstones
	ch <- c.capacity
	ch <- c.pushes
	ch <- c.updates
	ch <- c.drops
	ch <- c.evictions
	ch <- c.removals
	ch <- c.pops
	ch <- c.discarded
}

// Collect implements Collector.
func (c *queueCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(stats.Entries))
	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(stats.Slots))
	ch <- prometheus.MustNewConstMetric(c.tombstones, prometheus.GaugeValue, float64(stats.Slots-stats.Entries))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(stats.Capacity))
	ch <- prometheus.MustNewConstMetric(c.pushes, prometheus.CounterValue, float64(stats.Pushes))
	ch <- prometheus.MustNewConstMetric(c.updates, prometheus.CounterValue, float64(stats.Updates))
	ch <- prometheus.MustNewConstMetric(c.drops, prometheus.CounterValue, float64(stats.Drops))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(stats.Evictions))
	ch <- prometheus.MustNewConstMetric(c.removals, prometheus.CounterValue, float64(stats.Removals))
	ch <- prometheus.MustNewConstMetric(c.pops, prometheus.CounterValue, float64(stats.MinPops), "min")
	ch <- prometheus.MustNewConstMetric(c.pops, prometheus.CounterValue, float64(stats.MaxPops), "max")
	ch <- prometheus.MustNewConstMetric(c.discarded, prometheus.CounterValue, float64(stats.Discarded))
}
