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

// Command depqctl drives a bounded double-ended priority queue from a script
// of commands, one per line:
//
//	push <payload> <priority>
//	pop-min | pop-max | peek-min | peek-max
//	remove <payload>
//	len | snapshot | stats
//
// The script is read from the file named by the first argument, or from
// standard input. Blank lines and lines starting with # are ignored.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"syscall"

	"github.com/efficientgo/core/errcapture"
	"github.com/efficientgo/core/errors"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"github.com/prometheus/depq/collectors"
	"github.com/prometheus/depq/depq"
)

var (
	configFile    = flag.String("config.file", "", "Path to an optional YAML queue configuration.")
	capacity      = flag.Int("capacity", 0, "Maximum number of queued payloads, 0 for unbounded. Overrides the configuration file.")
	mode          = depq.KeepHighest
	priorityOnly  = flag.Bool("priority-only", false, "Order equal priorities arbitrarily instead of by insertion. Overrides the configuration file.")
	selfTest      = flag.Bool("selftest", false, "Run the built-in scenarios and exit.")
	dumpMetrics   = flag.Bool("metrics", false, "Print the queue metrics in text exposition format after the script.")
	listenAddress = flag.String("web.listen-address", "", "If set, serve /metrics on this address after the script until interrupted.")
	logLevel      = flag.String("log.level", "info", "Log level: debug, info, warn or error.")
)

func init() {
	flag.Var(&mode, "mode", "Eviction mode of a full queue: keep-highest or keep-lowest. Overrides the configuration file.")
}

func main() {
	flag.Parse()

	if err := runMain(); err != nil {
		// Use %+v for github.com/efficientgo/core/errors error to print with stack.
		log.Fatalf("Error: %+v", errors.Wrapf(err, "%s", flag.Arg(0)))
	}
}

func runMain() (err error) {
	if *selfTest {
		return runSelfTest(os.Stdout)
	}

	logger, err := newLogger(os.Stderr, *logLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	overrideConfig(&cfg)

	opts, err := cfg.options(logger)
	if err != nil {
		return err
	}
	q, err := depq.NewLocked[string](opts...)
	if err != nil {
		return errors.Wrap(err, "create queue")
	}
	logger.Debug("created queue", "name", cfg.Name, "capacity", q.Cap(), "mode", q.Mode())

	in := io.Reader(os.Stdin)
	if path := flag.Arg(0); path != "" {
		var f *os.File
		if f, err = os.Open(path); err != nil {
			return errors.Wrap(err, "open script")
		}
		defer errcapture.Do(&err, f.Close, "close script")
		in = f
	}
	if err := newInterpreter(q, os.Stdout).run(in); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewQueueCollector(q, cfg.Name))

	if *dumpMetrics {
		if err := writeMetrics(os.Stdout, reg); err != nil {
			return err
		}
	}
	if *listenAddress != "" {
		return serve(*listenAddress, reg, logger)
	}
	return nil
}

// overrideConfig applies the flags given on the command line to cfg.
func overrideConfig(cfg *config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "capacity":
			cfg.Capacity = *capacity
		case "mode":
			cfg.Mode = mode.String()
		case "priority-only":
			cfg.PriorityOnly = *priorityOnly
		}
	})
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// writeMetrics writes everything g gathers to w in the text exposition
// format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}

func serve(addr string, reg *prometheus.Registry, logger *slog.Logger) error {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(
		reg,
		promhttp.HandlerOpts{EnableOpenMetrics: true},
	))
	srv := http.Server{Addr: addr, Handler: m}

	g := &run.Group{}
	g.Add(func() error {
		logger.Info("Starting HTTP server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "starting web server")
		}
		return nil
	}, func(error) {
		if err := srv.Close(); err != nil {
			logger.Error("Failed to stop web server", "err", err)
		}
	})
	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))
	return g.Run()
}
