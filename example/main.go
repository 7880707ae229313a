// FILE: toobusy/example/main.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"toobusy"
)

// A small HTTP server that sheds load when the process falls behind.
// Burn CPU with `hey -z 30s http://localhost:8080/work` and watch the
// lagging/easing transitions in the log.
func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))

	opts, err := toobusy.LoadOptions("toobusy.toml")
	if err != nil && !errors.Is(err, toobusy.ErrOptionsNotFound) {
		logger.Error("bad options file", "error", err)
		os.Exit(1)
	}

	mon, err := toobusy.New(
		toobusy.WithOptions(opts),
		toobusy.WithSampleInterval(100*time.Millisecond),
		toobusy.WithLogger(logger),
	)
	if err != nil {
		logger.Error("monitor construction failed", "error", err)
		os.Exit(1)
	}
	defer mon.Shutdown()

	mon.OnLag(func(lag time.Duration) {
		logger.Warn("shedding load", "lag", lag)
	})
	mon.OnEasing(func(lag time.Duration) {
		logger.Info("recovered", "lag", lag)
	})

	http.HandleFunc("/work", func(w http.ResponseWriter, r *http.Request) {
		if mon.IsBusy() {
			http.Error(w, "server too busy", http.StatusServiceUnavailable)
			return
		}
		burn(5 * time.Millisecond)
		fmt.Fprintf(w, "done (lag %v)\n", mon.Lag())
	})

	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "lag=%v busy=%v\n", mon.Lag(), mon.IsBusy())
	})

	logger.Info("listening", "addr", ":8080")
	if err := http.ListenAndServe(":8080", nil); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// burn holds the CPU for roughly d to simulate request work.
func burn(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}
