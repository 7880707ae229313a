// File: toobusy/doc.go

// Package toobusy provides a continuously updated busy signal for a Go
// process, derived from the scheduling delay of a periodic background tick.
// Consumers use the signal for admission control: shedding incoming work
// probabilistically as delay worsens.
//
// Features:
//   - Periodic scheduling-delay sampling with exponential smoothing
//   - Probabilistic busy decision between a high-water mark and twice that mark
//   - Hysteretic lagging/easing notifications with a consecutive-tick debounce
//   - Validated, mutable tunables with safe concurrent access
//   - Functional options plus TOML/JSON/YAML option files
//   - Structured logging of state transitions via log/slog
//
// Quick Start:
//
//	mon, err := toobusy.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer mon.Shutdown()
//
//	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    if mon.IsBusy() {
//	        http.Error(w, "overloaded", http.StatusServiceUnavailable)
//	        return
//	    }
//	    // handle the request
//	})
//
// How it works:
// A goroutine ticks every SampleInterval and measures how late the tick
// actually fired. On an idle process the delay is near zero; under load the
// runtime schedules the tick late, and that delay is a direct proxy for how
// backlogged the process is. Raw delays are exponentially smoothed, so a
// single slow tick does not flip the signal.
//
// IsBusy returns false whenever the smoothed lag is at or below the
// high-water mark, true whenever it is at or above twice the mark, and true
// with linearly interpolated probability in between.
//
// Lagging and easing notifications are opt-in: registering an OnLag callback
// arms the lag-event threshold (the explicit value, or the current high-water
// mark at registration time). The threshold is shared monitor-wide; the most
// recent registration wins.
//
// Thread Safety:
// All methods are safe for concurrent use. The monitor uses a read-write
// mutex to allow concurrent reads while protecting writes. Callbacks are
// invoked from the sampling goroutine, outside the monitor's lock, so they
// may call back into the monitor.
package toobusy
