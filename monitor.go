// FILE: toobusy/monitor.go
package toobusy

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

// Monitor owns the full measurement-and-decision pipeline: the sampling
// goroutine, the smoothed lag signal, the hysteresis state machine, and the
// notification registries. Monitors are independent; create as many as
// needed (one per process is typical).
type Monitor struct {
	mu sync.RWMutex

	settings settings

	// lagMs is the exponentially smoothed scheduling delay in milliseconds.
	// It is never a raw sample.
	lagMs    float64
	lastTick time.Time

	hyst hysteresis
	subs registries

	ticker  *time.Ticker
	ctx     context.Context
	cancel  context.CancelFunc
	started atomic.Bool

	logger *slog.Logger

	// randFloat draws the uniform [0,1) sample for the busy decision.
	// Overridable so tests can pin the probabilistic region.
	randFloat func() float64
}

// New creates a Monitor and starts sampling immediately. The returned monitor
// keeps sampling until Shutdown is called; there is no restart path after
// shutdown, construct a new Monitor instead.
func New(opts ...Option) (*Monitor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Monitor{
		settings: settings{
			sampleInterval: o.SampleInterval,
			highWater:      o.HighWater,
			consecutive:    o.ConsecutiveThreshold,
			smoothing:      o.SmoothingFactor,
			lagThreshold:   o.LagEventThreshold,
		},
		lastTick:  time.Now(),
		ctx:       ctx,
		cancel:    cancel,
		logger:    logger,
		randFloat: rand.Float64,
	}

	m.ticker = time.NewTicker(m.settings.sampleInterval)
	m.started.Store(true)
	go m.run()

	m.logger.Debug("sampling started",
		"interval", m.settings.sampleInterval,
		"high_water", m.settings.highWater)
	return m, nil
}

// run drives the sampler until the monitor context is cancelled.
func (m *Monitor) run() {
	defer m.ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case now := <-m.ticker.C:
			m.tick(now)
		}
	}
}

// tick processes one sampling tick: derive the raw scheduling delay, fold it
// into the smoothed signal, and advance the hysteresis state machine.
// Notifications fire synchronously, outside the monitor lock.
func (m *Monitor) tick(now time.Time) {
	m.mu.Lock()
	if !m.started.Load() {
		// An in-flight tick must not dirty the zeroed post-shutdown state.
		m.mu.Unlock()
		return
	}

	elapsed := now.Sub(m.lastTick)
	m.lastTick = now

	raw := elapsed - m.settings.sampleInterval
	if raw < 0 {
		raw = 0
	}
	m.lagMs = smooth(m.lagMs, float64(raw)/float64(time.Millisecond), m.settings.smoothing)

	ev := m.hyst.advance(m.lagMs, m.settings.lagThreshold, m.settings.consecutive)

	var fns []LagFunc
	var lag time.Duration
	if ev != eventNone {
		lag = roundToMillis(m.lagMs)
		switch ev {
		case eventLag:
			fns = append(fns, m.subs.lag...)
		case eventEasing:
			fns = append(fns, m.subs.easing...)
		}
	}
	m.mu.Unlock()

	switch ev {
	case eventLag:
		m.logger.Info("lagging", "lag", lag)
	case eventEasing:
		m.logger.Info("easing", "lag", lag)
	}
	for _, fn := range fns {
		fn(lag)
	}
}

// smooth applies the exponential smoothing recurrence
// next = α·sample + (1-α)·prev, substituting 0 for invalid arithmetic.
func smooth(prev, sample, alpha float64) float64 {
	next := alpha*sample + (1-alpha)*prev
	if math.IsNaN(next) || math.IsInf(next, 0) {
		return 0
	}
	return next
}

// IsBusy reports whether the caller should shed the current unit of work.
// It is deterministic outside the interpolation band: always false while the
// smoothed lag is at or below the high-water mark, always true at or above
// twice the mark, and probabilistic in between.
func (m *Monitor) IsBusy() bool {
	m.mu.RLock()
	lagMs := m.lagMs
	highMs := float64(m.settings.highWater) / float64(time.Millisecond)
	draw := m.randFloat
	m.mu.RUnlock()

	pctToBlock := (lagMs - highMs) / highMs
	if pctToBlock <= 0 {
		return false
	}
	if pctToBlock >= 1 {
		return true
	}
	return draw() < pctToBlock
}

// Lag returns the current smoothed scheduling delay, rounded to the nearest
// millisecond.
func (m *Monitor) Lag() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return roundToMillis(m.lagMs)
}

// Started reports whether the monitor is sampling.
func (m *Monitor) Started() bool {
	return m.started.Load()
}

// Shutdown stops sampling, resets the lag signal to zero, and clears lag
// subscriptions. Easing subscriptions are left registered; they simply never
// fire again because sampling has stopped. Shutdown is idempotent.
func (m *Monitor) Shutdown() {
	if !m.started.CompareAndSwap(true, false) {
		return
	}
	m.cancel()

	m.mu.Lock()
	m.lagMs = 0
	m.hyst.reset()
	m.subs.lag = nil
	m.mu.Unlock()

	m.logger.Debug("sampling stopped")
}

func roundToMillis(ms float64) time.Duration {
	return time.Duration(math.Round(ms)) * time.Millisecond
}
