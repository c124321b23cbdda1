package fpsmon

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
)

// State is the degradation state of one monitored component channel.
type State int

const (
	// StateNormal means the channel is at or above its FPS threshold.
	StateNormal State = iota
	// StateDegrading means the channel is below threshold but the
	// sustain timer has not elapsed yet.
	StateDegrading
	// StateDegraded means sustained sub-threshold performance was
	// confirmed and the degradation event has fired.
	StateDegraded
	// StateRecovering means a degraded channel is back above threshold
	// but the recovery sustain timer has not elapsed yet.
	StateRecovering
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateDegrading:
		return "degrading"
	case StateDegraded:
		return "degraded"
	default:
		return "recovering"
	}
}

// EventKind distinguishes the two edge-triggered monitor events.
type EventKind int

const (
	// EventDegraded fires exactly once per entry into StateDegraded.
	EventDegraded EventKind = iota
	// EventRecovered fires exactly once per return to StateNormal.
	EventRecovered
)

// Event is an edge-triggered degradation or recovery notification.
type Event struct {
	Component  string
	Kind       EventKind
	AverageFPS float64
	// Duration is how long the channel was continuously below threshold
	// when degradation was confirmed; zero for recovery events.
	Duration time.Duration
}

// Sample is one aggregated FPS measurement.
type Sample struct {
	// FPS is the instantaneous rate over the last sampling interval.
	FPS float64
	// Average is the mean over the rolling sample window.
	Average float64
	// At is the clock time the sample was taken.
	At time.Time
}

// ComponentGeneral is the catch-all channel used for components without
// a dedicated threshold.
const ComponentGeneral = "general"

// Defaults.
const (
	// DefaultSampleInterval is the aggregation cadence.
	DefaultSampleInterval = time.Second
	// DefaultWindowSize is the rolling history length used for averaging.
	DefaultWindowSize = 10
	// DefaultSustainPeriod is how long a channel must stay continuously
	// below (or, for recovery, above) threshold before a transition fires.
	DefaultSustainPeriod = 5 * time.Second
	// DefaultThreshold is the general minimum FPS.
	DefaultThreshold = 30.0
)

// channel tracks the hysteresis state for one component type.
type channel struct {
	threshold  float64
	state      State
	belowSince time.Time // zero when not in a sub-threshold run
	aboveSince time.Time // zero when not in a recovery run
}

// Monitor measures frame rate and detects sustained degradation and
// recovery per component channel. The host render loop reports frames
// via Frame; a sampling loop aggregates them once per interval.
//
// All duration comparisons use the injected clock, the same source that
// timestamps samples, so sustain checks are race-free with sampling.
//
// Monitor is safe for concurrent use.
type Monitor struct {
	clk      clock.Clock
	interval time.Duration
	window   int
	sustain  time.Duration

	frames atomic.Int64

	mu         sync.Mutex
	channels   map[string]*channel
	history    []Sample
	lastSample time.Time
	running    bool
	stop       chan struct{}
	done       chan struct{}
	subs       map[int]func(Event)
	nextSub    int
	sampleHook func(Sample)
}

// Option configures a Monitor during creation.
type Option func(*Monitor)

// WithClock sets the clock used for sampling and sustain timers.
// Tests inject a mock clock here.
func WithClock(c clock.Clock) Option {
	return func(m *Monitor) {
		m.clk = c
	}
}

// WithSampleInterval sets the aggregation cadence.
func WithSampleInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithWindowSize sets the rolling history length used for averaging.
func WithWindowSize(n int) Option {
	return func(m *Monitor) {
		if n > 0 {
			m.window = n
		}
	}
}

// WithSustainPeriod sets the confirmation duration for both degradation
// and recovery transitions.
func WithSustainPeriod(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.sustain = d
		}
	}
}

// WithThreshold adds a dedicated channel for a component type with its
// minimum acceptable FPS.
func WithThreshold(component string, minFPS float64) Option {
	return func(m *Monitor) {
		m.channels[component] = &channel{threshold: minFPS}
	}
}

// WithSampleHook installs a callback invoked for every aggregated sample.
// Used to mirror FPS data into a metrics store; must not block.
func WithSampleHook(fn func(Sample)) Option {
	return func(m *Monitor) {
		m.sampleHook = fn
	}
}

// New creates a Monitor. The general channel always exists; add
// component-specific channels with WithThreshold.
func New(opts ...Option) *Monitor {
	m := &Monitor{
		clk:      clock.New(),
		interval: DefaultSampleInterval,
		window:   DefaultWindowSize,
		sustain:  DefaultSustainPeriod,
		channels: make(map[string]*channel),
		subs:     make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(m)
	}
	if _, ok := m.channels[ComponentGeneral]; !ok {
		m.channels[ComponentGeneral] = &channel{threshold: DefaultThreshold}
	}
	return m
}

// Track adds (or replaces) a component channel at runtime.
// The channel starts in StateNormal.
func (m *Monitor) Track(component string, minFPS float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.channels[component] = &channel{threshold: minFPS}
}

// Threshold returns the minimum FPS for a component. Components without
// a dedicated channel use the general threshold.
func (m *Monitor) Threshold(component string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ch, ok := m.channels[component]; ok {
		return ch.threshold
	}
	return m.channels[ComponentGeneral].threshold
}

// Frame records one displayed frame. Call it once per frame from the
// host render loop; it never blocks.
func (m *Monitor) Frame() {
	m.frames.Add(1)
}

// Start resets all counters and timers and begins the sampling loop.
// Calling Start on a running monitor is a no-op.
func (m *Monitor) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.frames.Store(0)
	m.history = nil
	m.lastSample = m.clk.Now()
	for _, ch := range m.channels {
		ch.state = StateNormal
		ch.belowSince = time.Time{}
		ch.aboveSince = time.Time{}
	}
	m.running = true
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	stop, done := m.stop, m.done
	m.mu.Unlock()

	ticker := m.clk.Ticker(m.interval)
	go m.loop(ticker, stop, done)
}

// Stop halts the sampling loop. It cancels the pending tick and waits
// for the loop to exit, so no callback fires after Stop returns.
// Calling Stop on a stopped monitor is a no-op.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	close(m.stop)
	done := m.done
	m.mu.Unlock()

	<-done
}

// Running reports whether the sampling loop is active.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// State returns the current hysteresis state for a component.
// Components without a dedicated channel report the general state.
func (m *Monitor) State(component string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ch, ok := m.channels[component]; ok {
		return ch.state
	}
	return m.channels[ComponentGeneral].state
}

// Degraded reports whether sustained degradation is currently confirmed
// for a component (or, lacking a dedicated channel, in general).
func (m *Monitor) Degraded(component string) bool {
	return m.State(component) == StateDegraded
}

// Current returns the most recent sample, if any has been taken.
func (m *Monitor) Current() (Sample, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.history) == 0 {
		return Sample{}, false
	}
	return m.history[len(m.history)-1], true
}

// Window returns a copy of the rolling sample history, oldest first.
func (m *Monitor) Window() []Sample {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Sample, len(m.history))
	copy(out, m.history)
	return out
}

// Subscribe registers a callback for degradation/recovery events and
// returns a cancel function. Callbacks run on the sampling goroutine and
// must not call Stop.
func (m *Monitor) Subscribe(fn func(Event)) (cancel func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// loop is the sampling goroutine body.
func (m *Monitor) loop(ticker *clock.Ticker, stop, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.sample()
		}
	}
}

// sample aggregates the frame counter into one FPS measurement and runs
// the hysteresis evaluation.
func (m *Monitor) sample() {
	now := m.clk.Now()
	frames := m.frames.Swap(0)

	m.mu.Lock()
	elapsed := now.Sub(m.lastSample)
	if elapsed <= 0 {
		m.mu.Unlock()
		return
	}
	m.lastSample = now
	fps := float64(frames) / elapsed.Seconds()
	s, events := m.observe(fps, now)
	hook := m.sampleHook
	subs := make([]func(Event), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	if hook != nil {
		hook(s)
	}
	for _, ev := range events {
		for _, fn := range subs {
			fn(ev)
		}
	}
}

// observe records one sample and advances every channel's state machine.
// It returns the sample and the confirmed transitions. Called with mu
// held; timestamps must be monotonically non-decreasing.
func (m *Monitor) observe(fps float64, now time.Time) (Sample, []Event) {
	m.history = append(m.history, Sample{FPS: fps, At: now})
	if len(m.history) > m.window {
		m.history = m.history[len(m.history)-m.window:]
	}
	var sum float64
	for _, s := range m.history {
		sum += s.FPS
	}
	avg := sum / float64(len(m.history))
	m.history[len(m.history)-1].Average = avg

	var events []Event
	for name, ch := range m.channels {
		if ev, ok := ch.advance(name, fps, avg, now, m.sustain); ok {
			events = append(events, ev)
		}
	}
	return m.history[len(m.history)-1], events
}

// advance applies one sample to a channel's hysteresis state machine.
// A single above-threshold sample clears the degradation run entirely;
// there is no partial credit across separate dips.
func (ch *channel) advance(name string, fps, avg float64, now time.Time, sustain time.Duration) (Event, bool) {
	switch ch.state {
	case StateNormal, StateDegrading:
		if fps >= ch.threshold {
			ch.state = StateNormal
			ch.belowSince = time.Time{}
			return Event{}, false
		}
		if ch.belowSince.IsZero() {
			ch.belowSince = now
			ch.state = StateDegrading
			return Event{}, false
		}
		if run := now.Sub(ch.belowSince); run >= sustain {
			ch.state = StateDegraded
			ch.aboveSince = time.Time{}
			return Event{
				Component:  name,
				Kind:       EventDegraded,
				AverageFPS: avg,
				Duration:   run,
			}, true
		}
		ch.state = StateDegrading
		return Event{}, false

	default: // StateDegraded, StateRecovering
		if fps < ch.threshold {
			ch.state = StateDegraded
			ch.aboveSince = time.Time{}
			return Event{}, false
		}
		if ch.aboveSince.IsZero() {
			ch.aboveSince = now
			ch.state = StateRecovering
			return Event{}, false
		}
		if now.Sub(ch.aboveSince) >= sustain {
			ch.state = StateNormal
			ch.belowSince = time.Time{}
			ch.aboveSince = time.Time{}
			return Event{
				Component:  name,
				Kind:       EventRecovered,
				AverageFPS: avg,
			}, true
		}
		ch.state = StateRecovering
		return Event{}, false
	}
}
