package governor

import (
	"sync"

	"github.com/gogpu/governor/capability"
	"github.com/gogpu/governor/fpsmon"
	"github.com/gogpu/governor/lod"
	"github.com/gogpu/governor/metrics"
	"github.com/gogpu/governor/tier"
)

// Governor combines capability tier, live frame-rate state, and the
// user's reduced-motion preference into render decisions. It is an
// explicitly constructed context object: no package-level state, so
// tests can build and tear down independent instances.
//
// Decisions are level-triggered: Decide recomputes from current inputs
// on every call, so a late consumer always observes the current verdict
// rather than a stale one. Subscribers additionally receive a push when
// any decision input changes.
//
// Governor is safe for concurrent use.
type Governor struct {
	detector *capability.Detector
	monitor  *fpsmon.Monitor
	store    *metrics.Store

	mu            sync.Mutex
	reducedMotion bool
	subs          map[int]func(component string, d Decision)
	nextSub       int
	cancelMon     func()
	started       bool
	closed        bool
}

// New creates a Governor. Without options it uses registry-selected
// capability probing, the default component thresholds (candles 25,
// portraits 30, flyer 35 FPS), and an in-memory metrics store.
func New(opts ...Option) *Governor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Governor{
		detector: o.detector,
		store:    o.store,
		subs:     make(map[int]func(string, Decision)),
	}

	if g.detector == nil {
		g.detector = capability.NewDetector()
	}
	if g.store == nil {
		g.store = metrics.NewStore()
	}

	g.monitor = o.monitor
	if g.monitor == nil {
		monOpts := []fpsmon.Option{
			fpsmon.WithThreshold(tier.ComponentCandles, 25),
			fpsmon.WithThreshold(tier.ComponentPortraits, 30),
			fpsmon.WithThreshold(tier.ComponentFlyer, 35),
			fpsmon.WithSampleHook(g.recordSample),
		}
		monOpts = append(monOpts, o.monitorOpts...)
		g.monitor = fpsmon.New(monOpts...)
	}

	g.cancelMon = g.monitor.Subscribe(g.onMonitorEvent)
	return g
}

// Start detects capabilities (if not yet detected), records them, and
// begins frame-rate monitoring. Idempotent.
func (g *Governor) Start() {
	g.mu.Lock()
	if g.started || g.closed {
		g.mu.Unlock()
		return
	}
	g.started = true
	g.mu.Unlock()

	caps := g.detector.Capabilities()
	g.store.Record(metrics.TypeCapability, map[string]any{
		"class":    caps.Class.String(),
		"score":    caps.Score,
		"render3d": caps.CanRender3D,
		"gpu":      caps.GPUName,
		"tier":     tier.Resolve(caps.Score).String(),
	})
	for _, name := range tier.Components() {
		g.store.Record(metrics.TypeThreshold, map[string]any{
			"component": name,
			"minFps":    g.monitor.Threshold(name),
		})
	}

	g.monitor.Start()
}

// Close stops monitoring and detaches all internal subscriptions.
// Idempotent; the Governor must not be used after Close.
func (g *Governor) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	cancel := g.cancelMon
	g.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	g.monitor.Stop()
}

// Frame records one displayed frame with the monitor. Call it once per
// frame from the host render loop.
func (g *Governor) Frame() {
	g.monitor.Frame()
}

// Capabilities returns the session capability snapshot, detecting it on
// first use.
func (g *Governor) Capabilities() capability.Capabilities {
	return g.detector.Capabilities()
}

// Tier returns the resolved performance tier.
func (g *Governor) Tier() tier.Tier {
	return tier.Resolve(g.detector.Capabilities().Score)
}

// Monitor exposes the frame-rate monitor for read access.
func (g *Governor) Monitor() *fpsmon.Monitor {
	return g.monitor
}

// Metrics exposes the metrics store for diagnostics.
func (g *Governor) Metrics() *metrics.Store {
	return g.store
}

// ReducedMotion reports the current accessibility preference.
func (g *Governor) ReducedMotion() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reducedMotion
}

// SetReducedMotion updates the accessibility preference feed. A change
// renotifies every component's subscribers.
func (g *Governor) SetReducedMotion(v bool) {
	g.mu.Lock()
	changed := g.reducedMotion != v
	g.reducedMotion = v
	g.mu.Unlock()

	if changed {
		for _, name := range tier.Components() {
			g.notify(name)
		}
	}
}

// Decide computes the render decision for one component from current
// inputs, in priority order: reduced motion, then 3D support, then
// tier enablement, then sustained degradation. A tier decision is a
// ceiling, not a guarantee; live degradation overrides it.
func (g *Governor) Decide(component string) Decision {
	caps := g.detector.Capabilities()
	t := tier.Resolve(caps.Score)
	settings, _ := lod.For(component, t)

	d := Decision{Tier: t, Settings: settings}
	switch {
	case g.ReducedMotion():
		d.Reason = ReasonReducedMotion
	case !caps.CanRender3D:
		d.Reason = ReasonUnsupported
	case !lod.ShouldRender(component, t):
		d.Reason = ReasonDeviceInsufficient
	case g.monitor.Degraded(component):
		d.Reason = ReasonPerformance
	default:
		d.RenderRich = true
	}
	return d
}

// Subscribe registers a callback receiving decision updates per
// component and returns a cancel function. The callback also fires for
// monitor-driven changes; recovery only reaches it after the monitor's
// hysteresis confirms it, so decisions cannot oscillate on single good
// frames.
func (g *Governor) Subscribe(fn func(component string, d Decision)) (cancel func()) {
	g.mu.Lock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = fn
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		delete(g.subs, id)
		g.mu.Unlock()
	}
}

// onMonitorEvent reacts to confirmed degradation/recovery transitions.
func (g *Governor) onMonitorEvent(ev fpsmon.Event) {
	g.store.Record(metrics.TypeEvent, map[string]any{
		"component":  ev.Component,
		"kind":       eventKindString(ev.Kind),
		"averageFps": ev.AverageFPS,
		"durationMs": ev.Duration.Milliseconds(),
	})

	if ev.Component == fpsmon.ComponentGeneral {
		for _, name := range tier.Components() {
			g.notify(name)
		}
		return
	}
	g.notify(ev.Component)
}

// notify pushes the current decision for a component to subscribers and
// mirrors it into the metrics store.
func (g *Governor) notify(component string) {
	d := g.Decide(component)

	g.store.Record(metrics.TypeComponent, map[string]any{
		"component":  component,
		"renderRich": d.RenderRich,
		"reason":     string(d.Reason),
		"tier":       d.Tier.String(),
	})

	g.mu.Lock()
	subs := make([]func(string, Decision), 0, len(g.subs))
	for _, fn := range g.subs {
		subs = append(subs, fn)
	}
	g.mu.Unlock()

	for _, fn := range subs {
		fn(component, d)
	}
}

// recordSample mirrors aggregated FPS samples into the metrics store.
func (g *Governor) recordSample(s fpsmon.Sample) {
	g.store.Record(metrics.TypeFPS, map[string]any{
		"fps":     s.FPS,
		"average": s.Average,
	})
}

func eventKindString(k fpsmon.EventKind) string {
	if k == fpsmon.EventRecovered {
		return "recovered"
	}
	return "degraded"
}
