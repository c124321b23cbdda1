package governor

import (
	"github.com/gogpu/governor/capability"
	"github.com/gogpu/governor/fpsmon"
	"github.com/gogpu/governor/metrics"
)

// Option configures a Governor during creation.
// Use functional options to inject collaborators:
//
//	// Defaults: registry probe, default thresholds, in-memory metrics
//	g := governor.New()
//
//	// Custom detector (dependency injection)
//	g := governor.New(governor.WithDetector(det))
type Option func(*options)

// options holds optional configuration for Governor creation.
type options struct {
	detector    *capability.Detector
	monitor     *fpsmon.Monitor
	monitorOpts []fpsmon.Option
	store       *metrics.Store
}

// defaultOptions returns the default governor options.
func defaultOptions() options {
	return options{}
}

// WithDetector sets a custom capability detector.
func WithDetector(d *capability.Detector) Option {
	return func(o *options) {
		o.detector = d
	}
}

// WithMonitor sets a fully constructed frame-rate monitor, replacing
// the default component thresholds. The governor still subscribes to it
// for decision updates.
func WithMonitor(m *fpsmon.Monitor) Option {
	return func(o *options) {
		o.monitor = m
	}
}

// WithMonitorOptions appends options to the default monitor
// construction (ignored when WithMonitor is used). Use this to change
// the clock, cadence, window, sustain period, or thresholds while
// keeping the governor-managed wiring.
func WithMonitorOptions(opts ...fpsmon.Option) Option {
	return func(o *options) {
		o.monitorOpts = append(o.monitorOpts, opts...)
	}
}

// WithMetrics sets a custom metrics store.
func WithMetrics(s *metrics.Store) Option {
	return func(o *options) {
		o.store = s
	}
}
