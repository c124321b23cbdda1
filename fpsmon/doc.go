// Package fpsmon measures real frame rate and detects sustained
// degradation and recovery with per-component hysteresis.
//
// The host render loop calls Frame once per displayed frame. A sampling
// loop (default 1 Hz) divides the frame count by elapsed wall-clock time
// to produce an instantaneous FPS value and a rolling windowed average.
// Each monitored component type has a minimum-FPS threshold; only an
// unbroken run of sub-threshold samples lasting the full sustain period
// (default 5 s) confirms degradation, and a single above-threshold sample
// resets the run. Recovery is symmetric. Confirmed transitions are
// delivered as edge-triggered events to subscribers, exactly once per
// entry.
package fpsmon
