package capability

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/governor/internal/logx"
)

// ErrNoProbe is returned internally when no probe is registered.
var ErrNoProbe = errors.New("capability: no probe available")

// Detector performs lazy, one-shot capability detection. The snapshot is
// computed on the first Capabilities call and cached for the session;
// Reset discards it so tests can force re-detection.
//
// Detector is safe for concurrent use.
type Detector struct {
	mu    sync.Mutex
	probe Probe
	caps  *Capabilities
}

// DetectorOption configures a Detector during creation.
type DetectorOption func(*Detector)

// WithProbe sets an explicit probe, bypassing the registry.
// Use this for dependency injection in tests.
func WithProbe(p Probe) DetectorOption {
	return func(d *Detector) {
		d.probe = p
	}
}

// NewDetector creates a Detector. Without options it uses the highest
// priority registered probe at first detection time.
func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Capabilities returns the session capability snapshot, detecting it on
// first call. Detection never propagates a failure: any probe error or
// panic yields the conservative snapshot (3D disabled).
func (d *Detector) Capabilities() Capabilities {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.caps == nil {
		caps := d.detect()
		d.caps = &caps
	}
	return *d.caps
}

// Detected reports whether the snapshot has been computed yet.
// Consumers can use this to render an initial "unknown" state without
// forcing detection on the first paint.
func (d *Detector) Detected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.caps != nil
}

// Reset discards the cached snapshot so the next Capabilities call
// re-detects. Intended for test harnesses.
func (d *Detector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.caps = nil
}

// detect runs the probe and scores the result. Called with mu held.
func (d *Detector) detect() Capabilities {
	probe := d.probe
	if probe == nil {
		probe = DefaultProbe()
	}

	info, err := safeProbe(probe)
	if err != nil {
		logx.Logger().Warn("capability: probe failed, using conservative defaults", "error", err)
		return Conservative()
	}

	caps := evaluate(info)
	logx.Logger().Info("capability: device detected",
		"class", caps.Class.String(),
		"score", caps.Score,
		"gpu", caps.GPUName,
		"render3d", caps.CanRender3D)
	return caps
}

// safeProbe invokes a probe, converting panics into errors so that a
// misbehaving graphics stack can never take down the render path.
func safeProbe(p Probe) (info DeviceInfo, err error) {
	if p == nil {
		return DeviceInfo{}, ErrNoProbe
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("capability: probe %q panicked: %v", p.Name(), r)
		}
	}()
	return p.Probe()
}
