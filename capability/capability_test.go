package capability

import (
	"errors"
	"testing"
)

// fakeProbe is a test probe with canned output.
type fakeProbe struct {
	info  DeviceInfo
	err   error
	panic bool
	calls int
}

func (p *fakeProbe) Name() string { return "fake" }

func (p *fakeProbe) Probe() (DeviceInfo, error) {
	p.calls++
	if p.panic {
		panic("probe exploded")
	}
	return p.info, p.err
}

func desktopHighInfo() DeviceInfo {
	return DeviceInfo{
		GPUName:    "Test Discrete GPU",
		GPUType:    GPUDiscrete,
		APIVersion: 2,
		MemoryMB:   16384,
		CPUCores:   8,
		ScreenW:    1920,
		ScreenH:    1080,
	}
}

func TestScoreDesktopHigh(t *testing.T) {
	score := Score(desktopHighInfo())
	// 30 base + 16 cores + 16 memory + 15 modern API = 77
	if score != 77 {
		t.Errorf("expected score 77, got %d", score)
	}
}

func TestScoreIntegratedDesktop(t *testing.T) {
	info := DeviceInfo{
		GPUName:    "Test Integrated GPU",
		GPUType:    GPUIntegrated,
		APIVersion: 2,
		MemoryMB:   8192,
		CPUCores:   8,
		ScreenW:    1920,
		ScreenH:    1080,
		LowPower:   true,
	}
	score := Score(info)
	// 24 base + 16 cores + 8 memory + 15 API - 15 low power = 48
	if score != 48 {
		t.Errorf("expected score 48, got %d", score)
	}
	if Classify(info) != ClassDesktopLow {
		t.Errorf("expected desktop-low, got %s", Classify(info))
	}
}

func TestScoreLowMobile(t *testing.T) {
	info := DeviceInfo{
		GPUType:    GPUIntegrated,
		APIVersion: 1,
		CPUCores:   2,
		ScreenW:    640,
		ScreenH:    360,
		LowPower:   true,
	}
	if got := Classify(info); got != ClassMobileLow {
		t.Fatalf("expected mobile-low, got %s", got)
	}
	score := Score(info)
	// 8 base + 4 cores + 2 memory (class heuristic) + 8 legacy API - 15 = 7
	if score != 7 {
		t.Errorf("expected score 7, got %d", score)
	}
}

func TestScoreClamped(t *testing.T) {
	// Worst case stays at 0.
	worst := DeviceInfo{ScreenW: 640, ScreenH: 360, LowPower: true}
	if got := Score(worst); got < 0 {
		t.Errorf("score below 0: %d", got)
	}
	// Best case stays at or below 100.
	best := desktopHighInfo()
	best.MemoryMB = 1 << 20
	best.CPUCores = 64
	if got := Score(best); got > 100 {
		t.Errorf("score above 100: %d", got)
	}
}

func TestScoreResolutionPenalty(t *testing.T) {
	info := desktopHighInfo()
	base := Score(info)

	info.ScreenW, info.ScreenH = 2560, 1600 // ~4.1 MP
	qhd := Score(info)
	if qhd != base-5 {
		t.Errorf("expected QHD penalty of 5, got %d vs %d", qhd, base)
	}

	info.ScreenW, info.ScreenH = 3840, 2160 // ~8.3 MP
	uhd := Score(info)
	if uhd != base-10 {
		t.Errorf("expected 4K penalty of 10, got %d vs %d", uhd, base)
	}
}

func TestMemoryHeuristicFallback(t *testing.T) {
	with := desktopHighInfo()
	without := with
	without.MemoryMB = 0

	// 16 GiB heuristic for desktop-high matches the direct signal.
	if Score(with) != Score(without) {
		t.Errorf("heuristic memory differs: %d vs %d", Score(with), Score(without))
	}
}

func TestEvaluateRender3DFloor(t *testing.T) {
	// API present but score below the 3D floor: rendering stays off.
	info := DeviceInfo{
		GPUType:    GPUIntegrated,
		APIVersion: 1,
		CPUCores:   2,
		ScreenW:    640,
		ScreenH:    360,
		LowPower:   true,
	}
	caps := evaluate(info)
	if caps.Score >= Render3DFloor {
		t.Fatalf("test premise broken: score %d >= floor", caps.Score)
	}
	if caps.CanRender3D {
		t.Error("expected CanRender3D false below the 3D floor")
	}
}

func TestEvaluateNoAPI(t *testing.T) {
	info := desktopHighInfo()
	info.APIVersion = 0
	if caps := evaluate(info); caps.CanRender3D {
		t.Error("expected CanRender3D false without a graphics API")
	}
}

func TestDetectorCachesSnapshot(t *testing.T) {
	probe := &fakeProbe{info: desktopHighInfo()}
	d := NewDetector(WithProbe(probe))

	if d.Detected() {
		t.Error("expected no snapshot before first use")
	}

	first := d.Capabilities()
	second := d.Capabilities()
	if probe.calls != 1 {
		t.Errorf("expected 1 probe call, got %d", probe.calls)
	}
	if first != second {
		t.Error("snapshot changed between calls")
	}
	if !d.Detected() {
		t.Error("expected Detected after first use")
	}
}

func TestDetectorReset(t *testing.T) {
	probe := &fakeProbe{info: desktopHighInfo()}
	d := NewDetector(WithProbe(probe))

	_ = d.Capabilities()
	d.Reset()
	_ = d.Capabilities()
	if probe.calls != 2 {
		t.Errorf("expected re-detection after Reset, got %d calls", probe.calls)
	}
}

func TestDetectorProbeError(t *testing.T) {
	probe := &fakeProbe{err: errors.New("no adapter")}
	d := NewDetector(WithProbe(probe))

	caps := d.Capabilities()
	if caps.CanRender3D {
		t.Error("expected CanRender3D false after probe error")
	}
	if caps.Class != ClassDesktopLow {
		t.Errorf("expected conservative desktop-low class, got %s", caps.Class)
	}
}

// TestDetectorProbePanic verifies a panicking probe surfaces as
// conservative defaults, never as a panic in the caller.
func TestDetectorProbePanic(t *testing.T) {
	probe := &fakeProbe{panic: true}
	d := NewDetector(WithProbe(probe))

	caps := d.Capabilities()
	if caps.CanRender3D {
		t.Error("expected CanRender3D false after probe panic")
	}
}

func TestDetectorNoProbe(t *testing.T) {
	// Empty registry and no explicit probe: conservative defaults.
	d := NewDetector(WithProbe(nil))
	d.probe = nil

	// Force registry bypass by unregistering everything, then restore.
	saved := AvailableProbes()
	for _, name := range saved {
		UnregisterProbe(name)
	}
	defer RegisterProbe(ProbeHost, func() Probe { return &hostProbe{} })

	caps := d.Capabilities()
	if caps.CanRender3D {
		t.Error("expected CanRender3D false with no probe")
	}
}

func TestHostProbeRegistered(t *testing.T) {
	found := false
	for _, name := range AvailableProbes() {
		if name == ProbeHost {
			found = true
		}
	}
	if !found {
		t.Fatal("host probe not registered")
	}

	p := DefaultProbe()
	if p == nil {
		t.Fatal("DefaultProbe returned nil")
	}
	info, err := p.Probe()
	if err != nil {
		t.Fatalf("host probe failed: %v", err)
	}
	if info.APIVersion != 0 {
		t.Errorf("host probe should report no 3D API, got v%d", info.APIVersion)
	}
	if info.CPUCores < 1 {
		t.Errorf("expected at least 1 CPU core, got %d", info.CPUCores)
	}
}

func TestRegistryPriority(t *testing.T) {
	RegisterProbe(ProbeWGPU, func() Probe {
		return &fakeProbe{info: desktopHighInfo()}
	})
	defer UnregisterProbe(ProbeWGPU)

	p := DefaultProbe()
	if p == nil {
		t.Fatal("DefaultProbe returned nil")
	}
	if _, ok := p.(*fakeProbe); !ok {
		t.Errorf("expected the wgpu-named probe to outrank host, got %T", p)
	}
}

func TestDeviceClassString(t *testing.T) {
	tests := []struct {
		class DeviceClass
		want  string
	}{
		{ClassDesktopHigh, "desktop-high"},
		{ClassDesktopLow, "desktop-low"},
		{ClassTablet, "tablet"},
		{ClassMobileHigh, "mobile-high"},
		{ClassMobileLow, "mobile-low"},
	}
	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("DeviceClass(%d).String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}
