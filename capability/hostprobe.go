package capability

import "runtime"

// init registers the host probe on package import. It is the fallback
// when no GPU probe package is linked in.
func init() {
	RegisterProbe(ProbeHost, func() Probe {
		return &hostProbe{}
	})
}

// hostProbe reports CPU-only signals from the Go runtime. It never finds
// a 3D device, which makes it the right default for headless and
// server-rendering contexts: scoring degrades to conservative values
// instead of failing.
type hostProbe struct{}

// Name returns the probe identifier.
func (*hostProbe) Name() string { return ProbeHost }

// Probe reports the host signals available without a graphics stack.
func (*hostProbe) Probe() (DeviceInfo, error) {
	return DeviceInfo{
		GPUType:    GPUNone,
		APIVersion: 0,
		CPUCores:   runtime.NumCPU(),
	}, nil
}
