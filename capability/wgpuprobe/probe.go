package wgpuprobe

import (
	"fmt"
	"runtime"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/governor/capability"
)

// init registers the GPU probe on package import.
func init() {
	capability.RegisterProbe(capability.ProbeWGPU, func() capability.Probe {
		return &gpuProbe{}
	})
}

// gpuProbe inspects the GPU through gogpu/wgpu: it creates an instance,
// requests the preferred adapter, and reads the adapter info. No device
// is created; the probe releases the adapter before returning.
type gpuProbe struct{}

// Name returns the probe identifier.
func (*gpuProbe) Name() string { return capability.ProbeWGPU }

// Probe performs the one-shot GPU inspection. Failure to obtain an
// adapter is reported as an error so the detector can fall back to
// conservative defaults; it is never a panic.
func (*gpuProbe) Probe() (capability.DeviceInfo, error) {
	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return capability.DeviceInfo{}, fmt.Errorf("wgpuprobe: no adapter: %w", err)
	}
	defer func() {
		_ = core.AdapterDrop(adapterID)
	}()

	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return capability.DeviceInfo{}, fmt.Errorf("wgpuprobe: adapter info: %w", err)
	}

	gpuType := capability.GPUUnknown
	lowPower := false
	switch info.DeviceType {
	case gputypes.DeviceTypeDiscreteGPU:
		gpuType = capability.GPUDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		gpuType = capability.GPUIntegrated
		lowPower = true
	default:
		// CPU rasterizers and virtual adapters count as software.
		gpuType = capability.GPUSoftware
		lowPower = true
	}

	return capability.DeviceInfo{
		GPUName:   info.Name,
		GPUVendor: fmt.Sprint(info.Vendor),
		GPUType:   gpuType,
		// A working wgpu adapter implies the modern API generation.
		APIVersion: 2,
		CPUCores:   runtime.NumCPU(),
		LowPower:   lowPower,
	}, nil
}
