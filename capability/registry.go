package capability

import "sync"

// Probe inspects the host device and reports its raw signals.
// Probes must not panic across the interface; the Detector additionally
// guards against panics and treats them as probe failures.
type Probe interface {
	// Name returns the probe identifier (e.g., "wgpu", "host").
	Name() string

	// Probe performs the one-shot device inspection.
	Probe() (DeviceInfo, error)
}

// ProbeFactory creates a new probe instance.
type ProbeFactory func() Probe

// Probe name constants.
const (
	// ProbeWGPU is the GPU adapter probe (capability/wgpuprobe).
	ProbeWGPU = "wgpu"
	// ProbeHost is the CPU-only host probe, always registered.
	ProbeHost = "host"
)

var (
	registryMu sync.RWMutex
	probes     = make(map[string]ProbeFactory)
	// Priority order for probe selection (first available wins).
	// The GPU probe outranks the host probe when its package is imported.
	probePriority = []string{ProbeWGPU, ProbeHost}
)

// RegisterProbe registers a probe factory with the given name.
// This is typically called from init() functions in probe packages.
// If a probe with the same name is already registered, it is replaced.
func RegisterProbe(name string, factory ProbeFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	probes[name] = factory
}

// UnregisterProbe removes a probe from the registry.
// This is useful for testing.
func UnregisterProbe(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(probes, name)
}

// AvailableProbes returns the registered probe names.
func AvailableProbes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(probes))
	for name := range probes {
		names = append(names, name)
	}
	return names
}

// DefaultProbe returns the best available probe based on priority, or
// nil if none is registered.
func DefaultProbe() Probe {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range probePriority {
		if factory, ok := probes[name]; ok {
			if p := factory(); p != nil {
				return p
			}
		}
	}
	for _, factory := range probes {
		if p := factory(); p != nil {
			return p
		}
	}
	return nil
}
