// Package capability scores the host device and classifies it for
// adaptive rendering decisions.
//
// Detection is lazy and one-shot: the first Capabilities call runs the
// best available probe, computes an additive 0..100 score from weighted
// signal bands (device class, CPU cores, memory estimate, graphics API
// version, screen resolution, low-power flag), and caches the immutable
// snapshot for the session.
//
// # Probe Registration
//
// Probes are registered via init() functions and selected by priority.
// The CPU-only host probe is always available; the GPU adapter probe is
// opt-in via blank import:
//
//	import _ "github.com/gogpu/governor/capability/wgpuprobe"
//
// Probing never propagates a failure. A missing, failing, or panicking
// probe degrades to a conservative desktop-low snapshot with 3D
// rendering disabled, which is also the correct behavior for headless
// (server-rendering) contexts.
package capability
