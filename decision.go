package governor

import (
	"github.com/gogpu/governor/lod"
	"github.com/gogpu/governor/tier"
)

// Reason explains a fallback decision. The string values are wire-stable
// codes consumed by telemetry and fallback UI messaging.
type Reason string

const (
	// ReasonNone means rich rendering was granted.
	ReasonNone Reason = ""
	// ReasonReducedMotion means the user prefers reduced motion;
	// accessibility always wins.
	ReasonReducedMotion Reason = "reduced-motion"
	// ReasonUnsupported means the device has no usable 3D support.
	ReasonUnsupported Reason = "webgl-unsupported"
	// ReasonDeviceInsufficient means the component is disabled at the
	// resolved tier.
	ReasonDeviceInsufficient Reason = "device-insufficient"
	// ReasonPerformance means sustained frame-rate degradation is
	// currently confirmed for the component.
	ReasonPerformance Reason = "performance"
)

// Decision is the single verdict a decorative component consumes:
// render the rich 3D version at the given LOD settings, or fall back.
type Decision struct {
	// RenderRich is true when the component may render its 3D form.
	RenderRich bool
	// Reason is set when RenderRich is false.
	Reason Reason
	// Tier is the resolved performance tier.
	Tier tier.Tier
	// Settings holds the component's LOD knobs for the tier. Zero when
	// the component is unknown.
	Settings lod.Settings
}
