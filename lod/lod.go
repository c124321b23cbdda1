package lod

import "github.com/gogpu/governor/tier"

// Settings holds the per-component quality knobs selected for a tier.
// Every numeric field is monotonically non-decreasing from LowEnd to
// HighEnd for a given component.
type Settings struct {
	// InstanceCount is the number of instances (or particles) to spawn.
	// Zero means the component must not be rendered at all.
	InstanceCount int
	// GeometryDetail scales mesh complexity in [0,1].
	GeometryDetail float64
	// ShadowsEnabled turns shadow casting on for this component.
	ShadowsEnabled bool
	// ShadowMapSize is the shadow map edge length in texels (0 when
	// shadows are disabled).
	ShadowMapSize int
	// AnimationFidelity scales animation update quality in [0,1].
	AnimationFidelity float64
	// Interactive enables pointer interaction with the component.
	Interactive bool
}

// table holds the authoritative per-component LOD values, indexed by tier
// (LowEnd, MidRange, HighEnd). Values must stay monotonic per field; the
// property is enforced by tests.
var table = map[string][3]Settings{
	tier.ComponentCandles: {
		{InstanceCount: 0},
		{InstanceCount: 12, GeometryDetail: 0.5, AnimationFidelity: 0.6},
		{InstanceCount: 20, GeometryDetail: 1.0, ShadowsEnabled: true, ShadowMapSize: 1024, AnimationFidelity: 1.0, Interactive: true},
	},
	tier.ComponentPortraits: {
		{InstanceCount: 0},
		{InstanceCount: 4, GeometryDetail: 0.5, AnimationFidelity: 0.5},
		{InstanceCount: 6, GeometryDetail: 1.0, ShadowsEnabled: true, ShadowMapSize: 2048, AnimationFidelity: 1.0, Interactive: true},
	},
	tier.ComponentFlyer: {
		{InstanceCount: 0},
		{InstanceCount: 1, GeometryDetail: 0.5, AnimationFidelity: 0.6, Interactive: true},
		{InstanceCount: 1, GeometryDetail: 1.0, ShadowsEnabled: true, ShadowMapSize: 1024, AnimationFidelity: 1.0, Interactive: true},
	},
}

// For returns the LOD settings for a component at a tier.
// ok is false for unknown component names; a zero Settings is returned in
// that case and the caller must treat it as "do not render".
func For(component string, t tier.Tier) (s Settings, ok bool) {
	rows, ok := table[component]
	if !ok {
		return Settings{}, false
	}
	idx := int(t)
	if idx < 0 {
		idx = 0
	}
	if idx > int(tier.HighEnd) {
		idx = int(tier.HighEnd)
	}
	return rows[idx], true
}

// ShouldRender reports whether a component may be instantiated at the
// given tier. It is the single authority consulted before creating a
// decorative object: false when the component is unknown, disabled in the
// tier's enablement matrix, or resolved to a zero instance count.
func ShouldRender(component string, t tier.Tier) bool {
	if !tier.MatrixFor(t).Enabled(component) {
		return false
	}
	s, ok := For(component, t)
	return ok && s.InstanceCount > 0
}

// Override holds optional per-field overrides applied on top of tier
// defaults. Nil fields keep the tier value.
type Override struct {
	InstanceCount     *int
	GeometryDetail    *float64
	ShadowsEnabled    *bool
	ShadowMapSize     *int
	AnimationFidelity *float64
	Interactive       *bool
}

// Merge applies an override to a base Settings value.
// Precedence, highest first: explicit override field > tier default
// (the base argument) > zero value. This is the single merge point for
// partial configuration; callers must not splice fields themselves.
func Merge(base Settings, o Override) Settings {
	out := base
	if o.InstanceCount != nil {
		out.InstanceCount = *o.InstanceCount
	}
	if o.GeometryDetail != nil {
		out.GeometryDetail = *o.GeometryDetail
	}
	if o.ShadowsEnabled != nil {
		out.ShadowsEnabled = *o.ShadowsEnabled
	}
	if o.ShadowMapSize != nil {
		out.ShadowMapSize = *o.ShadowMapSize
	}
	if o.AnimationFidelity != nil {
		out.AnimationFidelity = *o.AnimationFidelity
	}
	if o.Interactive != nil {
		out.Interactive = *o.Interactive
	}
	return out
}
