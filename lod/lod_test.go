package lod

import (
	"testing"

	"github.com/gogpu/governor/tier"
)

var tiers = []tier.Tier{tier.LowEnd, tier.MidRange, tier.HighEnd}

func TestForUnknownComponent(t *testing.T) {
	s, ok := For("nonexistent", tier.HighEnd)
	if ok {
		t.Error("expected ok=false for unknown component")
	}
	if s != (Settings{}) {
		t.Errorf("expected zero settings for unknown component, got %+v", s)
	}
}

func TestForKnownComponents(t *testing.T) {
	for _, name := range tier.Components() {
		for _, tr := range tiers {
			if _, ok := For(name, tr); !ok {
				t.Errorf("For(%s, %s) unexpectedly missing", name, tr)
			}
		}
	}
}

// TestSettingsMonotonic verifies every numeric LOD field is
// non-decreasing from low-end through high-end for every component.
func TestSettingsMonotonic(t *testing.T) {
	for _, name := range tier.Components() {
		var prev Settings
		for i, tr := range tiers {
			s, ok := For(name, tr)
			if !ok {
				t.Fatalf("For(%s, %s) missing", name, tr)
			}
			if i > 0 {
				if s.InstanceCount < prev.InstanceCount {
					t.Errorf("%s: InstanceCount decreased at %s", name, tr)
				}
				if s.GeometryDetail < prev.GeometryDetail {
					t.Errorf("%s: GeometryDetail decreased at %s", name, tr)
				}
				if s.ShadowMapSize < prev.ShadowMapSize {
					t.Errorf("%s: ShadowMapSize decreased at %s", name, tr)
				}
				if s.AnimationFidelity < prev.AnimationFidelity {
					t.Errorf("%s: AnimationFidelity decreased at %s", name, tr)
				}
				if prev.ShadowsEnabled && !s.ShadowsEnabled {
					t.Errorf("%s: shadows disabled at %s but enabled below", name, tr)
				}
			}
			prev = s
		}
	}
}

func TestSettingsRanges(t *testing.T) {
	for _, name := range tier.Components() {
		for _, tr := range tiers {
			s, _ := For(name, tr)
			if s.GeometryDetail < 0 || s.GeometryDetail > 1 {
				t.Errorf("%s/%s: GeometryDetail %f out of [0,1]", name, tr, s.GeometryDetail)
			}
			if s.AnimationFidelity < 0 || s.AnimationFidelity > 1 {
				t.Errorf("%s/%s: AnimationFidelity %f out of [0,1]", name, tr, s.AnimationFidelity)
			}
			if s.ShadowsEnabled && s.ShadowMapSize <= 0 {
				t.Errorf("%s/%s: shadows enabled with no shadow map", name, tr)
			}
		}
	}
}

// TestShouldRenderConsistent verifies the predicate agrees with the
// enablement matrix and zero instance counts.
func TestShouldRenderConsistent(t *testing.T) {
	for _, name := range tier.Components() {
		for _, tr := range tiers {
			should := ShouldRender(name, tr)
			if should && !tier.MatrixFor(tr).Enabled(name) {
				t.Errorf("%s renderable at %s but disabled in matrix", name, tr)
			}
			if s, _ := For(name, tr); should && s.InstanceCount == 0 {
				t.Errorf("%s renderable at %s with zero instances", name, tr)
			}
		}
	}
}

func TestShouldRenderScenarios(t *testing.T) {
	// High-end: everything renders, shadows on.
	for _, name := range tier.Components() {
		if !ShouldRender(name, tier.HighEnd) {
			t.Errorf("expected %s renderable at high-end", name)
		}
		s, _ := For(name, tier.HighEnd)
		if !s.ShadowsEnabled {
			t.Errorf("expected shadows for %s at high-end", name)
		}
	}

	// Mid-range: only the cheapest component.
	if !ShouldRender(tier.ComponentCandles, tier.MidRange) {
		t.Error("expected candles renderable at mid-range")
	}
	if ShouldRender(tier.ComponentPortraits, tier.MidRange) {
		t.Error("expected portraits not renderable at mid-range")
	}

	// Low-end: nothing.
	for _, name := range tier.Components() {
		if ShouldRender(name, tier.LowEnd) {
			t.Errorf("expected %s not renderable at low-end", name)
		}
	}

	if ShouldRender("nonexistent", tier.HighEnd) {
		t.Error("unknown component should never render")
	}
}

func TestMergePrecedence(t *testing.T) {
	base, _ := For(tier.ComponentCandles, tier.HighEnd)

	// Empty override keeps tier defaults.
	if got := Merge(base, Override{}); got != base {
		t.Errorf("empty override changed settings: %+v != %+v", got, base)
	}

	count := 5
	detail := 0.25
	shadows := false
	got := Merge(base, Override{
		InstanceCount:  &count,
		GeometryDetail: &detail,
		ShadowsEnabled: &shadows,
	})
	if got.InstanceCount != 5 {
		t.Errorf("expected overridden InstanceCount 5, got %d", got.InstanceCount)
	}
	if got.GeometryDetail != 0.25 {
		t.Errorf("expected overridden GeometryDetail 0.25, got %f", got.GeometryDetail)
	}
	if got.ShadowsEnabled {
		t.Error("expected overridden ShadowsEnabled false")
	}
	// Untouched fields keep tier defaults.
	if got.ShadowMapSize != base.ShadowMapSize {
		t.Errorf("expected ShadowMapSize %d preserved, got %d", base.ShadowMapSize, got.ShadowMapSize)
	}
	if got.AnimationFidelity != base.AnimationFidelity {
		t.Error("expected AnimationFidelity preserved")
	}
}
