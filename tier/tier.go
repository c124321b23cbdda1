package tier

// Tier is a discrete performance class derived from a capability score.
// Tiers are ordered: LowEnd < MidRange < HighEnd.
type Tier int

const (
	// LowEnd disables all heavy decorative components and forces the
	// 2D fallback rendering path.
	LowEnd Tier = iota

	// MidRange enables only the cheapest decorative components.
	MidRange

	// HighEnd enables every decorative component at full quality.
	HighEnd
)

// String returns the wire-stable tier name.
func (t Tier) String() string {
	switch t {
	case HighEnd:
		return "high-end"
	case MidRange:
		return "mid-range"
	default:
		return "low-end"
	}
}

// Decorative component names. These are the identifiers shared by the
// enablement matrix, the LOD tables, and the frame-rate monitor channels.
const (
	// ComponentCandles is the cheap ambient element (floating lights).
	ComponentCandles = "candles"
	// ComponentPortraits is the mid-cost element (animated wall portraits).
	ComponentPortraits = "portraits"
	// ComponentFlyer is the interactive element (the flying object).
	ComponentFlyer = "flyer"
)

// Components lists every known decorative component.
func Components() []string {
	return []string{ComponentCandles, ComponentPortraits, ComponentFlyer}
}

// Score band boundaries. Bands are contiguous and exhaustive: every
// integer score in [0,100] maps to exactly one tier.
const (
	// HighEndFloor is the lowest score resolving to HighEnd.
	HighEndFloor = 70
	// MidRangeFloor is the lowest score resolving to MidRange.
	MidRangeFloor = 40
)

// Resolve maps a capability score to its performance tier.
// Scores outside [0,100] are treated as clamped to the nearest band.
func Resolve(score int) Tier {
	switch {
	case score >= HighEndFloor:
		return HighEnd
	case score >= MidRangeFloor:
		return MidRange
	default:
		return LowEnd
	}
}

// Matrix maps a decorative component name to whether it is enabled.
// Enablement is monotonic by tier: anything enabled at a lower tier is
// also enabled at every higher tier.
type Matrix map[string]bool

// Enabled reports whether the named component is enabled.
// Unknown components are disabled.
func (m Matrix) Enabled(name string) bool {
	return m[name]
}

// MatrixFor returns the component-enablement matrix for a tier.
// The returned map is a fresh copy; callers may mutate it.
func MatrixFor(t Tier) Matrix {
	switch t {
	case HighEnd:
		return Matrix{
			ComponentCandles:   true,
			ComponentPortraits: true,
			ComponentFlyer:     true,
		}
	case MidRange:
		return Matrix{
			ComponentCandles:   true,
			ComponentPortraits: false,
			ComponentFlyer:     false,
		}
	default:
		return Matrix{
			ComponentCandles:   false,
			ComponentPortraits: false,
			ComponentFlyer:     false,
		}
	}
}

// Settings is the tier-wide rendering settings bundle. Quality levels are
// small integers (0 = off/minimal, higher = better) so that every field is
// monotonically non-decreasing from LowEnd to HighEnd.
type Settings struct {
	// ShadowQuality selects the shadow level: 0 off, 1 basic, 2 soft.
	ShadowQuality int
	// TextureQuality selects the texture resolution level: 0 low, 1 medium, 2 full.
	TextureQuality int
	// ParticleLevel selects the particle density level: 0 none, 1 sparse, 2 full.
	ParticleLevel int
	// MaxLights is the maximum number of dynamic lights.
	MaxLights int
	// Antialiasing enables multisampled rendering.
	Antialiasing bool
}

// SettingsFor returns the rendering settings bundle for a tier.
func SettingsFor(t Tier) Settings {
	switch t {
	case HighEnd:
		return Settings{
			ShadowQuality:  2,
			TextureQuality: 2,
			ParticleLevel:  2,
			MaxLights:      4,
			Antialiasing:   true,
		}
	case MidRange:
		return Settings{
			ShadowQuality:  1,
			TextureQuality: 1,
			ParticleLevel:  1,
			MaxLights:      2,
			Antialiasing:   false,
		}
	default:
		return Settings{
			ShadowQuality:  0,
			TextureQuality: 0,
			ParticleLevel:  0,
			MaxLights:      1,
			Antialiasing:   false,
		}
	}
}
