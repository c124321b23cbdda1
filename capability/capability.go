package capability

// DeviceClass is a coarse classification of the host device.
type DeviceClass int

const (
	// ClassDesktopHigh is a desktop with a discrete GPU.
	ClassDesktopHigh DeviceClass = iota
	// ClassDesktopLow is a desktop with an integrated or unknown GPU.
	ClassDesktopLow
	// ClassTablet is a tablet-sized low-power device.
	ClassTablet
	// ClassMobileHigh is a recent phone-sized device.
	ClassMobileHigh
	// ClassMobileLow is an older or constrained phone-sized device.
	ClassMobileLow
)

// String returns the wire-stable class name.
func (c DeviceClass) String() string {
	switch c {
	case ClassDesktopHigh:
		return "desktop-high"
	case ClassDesktopLow:
		return "desktop-low"
	case ClassTablet:
		return "tablet"
	case ClassMobileHigh:
		return "mobile-high"
	default:
		return "mobile-low"
	}
}

// GPUType describes the kind of GPU a probe found.
type GPUType int

const (
	// GPUNone means no usable 3D device was found.
	GPUNone GPUType = iota
	// GPUSoftware is a CPU-based software rasterizer.
	GPUSoftware
	// GPUIntegrated is an integrated (shared-memory) GPU.
	GPUIntegrated
	// GPUDiscrete is a discrete GPU.
	GPUDiscrete
	// GPUUnknown is a device the probe could not classify.
	GPUUnknown
)

// DeviceInfo is the raw probe output: the read-only device signals the
// scorer consumes. Zero values mean "signal unavailable".
type DeviceInfo struct {
	GPUName   string
	GPUVendor string
	GPUType   GPUType
	// APIVersion is the supported graphics API major version:
	// 0 no 3D support, 1 legacy, 2 modern.
	APIVersion int
	// MemoryMB is the device memory estimate in MiB (0 = unknown).
	MemoryMB int
	CPUCores int
	// ScreenW and ScreenH are the primary display dimensions in pixels.
	ScreenW, ScreenH int
	// LowPower flags devices the probe considers power-constrained
	// (integrated/mobile GPU, battery-first hardware).
	LowPower bool
}

// Capabilities is the immutable per-session capability snapshot.
// It is created once, lazily, and never mutated; re-detection only
// happens through Detector.Reset.
type Capabilities struct {
	Class        DeviceClass
	Score        int // 0..100
	CanRender3D  bool
	GPUVersion   int // graphics API major version: 0, 1 or 2
	GPUName      string
	MemoryMB     int
	CPUCores     int
	ScreenPixels int
}

// Scoring weights. The score is additive out of 100: device-class base,
// capped core and memory contributions, API version bonus, then
// resolution and low-power penalties, clamped to [0,100].
const (
	baseDesktopHigh = 30
	baseDesktopLow  = 24
	baseTablet      = 18
	baseMobileHigh  = 14
	baseMobileLow   = 8

	maxCoreScore   = 16 // 2 points per core, capped at 8 cores
	maxMemoryScore = 20 // 1 point per GiB, capped

	bonusModernAPI = 15
	bonusLegacyAPI = 8

	penaltyLowPower = 15
	penalty4K       = 10 // >= ~8.3 MP (4K and up)
	penaltyQHD      = 5  // >= ~4 MP

	// Render3DFloor is the minimum score at which 3D rendering is
	// permitted even when a graphics API is present.
	Render3DFloor = 20
)

// Approximate memory estimates per device class, used when the probe has
// no direct memory signal. Best-effort heuristic; spoofed or unusual
// hosts will misclassify and that is accepted.
var classMemoryMB = map[DeviceClass]int{
	ClassDesktopHigh: 16384,
	ClassDesktopLow:  8192,
	ClassTablet:      4096,
	ClassMobileHigh:  4096,
	ClassMobileLow:   2048,
}

// Classify derives the coarse device class from raw signals.
// Screen size separates phone/tablet form factors; GPU type separates
// desktop classes. The result is a heuristic, not a guarantee.
func Classify(info DeviceInfo) DeviceClass {
	pixels := info.ScreenW * info.ScreenH
	if pixels > 0 && pixels < 1_100_000 {
		if info.LowPower && info.CPUCores <= 4 {
			return ClassMobileLow
		}
		return ClassMobileHigh
	}
	if pixels > 0 && pixels < 2_100_000 && info.LowPower && info.GPUType != GPUDiscrete {
		return ClassTablet
	}
	if info.GPUType == GPUDiscrete {
		return ClassDesktopHigh
	}
	return ClassDesktopLow
}

// Score computes the additive 0..100 capability score for a device.
func Score(info DeviceInfo) int {
	class := Classify(info)

	score := 0
	switch class {
	case ClassDesktopHigh:
		score += baseDesktopHigh
	case ClassDesktopLow:
		score += baseDesktopLow
	case ClassTablet:
		score += baseTablet
	case ClassMobileHigh:
		score += baseMobileHigh
	default:
		score += baseMobileLow
	}

	cores := info.CPUCores
	if cores > 8 {
		cores = 8
	}
	score += 2 * cores

	mem := info.MemoryMB
	if mem <= 0 {
		mem = classMemoryMB[class]
	}
	memScore := mem / 1024
	if memScore > maxMemoryScore {
		memScore = maxMemoryScore
	}
	score += memScore

	switch info.APIVersion {
	case 2:
		score += bonusModernAPI
	case 1:
		score += bonusLegacyAPI
	}

	pixels := info.ScreenW * info.ScreenH
	switch {
	case pixels >= 8_200_000:
		score -= penalty4K
	case pixels >= 4_000_000:
		score -= penaltyQHD
	}

	if info.LowPower {
		score -= penaltyLowPower
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// evaluate builds the capability snapshot from raw probe output.
func evaluate(info DeviceInfo) Capabilities {
	class := Classify(info)
	score := Score(info)

	mem := info.MemoryMB
	if mem <= 0 {
		mem = classMemoryMB[class]
	}

	return Capabilities{
		Class:        class,
		Score:        score,
		CanRender3D:  info.APIVersion > 0 && score >= Render3DFloor,
		GPUVersion:   info.APIVersion,
		GPUName:      info.GPUName,
		MemoryMB:     mem,
		CPUCores:     info.CPUCores,
		ScreenPixels: info.ScreenW * info.ScreenH,
	}
}

// Conservative returns the fixed snapshot used when probing fails or no
// probe is available: a desktop-low-equivalent device with 3D disabled.
func Conservative() Capabilities {
	return Capabilities{
		Class:       ClassDesktopLow,
		Score:       30,
		CanRender3D: false,
		GPUVersion:  0,
		MemoryMB:    classMemoryMB[ClassDesktopLow],
	}
}
