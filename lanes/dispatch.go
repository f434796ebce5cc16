package lanes

import (
	"os"
	"strconv"
	"strings"
	"unsafe"
)

// DispatchLevel is the widest accelerated tier available on this machine.
type DispatchLevel int

const (
	// DispatchScalar indicates no accelerated kernels; every operation falls back.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates the x86-64 baseline. No kernels target it directly.
	DispatchSSE2

	// DispatchAVX indicates VEX-encoded 128-bit integer and 256-bit float kernels.
	DispatchAVX

	// DispatchAVX2 indicates 256-bit integer kernels.
	DispatchAVX2

	// DispatchAVX512 indicates 512-bit kernels and 64-bit integer min/max.
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit). Detected but has no kernels.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX:
		return "avx"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the dispatch level in effect after configuration.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the widest register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current level.
func CurrentName() string {
	return currentLevel.String()
}

// NativeLanes returns the number of T lanes in the widest register of the
// current level, i.e. the lane count whose shape is served by the widest
// available kernels.
//
// For example, with AVX2 (32 bytes):
//   - float32: 8 lanes
//   - float64: 4 lanes
//   - int8: 32 lanes
func NativeLanes[T Lanes]() int {
	var dummy T
	return currentWidth / int(unsafe.Sizeof(dummy))
}

// NoSimdEnv checks if the LANES_NO_SIMD environment variable is set.
// When set, every capability is reported absent and all operations take the
// fallback path regardless of the CPU.
func NoSimdEnv() bool {
	val := os.Getenv("LANES_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// disabledEnv parses LANES_DISABLE, a comma-separated list of capability
// names to mask out. Unknown names are returned separately.
func disabledEnv() (disabled []Capability, unknown []string) {
	val := os.Getenv("LANES_DISABLE")
	if val == "" {
		return nil, nil
	}
	for _, name := range strings.Split(val, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if c, ok := ParseCapability(name); ok {
			disabled = append(disabled, c)
		} else {
			unknown = append(unknown, name)
		}
	}
	return disabled, unknown
}

// setScalarMode forces the fallback path for everything.
func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte registers even in scalar mode for consistency
}

// levelFromCapabilities derives the dispatch level from the oracle.
func levelFromCapabilities() {
	switch {
	case Has(CapAVX512):
		currentLevel, currentWidth = DispatchAVX512, 64
	case Has(CapAVX2):
		currentLevel, currentWidth = DispatchAVX2, 32
	case Has(CapAVX):
		currentLevel, currentWidth = DispatchAVX, 32
	case Has(CapSSE2):
		currentLevel, currentWidth = DispatchSSE2, 16
	case Has(CapNEON):
		currentLevel, currentWidth = DispatchNEON, 16
	default:
		setScalarMode()
	}
}
