package lanes

import (
	"log/slog"
	"strings"
)

// Capability names a CPU feature that gates an accelerated kernel.
type Capability uint8

const (
	CapSSE2 Capability = iota
	CapSSE41
	CapAVX
	CapAVX2
	CapAVX512
	CapNEON

	numCapabilities
)

var capabilityNames = [numCapabilities]string{
	CapSSE2:   "sse2",
	CapSSE41:  "sse4.1",
	CapAVX:    "avx",
	CapAVX2:   "avx2",
	CapAVX512: "avx512",
	CapNEON:   "neon",
}

// String returns the lower-case feature name.
func (c Capability) String() string {
	if c >= numCapabilities {
		return "unknown"
	}
	return capabilityNames[c]
}

// ParseCapability parses a feature name as returned by Capability.String.
func ParseCapability(s string) (Capability, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range capabilityNames {
		if name == s {
			return Capability(c), true
		}
	}
	return 0, false
}

// Capabilities returns every known capability in declaration order.
func Capabilities() []Capability {
	caps := make([]Capability, numCapabilities)
	for i := range caps {
		caps[i] = Capability(i)
	}
	return caps
}

// detected holds what the hardware reports, before configuration masks it.
// available is what the oracle answers. Both are written only during init.
var (
	detected  [numCapabilities]bool
	available [numCapabilities]bool
)

// Has reports whether capability c may be used on this processor.
func Has(c Capability) bool {
	return c < numCapabilities && available[c]
}

// Detected reports whether the hardware has c, ignoring LANES_NO_SIMD and
// LANES_DISABLE.
func Detected(c Capability) bool {
	return c < numCapabilities && detected[c]
}

// Available returns the capabilities the oracle reports as present.
func Available() []Capability {
	var caps []Capability
	for c, ok := range available {
		if ok {
			caps = append(caps, Capability(c))
		}
	}
	return caps
}

// applyConfig copies detected into available, honoring LANES_NO_SIMD and
// LANES_DISABLE, and derives the dispatch level. Called from the per-arch init.
func applyConfig() {
	if NoSimdEnv() {
		available = [numCapabilities]bool{}
		logger().Debug("lanes: accelerated kernels disabled", slog.String("env", "LANES_NO_SIMD"))
		setScalarMode()
		return
	}
	available = detected
	disabled, unknown := disabledEnv()
	for _, c := range disabled {
		available[c] = false
		logger().Debug("lanes: capability masked", slog.String("capability", c.String()))
	}
	for _, name := range unknown {
		logger().Warn("lanes: ignoring unknown capability in LANES_DISABLE", slog.String("name", name))
	}
	levelFromCapabilities()
}
