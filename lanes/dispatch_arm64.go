//go:build arm64

package lanes

import "golang.org/x/sys/cpu"

func init() {
	// ARM64 (AArch64) always has NEON (ASIMD) available as part of ARMv8-A.
	// No NEON kernels are registered yet, so every operation falls back;
	// the capability is still reported for diagnostics.
	detected[CapNEON] = cpu.ARM64.HasASIMD
	applyConfig()
}
