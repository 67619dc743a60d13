//go:build arm64

package vector

import "golang.org/x/sys/cpu"

func detect() (DispatchLevel, int) {
	// ARM64 (AArch64) always has NEON (ASIMD), it's part of ARMv8-A.
	// SVE register length is implementation-defined and not reported by
	// x/sys/cpu, so SVE machines use the NEON width for now.
	if cpu.ARM64.HasASIMD {
		return DispatchNEON, 128
	}
	return DispatchScalar, scalarBits
}
