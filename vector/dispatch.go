// Copyright 2025 go-vector Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

// DispatchLevel represents the SIMD instruction set the platform offers.
// It only decides the width of ShapeMax; all operations in this package
// are portable Go.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// scalarBits is the register width used when no SIMD level is in effect.
// It is wide enough for at least two lanes of every kind.
const scalarBits = 128

// detectedLevel and detectedBits hold what the CPU offers.
// Set by detect() in dispatch_*.go files.
var (
	detectedLevel DispatchLevel
	detectedBits  int
)

// currentLevel and currentBits are the values in effect after Configure.
var (
	currentLevel DispatchLevel
	currentBits  int
)

// CurrentLevel returns the SIMD level in effect.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the level in effect,
// for example "avx2", "neon" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// DetectedLevel returns the SIMD level reported by the CPU, regardless of
// configuration.
func DetectedLevel() DispatchLevel {
	return detectedLevel
}

// MaxBits returns the width of ShapeMax in bits.
func MaxBits() int {
	return currentBits
}

func init() {
	detectedLevel, detectedBits = detect()
	currentLevel, currentBits = detectedLevel, detectedBits
	configureFromEnv()
}
