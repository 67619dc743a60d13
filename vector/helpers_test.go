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

import "testing"

// sample returns n lane values seed+1, seed+2, ... wrapped to T.
func sample[T Elem](n, seed int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(seed + i + 1)
	}
	return out
}

// kindTest holds one instantiation of a generic test per element kind.
type kindTest struct {
	i8, i16, i32, i64, f32, f64 func(t *testing.T, s Species)
}

func newKindTest(
	i8, i16, i32, i64, f32, f64 func(t *testing.T, s Species),
) kindTest {
	return kindTest{i8, i16, i32, i64, f32, f64}
}

// run calls the instantiation matching the kind of s.
func (kt kindTest) run(t *testing.T, s Species) {
	t.Helper()
	switch s.Kind() {
	case Int8:
		kt.i8(t, s)
	case Int16:
		kt.i16(t, s)
	case Int32:
		kt.i32(t, s)
	case Int64:
		kt.i64(t, s)
	case Float32:
		kt.f32(t, s)
	case Float64:
		kt.f64(t, s)
	default:
		t.Fatalf("invalid species %v", s)
	}
}

// forCatalog runs kt for every species as a subtest.
func forCatalog(t *testing.T, kt kindTest) {
	t.Helper()
	for _, s := range Catalog() {
		t.Run(s.String(), func(t *testing.T) {
			kt.run(t, s)
		})
	}
}

// loadSample loads a vector of s with sample values.
func loadSample(t *testing.T, s Species, seed int) Vector {
	t.Helper()
	bits := make([]uint64, s.LaneCount())
	for i := range bits {
		bits[i] = uint64(seed + i + 1)
	}
	switch s.Kind() {
	case Float32:
		return mustFromArray(t, s, sample[float32](s.LaneCount(), seed))
	case Float64:
		return mustFromArray(t, s, sample[float64](s.LaneCount(), seed))
	default:
		return fromBits(s, bits)
	}
}

func mustFromArray[T Elem](t *testing.T, s Species, src []T) Vec[T] {
	t.Helper()
	v, err := FromArray(s, src, 0)
	if err != nil {
		t.Fatalf("FromArray(%v): %v", s, err)
	}
	return v
}

// restoreConfig resets the ShapeMax width and level after the test.
func restoreConfig(t *testing.T) {
	t.Helper()
	lvl, bits, l := currentLevel, currentBits, logger
	t.Cleanup(func() {
		currentLevel, currentBits, logger = lvl, bits, l
	})
}
