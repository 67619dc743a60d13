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

import "fmt"

// Mask selects lanes for masked loads and stores. A Mask belongs to exactly
// one species and always has that species' lane count.
//
// Mask instances should not be created directly; use MaskFromValues,
// MaskFromArray, MaskAllTrue, MaskFirstN or MaskIndexInRange.
type Mask struct {
	species Species
	// bits[i] is true if lane i is active.
	bits []bool
}

// MaskFromValues creates a mask from exactly s.LaneCount() booleans.
func MaskFromValues(s Species, bits ...bool) (Mask, error) {
	if !s.Valid() {
		return Mask{}, shapeMismatch("invalid species")
	}
	if len(bits) != s.LaneCount() {
		return Mask{}, shapeMismatch("%d mask bits for species %v with %d lanes", len(bits), s, s.LaneCount())
	}
	m := Mask{species: s, bits: make([]bool, len(bits))}
	copy(m.bits, bits)
	return m, nil
}

// MaskFromArray creates a mask from s.LaneCount() booleans of bits starting
// at offset.
func MaskFromArray(s Species, bits []bool, offset int) (Mask, error) {
	if !s.Valid() {
		return Mask{}, shapeMismatch("invalid species")
	}
	if err := checkRange(offset, s.LaneCount(), len(bits)); err != nil {
		return Mask{}, err
	}
	return MaskFromValues(s, bits[offset:offset+s.LaneCount()]...)
}

// MaskAllTrue returns the mask with every lane of s active.
func MaskAllTrue(s Species) Mask {
	return MaskFirstN(s, s.LaneCount())
}

// MaskFirstN returns the mask with the first n lanes of s active. n is
// clamped to [0, s.LaneCount()].
//
// This is useful for handling the tail of an array whose length is not a
// multiple of the lane count.
func MaskFirstN(s Species, n int) Mask {
	lanes := s.LaneCount()
	n = max(0, min(n, lanes))
	bits := make([]bool, lanes)
	for i := 0; i < n; i++ {
		bits[i] = true
	}
	return Mask{species: s, bits: bits}
}

// MaskIndexInRange returns the mask with lane i active iff
// 0 <= offset+i < limit.
func MaskIndexInRange(s Species, offset, limit int) Mask {
	bits := make([]bool, s.LaneCount())
	for i := range bits {
		idx := offset + i
		bits[i] = idx >= 0 && idx < limit
	}
	return Mask{species: s, bits: bits}
}

// Species returns the species the mask belongs to.
func (m Mask) Species() Species {
	return m.species
}

// Lanes returns the number of lanes in the mask.
func (m Mask) Lanes() int {
	return len(m.bits)
}

// Lane returns whether lane i is active. Out-of-range lanes are inactive.
func (m Mask) Lane(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// Not returns the complement of m.
func (m Mask) Not() Mask {
	bits := make([]bool, len(m.bits))
	for i, bit := range m.bits {
		bits[i] = !bit
	}
	return Mask{species: m.species, bits: bits}
}

// ToArray returns a copy of the mask bits.
func (m Mask) ToArray() []bool {
	out := make([]bool, len(m.bits))
	copy(out, m.bits)
	return out
}

// IntoArray writes the mask bits to dst starting at offset.
func (m Mask) IntoArray(dst []bool, offset int) error {
	if err := checkRange(offset, len(m.bits), len(dst)); err != nil {
		return err
	}
	copy(dst[offset:], m.bits)
	return nil
}

// String formats m as its species followed by its bits.
func (m Mask) String() string {
	return fmt.Sprintf("mask(%v)%v", m.species, m.bits)
}

// check verifies that m belongs to species s.
func (m Mask) check(s Species) error {
	if m.species != s || len(m.bits) != s.LaneCount() {
		return shapeMismatch("mask of %v used with species %v", m.species, s)
	}
	return nil
}
