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

// This file moves lanes between vectors and native Go slices.
//
// Unmasked operations require the whole lane range to be in bounds. Masked
// operations only require the active lanes to be in bounds and never touch
// the slots of inactive lanes.

// FromArray loads s.LaneCount() contiguous elements of src starting at
// offset.
func FromArray[T Elem](s Species, src []T, offset int) (Vec[T], error) {
	if err := checkKind[T](s); err != nil {
		return Vec[T]{}, err
	}
	n := s.LaneCount()
	if err := checkRange(offset, n, len(src)); err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, n)
	copy(data, src[offset:offset+n])
	return Vec[T]{species: s, data: data}, nil
}

// FromArrayMasked loads src[offset+i] into lane i where mask is active.
// Inactive lanes are zero.
func FromArrayMasked[T Elem](s Species, src []T, offset int, mask Mask) (Vec[T], error) {
	if err := checkKind[T](s); err != nil {
		return Vec[T]{}, err
	}
	if err := mask.check(s); err != nil {
		return Vec[T]{}, err
	}
	if err := checkMaskedRange(mask, offset, len(src)); err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, s.LaneCount())
	for i, bit := range mask.bits {
		if bit {
			data[i] = src[offset+i]
		}
		// else: leave as zero value
	}
	return Vec[T]{species: s, data: data}, nil
}

// IntoArray stores all lanes of v to dst starting at offset.
func (v Vec[T]) IntoArray(dst []T, offset int) error {
	if err := checkRange(offset, len(v.data), len(dst)); err != nil {
		return err
	}
	copy(dst[offset:], v.data)
	return nil
}

// IntoArrayMasked stores lane i of v to dst[offset+i] where mask is active.
// Unlike some SIMD implementations of masked stores, this explicitly
// preserves existing values in dst where mask is inactive.
func (v Vec[T]) IntoArrayMasked(dst []T, offset int, mask Mask) error {
	if err := mask.check(v.species); err != nil {
		return err
	}
	if err := checkMaskedRange(mask, offset, len(dst)); err != nil {
		return err
	}
	for i, bit := range mask.bits {
		if bit {
			dst[offset+i] = v.data[i]
		}
		// else: dst unchanged (the "blend" part)
	}
	return nil
}

// FromBoolArray loads s.LaneCount() booleans as an int8 vector, true as 1
// and false as 0.
func FromBoolArray(s Species, src []bool, offset int) (Vec[int8], error) {
	if err := checkKind[int8](s); err != nil {
		return Vec[int8]{}, err
	}
	n := s.LaneCount()
	if err := checkRange(offset, n, len(src)); err != nil {
		return Vec[int8]{}, err
	}
	data := make([]int8, n)
	for i, b := range src[offset : offset+n] {
		if b {
			data[i] = 1
		}
	}
	return Vec[int8]{species: s, data: data}, nil
}

// IntoBoolArray stores the lowest bit of each lane of v to dst starting at
// offset.
func IntoBoolArray(v Vec[int8], dst []bool, offset int) error {
	if err := checkRange(offset, len(v.data), len(dst)); err != nil {
		return err
	}
	for i, x := range v.data {
		dst[offset+i] = x&1 != 0
	}
	return nil
}

// LoadAll splits src into consecutive vectors of species s. A trailing
// partial vector is loaded with MaskFirstN, so its extra lanes are zero.
func LoadAll[T Elem](s Species, src []T) ([]Vector, error) {
	if err := checkKind[T](s); err != nil {
		return nil, err
	}
	lanes := s.LaneCount()
	out := make([]Vector, 0, (len(src)+lanes-1)/lanes)
	for offset := 0; offset < len(src); offset += lanes {
		var (
			v   Vec[T]
			err error
		)
		if rest := len(src) - offset; rest < lanes {
			v, err = FromArrayMasked(s, src, offset, MaskFirstN(s, rest))
		} else {
			v, err = FromArray(s, src, offset)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Flatten concatenates the lanes of vs, which must all hold T lanes.
func Flatten[T Elem](vs []Vector) ([]T, error) {
	var out []T
	for _, v := range vs {
		tv, err := As[T](v)
		if err != nil {
			return nil, err
		}
		out = append(out, tv.data...)
	}
	return out, nil
}

// checkMaskedRange verifies that every active lane of mask addresses an
// element of a slice of length capacity when lane 0 maps to offset.
func checkMaskedRange(mask Mask, offset, capacity int) error {
	for i, bit := range mask.bits {
		if !bit {
			continue
		}
		if idx := offset + i; idx < 0 || idx >= capacity {
			return outOfBounds(idx, 1, capacity)
		}
	}
	return nil
}
