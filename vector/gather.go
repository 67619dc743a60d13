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

import (
	"math"

	"github.com/pkg/errors"
)

// This file provides gather and scatter through an index map: lane i
// addresses a[offset + indexMap[mapOffset+i]].
//
// All indices of the participating lanes are validated before any element
// is read or written, so a failed scatter leaves dst unmodified.

// FromArrayIndexed gathers lane i from src[offset+indexMap[mapOffset+i]].
func FromArrayIndexed[T Elem, I Index](s Species, src []T, offset int, indexMap []I, mapOffset int) (Vec[T], error) {
	if err := checkKind[T](s); err != nil {
		return Vec[T]{}, err
	}
	return gather(s, src, offset, indexMap, mapOffset, MaskAllTrue(s))
}

// FromArrayIndexedMasked gathers the active lanes of mask as
// FromArrayIndexed does. Inactive lanes are zero and their indices are
// not consulted.
func FromArrayIndexedMasked[T Elem, I Index](s Species, src []T, offset int, indexMap []I, mapOffset int, mask Mask) (Vec[T], error) {
	if err := checkKind[T](s); err != nil {
		return Vec[T]{}, err
	}
	if err := mask.check(s); err != nil {
		return Vec[T]{}, err
	}
	return gather(s, src, offset, indexMap, mapOffset, mask)
}

// IntoArrayIndexed scatters lane i of v to dst[offset+indexMap[mapOffset+i]].
// When two lanes address the same element, the higher lane wins.
func IntoArrayIndexed[T Elem, I Index](v Vec[T], dst []T, offset int, indexMap []I, mapOffset int) error {
	return scatter(v, dst, offset, indexMap, mapOffset, MaskAllTrue(v.species))
}

// IntoArrayIndexedMasked scatters the active lanes of mask as
// IntoArrayIndexed does. Elements addressed only by inactive lanes are
// left unchanged.
func IntoArrayIndexedMasked[T Elem, I Index](v Vec[T], dst []T, offset int, indexMap []I, mapOffset int, mask Mask) error {
	if err := mask.check(v.species); err != nil {
		return err
	}
	return scatter(v, dst, offset, indexMap, mapOffset, mask)
}

func gather[T Elem, I Index](s Species, src []T, offset int, indexMap []I, mapOffset int, mask Mask) (Vec[T], error) {
	idx, err := resolveIndices(mask, offset, indexMap, mapOffset, len(src))
	if err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, s.LaneCount())
	for i, bit := range mask.bits {
		if bit {
			data[i] = src[idx[i]]
		}
	}
	return Vec[T]{species: s, data: data}, nil
}

func scatter[T Elem, I Index](v Vec[T], dst []T, offset int, indexMap []I, mapOffset int, mask Mask) error {
	idx, err := resolveIndices(mask, offset, indexMap, mapOffset, len(dst))
	if err != nil {
		return err
	}
	for i, bit := range mask.bits {
		if bit {
			dst[idx[i]] = v.data[i]
		}
	}
	return nil
}

// FromBoolArrayIndexed gathers lane i from src[offset+indexMap[mapOffset+i]]
// as 1 for true and 0 for false.
func FromBoolArrayIndexed[I Index](s Species, src []bool, offset int, indexMap []I, mapOffset int) (Vec[int8], error) {
	if err := checkKind[int8](s); err != nil {
		return Vec[int8]{}, err
	}
	return gatherBools(s, src, offset, indexMap, mapOffset, MaskAllTrue(s))
}

// FromBoolArrayIndexedMasked is FromBoolArrayIndexed for the active lanes of
// mask. Inactive lanes are zero.
func FromBoolArrayIndexedMasked[I Index](s Species, src []bool, offset int, indexMap []I, mapOffset int, mask Mask) (Vec[int8], error) {
	if err := checkKind[int8](s); err != nil {
		return Vec[int8]{}, err
	}
	if err := mask.check(s); err != nil {
		return Vec[int8]{}, err
	}
	return gatherBools(s, src, offset, indexMap, mapOffset, mask)
}

// IntoBoolArrayIndexed scatters the lowest bit of lane i of v to
// dst[offset+indexMap[mapOffset+i]].
func IntoBoolArrayIndexed[I Index](v Vec[int8], dst []bool, offset int, indexMap []I, mapOffset int) error {
	return scatterBools(v, dst, offset, indexMap, mapOffset, MaskAllTrue(v.species))
}

// IntoBoolArrayIndexedMasked is IntoBoolArrayIndexed for the active lanes
// of mask.
func IntoBoolArrayIndexedMasked[I Index](v Vec[int8], dst []bool, offset int, indexMap []I, mapOffset int, mask Mask) error {
	if err := mask.check(v.species); err != nil {
		return err
	}
	return scatterBools(v, dst, offset, indexMap, mapOffset, mask)
}

func gatherBools[I Index](s Species, src []bool, offset int, indexMap []I, mapOffset int, mask Mask) (Vec[int8], error) {
	idx, err := resolveIndices(mask, offset, indexMap, mapOffset, len(src))
	if err != nil {
		return Vec[int8]{}, err
	}
	data := make([]int8, s.LaneCount())
	for i, bit := range mask.bits {
		if bit && src[idx[i]] {
			data[i] = 1
		}
	}
	return Vec[int8]{species: s, data: data}, nil
}

func scatterBools[I Index](v Vec[int8], dst []bool, offset int, indexMap []I, mapOffset int, mask Mask) error {
	idx, err := resolveIndices(mask, offset, indexMap, mapOffset, len(dst))
	if err != nil {
		return err
	}
	for i, bit := range mask.bits {
		if bit {
			dst[idx[i]] = v.data[i]&1 != 0
		}
	}
	return nil
}

// resolveIndices computes offset+indexMap[mapOffset+i] for every active
// lane and checks it against capacity.
func resolveIndices[I Index](mask Mask, offset int, indexMap []I, mapOffset int, capacity int) ([]int, error) {
	idx := make([]int, len(mask.bits))
	for i, bit := range mask.bits {
		if !bit {
			continue
		}
		if err := checkRange(mapOffset+i, 1, len(indexMap)); err != nil {
			return nil, err
		}
		at, err := indexAt(offset, indexMap[mapOffset+i])
		if err != nil {
			return nil, err
		}
		if err := checkRange(at, 1, capacity); err != nil {
			return nil, err
		}
		idx[i] = at
	}
	return idx, nil
}

// indexAt returns offset+x, or ErrOutOfBounds when x or the sum does not
// fit in an int.
func indexAt[I Index](offset int, x I) (int, error) {
	var n int
	if x >= 0 {
		if uint64(x) > math.MaxInt {
			return 0, errors.Wrapf(ErrOutOfBounds, "index %d overflows int", x)
		}
		n = int(x)
	} else {
		if int64(x) < math.MinInt {
			return 0, errors.Wrapf(ErrOutOfBounds, "index %d overflows int", x)
		}
		n = int(x)
	}
	if (n > 0 && offset > math.MaxInt-n) || (n < 0 && offset < math.MinInt-n) {
		return 0, errors.Wrapf(ErrOutOfBounds, "index %d at offset %d overflows int", x, offset)
	}
	return offset + n, nil
}
