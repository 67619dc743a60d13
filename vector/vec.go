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
	"encoding/binary"
	"fmt"
)

// Vec is a fixed-width vector of lanes of type T.
//
// A Vec is value-like: no operation modifies the lanes of an existing Vec,
// and every accessor that exposes lanes returns a copy.
//
// Vec instances should not be created directly; use FromArray, FromValues,
// Zero or one of the other loads.
type Vec[T Elem] struct {
	species Species
	data    []T
}

// Vector is the kind-erased view of a Vec. The conversion engine consumes
// and produces Vectors because its source and destination kinds are only
// known at run time. Only Vec implements Vector; use As to get the typed
// vector back.
type Vector interface {
	// Species returns the species the vector was created with.
	Species() Species

	// Lanes returns the number of lanes.
	Lanes() int

	// appendBits appends the lane bit patterns, zero-extended to 64 bits.
	appendBits(dst []uint64) []uint64

	// appendBytes appends the lanes as little-endian bytes, lane 0 first.
	appendBytes(dst []byte) []byte
}

// As returns v as a Vec[T], or ErrShapeMismatch if v does not hold T lanes.
func As[T Elem](v Vector) (Vec[T], error) {
	tv, ok := v.(Vec[T])
	if !ok {
		var species any
		if v != nil {
			species = v.Species()
		}
		return Vec[T]{}, shapeMismatch("vector %v does not hold %v lanes", species, KindOf[T]())
	}
	return tv, nil
}

// FromValues creates a vector from exactly s.LaneCount() values.
func FromValues[T Elem](s Species, values ...T) (Vec[T], error) {
	if err := checkKind[T](s); err != nil {
		return Vec[T]{}, err
	}
	if len(values) != s.LaneCount() {
		return Vec[T]{}, shapeMismatch("%d values for species %v with %d lanes", len(values), s, s.LaneCount())
	}
	data := make([]T, len(values))
	copy(data, values)
	return Vec[T]{species: s, data: data}, nil
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Elem](s Species) (Vec[T], error) {
	if err := checkKind[T](s); err != nil {
		return Vec[T]{}, err
	}
	return Vec[T]{species: s, data: make([]T, s.LaneCount())}, nil
}

// Broadcast creates a vector with all lanes set to x.
func Broadcast[T Elem](s Species, x T) (Vec[T], error) {
	v, err := Zero[T](s)
	if err != nil {
		return v, err
	}
	for i := range v.data {
		v.data[i] = x
	}
	return v, nil
}

// Species returns the species of v.
func (v Vec[T]) Species() Species {
	return v.species
}

// Lanes returns the number of lanes in v.
func (v Vec[T]) Lanes() int {
	return len(v.data)
}

// Lane returns lane i. It panics if i is out of range.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// ToArray returns a copy of the lanes.
func (v Vec[T]) ToArray() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// String formats v as its species followed by its lanes.
func (v Vec[T]) String() string {
	return fmt.Sprintf("%v%v", v.species, v.data)
}

func (v Vec[T]) appendBits(dst []uint64) []uint64 {
	for _, x := range v.data {
		dst = append(dst, laneBits(x))
	}
	return dst
}

func (v Vec[T]) appendBytes(dst []byte) []byte {
	size := KindOf[T]().Bytes()
	start := len(dst)
	dst = append(dst, make([]byte, len(v.data)*size)...)
	encodeLanes(dst[start:], v.data, binary.LittleEndian)
	return dst
}

// fromBits builds a vector of species s from lane bit patterns. len(bits)
// must equal s.LaneCount().
func fromBits(s Species, bits []uint64) Vector {
	switch s.Kind() {
	case Int8:
		return vecFromBits[int8](s, bits)
	case Int16:
		return vecFromBits[int16](s, bits)
	case Int32:
		return vecFromBits[int32](s, bits)
	case Int64:
		return vecFromBits[int64](s, bits)
	case Float32:
		return vecFromBits[float32](s, bits)
	default:
		return vecFromBits[float64](s, bits)
	}
}

func vecFromBits[T Elem](s Species, bits []uint64) Vec[T] {
	data := make([]T, len(bits))
	for i, b := range bits {
		data[i] = laneFromBits[T](b)
	}
	return Vec[T]{species: s, data: data}
}

// fromLittleEndian builds a vector of species s from s.VectorBytes() bytes.
func fromLittleEndian(s Species, b []byte) Vector {
	switch s.Kind() {
	case Int8:
		return vecFromBytes[int8](s, b)
	case Int16:
		return vecFromBytes[int16](s, b)
	case Int32:
		return vecFromBytes[int32](s, b)
	case Int64:
		return vecFromBytes[int64](s, b)
	case Float32:
		return vecFromBytes[float32](s, b)
	default:
		return vecFromBytes[float64](s, b)
	}
}

func vecFromBytes[T Elem](s Species, b []byte) Vec[T] {
	data := make([]T, s.LaneCount())
	decodeLanes(data, b, binary.LittleEndian)
	return Vec[T]{species: s, data: data}
}
