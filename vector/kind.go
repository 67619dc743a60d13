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

	"golang.org/x/exp/constraints"
)

// Floats is a constraint for the floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for the integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// Elem is a constraint for all types that can be stored in vector lanes.
//
// The set is closed: Kind has exactly one value per member, and the
// conversion tables are indexed by it.
type Elem interface {
	SignedInts | Floats
}

// Index is a constraint for the element types accepted in index maps.
type Index interface {
	constraints.Integer
}

// Kind identifies the element type of a vector lane.
type Kind uint8

const (
	// Int8 lanes hold 8-bit two's-complement integers.
	Int8 Kind = iota + 1
	// Int16 lanes hold 16-bit two's-complement integers.
	Int16
	// Int32 lanes hold 32-bit two's-complement integers.
	Int32
	// Int64 lanes hold 64-bit two's-complement integers.
	Int64
	// Float32 lanes hold IEEE 754 binary32 values.
	Float32
	// Float64 lanes hold IEEE 754 binary64 values.
	Float64
)

// numKinds is the number of valid kinds.
const numKinds = 6

// Kinds returns all element kinds in ascending order of Kind value.
func Kinds() []Kind {
	return []Kind{Int8, Int16, Int32, Int64, Float32, Float64}
}

// Valid reports whether k is one of the six element kinds.
func (k Kind) Valid() bool {
	return k >= Int8 && k <= Float64
}

// index returns k's position in the conversion tables.
func (k Kind) index() int {
	return int(k) - 1
}

// Bits returns the size of one lane of kind k in bits.
func (k Kind) Bits() int {
	return k.Bytes() * 8
}

// Bytes returns the size of one lane of kind k in bytes.
func (k Kind) Bytes() int {
	switch k {
	case Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		return 0
	}
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// Letter returns the single-letter code used in conversion names
// (B, S, I, L, F, D).
func (k Kind) Letter() string {
	switch k {
	case Int8:
		return "B"
	case Int16:
		return "S"
	case Int32:
		return "I"
	case Int64:
		return "L"
	case Float32:
		return "F"
	case Float64:
		return "D"
	default:
		return "?"
	}
}

// String returns the Go name of the lane type.
func (k Kind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}

// minInt and maxInt return the range of an integer kind.
func (k Kind) minInt() int64 {
	switch k {
	case Int8:
		return math.MinInt8
	case Int16:
		return math.MinInt16
	case Int32:
		return math.MinInt32
	default:
		return math.MinInt64
	}
}

func (k Kind) maxInt() int64 {
	switch k {
	case Int8:
		return math.MaxInt8
	case Int16:
		return math.MaxInt16
	case Int32:
		return math.MaxInt32
	default:
		return math.MaxInt64
	}
}

// KindOf returns the Kind of the lane type T.
func KindOf[T Elem]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	default:
		return Float64
	}
}

// laneBits returns the bit pattern of x, zero-extended to 64 bits.
func laneBits[T Elem](x T) uint64 {
	switch v := any(x).(type) {
	case int8:
		return uint64(uint8(v))
	case int16:
		return uint64(uint16(v))
	case int32:
		return uint64(uint32(v))
	case int64:
		return uint64(v)
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	}
	panic("vector: unreachable lane type")
}

// laneFromBits is the inverse of laneBits; bits above the lane width are ignored.
func laneFromBits[T Elem](bits uint64) T {
	var zero T
	var r any
	switch any(zero).(type) {
	case int8:
		r = int8(bits)
	case int16:
		r = int16(bits)
	case int32:
		r = int32(bits)
	case int64:
		r = int64(bits)
	case float32:
		r = math.Float32frombits(uint32(bits))
	case float64:
		r = math.Float64frombits(bits)
	}
	return r.(T)
}
