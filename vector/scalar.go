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

	"github.com/samber/lo"
)

// This file provides the scalar lane conversions and the table of named
// conversion operators built from them.
//
// Value semantics:
//   - integer -> narrower integer: keep the low-order bits (no saturation)
//   - integer -> wider integer: sign-extend
//   - integer -> float: round to nearest, ties to even
//   - float -> integer: truncate toward zero; NaN is 0, values beyond the
//     destination range saturate to its minimum or maximum
//   - float -> float: IEEE widening (exact) or narrowing (round to nearest even)
//   - same kind: identity

// ConvertValue converts one lane value from S to D.
func ConvertValue[S, D Elem](x S) D {
	if KindOf[S]().IsFloat() && !KindOf[D]().IsFloat() {
		return saturate[D](float64(x))
	}
	return D(x)
}

// saturate converts f to the integer type D, truncating toward zero and
// clamping to D's range. NaN converts to 0.
func saturate[D Elem](f float64) D {
	k := KindOf[D]()
	switch {
	case math.IsNaN(f):
		return 0
	// float64(maxInt) rounds up to 2^63 for Int64, so >= is required here.
	case f >= float64(k.maxInt()):
		return D(k.maxInt())
	case f <= float64(k.minInt()):
		return D(k.minInt())
	}
	return D(f)
}

// laneFunc converts the bit pattern of one source lane into the bit
// pattern of one destination lane.
type laneFunc func(bits uint64) uint64

func lift[S, D Elem]() laneFunc {
	return func(bits uint64) uint64 {
		return laneBits(ConvertValue[S, D](laneFromBits[S](bits)))
	}
}

func row[S Elem]() [numKinds]laneFunc {
	return [numKinds]laneFunc{
		lift[S, int8](),
		lift[S, int16](),
		lift[S, int32](),
		lift[S, int64](),
		lift[S, float32](),
		lift[S, float64](),
	}
}

// laneFuncs is indexed by [from.index()][to.index()]; rows and columns
// follow the order of the Kind constants.
var laneFuncs = [numKinds][numKinds]laneFunc{
	row[int8](),
	row[int16](),
	row[int32](),
	row[int64](),
	row[float32](),
	row[float64](),
}

// Conversion names a scalar lane conversion from one kind to another, such
// as B2S (int8 to int16) or F2L (float32 to int64). Identity conversions
// such as I2I are included.
type Conversion struct {
	from, to Kind
}

// The named conversions. The letters are B (int8), S (int16), I (int32),
// L (int64), F (float32) and D (float64).
var (
	B2B = Conversion{Int8, Int8}
	B2S = Conversion{Int8, Int16}
	B2I = Conversion{Int8, Int32}
	B2L = Conversion{Int8, Int64}
	B2F = Conversion{Int8, Float32}
	B2D = Conversion{Int8, Float64}

	S2B = Conversion{Int16, Int8}
	S2S = Conversion{Int16, Int16}
	S2I = Conversion{Int16, Int32}
	S2L = Conversion{Int16, Int64}
	S2F = Conversion{Int16, Float32}
	S2D = Conversion{Int16, Float64}

	I2B = Conversion{Int32, Int8}
	I2S = Conversion{Int32, Int16}
	I2I = Conversion{Int32, Int32}
	I2L = Conversion{Int32, Int64}
	I2F = Conversion{Int32, Float32}
	I2D = Conversion{Int32, Float64}

	L2B = Conversion{Int64, Int8}
	L2S = Conversion{Int64, Int16}
	L2I = Conversion{Int64, Int32}
	L2L = Conversion{Int64, Int64}
	L2F = Conversion{Int64, Float32}
	L2D = Conversion{Int64, Float64}

	F2B = Conversion{Float32, Int8}
	F2S = Conversion{Float32, Int16}
	F2I = Conversion{Float32, Int32}
	F2L = Conversion{Float32, Int64}
	F2F = Conversion{Float32, Float32}
	F2D = Conversion{Float32, Float64}

	D2B = Conversion{Float64, Int8}
	D2S = Conversion{Float64, Int16}
	D2I = Conversion{Float64, Int32}
	D2L = Conversion{Float64, Int64}
	D2F = Conversion{Float64, Float32}
	D2D = Conversion{Float64, Float64}
)

// ConversionOf returns the conversion from one kind to another. It panics
// on invalid kinds.
func ConversionOf(from, to Kind) Conversion {
	if !from.Valid() || !to.Valid() {
		panic("vector: invalid conversion kinds " + from.String() + " -> " + to.String())
	}
	return Conversion{from: from, to: to}
}

// Conversions returns all 36 conversions, ordered by source then
// destination kind.
func Conversions() []Conversion {
	return lo.FlatMap(Kinds(), func(from Kind, _ int) []Conversion {
		return lo.Map(Kinds(), func(to Kind, _ int) Conversion {
			return Conversion{from: from, to: to}
		})
	})
}

// From returns the source kind.
func (c Conversion) From() Kind { return c.from }

// To returns the destination kind.
func (c Conversion) To() Kind { return c.to }

// Identity reports whether c converts a kind to itself.
func (c Conversion) Identity() bool { return c.from == c.to }

// String returns the operator name, for example "F2L".
func (c Conversion) String() string {
	return c.from.Letter() + "2" + c.to.Letter()
}

// valid reports whether c was built from two valid kinds.
func (c Conversion) valid() bool {
	return c.from.Valid() && c.to.Valid()
}

// apply converts one lane bit pattern.
func (c Conversion) apply(bits uint64) uint64 {
	return laneFuncs[c.from.index()][c.to.index()](bits)
}
