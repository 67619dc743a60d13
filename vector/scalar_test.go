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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertValueIntegers(t *testing.T) {
	t.Run("narrowing keeps low bits", func(t *testing.T) {
		if got := ConvertValue[int32, int16](0x10001); got != 1 {
			t.Errorf("I2S(0x10001): got %d, want 1", got)
		}
		if got := ConvertValue[int16, int8](0x1ff); got != -1 {
			t.Errorf("S2B(0x1ff): got %d, want -1", got)
		}
		if got := ConvertValue[int64, int32](math.MaxInt64); got != -1 {
			t.Errorf("L2I(max): got %d, want -1", got)
		}
		if got := ConvertValue[int32, int8](200); got != -56 {
			t.Errorf("I2B(200): got %d, want -56", got)
		}
	})

	t.Run("widening sign-extends", func(t *testing.T) {
		if got := ConvertValue[int8, int64](-1); got != -1 {
			t.Errorf("B2L(-1): got %d", got)
		}
		if got := ConvertValue[int16, int32](math.MinInt16); got != math.MinInt16 {
			t.Errorf("S2I(min): got %d", got)
		}
	})
}

func TestConvertValueToFloat(t *testing.T) {
	// 2^24+1 is not representable as float32; ties round to even.
	if got := ConvertValue[int32, float32](1<<24 + 1); got != 1<<24 {
		t.Errorf("I2F(2^24+1): got %v", got)
	}
	if got := ConvertValue[int32, float32](1<<24 + 3); got != 1<<24+4 {
		t.Errorf("I2F(2^24+3): got %v", got)
	}
	if got := ConvertValue[int64, float64](1<<53 + 1); got != 1<<53 {
		t.Errorf("L2D(2^53+1): got %v", got)
	}
	if got := ConvertValue[int8, float32](-128); got != -128 {
		t.Errorf("B2F(-128): got %v", got)
	}
	if got := ConvertValue[float64, float32](1e300); !math.IsInf(float64(got), 1) {
		t.Errorf("D2F(1e300): got %v", got)
	}
	if got := ConvertValue[float32, float64](0.1); got != float64(float32(0.1)) {
		t.Errorf("F2D(0.1): got %v", got)
	}
}

func testSaturation[F Floats, D SignedInts](t *testing.T) {
	k := KindOf[D]()
	tests := []struct {
		name string
		in   float64
		want int64
	}{
		{"nan", math.NaN(), 0},
		{"+inf", math.Inf(1), k.maxInt()},
		{"-inf", math.Inf(-1), k.minInt()},
		{"huge", 1e30, k.maxInt()},
		{"tiny", -1e30, k.minInt()},
		{"truncate positive", 2.9, 2},
		{"truncate negative", -2.9, -2},
		{"negative zero", math.Copysign(0, -1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertValue[F, D](F(tt.in))
			if int64(got) != tt.want {
				t.Errorf("%v(%v): got %d, want %d", ConversionOf(KindOf[F](), k), tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertValueSaturation(t *testing.T) {
	t.Run("F2B", testSaturation[float32, int8])
	t.Run("F2S", testSaturation[float32, int16])
	t.Run("F2I", testSaturation[float32, int32])
	t.Run("F2L", testSaturation[float32, int64])
	t.Run("D2B", testSaturation[float64, int8])
	t.Run("D2S", testSaturation[float64, int16])
	t.Run("D2I", testSaturation[float64, int32])
	t.Run("D2L", testSaturation[float64, int64])

	// Exact boundaries.
	if got := ConvertValue[float64, int32](math.MaxInt32); got != math.MaxInt32 {
		t.Errorf("D2I(max): got %d", got)
	}
	if got := ConvertValue[float64, int32](math.MaxInt32 + 1); got != math.MaxInt32 {
		t.Errorf("D2I(max+1): got %d", got)
	}
	if got := ConvertValue[float64, int8](-128.5); got != -128 {
		t.Errorf("D2B(-128.5): got %d", got)
	}
	if got := ConvertValue[float64, int8](127.9); got != 127 {
		t.Errorf("D2B(127.9): got %d", got)
	}
}

func TestConversions(t *testing.T) {
	all := Conversions()
	require.Len(t, all, numKinds*numKinds)
	require.Equal(t, B2B, all[0])
	require.Equal(t, D2D, all[len(all)-1])

	names := make(map[string]bool)
	identities := 0
	for _, c := range all {
		names[c.String()] = true
		if c.Identity() {
			identities++
		}
		require.Equal(t, c, ConversionOf(c.From(), c.To()))
	}
	require.Len(t, names, len(all))
	require.Equal(t, numKinds, identities)

	require.Equal(t, "F2L", F2L.String())
	require.Equal(t, Float32, F2L.From())
	require.Equal(t, Int64, F2L.To())
	require.Panics(t, func() { ConversionOf(0, Int8) })
	require.False(t, Conversion{}.valid())
}

func TestIdentityConversionBitExact(t *testing.T) {
	patterns := []uint64{0, 1, 0x7f, 0x80, 0xff, 0x8000, 0x7fc00001, 0xffffffff, 0x7ff8000000000123, math.MaxUint64}
	for _, k := range Kinds() {
		op := ConversionOf(k, k)
		mask := uint64(math.MaxUint64) >> (64 - k.Bits())
		for _, p := range patterns {
			in := p & mask
			if got := op.apply(in); got != in {
				t.Errorf("%v: apply(%#x) = %#x", op, in, got)
			}
		}
	}
}

func TestConversionApply(t *testing.T) {
	tests := []struct {
		op   Conversion
		in   uint64
		want uint64
	}{
		{B2S, 0xff, 0xffff},
		{B2I, 0x80, 0xffffff80},
		{S2B, 0x1234, 0x34},
		{I2F, 1, uint64(math.Float32bits(1))},
		{F2I, uint64(math.Float32bits(-3.7)), uint64(uint32(0xfffffffd))},
		{D2B, math.Float64bits(math.NaN()), 0},
		{D2B, math.Float64bits(1000), 0x7f},
		{F2D, uint64(math.Float32bits(0.5)), math.Float64bits(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := tt.op.apply(tt.in); got != tt.want {
				t.Errorf("apply(%#x): got %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}
