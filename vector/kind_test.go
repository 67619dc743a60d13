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
)

func TestKind(t *testing.T) {
	tests := []struct {
		kind    Kind
		bits    int
		isFloat bool
		letter  string
		name    string
	}{
		{Int8, 8, false, "B", "int8"},
		{Int16, 16, false, "S", "int16"},
		{Int32, 32, false, "I", "int32"},
		{Int64, 64, false, "L", "int64"},
		{Float32, 32, true, "F", "float32"},
		{Float64, 64, true, "D", "float64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.kind.Valid() {
				t.Fatalf("%v not valid", tt.kind)
			}
			if got := tt.kind.Bits(); got != tt.bits {
				t.Errorf("Bits: got %d, want %d", got, tt.bits)
			}
			if got := tt.kind.Bytes() * 8; got != tt.bits {
				t.Errorf("Bytes*8: got %d, want %d", got, tt.bits)
			}
			if got := tt.kind.IsFloat(); got != tt.isFloat {
				t.Errorf("IsFloat: got %v, want %v", got, tt.isFloat)
			}
			if got := tt.kind.Letter(); got != tt.letter {
				t.Errorf("Letter: got %q, want %q", got, tt.letter)
			}
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String: got %q, want %q", got, tt.name)
			}
		})
	}

	if len(Kinds()) != numKinds {
		t.Errorf("Kinds: got %d, want %d", len(Kinds()), numKinds)
	}
	for _, k := range []Kind{0, Float64 + 1} {
		if k.Valid() {
			t.Errorf("kind %d should be invalid", k)
		}
		if k.Bits() != 0 {
			t.Errorf("kind %d: Bits should be 0", k)
		}
	}
}

func TestKindOf(t *testing.T) {
	got := []Kind{
		KindOf[int8](),
		KindOf[int16](),
		KindOf[int32](),
		KindOf[int64](),
		KindOf[float32](),
		KindOf[float64](),
	}
	for i, want := range Kinds() {
		if got[i] != want {
			t.Errorf("KindOf %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestLaneBits(t *testing.T) {
	t.Run("zero extended", func(t *testing.T) {
		if got := laneBits(int8(-1)); got != 0xff {
			t.Errorf("int8(-1): got %#x, want 0xff", got)
		}
		if got := laneBits(int16(-2)); got != 0xfffe {
			t.Errorf("int16(-2): got %#x, want 0xfffe", got)
		}
		if got := laneBits(int32(math.MinInt32)); got != 0x80000000 {
			t.Errorf("int32 min: got %#x, want 0x80000000", got)
		}
		if got := laneBits(float32(1)); got != 0x3f800000 {
			t.Errorf("float32(1): got %#x, want 0x3f800000", got)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		if got := laneFromBits[int8](laneBits(int8(-100))); got != -100 {
			t.Errorf("int8: got %d", got)
		}
		if got := laneFromBits[int64](laneBits(int64(math.MinInt64))); got != math.MinInt64 {
			t.Errorf("int64: got %d", got)
		}
		nan := math.Float32frombits(0x7fc00123)
		if got := math.Float32bits(laneFromBits[float32](laneBits(nan))); got != 0x7fc00123 {
			t.Errorf("float32 NaN payload: got %#x", got)
		}
		if got := laneFromBits[float64](laneBits(math.Inf(-1))); !math.IsInf(got, -1) {
			t.Errorf("float64 -Inf: got %v", got)
		}
	})

	t.Run("high bits ignored", func(t *testing.T) {
		if got := laneFromBits[int16](0xdead0001); got != 1 {
			t.Errorf("int16: got %d, want 1", got)
		}
	})
}
