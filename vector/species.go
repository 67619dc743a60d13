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
	"fmt"

	"github.com/samber/lo"
)

// Shape is the register width of a vector.
type Shape uint8

const (
	// Shape64 is a 64-bit register.
	Shape64 Shape = iota + 1
	// Shape128 is a 128-bit register (SSE, NEON).
	Shape128
	// Shape256 is a 256-bit register (AVX2).
	Shape256
	// Shape512 is a 512-bit register (AVX-512).
	Shape512
	// ShapeMax is the widest register of the running platform, see MaxBits.
	ShapeMax
)

// Shapes returns all shapes, fixed widths first.
func Shapes() []Shape {
	return []Shape{Shape64, Shape128, Shape256, Shape512, ShapeMax}
}

// Valid reports whether s is one of the defined shapes.
func (s Shape) Valid() bool {
	return s >= Shape64 && s <= ShapeMax
}

// Bits returns the width of the shape in bits. For ShapeMax this is the
// current value of MaxBits.
func (s Shape) Bits() int {
	switch s {
	case Shape64:
		return 64
	case Shape128:
		return 128
	case Shape256:
		return 256
	case Shape512:
		return 512
	case ShapeMax:
		return MaxBits()
	default:
		return 0
	}
}

// String returns "64", "128", "256", "512" or "max".
func (s Shape) String() string {
	switch s {
	case Shape64:
		return "64"
	case Shape128:
		return "128"
	case Shape256:
		return "256"
	case Shape512:
		return "512"
	case ShapeMax:
		return "max"
	default:
		return "invalid"
	}
}

// Species is an (element kind, register width) pair. It fixes the lane
// count and memory layout of every vector and mask created with it.
//
// Species is a small comparable value. The width of a ShapeMax species is
// captured when the species is created, so species created under different
// Configure calls compare unequal.
type Species struct {
	kind  Kind
	shape Shape
	bits  int
}

// Of returns the species for kind and shape. It panics if either is
// invalid: the catalog is fixed, so a bad pair is a programming error.
func Of(kind Kind, shape Shape) Species {
	if !kind.Valid() || !shape.Valid() {
		panic(fmt.Sprintf("vector: invalid species %v x %v", kind, shape))
	}
	return Species{kind: kind, shape: shape, bits: shape.Bits()}
}

// Catalog returns every species: each kind in each shape.
func Catalog() []Species {
	return lo.FlatMap(Kinds(), func(k Kind, _ int) []Species {
		return lo.Map(Shapes(), func(s Shape, _ int) Species {
			return Of(k, s)
		})
	})
}

// Valid reports whether s was created by Of.
func (s Species) Valid() bool {
	return s.kind.Valid() && s.shape.Valid() && s.bits > 0
}

// Kind returns the element kind.
func (s Species) Kind() Kind { return s.kind }

// Shape returns the register shape.
func (s Species) Shape() Shape { return s.shape }

// LaneCount returns the number of lanes: VectorBits / ElementBits.
func (s Species) LaneCount() int {
	if !s.Valid() {
		return 0
	}
	return s.bits / s.kind.Bits()
}

// ElementBits returns the size of one lane in bits.
func (s Species) ElementBits() int { return s.kind.Bits() }

// ElementBytes returns the size of one lane in bytes.
func (s Species) ElementBytes() int { return s.kind.Bytes() }

// VectorBits returns the register width in bits.
func (s Species) VectorBits() int { return s.bits }

// VectorBytes returns the register width in bytes.
func (s Species) VectorBytes() int { return s.bits / 8 }

// WithKind returns the species with the same shape and width and a
// different kind. It panics if k is invalid.
func (s Species) WithKind(k Kind) Species {
	if !k.Valid() {
		panic(fmt.Sprintf("vector: invalid kind %v", k))
	}
	return Species{kind: k, shape: s.shape, bits: s.bits}
}

// WithShape returns the species with the same kind and a different shape.
func (s Species) WithShape(shape Shape) Species {
	return Of(s.kind, shape)
}

// String returns a name such as "int16x256" or "float32xmax(512)".
func (s Species) String() string {
	if s.shape == ShapeMax {
		return fmt.Sprintf("%vxmax(%d)", s.kind, s.bits)
	}
	return fmt.Sprintf("%vx%v", s.kind, s.shape)
}

// checkKind verifies that s is valid and holds lanes of type T.
func checkKind[T Elem](s Species) error {
	if !s.Valid() {
		return shapeMismatch("invalid species")
	}
	if k := KindOf[T](); s.kind != k {
		return shapeMismatch("species %v does not hold %v lanes", s, k)
	}
	return nil
}
