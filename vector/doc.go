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

// Package vector provides typed, fixed-width SIMD-style vectors.
//
// A Species pairs an element Kind (int8, int16, int32, int64, float32,
// float64) with a register Shape (64, 128, 256, 512 bits or the platform
// maximum). Vectors and masks are created for a species and move data to
// and from Go slices, byte slices in either byte order, and Buffers, with
// optional lane masks. A conversion engine changes the kind of vectors by
// value (Convert, ConvertShape, CastShape) or by bits (Reinterpret,
// ReinterpretShape).
//
// Basic usage:
//
//	import "github.com/ajroetker/go-vector/vector"
//
//	s := vector.Of(vector.Float32, vector.Shape256)
//
//	// Load lanes, masking the tail
//	vs, _ := vector.LoadAll(s, data)
//
//	// Convert every value to int16, packed 16 lanes per vector
//	b, _ := vector.Convert(vector.F2S, vs)
//	values, _ := vector.BatchValues[int16](b)
//
// The width of ShapeMax follows the SIMD level detected at start-up and
// can be changed with Configure or the VECTOR_NO_SIMD and VECTOR_MAX_BITS
// environment variables.
package vector
