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

// Reinterpretation moves raw bits, never values. The bit layout of a vector
// is its lanes as little-endian bytes, lane 0 first, independent of the
// host byte order.

// ReinterpretShape re-slices the bytes of v as a vector of species dst.
// part selects the window in bytes, the way ConvertShape selects it in
// lanes:
//   - v is wider than dst: part in [0, v.VectorBytes()/dst.VectorBytes())
//     takes bytes [part*n, (part+1)*n) of v, n = dst.VectorBytes().
//   - v is narrower than dst: part in (-dst.VectorBytes()/v.VectorBytes(), 0]
//     places the bytes of v at byte -part*v.VectorBytes(); the other bytes
//     are zero.
//   - equal widths: part must be 0.
//
// Any other part is ErrOutOfBounds.
func ReinterpretShape(v Vector, dst Species, part int) (Vector, error) {
	if v == nil || !v.Species().Valid() {
		return nil, shapeMismatch("invalid source vector")
	}
	if !dst.Valid() {
		return nil, shapeMismatch("invalid destination species")
	}
	srcStart, dstStart, n, err := placement(v.Species().VectorBytes(), dst.VectorBytes(), part)
	if err != nil {
		return nil, err
	}
	in := v.appendBytes(nil)
	out := make([]byte, dst.VectorBytes())
	copy(out[dstStart:dstStart+n], in[srcStart:srcStart+n])
	return fromLittleEndian(dst, out), nil
}

// ReinterpretAs is the typed form of ReinterpretShape.
func ReinterpretAs[S, D Elem](v Vec[S], dst Species, part int) (Vec[D], error) {
	if err := checkKind[D](dst); err != nil {
		return Vec[D]{}, err
	}
	r, err := ReinterpretShape(v, dst, part)
	if err != nil {
		return Vec[D]{}, err
	}
	return As[D](r)
}

// Reinterpret concatenates the bytes of src, taken in order as one stream,
// and re-slices them into vectors of species dst. The total number of bits
// is preserved: the result holds totalBytes/dst.ElementBytes() lanes, and
// the last vector is zero-padded when the stream does not fill it.
//
// Vector widths are multiples of 64 bits, so the stream always divides
// into whole lanes of any kind.
func Reinterpret(src []Vector, dst Species) (Batch, error) {
	if !dst.Valid() {
		return Batch{}, shapeMismatch("invalid destination species")
	}
	if len(src) == 0 {
		return Batch{Species: dst}, nil
	}
	s, err := streamSpecies(src)
	if err != nil {
		return Batch{}, err
	}

	stream := make([]byte, 0, len(src)*s.VectorBytes())
	for _, v := range src {
		stream = v.appendBytes(stream)
	}

	size := dst.VectorBytes()
	b := Batch{Species: dst, Count: len(stream) / dst.ElementBytes()}
	for start := 0; start < len(stream); start += size {
		chunk := make([]byte, size)
		copy(chunk, stream[start:])
		b.Vectors = append(b.Vectors, fromLittleEndian(dst, chunk))
	}
	return b, nil
}
