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

import "github.com/pkg/errors"

// Policy selects how Run moves lanes from a source species to a
// destination species.
type Policy uint8

const (
	// PolicyConvert converts every value of the source stream and repacks
	// the results into vectors of the same width (see Convert).
	PolicyConvert Policy = iota + 1

	// PolicyConvertShape converts every value of the source stream and
	// repacks the results into vectors of an explicit destination species
	// (see ConvertInto).
	PolicyConvertShape

	// PolicyCastShape is PolicyConvertShape with the conversion implied by
	// the source and destination kinds (see CastInto).
	PolicyCastShape

	// PolicyReinterpret re-slices the raw bits of the source stream into
	// destination lanes (see Reinterpret).
	PolicyReinterpret
)

// Policies returns all policies.
func Policies() []Policy {
	return []Policy{PolicyConvert, PolicyConvertShape, PolicyCastShape, PolicyReinterpret}
}

// valid reports whether p is one of the defined policies.
func (p Policy) valid() bool {
	return p >= PolicyConvert && p <= PolicyReinterpret
}

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyConvert:
		return "convert"
	case PolicyConvertShape:
		return "convertShape"
	case PolicyCastShape:
		return "castShape"
	case PolicyReinterpret:
		return "reinterpret"
	default:
		return "invalid"
	}
}

// Batch is the result of a stream operation: Count values of Species,
// packed in order into Vectors. Lanes of the last vector beyond Count are
// zero.
type Batch struct {
	Species Species
	Vectors []Vector
	Count   int
}

// BatchValues returns the first b.Count lane values of b.
func BatchValues[T Elem](b Batch) ([]T, error) {
	values, err := Flatten[T](b.Vectors)
	if err != nil {
		return nil, err
	}
	if b.Count < 0 || b.Count > len(values) {
		return nil, outOfBounds(0, b.Count, len(values))
	}
	return values[:b.Count], nil
}

// Convert applies op to every lane of src, taken in order as one stream,
// and packs the results into vectors of the destination kind with the same
// width as the source. The number of values is preserved; the number of
// vectors changes by the ratio of the lane sizes.
//
// All vectors of src must share one species whose kind is op.From().
func Convert(op Conversion, src []Vector) (Batch, error) {
	if !op.valid() {
		return Batch{}, shapeMismatch("invalid conversion")
	}
	if len(src) == 0 {
		return Batch{}, nil
	}
	s, err := streamSpecies(src)
	if err != nil {
		return Batch{}, err
	}
	return ConvertInto(op, src, s.WithKind(op.to))
}

// ConvertInto is Convert with an explicit destination species of any
// width. The converted stream is regrouped into vectors of dst and the
// last vector is zero padded.
func ConvertInto(op Conversion, src []Vector, dst Species) (Batch, error) {
	if !op.valid() {
		return Batch{}, shapeMismatch("invalid conversion")
	}
	if !dst.Valid() || dst.Kind() != op.to {
		return Batch{}, shapeMismatch("conversion %v into %v", op, dst)
	}
	if len(src) == 0 {
		return Batch{Species: dst}, nil
	}
	s, err := streamSpecies(src)
	if err != nil {
		return Batch{}, err
	}
	if s.Kind() != op.from {
		return Batch{}, shapeMismatch("conversion %v applied to %v", op, s)
	}

	bits := make([]uint64, 0, len(src)*s.LaneCount())
	for _, v := range src {
		bits = v.appendBits(bits)
	}
	for i, b := range bits {
		bits[i] = op.apply(b)
	}
	return pack(dst, bits), nil
}

// CastInto is ConvertInto with the conversion from the kind of src to the
// kind of dst.
func CastInto(src []Vector, dst Species) (Batch, error) {
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
	return ConvertInto(ConversionOf(s.Kind(), dst.Kind()), src, dst)
}

// ConvertShape applies op to the lanes of v and returns a vector of species
// dst, whose kind must be op.To().
//
// The converted lanes rarely fill dst exactly, so part selects the window:
//   - v has more lanes than dst: part in [0, v.Lanes()/dst.LaneCount())
//     selects source lanes [part*n, (part+1)*n), n = dst.LaneCount().
//   - v has fewer lanes than dst: part in (-dst.LaneCount()/v.Lanes(), 0]
//     places all converted lanes at lane -part*v.Lanes(); the other lanes
//     are zero.
//   - equal lane counts: part must be 0.
//
// Any other part is ErrOutOfBounds.
func ConvertShape(op Conversion, v Vector, dst Species, part int) (Vector, error) {
	if !op.valid() {
		return nil, shapeMismatch("invalid conversion")
	}
	if v == nil {
		return nil, shapeMismatch("nil vector")
	}
	s := v.Species()
	if s.Kind() != op.from {
		return nil, shapeMismatch("conversion %v applied to %v", op, s)
	}
	if !dst.Valid() || dst.Kind() != op.to {
		return nil, shapeMismatch("conversion %v into %v", op, dst)
	}
	srcStart, dstStart, n, err := placement(s.LaneCount(), dst.LaneCount(), part)
	if err != nil {
		return nil, err
	}

	in := v.appendBits(nil)
	out := make([]uint64, dst.LaneCount())
	for i := 0; i < n; i++ {
		out[dstStart+i] = op.apply(in[srcStart+i])
	}
	return fromBits(dst, out), nil
}

// CastShape is ConvertShape with the conversion from v's kind to dst's
// kind. The lane values it produces are the same.
func CastShape(v Vector, dst Species, part int) (Vector, error) {
	if v == nil || !v.Species().Valid() || !dst.Valid() {
		return nil, shapeMismatch("cast of %v into %v", v, dst)
	}
	return ConvertShape(ConversionOf(v.Species().Kind(), dst.Kind()), v, dst, part)
}

// ConvertTo is the typed form of CastShape.
func ConvertTo[S, D Elem](v Vec[S], dst Species, part int) (Vec[D], error) {
	if err := checkKind[D](dst); err != nil {
		return Vec[D]{}, err
	}
	r, err := CastShape(v, dst, part)
	if err != nil {
		return Vec[D]{}, err
	}
	return As[D](r)
}

// Run applies policy to the stream src with destination species dst and
// returns the destination vectors:
//   - PolicyConvert: dst must be src's species with dst's kind (Convert).
//   - PolicyConvertShape: ConvertInto with the conversion between the kinds.
//   - PolicyCastShape: CastInto.
//   - PolicyReinterpret: Reinterpret.
func Run(policy Policy, src []Vector, dst Species) ([]Vector, error) {
	if !policy.valid() {
		return nil, errors.Errorf("vector: unknown policy %d", policy)
	}
	if !dst.Valid() {
		return nil, shapeMismatch("invalid destination species")
	}
	if len(src) == 0 {
		return nil, nil
	}
	s, err := streamSpecies(src)
	if err != nil {
		return nil, err
	}
	op := ConversionOf(s.Kind(), dst.Kind())

	var b Batch
	switch policy {
	case PolicyConvert:
		if want := s.WithKind(dst.Kind()); dst != want {
			return nil, shapeMismatch("convert keeps the source width: want %v, got %v", want, dst)
		}
		b, err = Convert(op, src)
	case PolicyConvertShape:
		b, err = ConvertInto(op, src, dst)
	case PolicyCastShape:
		b, err = CastInto(src, dst)
	case PolicyReinterpret:
		b, err = Reinterpret(src, dst)
	default:
		return nil, errors.Errorf("vector: unknown policy %d", policy)
	}
	if err != nil {
		return nil, err
	}
	return b.Vectors, nil
}

// placement maps a logical result of in units onto a destination of out
// units for the given part. It returns where to start reading the source,
// where to start writing the destination, and how many units to move.
// in and out are powers of two.
func placement(in, out, part int) (srcStart, dstStart, n int, err error) {
	switch {
	case in > out:
		if parts := in / out; part < 0 || part >= parts {
			return 0, 0, 0, errors.Wrapf(ErrOutOfBounds, "part %d not in [0, %d)", part, parts)
		}
		return part * out, 0, out, nil
	case in < out:
		if parts := out / in; part > 0 || part <= -parts {
			return 0, 0, 0, errors.Wrapf(ErrOutOfBounds, "part %d not in (-%d, 0]", part, parts)
		}
		return 0, -part * in, in, nil
	default:
		if part != 0 {
			return 0, 0, 0, errors.Wrapf(ErrOutOfBounds, "part %d must be 0 for equal sizes", part)
		}
		return 0, 0, in, nil
	}
}

// streamSpecies returns the species shared by all vectors of src.
func streamSpecies(src []Vector) (Species, error) {
	if src[0] == nil {
		return Species{}, shapeMismatch("nil vector at 0")
	}
	s := src[0].Species()
	for i, v := range src {
		if v == nil || v.Species() != s {
			return Species{}, shapeMismatch("vector %d is not %v", i, s)
		}
	}
	if !s.Valid() {
		return Species{}, shapeMismatch("invalid source species")
	}
	return s, nil
}

// pack groups bits into vectors of dst, zero-padding the last one.
func pack(dst Species, bits []uint64) Batch {
	lanes := dst.LaneCount()
	b := Batch{Species: dst, Count: len(bits)}
	for start := 0; start < len(bits); start += lanes {
		chunk := make([]uint64, lanes)
		copy(chunk, bits[start:])
		b.Vectors = append(b.Vectors, fromBits(dst, chunk))
	}
	return b
}
