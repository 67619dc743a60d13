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

	"github.com/pkg/errors"
)

// Buffer is a caller-owned byte region that vectors are loaded from and
// stored to at explicit byte offsets. A Buffer has no cursor: every
// operation is a random-access read or write, and none retains the bytes
// past the call.
//
// A read-only Buffer rejects every store with ErrReadOnly before touching
// any byte.
type Buffer struct {
	data     []byte
	readOnly bool
}

// NewBuffer wraps b. Stores through the Buffer write into b.
func NewBuffer(b []byte) Buffer {
	return Buffer{data: b}
}

// AsReadOnly returns a read-only view of the same bytes.
func (b Buffer) AsReadOnly() Buffer {
	return Buffer{data: b.data, readOnly: true}
}

// ReadOnly reports whether stores into b are rejected.
func (b Buffer) ReadOnly() bool {
	return b.readOnly
}

// Len returns the number of bytes in b.
func (b Buffer) Len() int {
	return len(b.data)
}

// Bytes returns a copy of the bytes in b.
func (b Buffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// FromBytes decodes s.LaneCount() lanes from src starting at byte offset,
// each lane in the given byte order.
func FromBytes[T Elem](s Species, src []byte, offset int, order binary.ByteOrder) (Vec[T], error) {
	return FromBuffer[T](s, NewBuffer(src), offset, order)
}

// FromBytesMasked decodes the active lanes of mask from src starting at
// byte offset. Inactive lanes are zero and their bytes are not read.
func FromBytesMasked[T Elem](s Species, src []byte, offset int, order binary.ByteOrder, mask Mask) (Vec[T], error) {
	return FromBufferMasked[T](s, NewBuffer(src), offset, order, mask)
}

// IntoBytes encodes all lanes of v into dst starting at byte offset.
func (v Vec[T]) IntoBytes(dst []byte, offset int, order binary.ByteOrder) error {
	return v.IntoBuffer(NewBuffer(dst), offset, order)
}

// IntoBytesMasked encodes the active lanes of mask into dst starting at byte
// offset. The bytes of inactive lanes are left unchanged.
func (v Vec[T]) IntoBytesMasked(dst []byte, offset int, order binary.ByteOrder, mask Mask) error {
	return v.IntoBufferMasked(NewBuffer(dst), offset, order, mask)
}

// FromBuffer decodes s.LaneCount() lanes from src starting at byte offset.
// Read-only buffers can be loaded from.
func FromBuffer[T Elem](s Species, src Buffer, offset int, order binary.ByteOrder) (Vec[T], error) {
	if err := checkKind[T](s); err != nil {
		return Vec[T]{}, err
	}
	if err := checkRange(offset, s.VectorBytes(), src.Len()); err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, s.LaneCount())
	decodeLanes(data, src.data[offset:], order)
	return Vec[T]{species: s, data: data}, nil
}

// FromBufferMasked decodes the active lanes of mask from src starting at
// byte offset. Inactive lanes are zero.
func FromBufferMasked[T Elem](s Species, src Buffer, offset int, order binary.ByteOrder, mask Mask) (Vec[T], error) {
	if err := checkKind[T](s); err != nil {
		return Vec[T]{}, err
	}
	if err := mask.check(s); err != nil {
		return Vec[T]{}, err
	}
	size := s.ElementBytes()
	if err := checkMaskedBytes(mask, offset, size, src.Len()); err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, s.LaneCount())
	for i, bit := range mask.bits {
		if bit {
			start := offset + i*size
			data[i] = decodeLane[T](src.data[start:start+size], order)
		}
	}
	return Vec[T]{species: s, data: data}, nil
}

// IntoBuffer encodes all lanes of v into dst starting at byte offset.
func (v Vec[T]) IntoBuffer(dst Buffer, offset int, order binary.ByteOrder) error {
	if dst.readOnly {
		return errors.Wrapf(ErrReadOnly, "store of %v at byte offset %d", v.species, offset)
	}
	if err := checkRange(offset, len(v.data)*KindOf[T]().Bytes(), dst.Len()); err != nil {
		return err
	}
	encodeLanes(dst.data[offset:], v.data, order)
	return nil
}

// IntoBufferMasked encodes the active lanes of mask into dst starting at
// byte offset. The bytes of inactive lanes are left unchanged.
func (v Vec[T]) IntoBufferMasked(dst Buffer, offset int, order binary.ByteOrder, mask Mask) error {
	if dst.readOnly {
		return errors.Wrapf(ErrReadOnly, "masked store of %v at byte offset %d", v.species, offset)
	}
	if err := mask.check(v.species); err != nil {
		return err
	}
	size := KindOf[T]().Bytes()
	if err := checkMaskedBytes(mask, offset, size, dst.Len()); err != nil {
		return err
	}
	for i, bit := range mask.bits {
		if bit {
			start := offset + i*size
			encodeLane(dst.data[start:start+size], v.data[i], order)
		}
	}
	return nil
}

// checkMaskedBytes verifies that the byte range of every active lane lies
// within a buffer of length capacity.
func checkMaskedBytes(mask Mask, offset, size, capacity int) error {
	for i, bit := range mask.bits {
		if !bit {
			continue
		}
		if err := checkRange(offset+i*size, size, capacity); err != nil {
			return err
		}
	}
	return nil
}

// encodeLane writes x into the first KindOf[T]().Bytes() bytes of b.
func encodeLane[T Elem](b []byte, x T, order binary.ByteOrder) {
	bits := laneBits(x)
	switch KindOf[T]().Bytes() {
	case 1:
		b[0] = byte(bits)
	case 2:
		order.PutUint16(b, uint16(bits))
	case 4:
		order.PutUint32(b, uint32(bits))
	default:
		order.PutUint64(b, bits)
	}
}

// decodeLane reads one lane from the first KindOf[T]().Bytes() bytes of b.
func decodeLane[T Elem](b []byte, order binary.ByteOrder) T {
	var bits uint64
	switch KindOf[T]().Bytes() {
	case 1:
		bits = uint64(b[0])
	case 2:
		bits = uint64(order.Uint16(b))
	case 4:
		bits = uint64(order.Uint32(b))
	default:
		bits = order.Uint64(b)
	}
	return laneFromBits[T](bits)
}

func encodeLanes[T Elem](b []byte, lanes []T, order binary.ByteOrder) {
	size := KindOf[T]().Bytes()
	for i, x := range lanes {
		encodeLane(b[i*size:], x, order)
	}
}

func decodeLanes[T Elem](lanes []T, b []byte, order binary.ByteOrder) {
	size := KindOf[T]().Bytes()
	for i := range lanes {
		lanes[i] = decodeLane[T](b[i*size:], order)
	}
}
