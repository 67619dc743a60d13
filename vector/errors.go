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

// Errors returned by load, store, mask and conversion operations. They are
// always wrapped with the offending values; test for them with errors.Is.
//
// None of them is transient. An operation that returns one of these errors
// has not modified any caller memory.
var (
	// ErrOutOfBounds reports an offset, length or part that does not fit
	// the buffer or vector it addresses.
	ErrOutOfBounds = errors.New("vector: index out of bounds")

	// ErrReadOnly reports a store into a read-only Buffer.
	ErrReadOnly = errors.New("vector: store into read-only buffer")

	// ErrShapeMismatch reports a mask, vector or species that does not
	// match the species an operation was asked to use.
	ErrShapeMismatch = errors.New("vector: shape mismatch")

	// ErrInvalidConfig reports a rejected Config.
	ErrInvalidConfig = errors.New("vector: invalid configuration")
)

func outOfBounds(offset, length, capacity int) error {
	return errors.Wrapf(ErrOutOfBounds, "range [%d, %d) exceeds length %d", offset, offset+length, capacity)
}

func shapeMismatch(format string, args ...any) error {
	return errors.Wrapf(ErrShapeMismatch, format, args...)
}

// checkRange verifies that [offset, offset+length) lies within [0, capacity).
func checkRange(offset, length, capacity int) error {
	if offset < 0 || length < 0 || offset > capacity-length {
		return outOfBounds(offset, length, capacity)
	}
	return nil
}
