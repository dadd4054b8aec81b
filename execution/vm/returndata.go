// Copyright 2025 The Kestrel Authors
// This file is part of Kestrel.
//
// Kestrel is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kestrel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Kestrel. If not, see <http://www.gnu.org/licenses/>.

package vm

import "github.com/holiman/uint256"

// ReturnData holds the output of the most recently completed call. The buffer
// is replaced in full on every completed call, including calls that return
// zero-length output, and is empty at top-level execution start. Reads never
// mutate it.
type ReturnData struct {
	buf []byte
}

// Set replaces the buffer with a copy of output. The copy is mandatory: the
// host owns output only for the duration of the call.
func (r *ReturnData) Set(output []byte) {
	r.buf = append(r.buf[:0], output...)
}

// Reset empties the buffer.
func (r *ReturnData) Reset() {
	r.buf = r.buf[:0]
}

// Len returns the buffer length in bytes.
func (r *ReturnData) Len() int { return len(r.buf) }

// Bytes returns the buffer contents.
func (r *ReturnData) Bytes() []byte { return r.buf }

// Load32 returns the 32 bytes at offset. The offset is taken at full 256-bit
// width: a value whose only set bits lie above 64 bits is out of range, never
// wrapped. It fails with ErrInvalidMemoryAccess unless offset+32 fits inside
// the buffer.
func (r *ReturnData) Load32(offset *uint256.Int) ([]byte, error) {
	off, overflow := offset.Uint64WithOverflow()
	if overflow {
		return nil, ErrInvalidMemoryAccess
	}
	size := uint64(len(r.buf))
	if size < 32 || off > size-32 {
		return nil, ErrInvalidMemoryAccess
	}
	return r.buf[off : off+32], nil
}
