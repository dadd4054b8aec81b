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

// Memory is the byte-addressed scratch space of an execution frame. It grows
// in 32-byte words and remembers the total expansion fee already paid, so
// that only newly touched words are charged.
type Memory struct {
	store       []byte
	lastGasCost uint64
}

// NewMemory returns an empty memory region.
func NewMemory() *Memory {
	return &Memory{}
}

// Set writes value to memory at offset. The region must already be sized;
// expansion is charged and performed by the gas accounting before any write.
func (m *Memory) Set(offset, size uint64, value []byte) {
	if size > 0 {
		copy(m.store[offset:offset+size], value)
	}
}

// Resize grows memory to size bytes. Shrinking never happens.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) < size {
		m.store = append(m.store, make([]byte, size-uint64(len(m.store)))...)
	}
}

// GetPtr returns a view of the memory region [offset, offset+size). The slice
// aliases the backing store and must not be retained across a resize.
func (m *Memory) GetPtr(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

// Len returns the current memory size in bytes.
func (m *Memory) Len() int { return len(m.store) }

// Data returns the backing store.
func (m *Memory) Data() []byte { return m.store }
