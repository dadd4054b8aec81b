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

// Stack is the operand stack. Items are stored as 256-bit words; the zeroth
// item is the bottom of the stack.
type Stack struct {
	data []uint256.Int
}

// NewStack returns an empty operand stack.
func NewStack() *Stack {
	return &Stack{data: make([]uint256.Int, 0, 16)}
}

// Data returns the underlying slice, bottom first.
func (st *Stack) Data() []uint256.Int { return st.data }

// Push puts a copy of d on top of the stack.
func (st *Stack) Push(d *uint256.Int) {
	st.data = append(st.data, *d)
}

// PushUint64 puts d on top of the stack.
func (st *Stack) PushUint64(d uint64) {
	var v uint256.Int
	v.SetUint64(d)
	st.data = append(st.data, v)
}

// Pop removes and returns the top item. The stack must not be empty; the
// dispatcher validates operand counts before executing an instruction.
func (st *Stack) Pop() (ret uint256.Int) {
	ret = st.data[len(st.data)-1]
	st.data = st.data[:len(st.data)-1]
	return
}

// Peek returns the top item without removing it.
func (st *Stack) Peek() *uint256.Int {
	return &st.data[len(st.data)-1]
}

// Back returns the n'th item from the top without removing it.
func (st *Stack) Back(n int) *uint256.Int {
	return &st.data[len(st.data)-n-1]
}

// Len returns the number of items on the stack.
func (st *Stack) Len() int { return len(st.data) }
