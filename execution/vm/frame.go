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

import (
	"github.com/holiman/uint256"

	"github.com/kestrelvm/kestrel/common"
)

// Frame is the per-call execution context: the operand stack, the linear
// memory, the gas meter and the identity of the executing account.
type Frame struct {
	Stack  *Stack
	Memory *Memory
	Gas    *GasMeter

	// Recipient is the account whose storage this frame acts on. It is the
	// sender of any outgoing call and, under EXTDELEGATECALL, also stays
	// the recipient of the nested message.
	Recipient common.Address

	// Value is the endowment this frame was called with; EXTDELEGATECALL
	// propagates it unchanged to the callee.
	Value uint256.Int

	Depth  int
	Static bool
}

// NewFrame returns a frame with an empty stack and memory and gas units on
// the meter.
func NewFrame(recipient common.Address, gas uint64) *Frame {
	return &Frame{
		Stack:     NewStack(),
		Memory:    NewMemory(),
		Gas:       NewGasMeter(gas),
		Recipient: recipient,
	}
}
