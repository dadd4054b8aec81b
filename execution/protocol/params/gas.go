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

// Package params holds the protocol gas parameters for the call-family
// instructions of the EOF container format.
package params

const (
	// WarmAccountAccessCost is charged when the target of a call has already
	// been touched during the current top-level execution (EIP-2929).
	WarmAccountAccessCost uint64 = 100
	// ColdAccountAccessCost is charged on the first touch of an address during
	// the current top-level execution (EIP-2929).
	ColdAccountAccessCost uint64 = 2600

	// CallOperandGas is charged per stack operand consumed by a call
	// instruction: three operands for EXTDELEGATECALL/EXTSTATICCALL, four for
	// EXTCALL.
	CallOperandGas uint64 = 3

	// CallValueTransferGas is the surcharge for transferring value with EXTCALL.
	CallValueTransferGas uint64 = 9000
	// CallNewAccountGas is the surcharge for a value transfer that brings the
	// recipient account into existence.
	CallNewAccountGas uint64 = 25000

	// MinCalleeGas is the minimum gas a callee must receive for a call to be
	// attempted at all. A call that cannot offer this much fails lightly
	// without reaching the host.
	MinCalleeGas uint64 = 5000

	// ReturnDataLoadGas is the flat cost of RETURNDATALOAD, charged before the
	// bounds check.
	ReturnDataLoadGas uint64 = 3

	// MemoryGas is the linear coefficient of the memory expansion cost.
	MemoryGas uint64 = 3
	// QuadCoeffDiv is the divisor of the quadratic memory expansion term.
	QuadCoeffDiv uint64 = 512

	// CallDepthLimit is the maximum nesting level of call re-entrancy. A call
	// at this depth is rejected without reaching the host.
	CallDepthLimit = 1024

	// StackLimit is the maximum size of the operand stack.
	StackLimit = 1024
)
