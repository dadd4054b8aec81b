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
	"fmt"

	"github.com/kestrelvm/kestrel/execution/protocol/params"
)

type executionFunc func(pc *uint64, evm *EVM, frame *Frame) ([]byte, error)

type operation struct {
	execute     executionFunc
	constantGas uint64

	// minStack is the number of popped operands; maxStack the highest
	// stack length the operation still fits under the stack limit with.
	minStack int
	maxStack int
}

// JumpTable maps opcodes to their operations. Unassigned entries reject the
// opcode as invalid.
type JumpTable [256]*operation

func minStack(pops, pushes int) int { return pops }

func maxStack(pops, pushes int) int { return params.StackLimit + pops - pushes }

// newInstructionSet builds the dispatch table for the revamped call family.
// With LegacyOnly set, the table is left empty and every opcode in it is
// rejected as invalid.
func newInstructionSet(cfg *Config) *JumpTable {
	tbl := &JumpTable{}
	if cfg != nil && cfg.LegacyOnly {
		return tbl
	}
	schedule := cfg.Schedule()

	tbl[RETURNDATALOAD] = &operation{
		execute:     opReturnDataLoad,
		constantGas: schedule.GetOr(GasKeyReturnDataLoad, params.ReturnDataLoadGas),
		minStack:    minStack(1, 1),
		maxStack:    maxStack(1, 1),
	}
	// The call opcodes carry no constant cost here; the dispatcher charges
	// every component itself, in order.
	tbl[EXTCALL] = &operation{
		execute:  opExtCall,
		minStack: minStack(4, 1),
		maxStack: maxStack(4, 1),
	}
	tbl[EXTDELEGATECALL] = &operation{
		execute:  opExtDelegateCall,
		minStack: minStack(3, 1),
		maxStack: maxStack(3, 1),
	}
	tbl[EXTSTATICCALL] = &operation{
		execute:  opExtStaticCall,
		minStack: minStack(3, 1),
		maxStack: maxStack(3, 1),
	}
	return tbl
}

// Step executes a single opcode against frame: table lookup, stack bounds,
// constant gas, then the operation itself.
func (evm *EVM) Step(frame *Frame, op OpCode, pc *uint64) ([]byte, error) {
	operation := evm.table[op]
	if operation == nil {
		return nil, errInvalidOpCode(op)
	}
	if sLen := frame.Stack.Len(); sLen < operation.minStack {
		return nil, fmt.Errorf("%w (%s: have %d, want %d)", ErrStackUnderflow, op, sLen, operation.minStack)
	} else if sLen > operation.maxStack {
		return nil, fmt.Errorf("%w (%s: have %d, limit %d)", ErrStackOverflow, op, sLen, operation.maxStack)
	}
	if operation.constantGas > 0 && !frame.Gas.Charge(operation.constantGas) {
		return nil, ErrOutOfGas
	}
	return operation.execute(pc, evm, frame)
}
