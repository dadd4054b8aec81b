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
	"errors"
	"fmt"
)

// Fatal halt conditions. Any error returned by an instruction terminates the
// whole top-level execution; no outcome code is pushed for the instruction
// that triggered it. Light call failures are not errors: they push a nonzero
// status and execution continues.
var (
	ErrOutOfGas            = errors.New("out of gas")
	ErrGasUintOverflow     = errors.New("gas uint64 overflow")
	ErrInvalidMemoryAccess = errors.New("invalid memory access")
	ErrAddressOutOfRange   = errors.New("call target address out of range")
	ErrWriteProtection     = errors.New("write protection")
	ErrStackUnderflow      = errors.New("stack underflow")
	ErrStackOverflow       = errors.New("stack overflow")
	ErrInvalidOpCode       = errors.New("invalid opcode")
)

func errInvalidOpCode(op OpCode) error {
	return fmt.Errorf("%w: %s", ErrInvalidOpCode, op)
}
