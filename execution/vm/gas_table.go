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
	"github.com/kestrelvm/kestrel/common/math"
	"github.com/kestrelvm/kestrel/execution/protocol/params"
)

// chargeAccessCost touches target on the access list and charges the
// corresponding warm or cold account access cost. The touch happens even if
// the charge then fails, matching EIP-2929 semantics.
func (evm *EVM) chargeAccessCost(frame *Frame, target common.Address) error {
	var cost uint64
	if evm.accessList.Touch(target) == ColdAccess {
		cost = evm.schedule.GetOr(GasKeyCallCold, params.ColdAccountAccessCost)
	} else {
		cost = evm.schedule.GetOr(GasKeyCallWarm, params.WarmAccountAccessCost)
	}
	if !frame.Gas.Charge(cost) {
		return ErrOutOfGas
	}
	return nil
}

// expandInput charges memory expansion for the [offset, offset+size) input
// region, grows the frame's memory and returns a pointer into it. A
// zero-size region costs nothing and yields a nil slice.
func (evm *EVM) expandInput(frame *Frame, offset, size *uint256.Int) ([]byte, error) {
	if size.IsZero() {
		return nil, nil
	}
	off64, overflow := offset.Uint64WithOverflow()
	if overflow {
		return nil, ErrGasUintOverflow
	}
	size64, overflow := size.Uint64WithOverflow()
	if overflow {
		return nil, ErrGasUintOverflow
	}
	end, overflow := math.SafeAdd(off64, size64)
	if overflow {
		return nil, ErrGasUintOverflow
	}

	newMemSize := ToWordSize(end) * 32
	cost, err := memoryGasCost(frame.Memory, newMemSize, evm.schedule.GetOr(GasKeyMemory, params.MemoryGas))
	if err != nil {
		return nil, err
	}
	if !frame.Gas.Charge(cost) {
		return nil, ErrOutOfGas
	}
	frame.Memory.Resize(newMemSize)
	return frame.Memory.GetPtr(off64, size64), nil
}

// chargeOperandCost charges the fixed per-stack-operand decode cost for a
// call instruction popping n operands.
func (evm *EVM) chargeOperandCost(frame *Frame, n uint64) error {
	if !frame.Gas.Charge(n * evm.schedule.GetOr(GasKeyCallOperand, params.CallOperandGas)) {
		return ErrOutOfGas
	}
	return nil
}

// callSurcharge returns the value-transfer surcharge for a Call-kind
// dispatch: 9000 for a nonzero value, plus 25000 when the transfer would
// create the recipient account. Zero-value calls carry no surcharge.
func (evm *EVM) callSurcharge(target common.Address, value *uint256.Int) uint64 {
	if value.IsZero() {
		return 0
	}
	cost := evm.schedule.GetOr(GasKeyCallValueXfer, params.CallValueTransferGas)
	if !evm.host.Exists(target) {
		cost += evm.schedule.GetOr(GasKeyCallNewAccount, params.CallNewAccountGas)
	}
	return cost
}
