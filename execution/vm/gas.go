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
	"github.com/kestrelvm/kestrel/common/math"
	"github.com/kestrelvm/kestrel/execution/protocol/params"
)

// GasMeter is the remaining-gas counter of one execution frame. It only ever
// decreases through Charge; Refund returns gas a callee left unused.
type GasMeter struct {
	remaining uint64
}

// NewGasMeter returns a meter holding limit gas.
func NewGasMeter(limit uint64) *GasMeter {
	return &GasMeter{remaining: limit}
}

// Charge deducts amount from the meter. It reports false, leaving the meter
// untouched, if the remaining gas cannot cover the charge; the caller must
// translate that into the fatal out-of-gas halt.
func (m *GasMeter) Charge(amount uint64) bool {
	if m.remaining < amount {
		return false
	}
	m.remaining -= amount
	return true
}

// Remaining returns the gas left on the meter.
func (m *GasMeter) Remaining() uint64 { return m.remaining }

// Refund returns unused gas to the meter.
func (m *GasMeter) Refund(amount uint64) {
	m.remaining += amount
}

// offeredGas applies the 63/64 retention rule: a call forwards at most
// remaining - remaining/64, guaranteeing the caller retains 1/64th.
func offeredGas(remaining uint64) uint64 {
	return remaining - remaining/64
}

// ToWordSize returns the number of 32-byte words required to hold size bytes.
func ToWordSize(size uint64) uint64 {
	if size > math.MaxUint64-31 {
		return math.MaxUint64/32 + 1
	}
	return (size + 31) / 32
}

// memoryGasCost calculates the gas for expanding memory to newMemSize bytes.
// It charges only the region being expanded, not the total memory: the linear
// and quadratic fee for the new total size minus what was already paid.
// memGas is the linear coefficient (params.MemoryGas unless overridden).
func memoryGasCost(mem *Memory, newMemSize, memGas uint64) (uint64, error) {
	if newMemSize == 0 {
		return 0, nil
	}
	// The maximum that will fit in a uint64 is max_word_count - 1. Anything
	// above that will result in an overflow. Additionally, a newMemSize which
	// results in a newMemSizeWords larger than 0xFFFFFFFF will cause the
	// square operation to overflow. The constant 0x1FFFFFFFE0 is the highest
	// number that can be used without overflowing the gas calculation.
	if newMemSize > 0x1FFFFFFFE0 {
		return 0, ErrGasUintOverflow
	}
	newMemSizeWords := ToWordSize(newMemSize)
	newMemSize = newMemSizeWords * 32

	if newMemSize > uint64(mem.Len()) {
		square := newMemSizeWords * newMemSizeWords
		linCoef := newMemSizeWords * memGas
		quadCoef := square / params.QuadCoeffDiv
		newTotalFee := linCoef + quadCoef

		fee := newTotalFee - mem.lastGasCost
		mem.lastGasCost = newTotalFee

		return fee, nil
	}
	return 0, nil
}
