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

import "github.com/kestrelvm/kestrel/execution/protocol/params"

// GasSchedule holds configurable gas costs. When set on the EVM, the gas
// accounting reads costs through GetOr() instead of the hardcoded params.X
// constants. A nil schedule means defaults throughout.
type GasSchedule struct {
	Overrides map[string]uint64
}

// GetOr returns the override value if set, otherwise the default.
func (g *GasSchedule) GetOr(key string, defaultVal uint64) uint64 {
	if g != nil && g.Overrides != nil {
		if val, ok := g.Overrides[key]; ok {
			return val
		}
	}

	return defaultVal
}

// Gas parameter keys used in GasSchedule.Overrides.
const (
	GasKeyCallCold       = "CALL_COLD"
	GasKeyCallWarm       = "CALL_WARM"
	GasKeyCallOperand    = "CALL_OPERAND"
	GasKeyCallValueXfer  = "CALL_VALUE_XFER"
	GasKeyCallNewAccount = "CALL_NEW_ACCOUNT"
	GasKeyMinCalleeGas   = "MIN_CALLEE_GAS"
	GasKeyReturnDataLoad = "RETURNDATALOAD"
	GasKeyMemory         = "MEMORY"
)

// DefaultSchedule returns the protocol default for every known key. Used by
// tooling that wants to display the effective schedule.
func DefaultSchedule() map[string]uint64 {
	return map[string]uint64{
		GasKeyCallCold:       params.ColdAccountAccessCost,
		GasKeyCallWarm:       params.WarmAccountAccessCost,
		GasKeyCallOperand:    params.CallOperandGas,
		GasKeyCallValueXfer:  params.CallValueTransferGas,
		GasKeyCallNewAccount: params.CallNewAccountGas,
		GasKeyMinCalleeGas:   params.MinCalleeGas,
		GasKeyReturnDataLoad: params.ReturnDataLoadGas,
		GasKeyMemory:         params.MemoryGas,
	}
}

// HasOverrides returns true if any custom values have been set.
func (g *GasSchedule) HasOverrides() bool {
	return g != nil && len(g.Overrides) > 0
}
