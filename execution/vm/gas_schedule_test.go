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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelvm/kestrel/execution/protocol/params"
)

func TestGasScheduleGetOr(t *testing.T) {
	var nilSchedule *GasSchedule
	require.Equal(t, uint64(2600), nilSchedule.GetOr(GasKeyCallCold, 2600))
	require.False(t, nilSchedule.HasOverrides())

	s := &GasSchedule{Overrides: map[string]uint64{GasKeyCallCold: 700}}
	require.Equal(t, uint64(700), s.GetOr(GasKeyCallCold, 2600))
	require.Equal(t, uint64(100), s.GetOr(GasKeyCallWarm, 100))
	require.True(t, s.HasOverrides())
}

func TestDefaultScheduleCoversAllKeys(t *testing.T) {
	defaults := DefaultSchedule()
	for _, key := range []string{
		GasKeyCallCold, GasKeyCallWarm, GasKeyCallOperand, GasKeyCallValueXfer,
		GasKeyCallNewAccount, GasKeyMinCalleeGas, GasKeyReturnDataLoad, GasKeyMemory,
	} {
		require.Contains(t, defaults, key)
	}
	require.Equal(t, uint64(params.ColdAccountAccessCost), defaults[GasKeyCallCold])
	require.Equal(t, uint64(params.MinCalleeGas), defaults[GasKeyMinCalleeGas])
}

func TestScheduleOverridesApplyToDispatch(t *testing.T) {
	host := newMockHost()
	cfg := &Config{GasOverrides: map[string]uint64{
		GasKeyCallCold:    500,
		GasKeyCallOperand: 1,
	}}

	evm := NewEVM(host, cfg, nil)
	frame := NewFrame(addrCaller, 100000)
	pushCallOperands(frame.Stack, addrTarget, nil, 0, 0)

	require.NoError(t, step(t, evm, frame, EXTSTATICCALL))

	remaining := uint64(100000 - 500 - 3)
	wantOffered := remaining - remaining/64
	require.Equal(t, wantOffered, host.calls[0].Gas)
}

func TestScheduleOverridesApplyToReturnDataLoad(t *testing.T) {
	cfg := &Config{GasOverrides: map[string]uint64{GasKeyReturnDataLoad: 50}}
	evm := NewEVM(newMockHost(), cfg, nil)
	evm.returnData.Set(make([]byte, 32))

	frame := NewFrame(addrCaller, 1000)
	frame.Stack.PushUint64(0)
	require.NoError(t, step(t, evm, frame, RETURNDATALOAD))
	require.Equal(t, uint64(950), frame.Gas.Remaining())
}
