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
)

func TestStepInvalidOpCode(t *testing.T) {
	evm := NewEVM(newMockHost(), nil, nil)
	frame := NewFrame(addrCaller, 1000)

	err := step(t, evm, frame, OpCode(0xf6))
	require.ErrorIs(t, err, ErrInvalidOpCode)
}

func TestStepStackUnderflow(t *testing.T) {
	tests := []struct {
		op   OpCode
		have int
	}{
		{RETURNDATALOAD, 0},
		{EXTCALL, 3},
		{EXTDELEGATECALL, 2},
		{EXTSTATICCALL, 2},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			evm := NewEVM(newMockHost(), nil, nil)
			frame := NewFrame(addrCaller, 1000)
			for i := 0; i < tt.have; i++ {
				frame.Stack.PushUint64(0)
			}
			err := step(t, evm, frame, tt.op)
			require.ErrorIs(t, err, ErrStackUnderflow)
		})
	}
}

func TestLegacyOnlyDisablesCallFamily(t *testing.T) {
	evm := NewEVM(newMockHost(), &Config{LegacyOnly: true}, nil)
	frame := NewFrame(addrCaller, 100000)

	for _, op := range []OpCode{RETURNDATALOAD, EXTCALL, EXTDELEGATECALL, EXTSTATICCALL} {
		frame.Stack.PushUint64(0)
		err := step(t, evm, frame, op)
		require.ErrorIs(t, err, ErrInvalidOpCode, op.String())
	}
}

func TestOpCodeString(t *testing.T) {
	require.Equal(t, "EXTCALL", EXTCALL.String())
	require.Equal(t, "EXTDELEGATECALL", EXTDELEGATECALL.String())
	require.Equal(t, "EXTSTATICCALL", EXTSTATICCALL.String())
	require.Equal(t, "RETURNDATALOAD", RETURNDATALOAD.String())
	require.Contains(t, OpCode(0x01).String(), "not defined")
}
