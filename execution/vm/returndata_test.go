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
	"bytes"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestReturnDataLoad32Bounds(t *testing.T) {
	tests := []struct {
		name    string
		bufLen  int
		offset  uint64
		wantErr bool
	}{
		{"empty buffer", 0, 0, true},
		{"one short of a word", 31, 0, true},
		{"exact word", 32, 0, false},
		{"exact word, offset 1", 32, 1, true},
		{"34 bytes, offset 2", 34, 2, false},
		{"34 bytes, offset 3", 34, 3, true},
		{"64 bytes, offset 32", 64, 32, false},
		{"64 bytes, offset 33", 64, 33, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rd ReturnData
			buf := bytes.Repeat([]byte{0xab}, tt.bufLen)
			rd.Set(buf)

			word, err := rd.Load32(uint256.NewInt(tt.offset))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMemoryAccess)
				return
			}
			require.NoError(t, err)
			require.Equal(t, buf[tt.offset:tt.offset+32], word)
		})
	}
}

func TestReturnDataLoad32NoOffsetTruncation(t *testing.T) {
	var rd ReturnData
	rd.Set(make([]byte, 64))

	// low 64 bits are zero and would pass the bounds check if the upper
	// bits were dropped
	var offset uint256.Int
	offset.Lsh(uint256.NewInt(1), 64)

	_, err := rd.Load32(&offset)
	require.ErrorIs(t, err, ErrInvalidMemoryAccess)
}

func TestReturnDataSetCopies(t *testing.T) {
	var rd ReturnData
	src := []byte{1, 2, 3}
	rd.Set(src)
	src[0] = 9
	require.Equal(t, []byte{1, 2, 3}, rd.Bytes())

	rd.Set(nil)
	require.Zero(t, rd.Len())
}

func TestOpReturnDataLoad(t *testing.T) {
	host := newMockHost()
	host.result = CallResult{Status: StatusSuccess, Output: bytes.Repeat([]byte{0x11}, 40)}

	evm := NewEVM(host, nil, nil)
	frame := NewFrame(addrCaller, 100000)
	pushCallOperands(frame.Stack, addrTarget, nil, 0, 0)
	require.NoError(t, step(t, evm, frame, EXTSTATICCALL))
	frame.Stack.Pop()

	before := frame.Gas.Remaining()
	frame.Stack.PushUint64(8)
	require.NoError(t, step(t, evm, frame, RETURNDATALOAD))

	require.Equal(t, before-3, frame.Gas.Remaining())
	require.Equal(t, 1, frame.Stack.Len())
	var want uint256.Int
	want.SetBytes(bytes.Repeat([]byte{0x11}, 32))
	require.Equal(t, want, frame.Stack.Pop())
}

func TestOpReturnDataLoadOutOfRangeHalts(t *testing.T) {
	evm := NewEVM(newMockHost(), nil, nil)
	frame := NewFrame(addrCaller, 100000)
	frame.Stack.PushUint64(0)

	err := step(t, evm, frame, RETURNDATALOAD)
	require.ErrorIs(t, err, ErrInvalidMemoryAccess)
}

func TestOpReturnDataLoadChargesGasBeforeBoundsCheck(t *testing.T) {
	evm := NewEVM(newMockHost(), nil, nil)
	frame := NewFrame(addrCaller, 2)
	frame.Stack.PushUint64(1 << 40)

	err := step(t, evm, frame, RETURNDATALOAD)
	require.ErrorIs(t, err, ErrOutOfGas, "out of gas wins over the bounds violation")
	require.Equal(t, uint64(2), frame.Gas.Remaining())
}
