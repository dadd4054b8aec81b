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

package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesToAddress(t *testing.T) {
	a := BytesToAddress([]byte{1, 2})
	require.Equal(t, Address{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2}, a)

	// longer input keeps the rightmost 20 bytes
	long := make([]byte, 25)
	long[4] = 0xff
	long[24] = 0x01
	b := BytesToAddress(long)
	require.Equal(t, byte(0), b[0])
	require.Equal(t, byte(0x01), b[19])
}

func TestAddressIsZero(t *testing.T) {
	require.True(t, Address{}.IsZero())
	require.False(t, BytesToAddress([]byte{1}).IsZero())
}
