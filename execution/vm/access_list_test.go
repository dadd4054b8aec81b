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

	"github.com/kestrelvm/kestrel/common"
)

func TestAccessListTouch(t *testing.T) {
	al := NewAccessList()
	a := common.BytesToAddress([]byte{1})
	b := common.BytesToAddress([]byte{2})

	require.Equal(t, ColdAccess, al.Touch(a))
	require.Equal(t, WarmAccess, al.Touch(a))
	require.Equal(t, ColdAccess, al.Touch(b))
	require.True(t, al.Contains(a))
}

func TestAccessListWarm(t *testing.T) {
	al := NewAccessList()
	a := common.BytesToAddress([]byte{1})
	require.False(t, al.Contains(a))

	al.Warm(a)
	require.Equal(t, WarmAccess, al.Touch(a), "pre-warmed address is never charged cold")
}
