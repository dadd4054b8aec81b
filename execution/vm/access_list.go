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
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/kestrelvm/kestrel/common"
)

// AccessStatus is the warm/cold tier of an address access (EIP-2929).
type AccessStatus int

const (
	// ColdAccess is the first touch of an address in a top-level execution.
	ColdAccess AccessStatus = iota
	// WarmAccess is any subsequent touch of an already-warmed address.
	WarmAccess
)

// String implements fmt.Stringer.
func (s AccessStatus) String() string {
	if s == ColdAccess {
		return "cold"
	}
	return "warm"
}

// AccessList tracks which addresses have been touched during the current
// top-level execution. It is shared by every nested frame: warming an address
// in a nested call is visible to the caller's subsequent checks.
type AccessList struct {
	addrs mapset.Set[common.Address]
}

// NewAccessList returns an empty access list.
func NewAccessList() *AccessList {
	return &AccessList{addrs: mapset.NewThreadUnsafeSet[common.Address]()}
}

// Touch records an access to addr, warming it, and returns the tier the
// access was charged at: ColdAccess on the first touch, WarmAccess after.
func (al *AccessList) Touch(addr common.Address) AccessStatus {
	if al.addrs.Add(addr) {
		return ColdAccess
	}
	return WarmAccess
}

// Warm marks addr warm without reporting a tier. Used to pre-warm addresses
// at execution start (sender, recipient, access-list entries).
func (al *AccessList) Warm(addr common.Address) {
	al.addrs.Add(addr)
}

// Contains reports whether addr is already warm.
func (al *AccessList) Contains(addr common.Address) bool {
	return al.addrs.Contains(addr)
}
