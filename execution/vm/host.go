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
)

// CallKind selects the semantics of a nested call.
type CallKind int

const (
	// Call transfers value to and runs the code of the target.
	Call CallKind = iota
	// DelegateCall runs the target's code in the current frame's context:
	// the message keeps the current frame's recipient and value.
	DelegateCall
	// StaticCall runs the target's code with all state mutation forbidden
	// (enforced by the host) and always carries zero value.
	StaticCall
)

// String implements fmt.Stringer.
func (k CallKind) String() string {
	switch k {
	case Call:
		return "call"
	case DelegateCall:
		return "delegatecall"
	case StaticCall:
		return "staticcall"
	default:
		return "unknown"
	}
}

// CallStatus is the host-reported outcome of a completed call.
type CallStatus int

const (
	// StatusSuccess means the callee ran to completion.
	StatusSuccess CallStatus = iota
	// StatusRevert means the callee reverted its own state changes.
	StatusRevert
	// StatusFailure means the callee aborted exceptionally (out of gas,
	// invalid instruction, ...).
	StatusFailure
)

// String implements fmt.Stringer.
func (s CallStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusRevert:
		return "revert"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// CallMessage describes one nested call handed to the host. It is constructed
// fresh per dispatch; Input is a borrowed view into the caller's memory and
// must not be retained by the host past the synchronous Call invocation.
type CallMessage struct {
	Kind  CallKind
	Depth int
	Gas   uint64

	// Recipient is the account whose context the callee executes in. For
	// DelegateCall it stays the current frame's recipient; otherwise it is
	// the stack target.
	Recipient common.Address
	// CodeAddress is the account owning the code to execute. Always the
	// stack target.
	CodeAddress common.Address
	// Sender is the current frame's recipient, for every kind.
	Sender common.Address

	Value uint256.Int
	Input []byte
}

// CallResult is what the host hands back for a completed call. Output is
// owned by the host for the duration of the call; the dispatcher copies it
// into the return-data buffer before the host's buffer may be invalidated.
type CallResult struct {
	Status    CallStatus
	GasLeft   uint64
	GasRefund int64
	Output    []byte
}

// CallHost executes nested calls on behalf of the dispatcher. Call is
// strictly synchronous: the current frame is suspended until it returns.
type CallHost interface {
	Call(msg *CallMessage) CallResult
}

// AccountReader answers read-only queries into host-managed account state.
type AccountReader interface {
	// Balance returns the balance of addr.
	Balance(addr common.Address) uint256.Int
	// Exists reports whether the account at addr exists.
	Exists(addr common.Address) bool
}

// Host is the external execution-context collaborator the dispatcher is a
// pure client of.
type Host interface {
	CallHost
	AccountReader
}
