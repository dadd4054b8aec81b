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

// Package vm implements the call-dispatch and gas-accounting core of an
// EOF-container EVM interpreter: the revamped call family (EXTCALL,
// EXTDELEGATECALL, EXTSTATICCALL) and RETURNDATALOAD.
package vm

import (
	"github.com/sirupsen/logrus"
)

// EVM owns the state that spans every nested frame of one top-level
// execution: the access list, the return-data buffer and the refund counter.
// Nested calls read and mutate the same instances, never private copies.
// Execution is single-threaded and synchronous; no locking is needed.
type EVM struct {
	host     Host
	table    *JumpTable
	schedule *GasSchedule
	log      *logrus.Entry

	accessList *AccessList
	returnData ReturnData
	refund     int64
}

// NewEVM returns an EVM bound to host. cfg may be nil for defaults; log may
// be nil to disable dispatch logging.
func NewEVM(host Host, cfg *Config, log *logrus.Entry) *EVM {
	evm := &EVM{
		host:       host,
		table:      newInstructionSet(cfg),
		schedule:   cfg.Schedule(),
		accessList: NewAccessList(),
	}
	if cfg != nil && cfg.Trace {
		evm.log = log
	}
	return evm
}

// Reset prepares the EVM for a new top-level execution: empty return-data
// buffer, zero refund counter, fresh access list.
func (evm *EVM) Reset() {
	evm.returnData.Reset()
	evm.refund = 0
	evm.accessList = NewAccessList()
}

// AccessList returns the execution's address access tracker. Callers may
// pre-warm addresses on it before execution starts.
func (evm *EVM) AccessList() *AccessList { return evm.accessList }

// ReturnData returns the output bytes of the most recently completed call.
func (evm *EVM) ReturnData() []byte { return evm.returnData.Bytes() }

// AddRefund folds a completed call's gas-refund hint into the execution's
// cumulative counter. No cap and no deduplication at this layer.
func (evm *EVM) AddRefund(hint int64) {
	evm.refund += hint
}

// Refund returns the cumulative refund counter for the execution.
func (evm *EVM) Refund() int64 { return evm.refund }
