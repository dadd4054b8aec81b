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
	"github.com/sirupsen/logrus"

	"github.com/kestrelvm/kestrel/common"
	"github.com/kestrelvm/kestrel/execution/protocol/params"
)

// statusCallFailed is the outcome code pushed for a call that was never
// dispatched: depth limit, balance shortfall or sub-minimum callee gas.
// It deliberately coincides with StatusRevert so callers observe a single
// "did not succeed but execution continues" code.
const statusCallFailed = uint64(StatusRevert)

// dispatchCall runs the shared call pipeline: decode operands, charge the
// pre-dispatch gas, evaluate the rejection checks and, if they pass, invoke
// the host and record the outcome. Exactly one outcome code is pushed unless
// a fatal error is returned, in which case nothing is pushed and the frame
// halts.
func (evm *EVM) dispatchCall(kind CallKind, frame *Frame) error {
	target, overflow := popAddress(frame.Stack)
	if overflow {
		return ErrAddressOutOfRange
	}
	var value uint256.Int
	if kind == Call {
		value = frame.Stack.Pop()
	}
	inOffset := frame.Stack.Pop()
	inSize := frame.Stack.Pop()

	if kind == Call && frame.Static && !value.IsZero() {
		return ErrWriteProtection
	}

	// Mandatory charges. Failing any of these is a fatal halt, not a
	// rejected call.
	if err := evm.chargeAccessCost(frame, target); err != nil {
		return err
	}
	input, err := evm.expandInput(frame, &inOffset, &inSize)
	if err != nil {
		return err
	}
	operands := uint64(3)
	if kind == Call {
		operands = 4
	}
	if err := evm.chargeOperandCost(frame, operands); err != nil {
		return err
	}

	// Rejection checks. These push the failure code and continue execution
	// without invoking the host; gas spent above stays spent.
	if frame.Depth >= params.CallDepthLimit {
		return evm.rejectCall(kind, frame, "depth")
	}
	if kind == Call && !value.IsZero() {
		balance := evm.host.Balance(frame.Recipient)
		if balance.Lt(&value) {
			return evm.rejectCall(kind, frame, "balance")
		}
	}
	minCallee := evm.schedule.GetOr(GasKeyMinCalleeGas, params.MinCalleeGas)
	if offeredGas(frame.Gas.Remaining()) < minCallee {
		return evm.rejectCall(kind, frame, "min_callee_gas")
	}

	// Value-transfer surcharges are committed only on the dispatch path,
	// after every rejection check has passed.
	if kind == Call {
		if !frame.Gas.Charge(evm.callSurcharge(target, &value)) {
			return ErrOutOfGas
		}
	}

	offered := offeredGas(frame.Gas.Remaining())
	frame.Gas.Charge(offered)

	msg := &CallMessage{
		Kind:        kind,
		Depth:       frame.Depth + 1,
		Gas:         offered,
		Recipient:   target,
		CodeAddress: target,
		Sender:      frame.Recipient,
		Input:       input,
	}
	switch kind {
	case Call:
		msg.Value = value
	case DelegateCall:
		msg.Recipient = frame.Recipient
		msg.Value = frame.Value
	}

	res := evm.host.Call(msg)

	// The host owns res.Output only for the duration of the call; copy it
	// before anything else touches the buffer.
	evm.returnData.Set(res.Output)
	evm.AddRefund(res.GasRefund)
	frame.Gas.Refund(res.GasLeft)
	frame.Stack.PushUint64(uint64(res.Status))

	callsDispatched.WithLabelValues(kind.String(), res.Status.String()).Inc()
	callGasOffered.Add(float64(offered))
	if evm.log != nil {
		evm.log.WithFields(logrus.Fields{
			"kind":    kind.String(),
			"target":  target.String(),
			"depth":   msg.Depth,
			"offered": offered,
			"status":  res.Status.String(),
			"output":  len(res.Output),
		}).Debug("call dispatched")
	}
	return nil
}

// rejectCall ends a dispatch attempt in the light-failure state: the failure
// code is pushed, no host invocation happens and the return-data buffer is
// left untouched.
func (evm *EVM) rejectCall(kind CallKind, frame *Frame, reason string) error {
	frame.Stack.PushUint64(statusCallFailed)
	callsRejected.WithLabelValues(kind.String(), reason).Inc()
	if evm.log != nil {
		evm.log.WithFields(logrus.Fields{
			"kind":   kind.String(),
			"reason": reason,
		}).Debug("call rejected")
	}
	return nil
}

// popAddress pops a stack word and narrows it to a 20-byte address. The
// overflow flag is set when any of the upper 12 bytes are nonzero; such
// operands must halt execution rather than wrap into a valid address.
func popAddress(st *Stack) (common.Address, bool) {
	word := st.Pop()
	if word.ByteLen() > 20 {
		return common.Address{}, true
	}
	return common.Address(word.Bytes20()), false
}

func opExtCall(pc *uint64, evm *EVM, frame *Frame) ([]byte, error) {
	return nil, evm.dispatchCall(Call, frame)
}

func opExtDelegateCall(pc *uint64, evm *EVM, frame *Frame) ([]byte, error) {
	return nil, evm.dispatchCall(DelegateCall, frame)
}

func opExtStaticCall(pc *uint64, evm *EVM, frame *Frame) ([]byte, error) {
	return nil, evm.dispatchCall(StaticCall, frame)
}

// opReturnDataLoad reads 32 bytes from the return-data buffer at the popped
// offset. The bounds check is strict: reads past the end halt execution.
func opReturnDataLoad(pc *uint64, evm *EVM, frame *Frame) ([]byte, error) {
	offset := frame.Stack.Peek()
	word, err := evm.returnData.Load32(offset)
	if err != nil {
		return nil, err
	}
	offset.SetBytes(word)
	return nil, nil
}
