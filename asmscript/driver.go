// Copyright (c) 2024 The Androguard-Go Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.
package asmscript

import (
	"github.com/zebrapurring/androguard/dex"
	"github.com/zebrapurring/androguard/ir"
	"github.com/zebrapurring/androguard/lower"
)

// LowerFunc matches lower.Lower's signature, letting a caller swap in an
// instrumented decorator (e.g. a lowerstats.Dispatcher's Lower method)
// without Driver depending on the metrics package.
type LowerFunc func(ins *dex.Instruction, regs *lower.RegisterMap, extra interface{}) ir.Node

// Driver lowers one parsed instruction sequence, playing the role a CFG
// builder would in a full decompiler: it owns the method's single
// RegisterMap and synthetic-vreg counter, and threads an InvokeReturn from
// every invoke* to the move-result* that follows it.
type Driver struct {
	Regs          *lower.RegisterMap
	Lower         LowerFunc
	counter       int
	pendingReturn *lower.InvokeReturn
}

// NewDriver returns a driver with a fresh RegisterMap, calling lower.Lower
// directly. ReceiverVReg marks the method's own "this" register (instance
// methods only); pass -1 for a static method. Set Driver.Lower afterward to
// route through an instrumented decorator instead.
func NewDriver(receiverVReg int) *Driver {
	d := &Driver{Regs: lower.NewRegisterMap(), Lower: lower.Lower}
	if receiverVReg >= 0 {
		d.Regs.SetReceiver(receiverVReg)
	}
	return d
}

// Run lowers every instruction in order, automatically supplying the extra
// argument Lower needs for each opcode's arity family: a fresh InvokeReturn
// for invoke*, that same InvokeReturn for the move-result* immediately
// following it (whose rule binds to its Pending() node), and
// catchType/payload verbatim from fields the
// parser already decoded (asmscript carries catch types in TranslatedKind
// and never attaches a real Payload, since resolving fill-array-data's
// bytes is the CFG builder's job, not lowering's).
func (d *Driver) Run(instrs []*dex.Instruction) []ir.Node {
	out := make([]ir.Node, 0, len(instrs))
	for _, ins := range instrs {
		out = append(out, d.step(ins))
	}
	return out
}

func (d *Driver) step(ins *dex.Instruction) ir.Node {
	switch lower.ClassOf(ins.Opcode) {
	case "needs-return":
		if isMoveResultLike(ins.Opcode) {
			ret := d.pendingReturn
			d.pendingReturn = nil
			return d.Lower(ins, d.Regs, ret)
		}
		ret := lower.NewInvokeReturn(&d.counter)
		d.pendingReturn = ret
		return d.Lower(ins, d.Regs, ret)
	case "needs-type":
		return d.Lower(ins, d.Regs, ins.TranslatedKind)
	case "needs-payload":
		return d.Lower(ins, d.Regs, ins.Payload)
	default:
		return d.Lower(ins, d.Regs, nil)
	}
}

func isMoveResultLike(op dex.Opcode) bool {
	switch op {
	case dex.OpMoveResult, dex.OpMoveResultWide, dex.OpMoveResultObject:
		return true
	default:
		return false
	}
}
