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
package lower

import "github.com/zebrapurring/androguard/ir"

// syntheticVReg is the base of the disjoint vreg namespace used for
// invoke-return placeholders, so they can never collide with a vreg decoded
// from a real instruction.
const syntheticVReg = 1 << 20

// InvokeReturn brokers the destination variable between one invoke* opcode
// and the move-result* that follows it in the same basic block. It replaces
// the source's implicitly-passed "ret generator" object with an explicit,
// typed per-call context, per the design notes on stateful-generator
// rewrites.
//
// Exactly one InvokeReturn exists per pending invoke: the CFG builder
// (or, in this module, asmscript's block driver) creates one before
// lowering an invoke*, passes it to that invoke's lowering rule, and -- if
// a move-result* follows -- passes the same InvokeReturn in as that
// instruction's extra argument; the move-result* rule binds to its
// Pending() value.
type InvokeReturn struct {
	pending ir.Node
	counter *int
}

// NewInvokeReturn returns an InvokeReturn backed by a shared synthetic-vreg
// counter; counter should be a *int owned by the caller and reused across
// all InvokeReturns created for the same method, so every New() call (even
// across different invokes) gets a distinct placeholder vreg.
func NewInvokeReturn(counter *int) *InvokeReturn {
	return &InvokeReturn{counter: counter}
}

// New mints a fresh placeholder Variable for ret_type != V invokes. The
// placeholder is both the lhs of the enclosing AssignExpression and what a
// following MoveResultExpression references via Pending.
func (r *InvokeReturn) New() *ir.Variable {
	*r.counter++
	v := &ir.Variable{VReg: syntheticVReg + *r.counter, Synthetic: true}
	r.pending = v
	return v
}

// SetTo pins this generator to an existing variable -- used for void
// invoke-direct/invoke-super calls through a non-this receiver, which
// models a constructor call writing back into the object it constructs.
func (r *InvokeReturn) SetTo(v *ir.Variable) {
	r.pending = v
}

// Pending returns the concrete node a following move-result* should bind
// to. It is always a concrete ir.Node, never the generator itself -- this
// resolves the ambiguity in the source, where the same generator object was
// passed to both the invoke and its move-result and relied on duck typing.
func (r *InvokeReturn) Pending() ir.Node {
	return r.pending
}
