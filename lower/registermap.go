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

// Package lower is the opcode lowering core: one RegisterMap per method,
// one InvokeReturn per invoke, a dispatch table covering the full Dalvik opcode
// space, and one lowering rule per opcode producing ir.Node values. This
// package is pure and total -- it never panics on malformed input and never
// performs I/O; logging and metrics are layered on from outside (see
// lowerstats and the cmd/dlower CLI).
package lower

import "github.com/zebrapurring/androguard/ir"

// RegisterMap maps a virtual register index to its IR operand. It is a
// dense slice rather than a hash map -- vreg space is small and scoped to
// one method, so an indexed vector is both simpler and faster than hashing,
// per the design notes on the source's dict-keyed register map.
type RegisterMap struct {
	slots    []*ir.Variable
	thisVReg int
	hasThis  bool
}

// NewRegisterMap returns an empty map, ready for one method's lowering.
func NewRegisterMap() *RegisterMap {
	return &RegisterMap{}
}

// SetReceiver marks vreg as the method's own receiver register. Instance
// methods' CFG builder calls this once before lowering any instruction, so
// invoke lowering can tell "calling through my own receiver" apart from
// "calling through some other object" (the ThisParam rule in §4.7).
func (m *RegisterMap) SetReceiver(vreg int) {
	m.thisVReg = vreg
	m.hasThis = true
}

// IsReceiver reports whether vreg is the method's own receiver register.
func (m *RegisterMap) IsReceiver(vreg int) bool {
	return m.hasThis && vreg == m.thisVReg
}

// Receiver resolves vreg to a ThisParam when it names the method's own
// receiver, or a plain Variable otherwise -- the operand shape an invoke's
// receiver selection needs (§4.7 rule 5/6).
func (m *RegisterMap) Receiver(vreg int) ir.Node {
	if m.IsReceiver(vreg) {
		return &ir.ThisParam{VReg: vreg}
	}
	return m.Lookup(vreg)
}

func (m *RegisterMap) grow(n int) {
	if n < len(m.slots) {
		return
	}
	grown := make([]*ir.Variable, n+1)
	copy(grown, m.slots)
	m.slots = grown
}

// Lookup returns the Variable for vreg, installing a fresh one on first
// use. Repeated lookups of the same vreg return the identical instance.
func (m *RegisterMap) Lookup(vreg int) *ir.Variable {
	m.grow(vreg)
	if m.slots[vreg] == nil {
		m.slots[vreg] = &ir.Variable{VReg: vreg}
	}
	return m.slots[vreg]
}

// LookupMany looks up several vregs at once, preserving order. This is the
// explicit multi-arity counterpart to Lookup, replacing the source's single
// get_variables helper that overloaded single-vs-tuple return by call
// arity.
func (m *RegisterMap) LookupMany(vregs ...int) []*ir.Variable {
	out := make([]*ir.Variable, len(vregs))
	for i, v := range vregs {
		out[i] = m.Lookup(v)
	}
	return out
}
