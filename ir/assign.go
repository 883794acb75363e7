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
package ir

import "fmt"

// AssignExpression assigns Rhs to Lhs. Lhs == nil means "evaluate Rhs for
// its side effects", used by void invokes that bind to no variable.
type AssignExpression struct {
	Lhs *Variable
	Rhs Node
}

func (*AssignExpression) irNode() {}
func (a *AssignExpression) String() string {
	if a.Lhs == nil {
		return fmt.Sprintf("%v", a.Rhs)
	}
	return fmt.Sprintf("%v = %v", a.Lhs, a.Rhs)
}

// MoveExpression is a register-to-register copy. Every move* opcode (move,
// move/from16, move/16, move-wide*, move-object*) lowers to this same shape
// regardless of width or object-ness -- that distinction is recovered later
// by type inference, not carried in the IR.
type MoveExpression struct {
	Dst *Variable
	Src *Variable
}

func (*MoveExpression) irNode() {}
func (m *MoveExpression) String() string { return fmt.Sprintf("%v := %v", m.Dst, m.Src) }

// MoveResultExpression binds the pending result of the previous invoke to
// Dst. ResultSource is always a concrete Node by the time lowering produces
// this value -- see lower.InvokeReturn.Pending.
type MoveResultExpression struct {
	Dst          *Variable
	ResultSource Node
}

func (*MoveResultExpression) irNode() {}
func (m *MoveResultExpression) String() string {
	return fmt.Sprintf("%v := move-result(%v)", m.Dst, m.ResultSource)
}

// MoveExceptionExpression binds the caught exception object to Dst; Type is
// the declared catch type of the enclosing handler, supplied by the CFG
// builder since it is not recoverable from the instruction alone.
type MoveExceptionExpression struct {
	Dst  *Variable
	Type string
}

func (*MoveExceptionExpression) irNode() {}
func (m *MoveExceptionExpression) String() string {
	return fmt.Sprintf("%v := move-exception(%s)", m.Dst, m.Type)
}

// ReturnInstruction returns Operand, or nothing if Operand is nil
// (return-void).
type ReturnInstruction struct {
	Operand *Variable
}

func (*ReturnInstruction) irNode() {}
func (r *ReturnInstruction) String() string {
	if r.Operand == nil {
		return "return"
	}
	return fmt.Sprintf("return %v", r.Operand)
}
