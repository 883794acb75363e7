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

import (
	"github.com/zebrapurring/androguard/dex"
	"github.com/zebrapurring/androguard/ir"
)

func newInstanceRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return &ir.AssignExpression{
		Lhs: regs.Lookup(ins.AA),
		Rhs: &ir.NewInstance{Type: ins.TranslatedKind},
	}
}

func newArrayRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return &ir.AssignExpression{
		Lhs: regs.Lookup(ins.A),
		Rhs: &ir.NewArrayExpression{Size: regs.Lookup(ins.B), ArrayType: ins.TranslatedKind},
	}
}

// filled-new-array takes the first A registers from the five-slot group
// {C,D,E,F,G} (A is the element count).
func filledNewArrayRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	group := [5]int{ins.C, ins.D, ins.E, ins.F, ins.G}
	count := ins.A
	if count > len(group) {
		count = len(group)
	}
	elems := make([]ir.Node, count)
	for i := 0; i < count; i++ {
		elems[i] = regs.Lookup(group[i])
	}
	return &ir.FilledArrayExpression{ArrayType: ins.TranslatedKind, Elements: elems}
}

// filled-new-array/range stores the two-element [start, end] shortcut
// rather than the expanded register list; expanding it is the CFG
// builder's job (see §9 open question / DESIGN.md).
func filledNewArrayRangeRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	start, end := regs.Lookup(ins.CCCC), regs.Lookup(ins.NNNN)
	return &ir.FilledArrayExpression{
		ArrayType: ins.TranslatedKind,
		Ranged:    true,
		Range:     &[2]*ir.Variable{start, end},
	}
}

func fillArrayDataRule(ins *dex.Instruction, regs *RegisterMap, payload *dex.Payload) ir.Node {
	if payload == nil {
		// MissingPayload sentinel: dst=nil, detected by a later stage.
		recordDiagnostic("missing-payload")
		return &ir.FillArrayExpression{Dst: nil}
	}
	return &ir.FillArrayExpression{Dst: regs.Lookup(ins.AA), Payload: payload}
}

func instanceOfRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	cls := &ir.BaseClass{Name: ins.TranslatedKind, Descriptor: ins.TranslatedKind}
	return &ir.AssignExpression{
		Lhs: regs.Lookup(ins.A),
		Rhs: &ir.BinaryExpression{Op: ir.OpInstanceOf, Lhs: regs.Lookup(ins.B), Rhs: cls, TypeTag: string(dex.TagBoolean)},
	}
}

// check-cast's lhs and the operand inside CheckCastExpression are the same
// Variable, reflecting Dalvik's in-place cast.
func checkCastRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	v := regs.Lookup(ins.AA)
	return &ir.AssignExpression{
		Lhs: v,
		Rhs: &ir.CheckCastExpression{Operand: v, Type: ins.TranslatedKind, Descriptor: ins.TranslatedKind},
	}
}

func arrayLengthRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return &ir.AssignExpression{
		Lhs: regs.Lookup(ins.A),
		Rhs: &ir.ArrayLengthExpression{Array: regs.Lookup(ins.B)},
	}
}

// aget builds the aget* family rule: 23x format, dst=AA, array=BB, index=CC.
// elemType carries the opcode suffix (empty for plain aget/aput).
func aget(elemType string) plainFunc {
	return func(ins *dex.Instruction, regs *RegisterMap) ir.Node {
		return &ir.AssignExpression{
			Lhs: regs.Lookup(ins.AA),
			Rhs: &ir.ArrayLoadExpression{Array: regs.Lookup(ins.BB), Index: regs.Lookup(ins.CC), ElemType: elemType},
		}
	}
}

func aput(elemType string) plainFunc {
	return func(ins *dex.Instruction, regs *RegisterMap) ir.Node {
		return &ir.ArrayStoreInstruction{
			Value: regs.Lookup(ins.AA), Array: regs.Lookup(ins.BB), Index: regs.Lookup(ins.CC), ElemType: elemType,
		}
	}
}
