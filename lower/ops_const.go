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

// assignConst builds AssignExpression(Variable(dst), Constant). Type tags on
// constants are chosen by opcode family, not by inspecting value, per §4.2.
func assignConst(regs *RegisterMap, dst int, value interface{}, tag string) *ir.AssignExpression {
	return &ir.AssignExpression{
		Lhs: regs.Lookup(dst),
		Rhs: &ir.Constant{Value: value, TypeTag: tag},
	}
}

func const4Rule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return assignConst(regs, ins.A, int64(ins.B), string(dex.TagInt))
}

func const16Rule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return assignConst(regs, ins.AA, int64(ins.BBBB), string(dex.TagInt))
}

func constRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return assignConst(regs, ins.AA, ins.AAAAAAAA, string(dex.TagInt))
}

// const/high16 stores the raw 16-bit immediate; the << 16 shift is a
// printing concern handled by a later stage, not lowering.
func constHigh16Rule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return assignConst(regs, ins.AA, int64(ins.BBBB), string(dex.TagInt))
}

func constWide16Rule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return assignConst(regs, ins.AA, int64(int16(ins.BBBB)), string(dex.TagLong))
}

func constWide32Rule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return assignConst(regs, ins.AA, ins.AAAAAAAA, string(dex.TagLong))
}

func constWideRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return assignConst(regs, ins.AA, ins.BBBBBBBBBBBBBBBB, string(dex.TagLong))
}

func constWideHigh16Rule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return assignConst(regs, ins.AA, int64(ins.BBBB), string(dex.TagLong))
}

func constStringRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	c := &ir.Constant{Value: ins.RawString, TypeTag: dex.StringType}
	return &ir.AssignExpression{Lhs: regs.Lookup(ins.AA), Rhs: c}
}

func constClassRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	c := &ir.Constant{Value: ins.TranslatedKind, TypeTag: dex.ClassType, Descriptor: ins.TranslatedKind}
	return &ir.AssignExpression{Lhs: regs.Lookup(ins.AA), Rhs: c}
}
