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

// move* opcodes lower to the same MoveExpression shape regardless of width
// or object-ness; only which raw fields name the registers differs.

func moveRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	dst, src := regs.Lookup(ins.A), regs.Lookup(ins.B)
	return &ir.MoveExpression{Dst: dst, Src: src}
}

func moveFrom16Rule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	dst, src := regs.Lookup(ins.AA), regs.Lookup(ins.BBBB)
	return &ir.MoveExpression{Dst: dst, Src: src}
}

func move16Rule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	dst, src := regs.Lookup(ins.AAAA), regs.Lookup(ins.BBBB)
	return &ir.MoveExpression{Dst: dst, Src: src}
}

func moveResultRule(ins *dex.Instruction, regs *RegisterMap, ret *InvokeReturn) ir.Node {
	dst := regs.Lookup(ins.AA)
	var source ir.Node
	if ret != nil {
		source = ret.Pending()
	}
	return &ir.MoveResultExpression{Dst: dst, ResultSource: source}
}

func moveExceptionRule(ins *dex.Instruction, regs *RegisterMap, catchType string) ir.Node {
	dst := regs.Lookup(ins.AA)
	return &ir.MoveExceptionExpression{Dst: dst, Type: catchType}
}

func returnVoidRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return &ir.ReturnInstruction{Operand: nil}
}

func returnRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return &ir.ReturnInstruction{Operand: regs.Lookup(ins.AA)}
}
