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

// conditional builds if-<cond> vA, vB: 22t format, two registers. The CFG
// builder materializes the branch edges; this rule only produces the test.
func conditional(op ir.Op) plainFunc {
	return func(ins *dex.Instruction, regs *RegisterMap) ir.Node {
		return &ir.ConditionalExpression{Op: op, Lhs: regs.Lookup(ins.A), Rhs: regs.Lookup(ins.B)}
	}
}

// conditionalZ builds if-<cond>z vAA: 21t format, single register against
// the implicit zero.
func conditionalZ(op ir.Op) plainFunc {
	return func(ins *dex.Instruction, regs *RegisterMap) ir.Node {
		return &ir.ConditionalZExpression{Op: op, Operand: regs.Lookup(ins.AA)}
	}
}

func packedSwitchRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return &ir.SwitchExpression{Operand: regs.Lookup(ins.AA), PayloadOffset: int(ins.AAAAAAAA)}
}

func throwRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return &ir.ThrowExpression{Operand: regs.Lookup(ins.AA)}
}

func monitorEnterRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return &ir.MonitorEnterExpression{Operand: regs.Lookup(ins.AA)}
}

func monitorExitRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return &ir.MonitorExitExpression{Operand: regs.Lookup(ins.AA)}
}
