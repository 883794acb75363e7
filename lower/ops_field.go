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

// iget lowers the iget* family: 22c format, dst=A, object=B, field@CCCC.
// The field-type tag implied by the opcode suffix is ignored in favor of
// the descriptor resolved from the constant pool.
func iget(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	field := ins.CM.GetField(ins.CCCC)
	return &ir.AssignExpression{
		Lhs: regs.Lookup(ins.A),
		Rhs: &ir.InstanceExpression{
			Object: regs.Lookup(ins.B), Class: field.Class, FieldType: field.Type, FieldName: field.Name,
		},
	}
}

func iput(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	field := ins.CM.GetField(ins.CCCC)
	return &ir.InstanceInstruction{
		Value: regs.Lookup(ins.A), Object: regs.Lookup(ins.B),
		Class: field.Class, FieldType: field.Type, FieldName: field.Name,
	}
}

func sget(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	field := ins.CM.GetField(ins.BBBB)
	return &ir.AssignExpression{
		Lhs: regs.Lookup(ins.AA),
		Rhs: &ir.StaticExpression{Class: field.Class, FieldType: field.Type, FieldName: field.Name},
	}
}

func sput(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	field := ins.CM.GetField(ins.BBBB)
	return &ir.StaticInstruction{
		Value: regs.Lookup(ins.AA), Class: field.Class, FieldType: field.Type, FieldName: field.Name,
	}
}
