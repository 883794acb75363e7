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

// threeAddr builds the rule for the 23x three-address family: dst=AA,
// lhs=BB, rhs=CC.
func threeAddr(op ir.Op, tag string) plainFunc {
	return func(ins *dex.Instruction, regs *RegisterMap) ir.Node {
		lhs, rhs := regs.Lookup(ins.BB), regs.Lookup(ins.CC)
		return &ir.AssignExpression{
			Lhs: regs.Lookup(ins.AA),
			Rhs: &ir.BinaryExpression{Op: op, Lhs: lhs, Rhs: rhs, TypeTag: tag},
		}
	}
}

// twoAddr builds the rule for the 12x 2addr family: dst and first source
// are the same register (A), second source is B. The lhs of the resulting
// BinaryExpression2Addr is intentionally the destination Variable itself.
func twoAddr(op ir.Op, tag string) plainFunc {
	return func(ins *dex.Instruction, regs *RegisterMap) ir.Node {
		dst := regs.Lookup(ins.A)
		rhs := regs.Lookup(ins.B)
		return &ir.AssignExpression{
			Lhs: dst,
			Rhs: &ir.BinaryExpression2Addr{Op: op, Lhs: dst, Rhs: rhs, TypeTag: tag},
		}
	}
}

// lit16 builds the rule for the 22s family: dst=A, src=B, literal=CCCC
// (signed 16-bit), no sign folding.
func lit16(op ir.Op) plainFunc {
	return func(ins *dex.Instruction, regs *RegisterMap) ir.Node {
		lit := &ir.Constant{Value: int64(int16(ins.CCCC)), TypeTag: string(dex.TagInt)}
		return &ir.AssignExpression{
			Lhs: regs.Lookup(ins.A),
			Rhs: &ir.BinaryExpressionLit{Op: op, Operand: regs.Lookup(ins.B), Constant: lit},
		}
	}
}

// lit8 builds the rule for the 22b family: dst=AA, src=BB, literal=CC
// (signed 8-bit), no sign folding. add-int/lit8 gets its own rule below
// because it is the one lit8 opcode that folds the literal's sign into the
// operator.
func lit8(op ir.Op) plainFunc {
	return func(ins *dex.Instruction, regs *RegisterMap) ir.Node {
		lit := &ir.Constant{Value: int64(int8(ins.CC)), TypeTag: string(dex.TagInt)}
		return &ir.AssignExpression{
			Lhs: regs.Lookup(ins.AA),
			Rhs: &ir.BinaryExpressionLit{Op: op, Operand: regs.Lookup(ins.BB), Constant: lit},
		}
	}
}

// rsub reverses operand order: the constant sits on the left of the SUB.
// rsub-int is 22s (16-bit literal in CCCC, dst=A, src=B); rsub-int/lit8 is
// 22b (8-bit literal in CC, dst=AA, src=BB), so each format has its own rule
// below.
func rsubInt16Rule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	lit := &ir.Constant{Value: int64(int16(ins.CCCC)), TypeTag: string(dex.TagInt)}
	return &ir.AssignExpression{
		Lhs: regs.Lookup(ins.A),
		Rhs: &ir.BinaryExpressionLit{Op: ir.OpSub, Operand: regs.Lookup(ins.B), Constant: lit, ConstantFirst: true},
	}
}

func rsubInt8Rule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	lit := &ir.Constant{Value: int64(int8(ins.CC)), TypeTag: string(dex.TagInt)}
	return &ir.AssignExpression{
		Lhs: regs.Lookup(ins.AA),
		Rhs: &ir.BinaryExpressionLit{Op: ir.OpSub, Operand: regs.Lookup(ins.BB), Constant: lit, ConstantFirst: true},
	}
}

// add-int/lit8 is the one lit8 opcode with sign folding: a negative literal
// lowers as SUB of the absolute value rather than ADD of a negative
// constant.
func addIntLit8Rule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	imm := int8(ins.CC)
	op, literal := ir.OpAdd, int64(imm)
	if imm < 0 {
		op, literal = ir.OpSub, int64(-imm)
	}
	lit := &ir.Constant{Value: literal, TypeTag: string(dex.TagInt)}
	return &ir.AssignExpression{
		Lhs: regs.Lookup(ins.AA),
		Rhs: &ir.BinaryExpressionLit{Op: op, Operand: regs.Lookup(ins.BB), Constant: lit},
	}
}

// compare builds the cmpl*/cmpg*/cmp-long rule: 23x format, dst=AA,
// lhs=BB, rhs=CC. The cmpl/cmpg NaN-handling distinction collapses to the
// same Op==OpCmp per §4.4, but NaNGreater is recorded for downstream stages
// that care.
func compare(tag string, nanGreater bool) plainFunc {
	return func(ins *dex.Instruction, regs *RegisterMap) ir.Node {
		lhs, rhs := regs.Lookup(ins.BB), regs.Lookup(ins.CC)
		return &ir.AssignExpression{
			Lhs: regs.Lookup(ins.AA),
			Rhs: &ir.BinaryCompExpression{Op: ir.OpCmp, Lhs: lhs, Rhs: rhs, TypeTag: tag, NaNGreater: nanGreater},
		}
	}
}

// unary builds neg-*/not-*: 12x format, dst=A, src=B.
func unary(op ir.Op, tag string) plainFunc {
	return func(ins *dex.Instruction, regs *RegisterMap) ir.Node {
		return &ir.AssignExpression{
			Lhs: regs.Lookup(ins.A),
			Rhs: &ir.UnaryExpression{Op: op, Operand: regs.Lookup(ins.B), TypeTag: tag},
		}
	}
}

// convert builds a primitive conversion cast: 12x format, dst=A, src=B.
func convert(syntactic, tag string) plainFunc {
	return func(ins *dex.Instruction, regs *RegisterMap) ir.Node {
		return &ir.AssignExpression{
			Lhs: regs.Lookup(ins.A),
			Rhs: &ir.CastExpression{Syntactic: syntactic, TypeTag: tag, Operand: regs.Lookup(ins.B)},
		}
	}
}
