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

import "testing"

// Every node variant must implement Node without panicking on String(),
// even with zero-valued fields -- lowering never has a partially
// constructed node, but a defensive String() matters for debug printing
// of in-progress IR during development.
func TestNodeVariantsImplementNodeAndStringWithoutPanic(t *testing.T) {
	nodes := []Node{
		&Variable{VReg: 1},
		&Constant{Value: int64(5), TypeTag: "I"},
		&ThisParam{VReg: 0},
		&BaseClass{Name: "Lcom/example/Foo;"},
		&NopExpression{},
		&AssignExpression{Lhs: &Variable{VReg: 1}, Rhs: &Constant{Value: int64(1), TypeTag: "I"}},
		&MoveExpression{Dst: &Variable{VReg: 1}, Src: &Variable{VReg: 2}},
		&MoveResultExpression{Dst: &Variable{VReg: 1}},
		&MoveExceptionExpression{Dst: &Variable{VReg: 1}, Type: "Ljava/lang/Exception;"},
		&ReturnInstruction{},
		&BinaryExpression{Op: OpAdd, Lhs: &Variable{VReg: 1}, Rhs: &Variable{VReg: 2}, TypeTag: "I"},
		&BinaryExpression2Addr{Op: OpAdd, Lhs: &Variable{VReg: 1}, Rhs: &Variable{VReg: 2}, TypeTag: "I"},
		&BinaryExpressionLit{Op: OpSub, Operand: &Variable{VReg: 1}, Constant: &Constant{Value: int64(2), TypeTag: "I"}},
		&BinaryCompExpression{Op: OpCmp, Lhs: &Variable{VReg: 1}, Rhs: &Variable{VReg: 2}, TypeTag: "F"},
		&UnaryExpression{Op: OpNeg, Operand: &Variable{VReg: 1}, TypeTag: "I"},
		&CastExpression{Syntactic: "(long)", TypeTag: "J", Operand: &Variable{VReg: 1}},
		&CheckCastExpression{Operand: &Variable{VReg: 1}, Type: "Lcom/example/Foo;"},
		&ArrayLoadExpression{Array: &Variable{VReg: 1}, Index: &Variable{VReg: 2}},
		&ArrayStoreInstruction{Value: &Variable{VReg: 1}, Array: &Variable{VReg: 2}, Index: &Variable{VReg: 3}},
		&ArrayLengthExpression{Array: &Variable{VReg: 1}},
		&NewInstance{Type: "Lcom/example/Foo;"},
		&NewArrayExpression{Size: &Variable{VReg: 1}, ArrayType: "[I"},
		&FilledArrayExpression{ArrayType: "[I", Elements: []Node{&Variable{VReg: 1}}},
		&FillArrayExpression{},
		&InstanceExpression{Object: &Variable{VReg: 1}, Class: "Lcom/example/Foo;", FieldName: "bar"},
		&InstanceInstruction{Value: &Variable{VReg: 1}, Object: &Variable{VReg: 2}, FieldName: "bar"},
		&StaticExpression{Class: "Lcom/example/Foo;", FieldName: "bar"},
		&StaticInstruction{Value: &Variable{VReg: 1}, Class: "Lcom/example/Foo;", FieldName: "bar"},
		&InvokeInstruction{Class: "Lcom/example/Foo;", Name: "bar"},
		&InvokeDirectInstruction{Class: "Lcom/example/Foo;", Name: "<init>"},
		&InvokeStaticInstruction{Class: "Lcom/example/Foo;", Name: "bar"},
		&InvokeRangeInstruction{Kind: "virtual", Class: "Lcom/example/Foo;", Name: "bar"},
		&ConditionalExpression{Op: OpEqual, Lhs: &Variable{VReg: 1}, Rhs: &Variable{VReg: 2}},
		&ConditionalZExpression{Op: OpNEqual, Operand: &Variable{VReg: 1}},
		&SwitchExpression{Operand: &Variable{VReg: 1}},
		&MonitorEnterExpression{Operand: &Variable{VReg: 1}},
		&MonitorExitExpression{Operand: &Variable{VReg: 1}},
		&ThrowExpression{Operand: &Variable{VReg: 1}},
	}
	for _, n := range nodes {
		if s := n.String(); s == "" {
			t.Errorf("%T.String() returned empty string", n)
		}
	}
}

func TestConstantFirstReversesLitOperandOrder(t *testing.T) {
	lit := &BinaryExpressionLit{
		Op: OpSub, Operand: &Variable{VReg: 1},
		Constant: &Constant{Value: int64(10), TypeTag: "I"}, ConstantFirst: true,
	}
	s := lit.String()
	if want := "(const(10:I) - v1)"; s != want {
		t.Fatalf("BinaryExpressionLit.String() = %q, want %q (constant first)", s, want)
	}
}
