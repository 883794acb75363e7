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
package asmscript

import (
	"strings"
	"testing"

	"github.com/zebrapurring/androguard/ir"
)

const sampleScript = `
# a small synthetic method body exercising several formats at once
const/4 v0, #5
const-string v1, "hello"
new-instance v2, Lcom/example/Foo;
invoke-direct {v2}, Lcom/example/Foo;-><init>()V
invoke-virtual {v2, v0}, Lcom/example/Foo;->bar(I)Ljava/lang/String;
move-result-object v3
sget-object v4, Ljava/lang/System;->out:Ljava/io/PrintStream;
add-int v5, v0, v0
if-eqz v5, +10
return-void
`

func TestParseAndDriveSampleScript(t *testing.T) {
	instrs, _, err := Parse(strings.NewReader(sampleScript))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(instrs) != 10 {
		t.Fatalf("got %d instructions, want 10", len(instrs))
	}

	driver := NewDriver(-1)
	nodes := driver.Run(instrs)
	if len(nodes) != len(instrs) {
		t.Fatalf("got %d lowered nodes, want %d", len(nodes), len(instrs))
	}
	for i, n := range nodes {
		if n == nil {
			t.Fatalf("node %d is nil", i)
		}
		if n.String() == "" {
			t.Errorf("node %d (%T) stringified to empty", i, n)
		}
	}

	// const/4 v0, #5
	assign0, ok := nodes[0].(*ir.AssignExpression)
	if !ok {
		t.Fatalf("node 0 = %T, want *ir.AssignExpression", nodes[0])
	}
	if assign0.Lhs.VReg != 0 {
		t.Errorf("const/4 lhs = v%d, want v0", assign0.Lhs.VReg)
	}
	c, ok := assign0.Rhs.(*ir.Constant)
	if !ok || c.Value != int64(5) {
		t.Errorf("const/4 rhs = %#v, want Constant{5}", assign0.Rhs)
	}

	// new-instance v2, Lcom/example/Foo;
	assign2 := nodes[2].(*ir.AssignExpression)
	newInst, ok := assign2.Rhs.(*ir.NewInstance)
	if !ok || newInst.Type != "Lcom/example/Foo;" {
		t.Errorf("new-instance rhs = %#v", assign2.Rhs)
	}

	// invoke-direct {v2}, <init>()V is a void ctor through a non-this
	// receiver: lhs binds to the receiver variable itself (v2), not nil.
	assign3 := nodes[3].(*ir.AssignExpression)
	if assign3.Lhs == nil || assign3.Lhs.VReg != 2 {
		t.Fatalf("invoke-direct ctor lhs = %v, want v2", assign3.Lhs)
	}
	invokeDirect, ok := assign3.Rhs.(*ir.InvokeDirectInstruction)
	if !ok || invokeDirect.Name != "<init>" {
		t.Fatalf("invoke-direct rhs = %#v", assign3.Rhs)
	}

	// invoke-virtual {v2, v0}, bar(I)Ljava/lang/String; mints a synthetic
	// placeholder as lhs, since the return type is non-void.
	assign4 := nodes[4].(*ir.AssignExpression)
	if assign4.Lhs == nil || !assign4.Lhs.Synthetic {
		t.Fatalf("invoke-virtual lhs = %v, want a synthetic placeholder", assign4.Lhs)
	}
	invokeVirtual, ok := assign4.Rhs.(*ir.InvokeInstruction)
	if !ok || invokeVirtual.Name != "bar" {
		t.Fatalf("invoke-virtual rhs = %#v", assign4.Rhs)
	}
	if len(invokeVirtual.Args) != 1 {
		t.Fatalf("invoke-virtual args = %v, want 1 arg", invokeVirtual.Args)
	}

	// move-result-object v3 must bind to the exact same placeholder the
	// preceding invoke-virtual minted.
	moveResult, ok := nodes[5].(*ir.MoveResultExpression)
	if !ok {
		t.Fatalf("node 5 = %T, want *ir.MoveResultExpression", nodes[5])
	}
	if moveResult.Dst.VReg != 3 {
		t.Errorf("move-result-object dst = v%d, want v3", moveResult.Dst.VReg)
	}
	if moveResult.ResultSource != ir.Node(assign4.Lhs) {
		t.Errorf("move-result-object did not bind to the invoke's placeholder")
	}

	// sget-object v4, System.out
	assign6 := nodes[6].(*ir.AssignExpression)
	staticExpr, ok := assign6.Rhs.(*ir.StaticExpression)
	if !ok || staticExpr.FieldName != "out" || staticExpr.Class != "Ljava/lang/System;" {
		t.Errorf("sget-object rhs = %#v", assign6.Rhs)
	}

	// add-int v5, v0, v0
	assign7 := nodes[7].(*ir.AssignExpression)
	bin, ok := assign7.Rhs.(*ir.BinaryExpression)
	if !ok || bin.Op != ir.OpAdd {
		t.Errorf("add-int rhs = %#v", assign7.Rhs)
	}

	// if-eqz v5, +10
	cond, ok := nodes[8].(*ir.ConditionalZExpression)
	if !ok || cond.Operand.VReg != 5 {
		t.Errorf("if-eqz node = %#v, want ConditionalZExpression on v5", nodes[8])
	}
}

func TestIfEqzLowersToConditionalZExpression(t *testing.T) {
	instrs, _, err := Parse(strings.NewReader("if-eqz v5, +10\nreturn-void\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	nodes := NewDriver(-1).Run(instrs)
	cond, ok := nodes[0].(*ir.ConditionalZExpression)
	if !ok {
		t.Fatalf("node 0 = %T, want *ir.ConditionalZExpression", nodes[0])
	}
	if cond.Operand.VReg != 5 {
		t.Errorf("if-eqz operand = v%d, want v5", cond.Operand.VReg)
	}
	if _, ok := nodes[1].(*ir.ReturnInstruction); !ok {
		t.Errorf("node 1 = %T, want *ir.ReturnInstruction", nodes[1])
	}
}

func TestInvokeStaticThroughRangeAutoWiresMoveResultWide(t *testing.T) {
	script := `
invoke-static/range {v10 .. v12}, Lcom/example/Math;->sum(III)J
move-result-wide v20
`
	instrs, _, err := Parse(strings.NewReader(script))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(instrs) != 2 {
		t.Fatalf("got %d instructions, want 2", len(instrs))
	}
	nodes := NewDriver(-1).Run(instrs)

	// invoke-static/range lowers to the same node type as non-range
	// invoke-static: there's no receiver to strip out of the range block,
	// so it's never worth a distinct range-shaped node.
	assign := nodes[0].(*ir.AssignExpression)
	invoke, ok := assign.Rhs.(*ir.InvokeStaticInstruction)
	if !ok {
		t.Fatalf("invoke-static/range rhs = %#v, want *ir.InvokeStaticInstruction", assign.Rhs)
	}
	if len(invoke.Args) != 3 {
		t.Fatalf("invoke-static/range args = %v, want 3 (v10,v11,v12)", invoke.Args)
	}

	moveResult := nodes[1].(*ir.MoveResultExpression)
	if moveResult.Dst.VReg != 20 {
		t.Errorf("move-result-wide dst = v%d, want v20", moveResult.Dst.VReg)
	}
	if moveResult.ResultSource != ir.Node(assign.Lhs) {
		t.Errorf("move-result-wide did not bind to the range invoke's placeholder")
	}
}

func TestInvokeVirtualRangePrependsReceiverToArgs(t *testing.T) {
	script := `invoke-virtual/range {v10 .. v12}, Lcom/example/Foo;->bar(II)V` + "\n"
	instrs, _, err := Parse(strings.NewReader(script))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	nodes := NewDriver(-1).Run(instrs)

	assign := nodes[0].(*ir.AssignExpression)
	invoke, ok := assign.Rhs.(*ir.InvokeRangeInstruction)
	if !ok || invoke.Kind != "virtual" {
		t.Fatalf("invoke-virtual/range rhs = %#v", assign.Rhs)
	}
	if len(invoke.Args) != 3 {
		t.Fatalf("invoke-virtual/range args = %v, want 3 (receiver v10, then v11, v12)", invoke.Args)
	}
	recv, ok := invoke.Args[0].(*ir.Variable)
	if !ok || recv.VReg != 10 {
		t.Errorf("invoke-virtual/range args[0] = %#v, want receiver v10", invoke.Args[0])
	}
}

func TestInvokeDirectRangePrependsReceiverToArgs(t *testing.T) {
	script := `invoke-direct/range {v2 .. v3}, Lcom/example/Foo;-><init>(I)V` + "\n"
	instrs, _, err := Parse(strings.NewReader(script))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	nodes := NewDriver(-1).Run(instrs)

	assign := nodes[0].(*ir.AssignExpression)
	invoke, ok := assign.Rhs.(*ir.InvokeRangeInstruction)
	if !ok || invoke.Kind != "direct" {
		t.Fatalf("invoke-direct/range rhs = %#v", assign.Rhs)
	}
	if len(invoke.Args) != 2 {
		t.Fatalf("invoke-direct/range args = %v, want 2 (receiver v2, then v3)", invoke.Args)
	}
	recv, ok := invoke.Args[0].(*ir.Variable)
	if !ok || recv.VReg != 2 {
		t.Errorf("invoke-direct/range args[0] = %#v, want receiver v2", invoke.Args[0])
	}
}

func TestInvokeSuperRangeReceiverIsBaseClassAndPrependsToArgs(t *testing.T) {
	script := `invoke-super/range {v2 .. v3}, Lcom/example/Foo;->bar(I)V` + "\n"
	instrs, _, err := Parse(strings.NewReader(script))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	nodes := NewDriver(-1).Run(instrs)

	assign := nodes[0].(*ir.AssignExpression)
	invoke, ok := assign.Rhs.(*ir.InvokeRangeInstruction)
	if !ok || invoke.Kind != "super" {
		t.Fatalf("invoke-super/range rhs = %#v", assign.Rhs)
	}
	if len(invoke.Args) != 2 {
		t.Fatalf("invoke-super/range args = %v, want 2 (receiver, then v3)", invoke.Args)
	}
	if _, ok := invoke.Args[0].(*ir.BaseClass); !ok {
		t.Errorf("invoke-super/range args[0] = %#v, want *ir.BaseClass receiver", invoke.Args[0])
	}
}

func TestInvokeInterfaceRangePrependsReceiverToArgs(t *testing.T) {
	script := `invoke-interface/range {v5 .. v6}, Lcom/example/Foo;->bar(I)V` + "\n"
	instrs, _, err := Parse(strings.NewReader(script))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	nodes := NewDriver(-1).Run(instrs)

	assign := nodes[0].(*ir.AssignExpression)
	invoke, ok := assign.Rhs.(*ir.InvokeRangeInstruction)
	if !ok || invoke.Kind != "interface" {
		t.Fatalf("invoke-interface/range rhs = %#v", assign.Rhs)
	}
	if len(invoke.Args) != 2 {
		t.Fatalf("invoke-interface/range args = %v, want 2 (receiver v5, then v6)", invoke.Args)
	}
	recv, ok := invoke.Args[0].(*ir.Variable)
	if !ok || recv.VReg != 5 {
		t.Errorf("invoke-interface/range args[0] = %#v, want receiver v5", invoke.Args[0])
	}
}

func TestUnknownMnemonicIsAParseError(t *testing.T) {
	_, _, err := Parse(strings.NewReader("frobnicate v0, v1\n"))
	if err == nil {
		t.Fatal("expected a parse error for an unknown mnemonic")
	}
}

func TestConstantPoolDedupesRepeatedFieldReferences(t *testing.T) {
	script := `
sget-object v0, Ljava/lang/System;->out:Ljava/io/PrintStream;
sget-object v1, Ljava/lang/System;->out:Ljava/io/PrintStream;
`
	instrs, cp, err := Parse(strings.NewReader(script))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if instrs[0].BBBB != instrs[1].BBBB {
		t.Errorf("two identical field references got different pool indices: %d vs %d",
			instrs[0].BBBB, instrs[1].BBBB)
	}
	field := cp.GetField(instrs[0].BBBB)
	if field.Name != "out" || field.Class != "Ljava/lang/System;" {
		t.Errorf("resolved field = %#v", field)
	}
}
