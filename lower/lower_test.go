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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zebrapurring/androguard/dex"
	"github.com/zebrapurring/androguard/ir"
)

// Lower must be total: every opcode in [0, TableSize) lowers to a non-nil
// node without panicking, including reserved/unused slots.
func TestLowerIsTotalAcrossFullOpcodeSpace(t *testing.T) {
	regs := NewRegisterMap()
	pool := dex.NewPool()
	for op := 0; op < dex.TableSize; op++ {
		ins := &dex.Instruction{Opcode: dex.Opcode(op), CM: pool}
		var extra interface{}
		switch ClassOf(ins.Opcode) {
		case "needs-return":
			extra = NewInvokeReturn(new(int))
		case "needs-type":
			extra = "Ljava/lang/Exception;"
		case "needs-payload":
			extra = &dex.Payload{Kind: dex.PayloadFillArrayData}
		}
		node := Lower(ins, regs, extra)
		if node == nil {
			t.Fatalf("opcode 0x%02x lowered to nil", op)
		}
	}
}

func TestReservedOpcodeSlotsLowerToNop(t *testing.T) {
	regs := NewRegisterMap()
	for _, op := range []dex.Opcode{0x3e, 0x43, 0x73, 0x79, 0x7a} {
		node := Lower(&dex.Instruction{Opcode: op}, regs, nil)
		if _, ok := node.(*ir.NopExpression); !ok {
			t.Errorf("opcode 0x%02x = %T, want *ir.NopExpression", op, node)
		}
	}
}

func TestOutOfRangeOpcodeFallsBackToNop(t *testing.T) {
	regs := NewRegisterMap()
	node := Lower(&dex.Instruction{Opcode: dex.Opcode(0xff)}, regs, nil)
	assert.IsType(t, &ir.NopExpression{}, node)
}

func TestRegisterMapReturnsIdenticalInstanceOnRepeatedLookup(t *testing.T) {
	regs := NewRegisterMap()
	a := regs.Lookup(5)
	b := regs.Lookup(5)
	assert.Same(t, a, b, "Lookup(5) should return the same *Variable instance every time")
}

func TestAddIntLit8FoldsNegativeLiteralIntoSub(t *testing.T) {
	regs := NewRegisterMap()
	ins := &dex.Instruction{Opcode: dex.OpAddIntLit8, AA: 1, BB: 2, CC: int(int8(-5))}
	node := Lower(ins, regs, nil)
	assign, ok := node.(*ir.AssignExpression)
	require.True(t, ok, "expected *ir.AssignExpression, got %T", node)
	lit, ok := assign.Rhs.(*ir.BinaryExpressionLit)
	require.True(t, ok, "expected *ir.BinaryExpressionLit, got %T", assign.Rhs)
	assert.Equal(t, ir.OpSub, lit.Op)
	assert.Equal(t, int64(5), lit.Constant.Value)
	assert.False(t, lit.ConstantFirst)
}

func TestAddIntLit8KeepsPositiveLiteralAsAdd(t *testing.T) {
	regs := NewRegisterMap()
	ins := &dex.Instruction{Opcode: dex.OpAddIntLit8, AA: 1, BB: 2, CC: 7}
	node := Lower(ins, regs, nil)
	assign := node.(*ir.AssignExpression)
	lit := assign.Rhs.(*ir.BinaryExpressionLit)
	assert.Equal(t, ir.OpAdd, lit.Op)
	assert.Equal(t, int64(7), lit.Constant.Value)
}

func TestRsubIntReversesOperandOrder(t *testing.T) {
	regs := NewRegisterMap()
	ins := &dex.Instruction{Opcode: dex.OpRsubInt, A: 1, B: 2, CCCC: 100}
	node := Lower(ins, regs, nil)
	assign := node.(*ir.AssignExpression)
	lit := assign.Rhs.(*ir.BinaryExpressionLit)
	assert.True(t, lit.ConstantFirst, "rsub-int must set ConstantFirst")
	assert.Equal(t, ir.OpSub, lit.Op)
	assert.Equal(t, int64(100), lit.Constant.Value)
}

// getArgs must slot-pack wide parameters (2 register slots) correctly
// against the declared paramTypes, and warn-and-empty when largs runs out
// early (the ArgCountMismatch condition).
func TestGetArgsPacksWideParameterSlots(t *testing.T) {
	regs := NewRegisterMap()
	// void m(long, int, String): the wide first param occupies two encoded
	// slots (v1/v2), so largs must carry one entry per slot -- [v1, v2, v3,
	// v4] -- even though v2's entry is never looked up; getArgs only reads
	// largs[idx] and then advances idx by SlotWidth(t).
	args := getArgs(regs, []string{"J", "I", "Ljava/lang/String;"}, []int{1, 2, 3, 4})
	require.Len(t, args, 3)
	assert.Same(t, regs.Lookup(1), args[0])
	assert.Same(t, regs.Lookup(3), args[1])
	assert.Same(t, regs.Lookup(4), args[2])
}

func TestGetArgsReturnsEmptyOnArgCountMismatch(t *testing.T) {
	regs := NewRegisterMap()
	args := getArgs(regs, []string{"I", "I", "I"}, []int{1})
	assert.Empty(t, args)
}

// Invoke-direct through the method's own receiver produces a ThisParam
// (not a plain Variable), which bindReturn's ctor-like-void rule uses to
// decide whether the call binds an lhs at all.
func TestInvokeDirectThroughOwnReceiverProducesThisParamAndNoLhs(t *testing.T) {
	pool := dex.NewPool()
	pool.PutMethod(0, "Lcom/example/Foo;", "<init>", dex.Proto{ReturnType: "V"})
	regs := NewRegisterMap()
	regs.SetReceiver(0)

	ins := &dex.Instruction{Opcode: dex.OpInvokeDirect, A: 1, C: 0, BBBB: 0, CM: pool}
	ret := NewInvokeReturn(new(int))
	node := Lower(ins, regs, ret)

	assign := node.(*ir.AssignExpression)
	assert.Nil(t, assign.Lhs, "void ctor call through this should not bind an lhs")
	invoke := assign.Rhs.(*ir.InvokeDirectInstruction)
	_, isThis := invoke.Receiver.(*ir.ThisParam)
	assert.True(t, isThis, "receiver through own this should be *ir.ThisParam, got %T", invoke.Receiver)
}

// Invoke-direct through a non-this receiver (constructing some other
// object) binds the lhs to that receiver variable itself, and SetTo wires
// the same variable into the InvokeReturn for a following move-result (in
// practice no move-result follows a void ctor, but the wiring must still
// be internally consistent).
func TestInvokeDirectThroughOtherObjectBindsReceiverAsLhs(t *testing.T) {
	pool := dex.NewPool()
	pool.PutMethod(0, "Lcom/example/Foo;", "<init>", dex.Proto{ReturnType: "V"})
	regs := NewRegisterMap()
	regs.SetReceiver(99) // this is v99, not the v2 the invoke targets

	ins := &dex.Instruction{Opcode: dex.OpInvokeDirect, A: 1, C: 2, BBBB: 0, CM: pool}
	ret := NewInvokeReturn(new(int))
	node := Lower(ins, regs, ret)

	assign := node.(*ir.AssignExpression)
	require.NotNil(t, assign.Lhs)
	assert.Equal(t, 2, assign.Lhs.VReg)
	assert.Same(t, regs.Lookup(2), ret.Pending())
}

// A non-void invoke-virtual mints a fresh synthetic placeholder variable,
// and the following move-result-object binds to that exact placeholder.
func TestInvokeVirtualMoveResultWiring(t *testing.T) {
	pool := dex.NewPool()
	pool.PutMethod(0, "Lcom/example/Foo;", "bar", dex.Proto{ReturnType: "Ljava/lang/String;"})
	regs := NewRegisterMap()

	invokeIns := &dex.Instruction{Opcode: dex.OpInvokeVirtual, A: 1, C: 3, BBBB: 0, CM: pool}
	ret := NewInvokeReturn(new(int))
	invokeNode := Lower(invokeIns, regs, ret)
	assign := invokeNode.(*ir.AssignExpression)
	require.NotNil(t, assign.Lhs)
	assert.True(t, assign.Lhs.Synthetic)

	moveResultIns := &dex.Instruction{Opcode: dex.OpMoveResultObject, AA: 9}
	moveResultNode := Lower(moveResultIns, regs, ret)
	mr := moveResultNode.(*ir.MoveResultExpression)
	assert.Same(t, assign.Lhs, mr.ResultSource)
	assert.Equal(t, 9, mr.Dst.VReg)
}

func TestInvokeStaticReceiverIsBaseClassAndConsumesNoReceiverSlot(t *testing.T) {
	pool := dex.NewPool()
	pool.PutMethod(0, "Lcom/example/Foo;", "bar", dex.Proto{ParamTypes: []string{"I"}, ReturnType: "I"})
	regs := NewRegisterMap()

	ins := &dex.Instruction{Opcode: dex.OpInvokeStatic, A: 1, C: 5, BBBB: 0, CM: pool}
	ret := NewInvokeReturn(new(int))
	node := Lower(ins, regs, ret)
	assign := node.(*ir.AssignExpression)
	invoke := assign.Rhs.(*ir.InvokeStaticInstruction)
	require.Len(t, invoke.Args, 1)
	assert.Same(t, regs.Lookup(5), invoke.Args[0])
	assert.Equal(t, "Lcom/example/Foo;", invoke.Receiver.Name)
}
