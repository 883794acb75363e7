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

type resolvedMethod struct {
	class      string
	name       string
	paramTypes []string
	retType    string
	triple     ir.Triple
}

func resolveMethod(ins *dex.Instruction) resolvedMethod {
	mr := ins.CM.GetMethodRef(ins.BBBB)
	proto := mr.ProtoOf()
	t := mr.TripleOf()
	return resolvedMethod{
		class:      mr.ClassName(),
		name:       mr.Name(),
		paramTypes: proto.ParamTypes,
		retType:    proto.ReturnType,
		triple:     ir.Triple{Class: t.Class, Name: t.Name},
	}
}

// getArgs slot-packs largs against paramTypes: the register index advances
// by 1 for a normal type, 2 for a wide type (J/D), since Dalvik passes wide
// values in two consecutive registers but only ever names the low one. If
// largs runs out before paramTypes does, this is the ArgCountMismatch error
// kind: warn and return an empty arg list so lowering stays total.
func getArgs(regs *RegisterMap, paramTypes []string, largs []int) []ir.Node {
	args := make([]ir.Node, 0, len(paramTypes))
	idx := 0
	for _, t := range paramTypes {
		if idx >= len(largs) {
			Log.WithField("params", paramTypes).Warn("len(param_type) > len(largs) !")
			recordDiagnostic("arg-count-mismatch")
			return []ir.Node{}
		}
		args = append(args, regs.Lookup(largs[idx]))
		idx += dex.SlotWidth(t)
	}
	return args
}

// bindReturn applies the §4.7 lhs/ret rules given the already-selected
// receiver operand and the method's return type. It returns the lhs to use
// for the enclosing AssignExpression (nil means "evaluate for side
// effects").
func bindReturn(ret *InvokeReturn, receiver ir.Node, retType string, isCtorLikeVoid bool) *ir.Variable {
	if retType != string(dex.TagVoid) {
		return ret.New()
	}
	if isCtorLikeVoid {
		if _, ok := receiver.(*ir.ThisParam); ok {
			return nil
		}
		if v, ok := receiver.(*ir.Variable); ok {
			ret.SetTo(v)
			return v
		}
	}
	return nil
}

func invokeVirtualLike(kind string) returnFunc {
	return func(ins *dex.Instruction, regs *RegisterMap, ret *InvokeReturn) ir.Node {
		m := resolveMethod(ins)
		group := ins.ArgGroup(ins.A)
		var receiver ir.Node
		var argRegs []int
		switch kind {
		case "super":
			receiver = &ir.BaseClass{Name: "super"}
			if len(group) > 1 {
				argRegs = group[1:]
			}
		default: // "virtual", "interface"
			if len(group) > 0 {
				receiver = regs.Lookup(group[0])
				argRegs = group[1:]
			}
		}
		args := getArgs(regs, m.paramTypes, argRegs)
		invoke := &ir.InvokeInstruction{
			Class: m.class, Name: m.name, Receiver: receiver,
			RetType: m.retType, ParamTypes: m.paramTypes, Args: args, MethodTriple: m.triple,
		}
		lhs := bindReturn(ret, receiver, m.retType, false)
		return &ir.AssignExpression{Lhs: lhs, Rhs: invoke}
	}
}

// invoke-direct (constructors + private methods). The receiver is selected
// through RegisterMap.Receiver so a call through the method's own "this"
// produces a ThisParam, which bindReturn's ctor-like-void path needs to
// pattern-match on.
func invokeDirectRule(ins *dex.Instruction, regs *RegisterMap, ret *InvokeReturn) ir.Node {
	m := resolveMethod(ins)
	group := ins.ArgGroup(ins.A)
	var receiver ir.Node
	var argRegs []int
	if len(group) > 0 {
		receiver = regs.Receiver(group[0])
		argRegs = group[1:]
	}
	args := getArgs(regs, m.paramTypes, argRegs)
	invoke := &ir.InvokeDirectInstruction{
		Class: m.class, Name: m.name, Receiver: receiver,
		RetType: m.retType, ParamTypes: m.paramTypes, Args: args, MethodTriple: m.triple,
	}
	lhs := bindReturn(ret, receiver, m.retType, true)
	return &ir.AssignExpression{Lhs: lhs, Rhs: invoke}
}

func invokeStaticRule(ins *dex.Instruction, regs *RegisterMap, ret *InvokeReturn) ir.Node {
	m := resolveMethod(ins)
	argRegs := ins.ArgGroup(ins.A)
	receiver := &ir.BaseClass{Name: m.class, Descriptor: m.class}
	args := getArgs(regs, m.paramTypes, argRegs)
	invoke := &ir.InvokeStaticInstruction{
		Class: m.class, Name: m.name, Receiver: receiver,
		RetType: m.retType, ParamTypes: m.paramTypes, Args: args, MethodTriple: m.triple,
	}
	lhs := bindReturn(ret, receiver, m.retType, false)
	return &ir.AssignExpression{Lhs: lhs, Rhs: invoke}
}

// invokeStaticRangeRule builds invoke-static/range: arg registers are the
// entire contiguous [CCCC, NNNN] block, there is no receiver slot to strip,
// and the result is an InvokeStaticInstruction -- the same node type
// invoke-static (non-range) produces, so a caller never needs to care
// whether a static call happened to use the range encoding.
func invokeStaticRangeRule(ins *dex.Instruction, regs *RegisterMap, ret *InvokeReturn) ir.Node {
	m := resolveMethod(ins)
	argRegs := ins.RangeRegisters()
	receiver := &ir.BaseClass{Name: m.class, Descriptor: m.class}
	args := getArgs(regs, m.paramTypes, argRegs)
	invoke := &ir.InvokeStaticInstruction{
		Class: m.class, Name: m.name, Receiver: receiver,
		RetType: m.retType, ParamTypes: m.paramTypes, Args: args, MethodTriple: m.triple,
	}
	lhs := bindReturn(ret, receiver, m.retType, false)
	return &ir.AssignExpression{Lhs: lhs, Rhs: invoke}
}

// invokeRange builds the four non-static */range variants: arg registers
// are the contiguous [CCCC, NNNN] block, the first of which is the
// receiver. The receiver is prepended to Args -- [this_arg] + args, as the
// original decompiler builds its call argument list -- rather than kept as
// a separate field, since InvokeRangeInstruction has no distinguished
// receiver slot the way the non-range five-register group's layout gives
// the non-range instructions.
func invokeRange(kind string) returnFunc {
	return func(ins *dex.Instruction, regs *RegisterMap, ret *InvokeReturn) ir.Node {
		m := resolveMethod(ins)
		all := ins.RangeRegisters()
		var receiver ir.Node
		var argRegs []int
		ctorAware := false
		switch kind {
		case "super":
			receiver = &ir.BaseClass{Name: "super"}
			if len(all) > 1 {
				argRegs = all[1:]
			}
			ctorAware = true
		case "direct":
			if len(all) > 0 {
				receiver = regs.Receiver(all[0])
				argRegs = all[1:]
			}
			ctorAware = true
		default: // "virtual", "interface"
			if len(all) > 0 {
				receiver = regs.Lookup(all[0])
				argRegs = all[1:]
			}
		}
		args := getArgs(regs, m.paramTypes, argRegs)
		if receiver != nil {
			args = append([]ir.Node{receiver}, args...)
		}
		invoke := &ir.InvokeRangeInstruction{
			Kind: kind, Class: m.class, Name: m.name,
			RetType: m.retType, ParamTypes: m.paramTypes, Args: args, MethodTriple: m.triple,
		}
		lhs := bindReturn(ret, receiver, m.retType, ctorAware)
		return &ir.AssignExpression{Lhs: lhs, Rhs: invoke}
	}
}
