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

import (
	"fmt"
	"strings"
)

// Triple mirrors dex.Triple without importing dex, keeping ir dependency-free
// of the external-collaborator package -- callers convert at the boundary.
type Triple struct {
	Class string
	Name  string
}

// InvokeInstruction is invoke-virtual / invoke-super / invoke-interface
// (non-range). Receiver is Variable for virtual/interface, BaseClass for
// super.
type InvokeInstruction struct {
	Class      string
	Name       string
	Receiver   Node
	RetType    string
	ParamTypes []string
	Args       []Node
	MethodTriple Triple
}

func (*InvokeInstruction) irNode() {}
func (i *InvokeInstruction) String() string {
	return fmt.Sprintf("%v.%s(%s)", i.Receiver, i.Name, joinArgs(i.Args))
}

// InvokeDirectInstruction is invoke-direct (non-range): constructors and
// private methods.
type InvokeDirectInstruction struct {
	Class        string
	Name         string
	Receiver     Node
	RetType      string
	ParamTypes   []string
	Args         []Node
	MethodTriple Triple
}

func (*InvokeDirectInstruction) irNode() {}
func (i *InvokeDirectInstruction) String() string {
	return fmt.Sprintf("%v.%s(%s) [direct]", i.Receiver, i.Name, joinArgs(i.Args))
}

// InvokeStaticInstruction is invoke-static (non-range): Receiver is always a
// BaseClass, never an object operand.
type InvokeStaticInstruction struct {
	Class        string
	Name         string
	Receiver     *BaseClass
	RetType      string
	ParamTypes   []string
	Args         []Node
	MethodTriple Triple
}

func (*InvokeStaticInstruction) irNode() {}
func (i *InvokeStaticInstruction) String() string {
	return fmt.Sprintf("%s.%s(%s) [static]", i.Class, i.Name, joinArgs(i.Args))
}

// InvokeRangeInstruction covers the four non-static */range variants
// (invoke-static/range lowers to InvokeStaticInstruction instead, matching
// its non-range counterpart). The receiver is positionally the first entry
// of Args, not a separate field: the range register block [CCCC, NNNN] has
// no distinguished receiver slot the way the non-range five-register group
// does, so the receiver rides in Args the same way the original decompiler
// builds its call argument list as [this_arg] + args.
type InvokeRangeInstruction struct {
	Kind         string // "virtual", "super", "direct", "interface"
	Class        string
	Name         string
	RetType      string
	ParamTypes   []string
	Args         []Node
	MethodTriple Triple
}

func (*InvokeRangeInstruction) irNode() {}
func (i *InvokeRangeInstruction) String() string {
	return fmt.Sprintf("%s(%s) [%s/range]", i.Name, joinArgs(i.Args), i.Kind)
}

func joinArgs(args []Node) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}
