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

import "fmt"

// BinaryExpression is a pure three-address binary operation:
// add-int/sub-int/.../instance-of all produce this shape.
type BinaryExpression struct {
	Op      Op
	Lhs     Node
	Rhs     Node
	TypeTag string
}

func (*BinaryExpression) irNode() {}
func (b *BinaryExpression) String() string {
	return fmt.Sprintf("(%v %s %v):%s", b.Lhs, b.Op, b.Rhs, b.TypeTag)
}

// BinaryExpression2Addr is semantically identical to BinaryExpression but
// preserves the 2-addr instruction shape for later printing: Lhs is
// intentionally the same Variable as the destination, not a fresh operand.
type BinaryExpression2Addr struct {
	Op      Op
	Lhs     *Variable
	Rhs     Node
	TypeTag string
}

func (*BinaryExpression2Addr) irNode() {}
func (b *BinaryExpression2Addr) String() string {
	return fmt.Sprintf("(%v %s= %v):%s", b.Lhs, b.Op, b.Rhs, b.TypeTag)
}

// BinaryExpressionLit is a binary op against an immediate; Operand may sit
// on either side of Op (rsub-int puts the constant first).
type BinaryExpressionLit struct {
	Op       Op
	Operand  Node
	Constant *Constant
	ConstantFirst bool
}

func (*BinaryExpressionLit) irNode() {}
func (b *BinaryExpressionLit) String() string {
	if b.ConstantFirst {
		return fmt.Sprintf("(%v %s %v)", b.Constant, b.Op, b.Operand)
	}
	return fmt.Sprintf("(%v %s %v)", b.Operand, b.Op, b.Constant)
}

// BinaryCompExpression is Dalvik's cmp* three-way compare. The cmpl/cmpg
// NaN-handling distinction is collapsed into Op==OpCmp for both, matching
// source behavior; NaNGreater records which family produced the node so a
// downstream stage that cares about NaN semantics does not have to guess.
type BinaryCompExpression struct {
	Op         Op
	Lhs        *Variable
	Rhs        *Variable
	TypeTag    string
	NaNGreater bool
}

func (*BinaryCompExpression) irNode() {}
func (b *BinaryCompExpression) String() string {
	return fmt.Sprintf("%v(%v, %v):%s", b.Op, b.Lhs, b.Rhs, b.TypeTag)
}

// UnaryExpression is neg-* (OpNeg) or not-* (OpNot).
type UnaryExpression struct {
	Op      Op
	Operand *Variable
	TypeTag string
}

func (*UnaryExpression) irNode() {}
func (u *UnaryExpression) String() string {
	return fmt.Sprintf("%s%v:%s", u.Op, u.Operand, u.TypeTag)
}

// CastExpression is a primitive conversion, e.g. int-to-long. Syntactic is
// the literal cast string such as "(long)"; TypeTag is the target tag.
type CastExpression struct {
	Syntactic string
	TypeTag   string
	Operand   *Variable
}

func (*CastExpression) irNode() {}
func (c *CastExpression) String() string {
	return fmt.Sprintf("%s%v:%s", c.Syntactic, c.Operand, c.TypeTag)
}

// CheckCastExpression is check-cast's runtime class check. Operand is
// intentionally the same Variable as the enclosing AssignExpression's Lhs,
// reflecting Dalvik's in-place cast.
type CheckCastExpression struct {
	Operand    *Variable
	Type       string
	Descriptor string
}

func (*CheckCastExpression) irNode() {}
func (c *CheckCastExpression) String() string {
	return fmt.Sprintf("(%s)%v", c.Type, c.Operand)
}
