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

// InstanceExpression is iget*: reads an instance field. FieldType and
// FieldName come from the constant pool's field descriptor, never from the
// opcode's own type suffix (the suffix is ignored per the lowering rule).
type InstanceExpression struct {
	Object    *Variable
	Class     string
	FieldType string
	FieldName string
}

func (*InstanceExpression) irNode() {}
func (i *InstanceExpression) String() string {
	return fmt.Sprintf("%v.%s:%s", i.Object, i.FieldName, i.FieldType)
}

// InstanceInstruction is iput*: writes an instance field.
type InstanceInstruction struct {
	Value     *Variable
	Object    *Variable
	Class     string
	FieldType string
	FieldName string
}

func (*InstanceInstruction) irNode() {}
func (i *InstanceInstruction) String() string {
	return fmt.Sprintf("%v.%s:%s = %v", i.Object, i.FieldName, i.FieldType, i.Value)
}

// StaticExpression is sget*: reads a static field, no object operand.
type StaticExpression struct {
	Class     string
	FieldType string
	FieldName string
}

func (*StaticExpression) irNode() {}
func (s *StaticExpression) String() string {
	return fmt.Sprintf("%s.%s:%s", s.Class, s.FieldName, s.FieldType)
}

// StaticInstruction is sput*.
type StaticInstruction struct {
	Value     *Variable
	Class     string
	FieldType string
	FieldName string
}

func (*StaticInstruction) irNode() {}
func (s *StaticInstruction) String() string {
	return fmt.Sprintf("%s.%s:%s = %v", s.Class, s.FieldName, s.FieldType, s.Value)
}
