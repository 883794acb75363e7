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
package dex

import "fmt"

// FieldRef is the (class, field_type, field_name) triple returned by
// ConstantPool.GetField.
type FieldRef struct {
	Class string
	Type  string
	Name  string
}

// Proto is a method's parsed prototype: parameter descriptors in order and
// the return-type descriptor.
type Proto struct {
	ParamTypes []string
	ReturnType string
}

// Triple uniquely identifies a method reference: (class, name, proto).
type Triple struct {
	Class string
	Name  string
	Proto Proto
}

// MethodRef is a resolved method reference from the constant pool.
type MethodRef interface {
	ClassName() string
	Name() string
	ProtoOf() Proto
	TripleOf() Triple
}

// ConstantPool is the borrowed, read-only, per-instruction handle a DEX
// parser attaches to every Instruction. This module never mutates it.
type ConstantPool interface {
	GetType(index int) string
	GetField(index int) FieldRef
	GetMethodRef(index int) MethodRef
}

// simpleMethodRef is the concrete MethodRef stored in Pool.
type simpleMethodRef struct {
	class string
	name  string
	proto Proto
}

func (m simpleMethodRef) ClassName() string { return m.class }
func (m simpleMethodRef) Name() string      { return m.name }
func (m simpleMethodRef) ProtoOf() Proto    { return m.proto }
func (m simpleMethodRef) TripleOf() Triple {
	return Triple{Class: m.class, Name: m.name, Proto: m.proto}
}

// Pool is an in-memory ConstantPool used by asmscript, the CLI demo driver,
// and tests. It is not a DEX file parser: entries are registered directly by
// index rather than decoded from a binary constant pool section.
type Pool struct {
	types   map[int]string
	fields  map[int]FieldRef
	methods map[int]MethodRef
}

// NewPool returns an empty in-memory constant pool ready for registration.
func NewPool() *Pool {
	return &Pool{
		types:   make(map[int]string),
		fields:  make(map[int]FieldRef),
		methods: make(map[int]MethodRef),
	}
}

// PutType registers a type descriptor at index.
func (p *Pool) PutType(index int, descriptor string) { p.types[index] = descriptor }

// PutField registers a field reference at index.
func (p *Pool) PutField(index int, ref FieldRef) { p.fields[index] = ref }

// PutMethod registers a method reference at index.
func (p *Pool) PutMethod(index int, class, name string, proto Proto) {
	p.methods[index] = simpleMethodRef{class: class, name: name, proto: proto}
}

func (p *Pool) GetType(index int) string {
	if t, ok := p.types[index]; ok {
		return t
	}
	return fmt.Sprintf("<unresolved-type@%d>", index)
}

func (p *Pool) GetField(index int) FieldRef {
	if f, ok := p.fields[index]; ok {
		return f
	}
	return FieldRef{Class: "<unresolved>", Type: "<unresolved>", Name: fmt.Sprintf("field@%d", index)}
}

func (p *Pool) GetMethodRef(index int) MethodRef {
	if m, ok := p.methods[index]; ok {
		return m
	}
	return simpleMethodRef{class: "<unresolved>", name: fmt.Sprintf("method@%d", index)}
}
