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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/zebrapurring/androguard/dex"
)

// pool wraps a *dex.Pool with dedup registries, so the same descriptor
// string parsed twice (e.g. two calls to the same method) reuses one
// constant-pool index instead of minting a fresh one every time.
type pool struct {
	p       *dex.Pool
	next    int
	types   map[string]int
	fields  map[string]int
	methods map[string]int
}

func newPool() *pool {
	return &pool{
		p:       dex.NewPool(),
		types:   make(map[string]int),
		fields:  make(map[string]int),
		methods: make(map[string]int),
	}
}

func (p *pool) typeIndex(descriptor string) int {
	if idx, ok := p.types[descriptor]; ok {
		return idx
	}
	idx := p.next
	p.next++
	p.p.PutType(idx, descriptor)
	p.types[descriptor] = idx
	return idx
}

// fieldIndex parses "Lcom/Foo;->name:Type" and registers the resulting
// FieldRef, returning its constant-pool index.
func (p *pool) fieldIndex(spec string) (int, error) {
	if idx, ok := p.fields[spec]; ok {
		return idx, nil
	}
	class, rest, ok := strings.Cut(spec, "->")
	if !ok {
		return 0, errors.Errorf("malformed field reference %q: want Class;->name:Type", spec)
	}
	name, typ, ok := strings.Cut(rest, ":")
	if !ok {
		return 0, errors.Errorf("malformed field reference %q: want Class;->name:Type", spec)
	}
	idx := p.next
	p.next++
	p.p.PutField(idx, dex.FieldRef{Class: class, Type: typ, Name: name})
	p.fields[spec] = idx
	return idx, nil
}

// methodIndex parses "Lcom/Foo;->bar(ILjava/lang/String;)V" and registers
// the resulting method reference, returning its constant-pool index.
func (p *pool) methodIndex(spec string) (int, error) {
	if idx, ok := p.methods[spec]; ok {
		return idx, nil
	}
	class, rest, ok := strings.Cut(spec, "->")
	if !ok {
		return 0, errors.Errorf("malformed method reference %q: want Class;->name(Params)Ret", spec)
	}
	open := strings.IndexByte(rest, '(')
	shut := strings.IndexByte(rest, ')')
	if open < 0 || shut < 0 || shut < open {
		return 0, errors.Errorf("malformed method reference %q: want Class;->name(Params)Ret", spec)
	}
	name := rest[:open]
	paramsRaw := rest[open+1 : shut]
	ret := rest[shut+1:]
	proto := dex.Proto{ParamTypes: dex.ParseParams(paramsRaw), ReturnType: ret}
	idx := p.next
	p.next++
	p.p.PutMethod(idx, class, name, proto)
	p.methods[spec] = idx
	return idx, nil
}

// Parse reads an asmscript source and returns the decoded instruction
// sequence plus the constant pool it populated along the way. Blank lines
// and lines starting with # are ignored.
func Parse(r io.Reader) ([]*dex.Instruction, dex.ConstantPool, error) {
	cp := newPool()
	var out []*dex.Instruction
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ins, err := parseLine(cp, line)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "asmscript line %d: %q", lineNo, line)
		}
		out = append(out, ins)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "asmscript: reading source")
	}
	return out, cp.p, nil
}

func parseLine(cp *pool, line string) (*dex.Instruction, error) {
	mnemonic, body, _ := strings.Cut(line, " ")
	spec, ok := mnemonics[mnemonic]
	if !ok {
		return nil, errors.Errorf("unknown mnemonic %q", mnemonic)
	}
	ops := splitOperands(strings.TrimSpace(body))
	ins := &dex.Instruction{Opcode: spec.opcode, Name: mnemonic, CM: cp.p}
	if err := populate(cp, ins, spec.format, ops); err != nil {
		return nil, err
	}
	return ins, nil
}

// splitOperands splits a comma-separated operand list at top level, but
// keeps the contents of a {...} register group together as one token.
func splitOperands(body string) []string {
	if body == "" {
		return nil
	}
	var out []string
	depth := 0
	start := 0
	for i, r := range body {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	out = append(out, strings.TrimSpace(body[start:]))
	return out
}

func parseReg(tok string) (int, error) {
	tok = strings.TrimSpace(tok)
	if !strings.HasPrefix(tok, "v") {
		return 0, errors.Errorf("expected register operand, got %q", tok)
	}
	return strconv.Atoi(tok[1:])
}

func parseImm(tok string) (int64, error) {
	tok = strings.TrimSpace(tok)
	tok = strings.TrimPrefix(tok, "#")
	tok = strings.TrimPrefix(tok, "+")
	return strconv.ParseInt(tok, 0, 64)
}

func parseGroup(tok string) ([]int, error) {
	tok = strings.TrimSpace(tok)
	tok = strings.TrimPrefix(tok, "{")
	tok = strings.TrimSuffix(tok, "}")
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil, nil
	}
	if strings.Contains(tok, "..") {
		lo, hi, _ := strings.Cut(tok, "..")
		start, err := parseReg(lo)
		if err != nil {
			return nil, err
		}
		end, err := parseReg(hi)
		if err != nil {
			return nil, err
		}
		regs := make([]int, 0, end-start+1)
		for v := start; v <= end; v++ {
			regs = append(regs, v)
		}
		return regs, nil
	}
	var regs []int
	for _, part := range strings.Split(tok, ",") {
		v, err := parseReg(part)
		if err != nil {
			return nil, err
		}
		regs = append(regs, v)
	}
	return regs, nil
}

func unquote(tok string) string {
	tok = strings.TrimSpace(tok)
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		return tok[1 : len(tok)-1]
	}
	return tok
}

// populate decodes ops into ins's raw fields according to format, resolving
// any @-prefixed reference against cp.
func populate(cp *pool, ins *dex.Instruction, f format, ops []string) error {
	reg := func(i int) (int, error) {
		if i >= len(ops) {
			return 0, errors.Errorf("%s: expected at least %d operands", ins.Name, i+1)
		}
		return parseReg(ops[i])
	}
	imm := func(i int) (int64, error) {
		if i >= len(ops) {
			return 0, errors.Errorf("%s: expected at least %d operands", ins.Name, i+1)
		}
		return parseImm(ops[i])
	}

	switch f {
	case fmt10x:
		return nil
	case fmt11x, fmtRet:
		v, err := reg(0)
		if err != nil {
			return err
		}
		ins.AA = v
		return nil
	case fmt12x:
		a, err := reg(0)
		if err != nil {
			return err
		}
		b, err := reg(1)
		if err != nil {
			return err
		}
		ins.A, ins.B = a, b
		return nil
	case fmt11n:
		a, err := reg(0)
		if err != nil {
			return err
		}
		n, err := imm(1)
		if err != nil {
			return err
		}
		ins.A, ins.B = a, int(n)
		return nil
	case fmt21s, fmt21h:
		aa, err := reg(0)
		if err != nil {
			return err
		}
		n, err := imm(1)
		if err != nil {
			return err
		}
		ins.AA, ins.BBBB = aa, int(n)
		return nil
	case fmt31i:
		aa, err := reg(0)
		if err != nil {
			return err
		}
		n, err := imm(1)
		if err != nil {
			return err
		}
		ins.AA, ins.AAAAAAAA = aa, n
		return nil
	case fmt51l:
		aa, err := reg(0)
		if err != nil {
			return err
		}
		n, err := imm(1)
		if err != nil {
			return err
		}
		ins.AA, ins.BBBBBBBBBBBBBBBB = aa, n
		return nil
	case fmt23x:
		aa, err := reg(0)
		if err != nil {
			return err
		}
		bb, err := reg(1)
		if err != nil {
			return err
		}
		cc, err := reg(2)
		if err != nil {
			return err
		}
		ins.AA, ins.BB, ins.CC = aa, bb, cc
		return nil
	case fmt22s:
		a, err := reg(0)
		if err != nil {
			return err
		}
		b, err := reg(1)
		if err != nil {
			return err
		}
		n, err := imm(2)
		if err != nil {
			return err
		}
		ins.A, ins.B, ins.CCCC = a, b, int(n)
		return nil
	case fmt22b:
		aa, err := reg(0)
		if err != nil {
			return err
		}
		bb, err := reg(1)
		if err != nil {
			return err
		}
		n, err := imm(2)
		if err != nil {
			return err
		}
		ins.AA, ins.BB, ins.CC = aa, bb, int(n)
		return nil
	case fmt22t:
		a, err := reg(0)
		if err != nil {
			return err
		}
		b, err := reg(1)
		if err != nil {
			return err
		}
		ins.A, ins.B = a, b
		return nil
	case fmt21t, fmt3rd:
		aa, err := reg(0)
		if err != nil {
			return err
		}
		ins.AA = aa
		if len(ops) > 1 {
			n, err := imm(1)
			if err != nil {
				return err
			}
			ins.AAAAAAAA = n
		}
		return nil
	case fmtExc:
		aa, err := reg(0)
		if err != nil {
			return err
		}
		if len(ops) < 2 {
			return errors.Errorf("%s: expected a catch type operand", ins.Name)
		}
		ins.AA = aa
		ins.TranslatedKind = strings.TrimSpace(ops[1])
		return nil
	case fmt21c:
		aa, err := reg(0)
		if err != nil {
			return err
		}
		ins.AA = aa
		if len(ops) < 2 {
			return errors.Errorf("%s: expected a reference operand", ins.Name)
		}
		return populate21c(cp, ins, ops[1])
	case fmt22c:
		a, err := reg(0)
		if err != nil {
			return err
		}
		b, err := reg(1)
		if err != nil {
			return err
		}
		ins.A, ins.B = a, b
		if len(ops) < 3 {
			return errors.Errorf("%s: expected a reference operand", ins.Name)
		}
		return populate22c(cp, ins, ops[2])
	case fmt35c:
		if len(ops) < 2 {
			return errors.Errorf("%s: expected a register group and a method reference", ins.Name)
		}
		group, err := parseGroup(ops[0])
		if err != nil {
			return err
		}
		ins.A = len(group)
		regs := [5]int{}
		copy(regs[:], group)
		ins.C, ins.D, ins.E, ins.F, ins.G = regs[0], regs[1], regs[2], regs[3], regs[4]
		if ins.Opcode == dex.OpFilledNewArray {
			ins.TranslatedKind = strings.TrimSpace(ops[1])
			cp.typeIndex(ins.TranslatedKind)
			return nil
		}
		return populateMethodRef(cp, ins, ops[1])
	case fmt3rc:
		if len(ops) < 2 {
			return errors.Errorf("%s: expected a register range and a method reference", ins.Name)
		}
		group, err := parseGroup(ops[0])
		if err != nil {
			return err
		}
		if len(group) > 0 {
			ins.CCCC = group[0]
			ins.NNNN = group[len(group)-1]
		}
		if ins.Opcode == dex.OpFilledNewArrayRange {
			ins.TranslatedKind = strings.TrimSpace(ops[1])
			cp.typeIndex(ins.TranslatedKind)
			return nil
		}
		return populateMethodRef(cp, ins, ops[1])
	default:
		return fmt.Errorf("asmscript: unhandled format %d", f)
	}
}

// populate21c resolves the single reference operand of a 21c-format
// instruction: a quoted literal for const-string, otherwise a type or field
// descriptor depending on which mnemonic is decoding it.
func populate21c(cp *pool, ins *dex.Instruction, ref string) error {
	switch ins.Opcode {
	case dex.OpConstString, dex.OpConstStringJumbo:
		ins.RawString = unquote(ref)
		return nil
	case dex.OpSget, dex.OpSgetWide, dex.OpSgetObject, dex.OpSgetBoolean, dex.OpSgetByte, dex.OpSgetChar, dex.OpSgetShort,
		dex.OpSput, dex.OpSputWide, dex.OpSputObject, dex.OpSputBoolean, dex.OpSputByte, dex.OpSputChar, dex.OpSputShort:
		idx, err := cp.fieldIndex(strings.TrimSpace(ref))
		if err != nil {
			return err
		}
		ins.BBBB = idx
		return nil
	default: // const-class, check-cast, new-instance
		ins.TranslatedKind = strings.TrimSpace(ref)
		cp.typeIndex(ins.TranslatedKind)
		return nil
	}
}

// populate22c resolves the reference operand of a 22c-format instruction:
// a type descriptor for instance-of/new-array, a field descriptor for
// iget*/iput*.
func populate22c(cp *pool, ins *dex.Instruction, ref string) error {
	switch ins.Opcode {
	case dex.OpInstanceOf, dex.OpNewArray:
		ins.TranslatedKind = strings.TrimSpace(ref)
		cp.typeIndex(ins.TranslatedKind)
		return nil
	default: // iget*/iput*
		idx, err := cp.fieldIndex(strings.TrimSpace(ref))
		if err != nil {
			return err
		}
		ins.CCCC = idx
		return nil
	}
}

func populateMethodRef(cp *pool, ins *dex.Instruction, ref string) error {
	idx, err := cp.methodIndex(strings.TrimSpace(ref))
	if err != nil {
		return err
	}
	ins.BBBB = idx
	return nil
}
