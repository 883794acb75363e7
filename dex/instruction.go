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

// Package dex models the external collaborator this module borrows from: a
// DEX parser's decoded Instruction records and constant-pool handle. None of
// the types here parse a real .dex file; Pool is an in-memory stand-in used
// by the asmscript driver, the CLI, and tests.
package dex

import "fmt"

// Instruction is one decoded Dalvik instruction. Field names follow the
// Dalvik bytecode format convention (vA/vB nibbles, vAA/vBB bytes, vAAAA/
// vBBBB/vCCCC shorts, vAAAAAAAA words, vBBBBBBBBBBBBBBBB long immediates)
// rather than any single semantic meaning; which fields are populated, and
// what they mean, depends on Opcode's instruction format.
type Instruction struct {
	Opcode Opcode
	Name   string // mnemonic, e.g. "add-int/lit8"

	A, B, C, D, E, F, G int
	AA, BB, CC          int
	AAAA, BBBB, CCCC    int
	NNNN                int
	AAAAAAAA            int64
	BBBBBBBBBBBBBBBB    int64

	// RawString is the resolved literal for const-string*.
	RawString string
	// TranslatedKind is the resolved type descriptor for check-cast,
	// instance-of, new-instance, new-array, const-class, filled-new-array*.
	TranslatedKind string

	// Payload is attached by the CFG builder for fill-array-data,
	// packed-switch, and sparse-switch; nil until resolved.
	Payload *Payload

	CM ConstantPool
}

// Output renders a debug string in the Dalvik disassembly style, mirroring
// what the original decompiler's Instruction.get_output() produces.
func (ins *Instruction) Output() string {
	return fmt.Sprintf("%s (A=%d B=%d C=%d AA=%d BBBB=%d CCCC=%d)",
		ins.Name, ins.A, ins.B, ins.C, ins.AA, ins.BBBB, ins.CCCC)
}

// ArgGroup returns the instruction's non-range invoke five-register group in
// declaration order (C, D, E, F, G), truncated to count. For non-static
// invokes the receiver is group[0] and the remaining arg registers are
// group[1:]; for invoke-static the whole slice is the arg list. Range
// invokes use RangeRegisters instead.
func (ins *Instruction) ArgGroup(count int) []int {
	all := [5]int{ins.C, ins.D, ins.E, ins.F, ins.G}
	if count > len(all) {
		count = len(all)
	}
	if count < 0 {
		count = 0
	}
	return append([]int(nil), all[:count]...)
}

// RangeRegisters returns the contiguous [CCCC, NNNN] register block used by
// invoke-*/range instructions.
func (ins *Instruction) RangeRegisters() []int {
	if ins.NNNN < ins.CCCC {
		return nil
	}
	regs := make([]int, 0, ins.NNNN-ins.CCCC+1)
	for r := ins.CCCC; r <= ins.NNNN; r++ {
		regs = append(regs, r)
	}
	return regs
}
