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

// Package asmscript is a tiny line-oriented textual instruction format used
// by the CLI and integration tests to build a []dex.Instruction sequence and
// drive lower.Lower over it. It is not smali and does not attempt to parse
// real DEX/smali syntax -- it covers a subset of mnemonics spanning every
// instruction format, enough to exercise every arity family and the
// wide-slot-packing / sign-folding / operand-reversal corners spec.md calls
// out.
package asmscript

import "github.com/zebrapurring/androguard/dex"

// format names the instruction shape a mnemonic decodes into, matching
// Dalvik's own format naming (12x, 22c, 35c, ...).
type format int

const (
	fmt10x  format = iota // no operands: nop, return-void
	fmt11x                // vAA: return, throw, monitor-*
	fmt12x                // vA, vB: move, unary, convert, 2addr arithmetic
	fmt11n                // vA, #+B: const/4
	fmt21s                // vAA, #+BBBB: const/16, const-wide/16
	fmt21h                // vAA, #+BBBB0000...: const/high16
	fmt21c                // vAA, thing@BBBB: const-string, const-class, check-cast, new-instance, sget*, sput*
	fmt22c                // vA, vB, thing@CCCC: instance-of, new-array, iget*, iput*
	fmt23x                // vAA, vBB, vCC: three-address arithmetic, aget*, aput*, cmp*
	fmt22s                // vA, vB, #+CCCC: */lit16
	fmt22b                // vAA, vBB, #+CC: */lit8
	fmt22t                // vA, vB, +CCCC: if-<cond>
	fmt21t                // vAA, +BBBB: if-<cond>z
	fmt31i                // vAA, #+BBBBBBBB: const, const-wide/32
	fmt51l                // vAA, #+wide: const-wide
	fmt35c                // {regs}, thing@BBBB: invoke-* (non-range), filled-new-array
	fmt3rc                // {vCCCC..vNNNN}, thing@BBBB: invoke-*/range, filled-new-array/range
	fmt3rd                // vAA, +BBBBBBBB: fill-array-data, packed-switch, sparse-switch
	fmtRet                // vAA (move-result family; needs-ret arity)
	fmtExc                // vAA, type (move-exception; needs-type arity)
)

type opSpec struct {
	opcode dex.Opcode
	format format
}
