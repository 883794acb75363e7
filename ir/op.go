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

// Package ir defines the closed set of IR node shapes produced by the
// lowering stage: one Go type per variant, behind the Node marker
// interface, mirroring how falcon's ssa package keeps one Value shape but
// tags it with an Op enum -- except here each shape genuinely differs in
// its fields, so each gets its own struct rather than one polymorphic Value.
package ir

// Op is a binary/unary/comparison operator token, matching the original
// decompiler's string-valued Op constants one for one.
type Op string

const (
	OpAdd   Op = "+"
	OpSub   Op = "-"
	OpMul   Op = "*"
	OpDiv   Op = "/"
	OpMod   Op = "%"
	OpAnd   Op = "&"
	OpOr    Op = "|"
	OpXor   Op = "^"
	OpCmp   Op = "cmp"
	OpEqual Op = "=="
	OpNEqual Op = "!="
	OpGreater Op = ">"
	OpLower   Op = "<"
	OpGEqual  Op = ">="
	OpLEqual  Op = "<="
	OpNeg     Op = "-"
	OpNot     Op = "~"
	OpIntShl  Op = "<<"
	OpIntShr  Op = ">>"
	OpLongShl Op = "<<"
	OpLongShr Op = ">>"
	OpInstanceOf Op = "instanceof"
)
