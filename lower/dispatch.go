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
	"github.com/sirupsen/logrus"
	"github.com/zebrapurring/androguard/dex"
	"github.com/zebrapurring/androguard/ir"
	"github.com/zebrapurring/androguard/utils"
)

// class classifies which extra argument an opcode's lowering rule needs, so
// Lower's signature stays uniform for the CFG-builder-shaped caller while
// every individual rule function stays fully typed -- no interface{}
// parameters inside the 200+ opcode functions themselves.
type class int

const (
	classPlain class = iota
	classNeedsReturn
	classNeedsType
	classNeedsPayload
)

type plainFunc func(ins *dex.Instruction, regs *RegisterMap) ir.Node
type returnFunc func(ins *dex.Instruction, regs *RegisterMap, ret *InvokeReturn) ir.Node
type typeFunc func(ins *dex.Instruction, regs *RegisterMap, catchType string) ir.Node
type payloadFunc func(ins *dex.Instruction, regs *RegisterMap, payload *dex.Payload) ir.Node

// entry is one dispatch table slot: in a registered slot exactly one of the
// four function fields is non-nil, selected by class; an unregistered slot
// is the zero entry{} with none set.
type entry struct {
	class   class
	plain   plainFunc
	ret     returnFunc
	typed   typeFunc
	payload payloadFunc
}

var dispatchTable [dex.TableSize]entry

func register(op dex.Opcode, e entry) {
	utils.Assert(int(op) < len(dispatchTable), "opcode 0x%02x outside dispatch table", op)
	utils.Assert(dispatchTable[op].class == classPlain && dispatchTable[op].plain == nil,
		"opcode 0x%02x registered twice", op)
	dispatchTable[op] = e
}

// Log is the package-level logger; it defaults to logrus's standard logger
// and can be overridden (e.g. by cmd/dlower's logging setup, or by tests that
// want a silent logger) without plumbing a logger through every call.
var Log logrus.FieldLogger = logrus.StandardLogger()

// Unregistered opcodes are left at their zero entry{} (class: classPlain,
// plain: nil); Lower and ClassOf both treat that zero value as an implicit
// nop rather than needing a fill pass over the table. A fill pass would also
// race table_init.go's init(): same-package init() functions run in
// lexical filename order, so a blanket loop here would run before
// table_init.go's registrations and trip register's double-registration
// check.
func nopRule(ins *dex.Instruction, regs *RegisterMap) ir.Node {
	return &ir.NopExpression{}
}

// Lower is the single dispatch entry point: TABLE[opcode] selects the rule,
// extra supplies whatever that opcode's arity family needs (nil for
// classPlain, *InvokeReturn for invoke*/move-result*, a catch-type string
// for move-exception, or *dex.Payload for fill-array-data). Lowering never
// panics: an opcode outside the table, or one with no registered rule,
// falls back to NopExpression (the UnknownOpcode handling from the error
// design).
func Lower(ins *dex.Instruction, regs *RegisterMap, extra interface{}) ir.Node {
	idx := int(ins.Opcode)
	if idx < 0 || idx >= len(dispatchTable) {
		Log.WithField("opcode", ins.Opcode).Warn("dispatch index outside table, treating as nop")
		return &ir.NopExpression{}
	}
	e := dispatchTable[idx]
	Log.WithFields(logrus.Fields{
		"opcode": ins.Name,
		"output": ins.Output(),
	}).Debug("lowering instruction")

	switch e.class {
	case classNeedsReturn:
		ret, _ := extra.(*InvokeReturn)
		if e.ret == nil {
			return &ir.NopExpression{}
		}
		return e.ret(ins, regs, ret)
	case classNeedsType:
		catchType, _ := extra.(string)
		if e.typed == nil {
			return &ir.NopExpression{}
		}
		return e.typed(ins, regs, catchType)
	case classNeedsPayload:
		payload, _ := extra.(*dex.Payload)
		if e.payload == nil {
			return &ir.NopExpression{}
		}
		return e.payload(ins, regs, payload)
	default:
		if e.plain == nil {
			return &ir.NopExpression{}
		}
		return e.plain(ins, regs)
	}
}

// ClassOf reports which arity family an opcode belongs to, so a caller (the
// CFG builder, or asmscript's driver) knows what to pass as Lower's extra
// argument before it calls Lower.
func ClassOf(op dex.Opcode) string {
	if int(op) < 0 || int(op) >= len(dispatchTable) {
		return "plain"
	}
	switch dispatchTable[op].class {
	case classNeedsReturn:
		return "needs-return"
	case classNeedsType:
		return "needs-type"
	case classNeedsPayload:
		return "needs-payload"
	default:
		return "plain"
	}
}
