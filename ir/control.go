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

// ConditionalExpression is if-<cond> vA, vB: a two-register comparison. The
// CFG builder, not this core, materializes the branch edges.
type ConditionalExpression struct {
	Op  Op
	Lhs *Variable
	Rhs *Variable
}

func (*ConditionalExpression) irNode() {}
func (c *ConditionalExpression) String() string {
	return fmt.Sprintf("if %v %s %v", c.Lhs, c.Op, c.Rhs)
}

// ConditionalZExpression is if-<cond>z vAA: a single-register comparison
// against zero.
type ConditionalZExpression struct {
	Op      Op
	Operand *Variable
}

func (*ConditionalZExpression) irNode() {}
func (c *ConditionalZExpression) String() string {
	return fmt.Sprintf("if %v %s 0", c.Operand, c.Op)
}

// SwitchExpression is packed-switch / sparse-switch. Expanding
// PayloadOffset's case->target table is the CFG builder's job.
type SwitchExpression struct {
	Operand       *Variable
	PayloadOffset int
}

func (*SwitchExpression) irNode() {}
func (s *SwitchExpression) String() string {
	return fmt.Sprintf("switch %v @%d", s.Operand, s.PayloadOffset)
}

// MonitorEnterExpression is monitor-enter.
type MonitorEnterExpression struct {
	Operand *Variable
}

func (*MonitorEnterExpression) irNode() {}
func (m *MonitorEnterExpression) String() string { return fmt.Sprintf("monitor-enter %v", m.Operand) }

// MonitorExitExpression is monitor-exit.
type MonitorExitExpression struct {
	Operand *Variable
}

func (*MonitorExitExpression) irNode() {}
func (m *MonitorExitExpression) String() string { return fmt.Sprintf("monitor-exit %v", m.Operand) }

// ThrowExpression is throw.
type ThrowExpression struct {
	Operand *Variable
}

func (*ThrowExpression) irNode() {}
func (t *ThrowExpression) String() string { return fmt.Sprintf("throw %v", t.Operand) }
