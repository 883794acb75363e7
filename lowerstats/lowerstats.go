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

// Package lowerstats decorates lower.Lower with Prometheus counters. It is
// an external layer, not part of the pure lower package: the lowering core
// stays total and side-effect-free, and metrics are opt-in for whoever
// drives it (cmd/dlower, or a future CFG builder).
package lowerstats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zebrapurring/androguard/dex"
	"github.com/zebrapurring/androguard/ir"
	"github.com/zebrapurring/androguard/lower"
)

// Dispatcher wraps lower.Lower with its own set of Prometheus collectors,
// registered against whatever Registerer the caller supplies rather than
// the global default registry. That keeps a CLI invocation and a test both
// able to construct an independent Dispatcher without one polluting the
// other's metrics, since promauto's package-level helpers register
// unconditionally to prometheus.DefaultRegisterer.
type Dispatcher struct {
	opcodesLowered   *prometheus.CounterVec
	loweringWarnings *prometheus.CounterVec
	unknownOpcode    prometheus.Counter
}

// NewDispatcher builds a Dispatcher whose collectors are registered against
// reg. Pass prometheus.DefaultRegisterer for production use, or a fresh
// prometheus.NewRegistry() in tests.
func NewDispatcher(reg prometheus.Registerer) *Dispatcher {
	factory := promauto.With(reg)
	return &Dispatcher{
		opcodesLowered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dlower_opcodes_lowered_total",
			Help: "Number of instructions lowered, by opcode mnemonic.",
		}, []string{"opcode"}),

		loweringWarnings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dlower_lowering_warnings_total",
			Help: "Number of lowering warnings emitted, by kind.",
		}, []string{"kind"}),

		unknownOpcode: factory.NewCounter(prometheus.CounterOpts{
			Name: "dlower_unknown_opcode_total",
			Help: "Number of instructions whose opcode fell outside the dispatch table.",
		}),
	}
}

// Lower wraps lower.Lower, recording a dlower_opcodes_lowered_total sample
// for every call and a dlower_unknown_opcode_total sample when the opcode
// is outside the dispatch table's extent.
func (d *Dispatcher) Lower(ins *dex.Instruction, regs *lower.RegisterMap, extra interface{}) ir.Node {
	if int(ins.Opcode) >= dex.TableSize {
		d.unknownOpcode.Inc()
	}
	d.opcodesLowered.WithLabelValues(ins.Name).Inc()
	return lower.Lower(ins, regs, extra)
}

// Warn records a lowering warning of the given kind (e.g. "arg-count-mismatch",
// "missing-payload"). Lower does not increment this counter itself: lowering
// rules report those conditions only through lower.Log and an attached
// lower.Diagnostics, so the counter moves only when a caller invokes Warn.
func (d *Dispatcher) Warn(kind string) {
	d.loweringWarnings.WithLabelValues(kind).Inc()
}
