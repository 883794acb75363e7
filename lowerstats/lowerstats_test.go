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
package lowerstats

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/zebrapurring/androguard/dex"
	"github.com/zebrapurring/androguard/lower"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		var total float64
		for _, m := range fam.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func counterVecValue(t *testing.T, reg *prometheus.Registry, name, labelValue string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, m := range fam.GetMetric() {
			for _, lbl := range m.GetLabel() {
				if lbl.GetValue() == labelValue {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

// Each Dispatcher gets its own registry, so two Dispatchers in the same
// test process never trip prometheus's duplicate-registration panic and
// never see each other's counts.
func TestDispatcherLowerIncrementsOpcodesLoweredByMnemonic(t *testing.T) {
	reg := prometheus.NewRegistry()
	d := NewDispatcher(reg)
	regs := lower.NewRegisterMap()

	ins := &dex.Instruction{Opcode: dex.OpNop, Name: "nop"}
	node := d.Lower(ins, regs, nil)
	require.NotNil(t, node)

	require.Equal(t, float64(1), counterVecValue(t, reg, "dlower_opcodes_lowered_total", "nop"))
}

func TestDispatcherLowerIncrementsUnknownOpcodeOutsideTable(t *testing.T) {
	reg := prometheus.NewRegistry()
	d := NewDispatcher(reg)
	regs := lower.NewRegisterMap()

	ins := &dex.Instruction{Opcode: dex.Opcode(dex.TableSize + 10), Name: "???"}
	node := d.Lower(ins, regs, nil)
	require.NotNil(t, node)

	require.Equal(t, float64(1), counterValue(t, reg, "dlower_unknown_opcode_total"))
}

func TestDispatcherWarnIncrementsLoweringWarningsByKind(t *testing.T) {
	reg := prometheus.NewRegistry()
	d := NewDispatcher(reg)

	d.Warn("arg-count-mismatch")
	d.Warn("arg-count-mismatch")
	d.Warn("missing-payload")

	require.Equal(t, float64(2), counterVecValue(t, reg, "dlower_lowering_warnings_total", "arg-count-mismatch"))
	require.Equal(t, float64(1), counterVecValue(t, reg, "dlower_lowering_warnings_total", "missing-payload"))
}

// Two independently-registered Dispatchers must not collide even though
// they track counters with identical names -- the whole point of taking a
// prometheus.Registerer instead of relying on promauto's package-level
// default.
func TestTwoDispatchersOnSeparateRegistriesDoNotCollide(t *testing.T) {
	regA := prometheus.NewRegistry()
	regB := prometheus.NewRegistry()
	dA := NewDispatcher(regA)
	dB := NewDispatcher(regB)

	regsA := lower.NewRegisterMap()
	dA.Lower(&dex.Instruction{Opcode: dex.OpNop, Name: "nop"}, regsA, nil)

	require.Equal(t, float64(1), counterVecValue(t, regA, "dlower_opcodes_lowered_total", "nop"))
	require.Equal(t, float64(0), counterVecValue(t, regB, "dlower_opcodes_lowered_total", "nop"))
}
