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

import "sync"

// Diagnostics accumulates the non-fatal conditions Lower's rules hit during
// a run (ArgCountMismatch, MissingPayload) without changing the fact that
// Lower itself never fails. A caller that wants strict-mode behavior --
// treat one of these as a hard error -- attaches a *Diagnostics via
// Attach(), runs the script, then inspects HasErrors() afterward; Lower's
// signature and return value stay untouched either way.
type Diagnostics struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewDiagnostics returns an empty accumulator ready to Attach.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{counts: make(map[string]int)}
}

func (d *Diagnostics) record(kind string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.counts[kind]++
}

// Count returns how many diagnostics of kind were recorded.
func (d *Diagnostics) Count(kind string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.counts[kind]
}

// HasErrors reports whether any diagnostic was recorded at all.
func (d *Diagnostics) HasErrors() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.counts) > 0
}

// active is the Diagnostics instance, if any, that lowering rules report
// into. It mirrors Log's package-level-var-as-seam pattern: nil by default
// (recording a no-op), swapped in by a caller that wants strict-mode
// accounting without threading a parameter through every rule function.
var active *Diagnostics

// Attach installs d as the active diagnostics sink; pass nil to detach.
// Not safe to call concurrently with an in-flight Lower call.
func Attach(d *Diagnostics) {
	active = d
}

func recordDiagnostic(kind string) {
	active.record(kind)
}
