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

import (
	"reflect"
	"testing"
)

func TestArgGroupTruncatesAndOrders(t *testing.T) {
	ins := &Instruction{C: 1, D: 2, E: 3, F: 4, G: 5}
	if got := ins.ArgGroup(3); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("ArgGroup(3) = %v, want [1 2 3]", got)
	}
	if got := ins.ArgGroup(0); len(got) != 0 {
		t.Fatalf("ArgGroup(0) = %v, want empty", got)
	}
	if got := ins.ArgGroup(10); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("ArgGroup(10) = %v, want all five", got)
	}
}

func TestRangeRegistersInclusive(t *testing.T) {
	ins := &Instruction{CCCC: 2, NNNN: 5}
	got := ins.RangeRegisters()
	want := []int{2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RangeRegisters() = %v, want %v", got, want)
	}
}

func TestRangeRegistersEmptyWhenInverted(t *testing.T) {
	ins := &Instruction{CCCC: 5, NNNN: 2}
	if got := ins.RangeRegisters(); got != nil {
		t.Fatalf("RangeRegisters() = %v, want nil", got)
	}
}

func TestParseParamsMixedDescriptors(t *testing.T) {
	got := ParseParams("JILjava/lang/String;[I[Ljava/lang/Object;")
	want := []string{"J", "I", "Ljava/lang/String;", "[I", "[Ljava/lang/Object;"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseParams = %v, want %v", got, want)
	}
}

func TestSlotWidth(t *testing.T) {
	cases := map[string]int{"J": 2, "D": 2, "I": 1, "Ljava/lang/String;": 1, "[I": 1}
	for descriptor, want := range cases {
		if got := SlotWidth(descriptor); got != want {
			t.Errorf("SlotWidth(%q) = %d, want %d", descriptor, got, want)
		}
	}
}

func TestPoolReturnsPlaceholdersForUnresolvedIndices(t *testing.T) {
	p := NewPool()
	if got := p.GetType(7); got == "" {
		t.Fatalf("GetType on unregistered index returned empty string")
	}
	field := p.GetField(3)
	if field.Name == "" {
		t.Fatalf("GetField on unregistered index returned empty name")
	}
	p.PutType(1, "Lcom/example/Foo;")
	if got := p.GetType(1); got != "Lcom/example/Foo;" {
		t.Fatalf("GetType(1) = %q, want registered descriptor", got)
	}
}
