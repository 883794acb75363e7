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

// PayloadKind distinguishes the three kinds of secondary data blob a Dalvik
// instruction can reference by offset.
type PayloadKind int

const (
	PayloadFillArrayData PayloadKind = iota
	PayloadPackedSwitch
	PayloadSparseSwitch
)

// Payload is the opaque secondary data blob attached to fill-array-data,
// packed-switch, and sparse-switch instructions. This module does not
// interpret its contents; it is looked up by the CFG builder from the
// instruction's offset and handed in without further processing.
type Payload struct {
	Kind PayloadKind
	Raw  []byte
}
