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

// Opcode is a Dalvik opcode byte. The full opcode space runs 0x00 to 0xE2
// inclusive; reserved/unused slots (0x3e-0x43, 0x73, 0x79, 0x7a) are valid
// Opcode values that the dispatch table maps to nop.
type Opcode byte

const (
	OpNop                 Opcode = 0x00
	OpMove                Opcode = 0x01
	OpMoveFrom16          Opcode = 0x02
	OpMove16              Opcode = 0x03
	OpMoveWide            Opcode = 0x04
	OpMoveWideFrom16      Opcode = 0x05
	OpMoveWide16          Opcode = 0x06
	OpMoveObject          Opcode = 0x07
	OpMoveObjectFrom16    Opcode = 0x08
	OpMoveObject16        Opcode = 0x09
	OpMoveResult          Opcode = 0x0a
	OpMoveResultWide      Opcode = 0x0b
	OpMoveResultObject    Opcode = 0x0c
	OpMoveException       Opcode = 0x0d
	OpReturnVoid          Opcode = 0x0e
	OpReturn              Opcode = 0x0f
	OpReturnWide          Opcode = 0x10
	OpReturnObject        Opcode = 0x11
	OpConst4              Opcode = 0x12
	OpConst16             Opcode = 0x13
	OpConst               Opcode = 0x14
	OpConstHigh16         Opcode = 0x15
	OpConstWide16         Opcode = 0x16
	OpConstWide32         Opcode = 0x17
	OpConstWide           Opcode = 0x18
	OpConstWideHigh16     Opcode = 0x19
	OpConstString         Opcode = 0x1a
	OpConstStringJumbo    Opcode = 0x1b
	OpConstClass          Opcode = 0x1c
	OpMonitorEnter        Opcode = 0x1d
	OpMonitorExit         Opcode = 0x1e
	OpCheckCast           Opcode = 0x1f
	OpInstanceOf          Opcode = 0x20
	OpArrayLength         Opcode = 0x21
	OpNewInstance         Opcode = 0x22
	OpNewArray            Opcode = 0x23
	OpFilledNewArray      Opcode = 0x24
	OpFilledNewArrayRange Opcode = 0x25
	OpFillArrayData       Opcode = 0x26
	OpThrow               Opcode = 0x27
	OpGoto                Opcode = 0x28
	OpGoto16              Opcode = 0x29
	OpGoto32              Opcode = 0x2a
	OpPackedSwitch        Opcode = 0x2b
	OpSparseSwitch        Opcode = 0x2c
	OpCmplFloat           Opcode = 0x2d
	OpCmpgFloat           Opcode = 0x2e
	OpCmplDouble          Opcode = 0x2f
	OpCmpgDouble          Opcode = 0x30
	OpCmpLong             Opcode = 0x31
	OpIfEq                Opcode = 0x32
	OpIfNe                Opcode = 0x33
	OpIfLt                Opcode = 0x34
	OpIfGe                Opcode = 0x35
	OpIfGt                Opcode = 0x36
	OpIfLe                Opcode = 0x37
	OpIfEqz               Opcode = 0x38
	OpIfNez               Opcode = 0x39
	OpIfLtz               Opcode = 0x3a
	OpIfGez               Opcode = 0x3b
	OpIfGtz               Opcode = 0x3c
	OpIfLez               Opcode = 0x3d
	// 0x3e-0x43 reserved/unused

	OpAget          Opcode = 0x44
	OpAgetWide      Opcode = 0x45
	OpAgetObject    Opcode = 0x46
	OpAgetBoolean   Opcode = 0x47
	OpAgetByte      Opcode = 0x48
	OpAgetChar      Opcode = 0x49
	OpAgetShort     Opcode = 0x4a
	OpAput          Opcode = 0x4b
	OpAputWide      Opcode = 0x4c
	OpAputObject    Opcode = 0x4d
	OpAputBoolean   Opcode = 0x4e
	OpAputByte      Opcode = 0x4f
	OpAputChar      Opcode = 0x50
	OpAputShort     Opcode = 0x51
	OpIget          Opcode = 0x52
	OpIgetWide      Opcode = 0x53
	OpIgetObject    Opcode = 0x54
	OpIgetBoolean   Opcode = 0x55
	OpIgetByte      Opcode = 0x56
	OpIgetChar      Opcode = 0x57
	OpIgetShort     Opcode = 0x58
	OpIput          Opcode = 0x59
	OpIputWide      Opcode = 0x5a
	OpIputObject    Opcode = 0x5b
	OpIputBoolean   Opcode = 0x5c
	OpIputByte      Opcode = 0x5d
	OpIputChar      Opcode = 0x5e
	OpIputShort     Opcode = 0x5f
	OpSget          Opcode = 0x60
	OpSgetWide      Opcode = 0x61
	OpSgetObject    Opcode = 0x62
	OpSgetBoolean   Opcode = 0x63
	OpSgetByte      Opcode = 0x64
	OpSgetChar      Opcode = 0x65
	OpSgetShort     Opcode = 0x66
	OpSput          Opcode = 0x67
	OpSputWide      Opcode = 0x68
	OpSputObject    Opcode = 0x69
	OpSputBoolean   Opcode = 0x6a
	OpSputByte      Opcode = 0x6b
	OpSputChar      Opcode = 0x6c
	OpSputShort     Opcode = 0x6d
	OpInvokeVirtual Opcode = 0x6e
	OpInvokeSuper   Opcode = 0x6f
	OpInvokeDirect  Opcode = 0x70
	OpInvokeStatic  Opcode = 0x71
	OpInvokeInterface Opcode = 0x72
	// 0x73 reserved/unused

	OpInvokeVirtualRange   Opcode = 0x74
	OpInvokeSuperRange     Opcode = 0x75
	OpInvokeDirectRange    Opcode = 0x76
	OpInvokeStaticRange    Opcode = 0x77
	OpInvokeInterfaceRange Opcode = 0x78
	// 0x79, 0x7a reserved/unused

	OpNegInt    Opcode = 0x7b
	OpNotInt    Opcode = 0x7c
	OpNegLong   Opcode = 0x7d
	OpNotLong   Opcode = 0x7e
	OpNegFloat  Opcode = 0x7f
	OpNegDouble Opcode = 0x80

	OpIntToLong   Opcode = 0x81
	OpIntToFloat  Opcode = 0x82
	OpIntToDouble Opcode = 0x83
	OpLongToInt   Opcode = 0x84
	OpLongToFloat Opcode = 0x85
	OpLongToDouble Opcode = 0x86
	OpFloatToInt  Opcode = 0x87
	OpFloatToLong Opcode = 0x88
	OpFloatToDouble Opcode = 0x89
	OpDoubleToInt Opcode = 0x8a
	OpDoubleToLong Opcode = 0x8b
	OpDoubleToFloat Opcode = 0x8c
	OpIntToByte   Opcode = 0x8d
	OpIntToChar   Opcode = 0x8e
	OpIntToShort  Opcode = 0x8f

	OpAddInt  Opcode = 0x90
	OpSubInt  Opcode = 0x91
	OpMulInt  Opcode = 0x92
	OpDivInt  Opcode = 0x93
	OpRemInt  Opcode = 0x94
	OpAndInt  Opcode = 0x95
	OpOrInt   Opcode = 0x96
	OpXorInt  Opcode = 0x97
	OpShlInt  Opcode = 0x98
	OpShrInt  Opcode = 0x99
	OpUshrInt Opcode = 0x9a

	OpAddLong  Opcode = 0x9b
	OpSubLong  Opcode = 0x9c
	OpMulLong  Opcode = 0x9d
	OpDivLong  Opcode = 0x9e
	OpRemLong  Opcode = 0x9f
	OpAndLong  Opcode = 0xa0
	OpOrLong   Opcode = 0xa1
	OpXorLong  Opcode = 0xa2
	OpShlLong  Opcode = 0xa3
	OpShrLong  Opcode = 0xa4
	OpUshrLong Opcode = 0xa5

	OpAddFloat Opcode = 0xa6
	OpSubFloat Opcode = 0xa7
	OpMulFloat Opcode = 0xa8
	OpDivFloat Opcode = 0xa9
	OpRemFloat Opcode = 0xaa

	OpAddDouble Opcode = 0xab
	OpSubDouble Opcode = 0xac
	OpMulDouble Opcode = 0xad
	OpDivDouble Opcode = 0xae
	OpRemDouble Opcode = 0xaf

	OpAddInt2Addr  Opcode = 0xb0
	OpSubInt2Addr  Opcode = 0xb1
	OpMulInt2Addr  Opcode = 0xb2
	OpDivInt2Addr  Opcode = 0xb3
	OpRemInt2Addr  Opcode = 0xb4
	OpAndInt2Addr  Opcode = 0xb5
	OpOrInt2Addr   Opcode = 0xb6
	OpXorInt2Addr  Opcode = 0xb7
	OpShlInt2Addr  Opcode = 0xb8
	OpShrInt2Addr  Opcode = 0xb9
	OpUshrInt2Addr Opcode = 0xba

	OpAddLong2Addr  Opcode = 0xbb
	OpSubLong2Addr  Opcode = 0xbc
	OpMulLong2Addr  Opcode = 0xbd
	OpDivLong2Addr  Opcode = 0xbe
	OpRemLong2Addr  Opcode = 0xbf
	OpAndLong2Addr  Opcode = 0xc0
	OpOrLong2Addr   Opcode = 0xc1
	OpXorLong2Addr  Opcode = 0xc2
	OpShlLong2Addr  Opcode = 0xc3
	OpShrLong2Addr  Opcode = 0xc4
	OpUshrLong2Addr Opcode = 0xc5

	OpAddFloat2Addr Opcode = 0xc6
	OpSubFloat2Addr Opcode = 0xc7
	OpMulFloat2Addr Opcode = 0xc8
	OpDivFloat2Addr Opcode = 0xc9
	OpRemFloat2Addr Opcode = 0xca

	OpAddDouble2Addr Opcode = 0xcb
	OpSubDouble2Addr Opcode = 0xcc
	OpMulDouble2Addr Opcode = 0xcd
	OpDivDouble2Addr Opcode = 0xce
	OpRemDouble2Addr Opcode = 0xcf

	OpAddIntLit16 Opcode = 0xd0
	OpRsubInt     Opcode = 0xd1
	OpMulIntLit16 Opcode = 0xd2
	OpDivIntLit16 Opcode = 0xd3
	OpRemIntLit16 Opcode = 0xd4
	OpAndIntLit16 Opcode = 0xd5
	OpOrIntLit16  Opcode = 0xd6
	OpXorIntLit16 Opcode = 0xd7

	OpAddIntLit8  Opcode = 0xd8
	OpRsubIntLit8 Opcode = 0xd9
	OpMulIntLit8  Opcode = 0xda
	OpDivIntLit8  Opcode = 0xdb
	OpRemIntLit8  Opcode = 0xdc
	OpAndIntLit8  Opcode = 0xdd
	OpOrIntLit8   Opcode = 0xde
	OpXorIntLit8  Opcode = 0xdf
	OpShlIntLit8  Opcode = 0xe0
	OpShrIntLit8  Opcode = 0xe1
	OpUshrIntLit8 Opcode = 0xe2
)

// TableSize is the dispatch table's fixed extent: opcodes 0x00 through 0xE2
// inclusive, plus one (the upper bound is exclusive).
const TableSize = 0xe3
