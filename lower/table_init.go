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

// This file wires every opcode from 0x00 to 0xE2 into the dispatch table,
// mirroring the hex-offset layout of the original decompiler's flat
// INSTRUCTION_SET list. Reserved/unused slots (0x3e-0x43, 0x73, 0x79, 0x7a)
// are simply never registered; Lower and ClassOf treat their zero entry{}
// as an implicit nop.
package lower

import (
	"github.com/zebrapurring/androguard/dex"
	"github.com/zebrapurring/androguard/ir"
)

func plain(f plainFunc) entry     { return entry{class: classPlain, plain: f} }
func needsRet(f returnFunc) entry { return entry{class: classNeedsReturn, ret: f} }
func needsType(f typeFunc) entry  { return entry{class: classNeedsType, typed: f} }
func needsPayload(f payloadFunc) entry {
	return entry{class: classNeedsPayload, payload: f}
}

func init() {
	// 0x00
	register(dex.OpNop, plain(nopRule))
	// 0x01-0x09: move family
	register(dex.OpMove, plain(moveRule))
	register(dex.OpMoveFrom16, plain(moveFrom16Rule))
	register(dex.OpMove16, plain(move16Rule))
	register(dex.OpMoveWide, plain(moveRule))
	register(dex.OpMoveWideFrom16, plain(moveFrom16Rule))
	register(dex.OpMoveWide16, plain(move16Rule))
	register(dex.OpMoveObject, plain(moveRule))
	register(dex.OpMoveObjectFrom16, plain(moveFrom16Rule))
	register(dex.OpMoveObject16, plain(move16Rule))
	// 0x0a-0x0c: move-result family
	register(dex.OpMoveResult, needsRet(moveResultRule))
	register(dex.OpMoveResultWide, needsRet(moveResultRule))
	register(dex.OpMoveResultObject, needsRet(moveResultRule))
	// 0x0d: move-exception
	register(dex.OpMoveException, needsType(moveExceptionRule))
	// 0x0e-0x11: return family
	register(dex.OpReturnVoid, plain(returnVoidRule))
	register(dex.OpReturn, plain(returnRule))
	register(dex.OpReturnWide, plain(returnRule))
	register(dex.OpReturnObject, plain(returnRule))
	// 0x12-0x1c: const family
	register(dex.OpConst4, plain(const4Rule))
	register(dex.OpConst16, plain(const16Rule))
	register(dex.OpConst, plain(constRule))
	register(dex.OpConstHigh16, plain(constHigh16Rule))
	register(dex.OpConstWide16, plain(constWide16Rule))
	register(dex.OpConstWide32, plain(constWide32Rule))
	register(dex.OpConstWide, plain(constWideRule))
	register(dex.OpConstWideHigh16, plain(constWideHigh16Rule))
	register(dex.OpConstString, plain(constStringRule))
	register(dex.OpConstStringJumbo, plain(constStringRule))
	register(dex.OpConstClass, plain(constClassRule))
	// 0x1d-0x1e: monitor
	register(dex.OpMonitorEnter, plain(monitorEnterRule))
	register(dex.OpMonitorExit, plain(monitorExitRule))
	// 0x1f-0x23: cast / instanceof / array-length / new
	register(dex.OpCheckCast, plain(checkCastRule))
	register(dex.OpInstanceOf, plain(instanceOfRule))
	register(dex.OpArrayLength, plain(arrayLengthRule))
	register(dex.OpNewInstance, plain(newInstanceRule))
	register(dex.OpNewArray, plain(newArrayRule))
	// 0x24-0x26: filled array / fill-array-data
	register(dex.OpFilledNewArray, plain(filledNewArrayRule))
	register(dex.OpFilledNewArrayRange, plain(filledNewArrayRangeRule))
	register(dex.OpFillArrayData, needsPayload(fillArrayDataRule))
	// 0x27: throw
	register(dex.OpThrow, plain(throwRule))
	// 0x28-0x2a: goto family
	register(dex.OpGoto, plain(nopRule))
	register(dex.OpGoto16, plain(nopRule))
	register(dex.OpGoto32, plain(nopRule))
	// 0x2b-0x2c: switch
	register(dex.OpPackedSwitch, plain(packedSwitchRule))
	register(dex.OpSparseSwitch, plain(packedSwitchRule))
	// 0x2d-0x31: compare family
	register(dex.OpCmplFloat, plain(compare(string(dex.TagFloat), false)))
	register(dex.OpCmpgFloat, plain(compare(string(dex.TagFloat), true)))
	register(dex.OpCmplDouble, plain(compare(string(dex.TagDouble), false)))
	register(dex.OpCmpgDouble, plain(compare(string(dex.TagDouble), true)))
	register(dex.OpCmpLong, plain(compare(string(dex.TagLong), false)))
	// 0x32-0x37: if-<cond>
	register(dex.OpIfEq, plain(conditional(ir.OpEqual)))
	register(dex.OpIfNe, plain(conditional(ir.OpNEqual)))
	register(dex.OpIfLt, plain(conditional(ir.OpLower)))
	register(dex.OpIfGe, plain(conditional(ir.OpGEqual)))
	register(dex.OpIfGt, plain(conditional(ir.OpGreater)))
	register(dex.OpIfLe, plain(conditional(ir.OpLEqual)))
	// 0x38-0x3d: if-<cond>z
	register(dex.OpIfEqz, plain(conditionalZ(ir.OpEqual)))
	register(dex.OpIfNez, plain(conditionalZ(ir.OpNEqual)))
	register(dex.OpIfLtz, plain(conditionalZ(ir.OpLower)))
	register(dex.OpIfGez, plain(conditionalZ(ir.OpGEqual)))
	register(dex.OpIfGtz, plain(conditionalZ(ir.OpGreater)))
	register(dex.OpIfLez, plain(conditionalZ(ir.OpLEqual)))
	// 0x3e-0x43 reserved/unused -> nop (left to the classPlain fallback)

	// 0x44-0x51: aget*/aput*
	register(dex.OpAget, plain(aget("")))
	register(dex.OpAgetWide, plain(aget(string(dex.TagWide))))
	register(dex.OpAgetObject, plain(aget(string(dex.TagObject))))
	register(dex.OpAgetBoolean, plain(aget(string(dex.TagBoolean))))
	register(dex.OpAgetByte, plain(aget(string(dex.TagByte))))
	register(dex.OpAgetChar, plain(aget(string(dex.TagChar))))
	register(dex.OpAgetShort, plain(aget(string(dex.TagShort))))
	register(dex.OpAput, plain(aput("")))
	register(dex.OpAputWide, plain(aput(string(dex.TagWide))))
	register(dex.OpAputObject, plain(aput(string(dex.TagObject))))
	register(dex.OpAputBoolean, plain(aput(string(dex.TagBoolean))))
	register(dex.OpAputByte, plain(aput(string(dex.TagByte))))
	register(dex.OpAputChar, plain(aput(string(dex.TagChar))))
	register(dex.OpAputShort, plain(aput(string(dex.TagShort))))
	// 0x52-0x5f: iget*/iput* (constant-pool descriptor wins over suffix)
	register(dex.OpIget, plain(iget))
	register(dex.OpIgetWide, plain(iget))
	register(dex.OpIgetObject, plain(iget))
	register(dex.OpIgetBoolean, plain(iget))
	register(dex.OpIgetByte, plain(iget))
	register(dex.OpIgetChar, plain(iget))
	register(dex.OpIgetShort, plain(iget))
	register(dex.OpIput, plain(iput))
	register(dex.OpIputWide, plain(iput))
	register(dex.OpIputObject, plain(iput))
	register(dex.OpIputBoolean, plain(iput))
	register(dex.OpIputByte, plain(iput))
	register(dex.OpIputChar, plain(iput))
	register(dex.OpIputShort, plain(iput))
	// 0x60-0x6d: sget*/sput*
	register(dex.OpSget, plain(sget))
	register(dex.OpSgetWide, plain(sget))
	register(dex.OpSgetObject, plain(sget))
	register(dex.OpSgetBoolean, plain(sget))
	register(dex.OpSgetByte, plain(sget))
	register(dex.OpSgetChar, plain(sget))
	register(dex.OpSgetShort, plain(sget))
	register(dex.OpSput, plain(sput))
	register(dex.OpSputWide, plain(sput))
	register(dex.OpSputObject, plain(sput))
	register(dex.OpSputBoolean, plain(sput))
	register(dex.OpSputByte, plain(sput))
	register(dex.OpSputChar, plain(sput))
	register(dex.OpSputShort, plain(sput))
	// 0x6e-0x72: invoke (non-range)
	register(dex.OpInvokeVirtual, needsRet(invokeVirtualLike("virtual")))
	register(dex.OpInvokeSuper, needsRet(invokeVirtualLike("super")))
	register(dex.OpInvokeDirect, needsRet(invokeDirectRule))
	register(dex.OpInvokeStatic, needsRet(invokeStaticRule))
	register(dex.OpInvokeInterface, needsRet(invokeVirtualLike("interface")))
	// 0x73 reserved/unused -> nop

	// 0x74-0x78: invoke/range
	register(dex.OpInvokeVirtualRange, needsRet(invokeRange("virtual")))
	register(dex.OpInvokeSuperRange, needsRet(invokeRange("super")))
	register(dex.OpInvokeDirectRange, needsRet(invokeRange("direct")))
	register(dex.OpInvokeStaticRange, needsRet(invokeStaticRangeRule))
	register(dex.OpInvokeInterfaceRange, needsRet(invokeRange("interface")))
	// 0x79-0x7a reserved/unused -> nop

	// 0x7b-0x80: unary
	register(dex.OpNegInt, plain(unary(ir.OpNeg, string(dex.TagInt))))
	register(dex.OpNotInt, plain(unary(ir.OpNot, string(dex.TagInt))))
	register(dex.OpNegLong, plain(unary(ir.OpNeg, string(dex.TagLong))))
	register(dex.OpNotLong, plain(unary(ir.OpNot, string(dex.TagLong))))
	register(dex.OpNegFloat, plain(unary(ir.OpNeg, string(dex.TagFloat))))
	register(dex.OpNegDouble, plain(unary(ir.OpNeg, string(dex.TagDouble))))
	// 0x81-0x8f: primitive conversions
	register(dex.OpIntToLong, plain(convert("(long)", string(dex.TagLong))))
	register(dex.OpIntToFloat, plain(convert("(float)", string(dex.TagFloat))))
	register(dex.OpIntToDouble, plain(convert("(double)", string(dex.TagDouble))))
	register(dex.OpLongToInt, plain(convert("(int)", string(dex.TagInt))))
	register(dex.OpLongToFloat, plain(convert("(float)", string(dex.TagFloat))))
	register(dex.OpLongToDouble, plain(convert("(double)", string(dex.TagDouble))))
	register(dex.OpFloatToInt, plain(convert("(int)", string(dex.TagInt))))
	register(dex.OpFloatToLong, plain(convert("(long)", string(dex.TagLong))))
	register(dex.OpFloatToDouble, plain(convert("(double)", string(dex.TagDouble))))
	register(dex.OpDoubleToInt, plain(convert("(int)", string(dex.TagInt))))
	register(dex.OpDoubleToLong, plain(convert("(long)", string(dex.TagLong))))
	register(dex.OpDoubleToFloat, plain(convert("(float)", string(dex.TagFloat))))
	register(dex.OpIntToByte, plain(convert("(byte)", string(dex.TagByte))))
	register(dex.OpIntToChar, plain(convert("(char)", string(dex.TagChar))))
	register(dex.OpIntToShort, plain(convert("(short)", string(dex.TagShort))))
	// 0x90-0x9a: three-address int arithmetic
	register(dex.OpAddInt, plain(threeAddr(ir.OpAdd, string(dex.TagInt))))
	register(dex.OpSubInt, plain(threeAddr(ir.OpSub, string(dex.TagInt))))
	register(dex.OpMulInt, plain(threeAddr(ir.OpMul, string(dex.TagInt))))
	register(dex.OpDivInt, plain(threeAddr(ir.OpDiv, string(dex.TagInt))))
	register(dex.OpRemInt, plain(threeAddr(ir.OpMod, string(dex.TagInt))))
	register(dex.OpAndInt, plain(threeAddr(ir.OpAnd, string(dex.TagInt))))
	register(dex.OpOrInt, plain(threeAddr(ir.OpOr, string(dex.TagInt))))
	register(dex.OpXorInt, plain(threeAddr(ir.OpXor, string(dex.TagInt))))
	register(dex.OpShlInt, plain(threeAddr(ir.OpIntShl, string(dex.TagInt))))
	register(dex.OpShrInt, plain(threeAddr(ir.OpIntShr, string(dex.TagInt))))
	register(dex.OpUshrInt, plain(threeAddr(ir.OpIntShr, string(dex.TagInt))))
	// 0x9b-0xa5: three-address long arithmetic
	register(dex.OpAddLong, plain(threeAddr(ir.OpAdd, string(dex.TagLong))))
	register(dex.OpSubLong, plain(threeAddr(ir.OpSub, string(dex.TagLong))))
	register(dex.OpMulLong, plain(threeAddr(ir.OpMul, string(dex.TagLong))))
	register(dex.OpDivLong, plain(threeAddr(ir.OpDiv, string(dex.TagLong))))
	register(dex.OpRemLong, plain(threeAddr(ir.OpMod, string(dex.TagLong))))
	register(dex.OpAndLong, plain(threeAddr(ir.OpAnd, string(dex.TagLong))))
	register(dex.OpOrLong, plain(threeAddr(ir.OpOr, string(dex.TagLong))))
	register(dex.OpXorLong, plain(threeAddr(ir.OpXor, string(dex.TagLong))))
	register(dex.OpShlLong, plain(threeAddr(ir.OpLongShl, string(dex.TagLong))))
	register(dex.OpShrLong, plain(threeAddr(ir.OpLongShr, string(dex.TagLong))))
	register(dex.OpUshrLong, plain(threeAddr(ir.OpLongShr, string(dex.TagLong))))
	// 0xa6-0xaa: three-address float arithmetic
	register(dex.OpAddFloat, plain(threeAddr(ir.OpAdd, string(dex.TagFloat))))
	register(dex.OpSubFloat, plain(threeAddr(ir.OpSub, string(dex.TagFloat))))
	register(dex.OpMulFloat, plain(threeAddr(ir.OpMul, string(dex.TagFloat))))
	register(dex.OpDivFloat, plain(threeAddr(ir.OpDiv, string(dex.TagFloat))))
	register(dex.OpRemFloat, plain(threeAddr(ir.OpMod, string(dex.TagFloat))))
	// 0xab-0xaf: three-address double arithmetic
	register(dex.OpAddDouble, plain(threeAddr(ir.OpAdd, string(dex.TagDouble))))
	register(dex.OpSubDouble, plain(threeAddr(ir.OpSub, string(dex.TagDouble))))
	register(dex.OpMulDouble, plain(threeAddr(ir.OpMul, string(dex.TagDouble))))
	register(dex.OpDivDouble, plain(threeAddr(ir.OpDiv, string(dex.TagDouble))))
	register(dex.OpRemDouble, plain(threeAddr(ir.OpMod, string(dex.TagDouble))))
	// 0xb0-0xba: 2addr int arithmetic
	register(dex.OpAddInt2Addr, plain(twoAddr(ir.OpAdd, string(dex.TagInt))))
	register(dex.OpSubInt2Addr, plain(twoAddr(ir.OpSub, string(dex.TagInt))))
	register(dex.OpMulInt2Addr, plain(twoAddr(ir.OpMul, string(dex.TagInt))))
	register(dex.OpDivInt2Addr, plain(twoAddr(ir.OpDiv, string(dex.TagInt))))
	register(dex.OpRemInt2Addr, plain(twoAddr(ir.OpMod, string(dex.TagInt))))
	register(dex.OpAndInt2Addr, plain(twoAddr(ir.OpAnd, string(dex.TagInt))))
	register(dex.OpOrInt2Addr, plain(twoAddr(ir.OpOr, string(dex.TagInt))))
	register(dex.OpXorInt2Addr, plain(twoAddr(ir.OpXor, string(dex.TagInt))))
	register(dex.OpShlInt2Addr, plain(twoAddr(ir.OpIntShl, string(dex.TagInt))))
	register(dex.OpShrInt2Addr, plain(twoAddr(ir.OpIntShr, string(dex.TagInt))))
	register(dex.OpUshrInt2Addr, plain(twoAddr(ir.OpIntShr, string(dex.TagInt))))
	// 0xbb-0xc5: 2addr long arithmetic
	register(dex.OpAddLong2Addr, plain(twoAddr(ir.OpAdd, string(dex.TagLong))))
	register(dex.OpSubLong2Addr, plain(twoAddr(ir.OpSub, string(dex.TagLong))))
	register(dex.OpMulLong2Addr, plain(twoAddr(ir.OpMul, string(dex.TagLong))))
	register(dex.OpDivLong2Addr, plain(twoAddr(ir.OpDiv, string(dex.TagLong))))
	register(dex.OpRemLong2Addr, plain(twoAddr(ir.OpMod, string(dex.TagLong))))
	register(dex.OpAndLong2Addr, plain(twoAddr(ir.OpAnd, string(dex.TagLong))))
	register(dex.OpOrLong2Addr, plain(twoAddr(ir.OpOr, string(dex.TagLong))))
	register(dex.OpXorLong2Addr, plain(twoAddr(ir.OpXor, string(dex.TagLong))))
	register(dex.OpShlLong2Addr, plain(twoAddr(ir.OpLongShl, string(dex.TagLong))))
	register(dex.OpShrLong2Addr, plain(twoAddr(ir.OpLongShr, string(dex.TagLong))))
	register(dex.OpUshrLong2Addr, plain(twoAddr(ir.OpLongShr, string(dex.TagLong))))
	// 0xc6-0xca: 2addr float arithmetic
	register(dex.OpAddFloat2Addr, plain(twoAddr(ir.OpAdd, string(dex.TagFloat))))
	register(dex.OpSubFloat2Addr, plain(twoAddr(ir.OpSub, string(dex.TagFloat))))
	register(dex.OpMulFloat2Addr, plain(twoAddr(ir.OpMul, string(dex.TagFloat))))
	register(dex.OpDivFloat2Addr, plain(twoAddr(ir.OpDiv, string(dex.TagFloat))))
	register(dex.OpRemFloat2Addr, plain(twoAddr(ir.OpMod, string(dex.TagFloat))))
	// 0xcb-0xcf: 2addr double arithmetic
	register(dex.OpAddDouble2Addr, plain(twoAddr(ir.OpAdd, string(dex.TagDouble))))
	register(dex.OpSubDouble2Addr, plain(twoAddr(ir.OpSub, string(dex.TagDouble))))
	register(dex.OpMulDouble2Addr, plain(twoAddr(ir.OpMul, string(dex.TagDouble))))
	register(dex.OpDivDouble2Addr, plain(twoAddr(ir.OpDiv, string(dex.TagDouble))))
	register(dex.OpRemDouble2Addr, plain(twoAddr(ir.OpMod, string(dex.TagDouble))))
	// 0xd0-0xd7: lit16
	register(dex.OpAddIntLit16, plain(lit16(ir.OpAdd)))
	register(dex.OpRsubInt, plain(rsubInt16Rule))
	register(dex.OpMulIntLit16, plain(lit16(ir.OpMul)))
	register(dex.OpDivIntLit16, plain(lit16(ir.OpDiv)))
	register(dex.OpRemIntLit16, plain(lit16(ir.OpMod)))
	register(dex.OpAndIntLit16, plain(lit16(ir.OpAnd)))
	register(dex.OpOrIntLit16, plain(lit16(ir.OpOr)))
	register(dex.OpXorIntLit16, plain(lit16(ir.OpXor)))
	// 0xd8-0xe2: lit8
	register(dex.OpAddIntLit8, plain(addIntLit8Rule))
	register(dex.OpRsubIntLit8, plain(rsubInt8Rule))
	register(dex.OpMulIntLit8, plain(lit8(ir.OpMul)))
	register(dex.OpDivIntLit8, plain(lit8(ir.OpDiv)))
	register(dex.OpRemIntLit8, plain(lit8(ir.OpMod)))
	register(dex.OpAndIntLit8, plain(lit8(ir.OpAnd)))
	register(dex.OpOrIntLit8, plain(lit8(ir.OpOr)))
	register(dex.OpXorIntLit8, plain(lit8(ir.OpXor)))
	register(dex.OpShlIntLit8, plain(lit8(ir.OpIntShl)))
	register(dex.OpShrIntLit8, plain(lit8(ir.OpIntShr)))
	register(dex.OpUshrIntLit8, plain(lit8(ir.OpIntShr)))
}
