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
package asmscript

import "github.com/zebrapurring/androguard/dex"

var mnemonics = map[string]opSpec{
	"nop":          {dex.OpNop, fmt10x},
	"return-void":  {dex.OpReturnVoid, fmt10x},
	"return":       {dex.OpReturn, fmt11x},
	"return-wide":  {dex.OpReturnWide, fmt11x},
	"return-object": {dex.OpReturnObject, fmt11x},
	"throw":        {dex.OpThrow, fmt11x},
	"monitor-enter": {dex.OpMonitorEnter, fmt11x},
	"monitor-exit": {dex.OpMonitorExit, fmt11x},

	"move":               {dex.OpMove, fmt12x},
	"move-wide":          {dex.OpMoveWide, fmt12x},
	"move-object":        {dex.OpMoveObject, fmt12x},
	"neg-int":            {dex.OpNegInt, fmt12x},
	"not-int":            {dex.OpNotInt, fmt12x},
	"neg-long":           {dex.OpNegLong, fmt12x},
	"not-long":           {dex.OpNotLong, fmt12x},
	"neg-float":          {dex.OpNegFloat, fmt12x},
	"neg-double":         {dex.OpNegDouble, fmt12x},
	"int-to-long":        {dex.OpIntToLong, fmt12x},
	"int-to-float":       {dex.OpIntToFloat, fmt12x},
	"int-to-double":      {dex.OpIntToDouble, fmt12x},
	"long-to-int":        {dex.OpLongToInt, fmt12x},
	"long-to-float":      {dex.OpLongToFloat, fmt12x},
	"long-to-double":     {dex.OpLongToDouble, fmt12x},
	"float-to-int":       {dex.OpFloatToInt, fmt12x},
	"float-to-long":      {dex.OpFloatToLong, fmt12x},
	"float-to-double":    {dex.OpFloatToDouble, fmt12x},
	"double-to-int":      {dex.OpDoubleToInt, fmt12x},
	"double-to-long":     {dex.OpDoubleToLong, fmt12x},
	"double-to-float":    {dex.OpDoubleToFloat, fmt12x},
	"int-to-byte":        {dex.OpIntToByte, fmt12x},
	"int-to-char":        {dex.OpIntToChar, fmt12x},
	"int-to-short":       {dex.OpIntToShort, fmt12x},
	"array-length":       {dex.OpArrayLength, fmt12x},
	"add-int/2addr":      {dex.OpAddInt2Addr, fmt12x},
	"sub-int/2addr":      {dex.OpSubInt2Addr, fmt12x},
	"mul-int/2addr":      {dex.OpMulInt2Addr, fmt12x},
	"div-int/2addr":      {dex.OpDivInt2Addr, fmt12x},
	"rem-int/2addr":      {dex.OpRemInt2Addr, fmt12x},
	"and-int/2addr":      {dex.OpAndInt2Addr, fmt12x},
	"or-int/2addr":       {dex.OpOrInt2Addr, fmt12x},
	"xor-int/2addr":      {dex.OpXorInt2Addr, fmt12x},
	"shl-int/2addr":      {dex.OpShlInt2Addr, fmt12x},
	"shr-int/2addr":      {dex.OpShrInt2Addr, fmt12x},
	"ushr-int/2addr":     {dex.OpUshrInt2Addr, fmt12x},
	"add-long/2addr":     {dex.OpAddLong2Addr, fmt12x},
	"sub-long/2addr":     {dex.OpSubLong2Addr, fmt12x},

	"const/4": {dex.OpConst4, fmt11n},

	"const/16":      {dex.OpConst16, fmt21s},
	"const-wide/16": {dex.OpConstWide16, fmt21s},

	"const/high16":      {dex.OpConstHigh16, fmt21h},
	"const-wide/high16": {dex.OpConstWideHigh16, fmt21h},

	"const":         {dex.OpConst, fmt31i},
	"const-wide/32": {dex.OpConstWide32, fmt31i},

	"const-wide": {dex.OpConstWide, fmt51l},

	"const-string":        {dex.OpConstString, fmt21c},
	"const-string/jumbo":  {dex.OpConstStringJumbo, fmt21c},
	"const-class":         {dex.OpConstClass, fmt21c},
	"check-cast":          {dex.OpCheckCast, fmt21c},
	"sget":                {dex.OpSget, fmt21c},
	"sget-wide":           {dex.OpSgetWide, fmt21c},
	"sget-object":         {dex.OpSgetObject, fmt21c},
	"sget-boolean":        {dex.OpSgetBoolean, fmt21c},
	"sget-byte":           {dex.OpSgetByte, fmt21c},
	"sget-char":           {dex.OpSgetChar, fmt21c},
	"sget-short":          {dex.OpSgetShort, fmt21c},
	"sput":                {dex.OpSput, fmt21c},
	"sput-wide":           {dex.OpSputWide, fmt21c},
	"sput-object":         {dex.OpSputObject, fmt21c},
	"sput-boolean":        {dex.OpSputBoolean, fmt21c},
	"sput-byte":           {dex.OpSputByte, fmt21c},
	"sput-char":           {dex.OpSputChar, fmt21c},
	"sput-short":          {dex.OpSputShort, fmt21c},
	"new-instance":        {dex.OpNewInstance, fmt21c},

	"instance-of": {dex.OpInstanceOf, fmt22c},
	"new-array":   {dex.OpNewArray, fmt22c},
	"iget":        {dex.OpIget, fmt22c},
	"iget-wide":   {dex.OpIgetWide, fmt22c},
	"iget-object": {dex.OpIgetObject, fmt22c},
	"iget-boolean": {dex.OpIgetBoolean, fmt22c},
	"iget-byte":   {dex.OpIgetByte, fmt22c},
	"iget-char":   {dex.OpIgetChar, fmt22c},
	"iget-short":  {dex.OpIgetShort, fmt22c},
	"iput":        {dex.OpIput, fmt22c},
	"iput-wide":   {dex.OpIputWide, fmt22c},
	"iput-object": {dex.OpIputObject, fmt22c},
	"iput-boolean": {dex.OpIputBoolean, fmt22c},
	"iput-byte":   {dex.OpIputByte, fmt22c},
	"iput-char":   {dex.OpIputChar, fmt22c},
	"iput-short":  {dex.OpIputShort, fmt22c},

	"add-int": {dex.OpAddInt, fmt23x},
	"sub-int": {dex.OpSubInt, fmt23x},
	"mul-int": {dex.OpMulInt, fmt23x},
	"div-int": {dex.OpDivInt, fmt23x},
	"rem-int": {dex.OpRemInt, fmt23x},
	"and-int": {dex.OpAndInt, fmt23x},
	"or-int":  {dex.OpOrInt, fmt23x},
	"xor-int": {dex.OpXorInt, fmt23x},
	"shl-int": {dex.OpShlInt, fmt23x},
	"shr-int": {dex.OpShrInt, fmt23x},
	"ushr-int": {dex.OpUshrInt, fmt23x},
	"add-long": {dex.OpAddLong, fmt23x},
	"sub-long": {dex.OpSubLong, fmt23x},
	"mul-long": {dex.OpMulLong, fmt23x},
	"div-long": {dex.OpDivLong, fmt23x},
	"add-float": {dex.OpAddFloat, fmt23x},
	"add-double": {dex.OpAddDouble, fmt23x},
	"cmpl-float":  {dex.OpCmplFloat, fmt23x},
	"cmpg-float":  {dex.OpCmpgFloat, fmt23x},
	"cmpl-double": {dex.OpCmplDouble, fmt23x},
	"cmpg-double": {dex.OpCmpgDouble, fmt23x},
	"cmp-long":    {dex.OpCmpLong, fmt23x},
	"aget":         {dex.OpAget, fmt23x},
	"aget-wide":    {dex.OpAgetWide, fmt23x},
	"aget-object":  {dex.OpAgetObject, fmt23x},
	"aget-boolean": {dex.OpAgetBoolean, fmt23x},
	"aget-byte":    {dex.OpAgetByte, fmt23x},
	"aget-char":    {dex.OpAgetChar, fmt23x},
	"aget-short":   {dex.OpAgetShort, fmt23x},
	"aput":         {dex.OpAput, fmt23x},
	"aput-wide":    {dex.OpAputWide, fmt23x},
	"aput-object":  {dex.OpAputObject, fmt23x},
	"aput-boolean": {dex.OpAputBoolean, fmt23x},
	"aput-byte":    {dex.OpAputByte, fmt23x},
	"aput-char":    {dex.OpAputChar, fmt23x},
	"aput-short":   {dex.OpAputShort, fmt23x},

	"add-int/lit16": {dex.OpAddIntLit16, fmt22s},
	"rsub-int":      {dex.OpRsubInt, fmt22s},
	"mul-int/lit16": {dex.OpMulIntLit16, fmt22s},
	"div-int/lit16": {dex.OpDivIntLit16, fmt22s},
	"rem-int/lit16": {dex.OpRemIntLit16, fmt22s},
	"and-int/lit16": {dex.OpAndIntLit16, fmt22s},
	"or-int/lit16":  {dex.OpOrIntLit16, fmt22s},
	"xor-int/lit16": {dex.OpXorIntLit16, fmt22s},

	"add-int/lit8":  {dex.OpAddIntLit8, fmt22b},
	"rsub-int/lit8": {dex.OpRsubIntLit8, fmt22b},
	"mul-int/lit8":  {dex.OpMulIntLit8, fmt22b},
	"div-int/lit8":  {dex.OpDivIntLit8, fmt22b},
	"rem-int/lit8":  {dex.OpRemIntLit8, fmt22b},
	"and-int/lit8":  {dex.OpAndIntLit8, fmt22b},
	"or-int/lit8":   {dex.OpOrIntLit8, fmt22b},
	"xor-int/lit8":  {dex.OpXorIntLit8, fmt22b},
	"shl-int/lit8":  {dex.OpShlIntLit8, fmt22b},
	"shr-int/lit8":  {dex.OpShrIntLit8, fmt22b},
	"ushr-int/lit8": {dex.OpUshrIntLit8, fmt22b},

	"if-eq": {dex.OpIfEq, fmt22t},
	"if-ne": {dex.OpIfNe, fmt22t},
	"if-lt": {dex.OpIfLt, fmt22t},
	"if-ge": {dex.OpIfGe, fmt22t},
	"if-gt": {dex.OpIfGt, fmt22t},
	"if-le": {dex.OpIfLe, fmt22t},

	"if-eqz": {dex.OpIfEqz, fmt21t},
	"if-nez": {dex.OpIfNez, fmt21t},
	"if-ltz": {dex.OpIfLtz, fmt21t},
	"if-gez": {dex.OpIfGez, fmt21t},
	"if-gtz": {dex.OpIfGtz, fmt21t},
	"if-lez": {dex.OpIfLez, fmt21t},

	"goto":    {dex.OpGoto, fmt10x},
	"goto/16": {dex.OpGoto16, fmt10x},
	"goto/32": {dex.OpGoto32, fmt10x},

	"packed-switch": {dex.OpPackedSwitch, fmt3rd},
	"sparse-switch": {dex.OpSparseSwitch, fmt3rd},
	"fill-array-data": {dex.OpFillArrayData, fmt3rd},

	"filled-new-array":       {dex.OpFilledNewArray, fmt35c},
	"filled-new-array/range": {dex.OpFilledNewArrayRange, fmt3rc},

	"invoke-virtual":         {dex.OpInvokeVirtual, fmt35c},
	"invoke-super":           {dex.OpInvokeSuper, fmt35c},
	"invoke-direct":          {dex.OpInvokeDirect, fmt35c},
	"invoke-static":          {dex.OpInvokeStatic, fmt35c},
	"invoke-interface":       {dex.OpInvokeInterface, fmt35c},
	"invoke-virtual/range":   {dex.OpInvokeVirtualRange, fmt3rc},
	"invoke-super/range":     {dex.OpInvokeSuperRange, fmt3rc},
	"invoke-direct/range":    {dex.OpInvokeDirectRange, fmt3rc},
	"invoke-static/range":    {dex.OpInvokeStaticRange, fmt3rc},
	"invoke-interface/range": {dex.OpInvokeInterfaceRange, fmt3rc},

	"move-result":        {dex.OpMoveResult, fmtRet},
	"move-result-wide":   {dex.OpMoveResultWide, fmtRet},
	"move-result-object": {dex.OpMoveResultObject, fmtRet},
	"move-exception":     {dex.OpMoveException, fmtExc},
}
