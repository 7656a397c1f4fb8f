package wasmval

// BinOpSignature describes the operand/result shape of a BinOp for the
// body parser's stack validator: both operands share Operand's type, and
// the result is Result's type (Result differs from Operand only for the
// scalar comparison family, which always yields i32; SIMD lane comparisons
// yield v128).
type BinOpSignature struct {
	Operand ValType
	Result  ValType
}

// UnOpSignature describes a UnOp's single operand type and result type;
// they differ for every conversion operator.
type UnOpSignature struct {
	Operand ValType
	Result  ValType
}

var binOpSignatures = map[BinOp]BinOpSignature{
	I32Eq: {I32, I32}, I32Ne: {I32, I32},
	I32LtS: {I32, I32}, I32LtU: {I32, I32}, I32GtS: {I32, I32}, I32GtU: {I32, I32},
	I32LeS: {I32, I32}, I32LeU: {I32, I32}, I32GeS: {I32, I32}, I32GeU: {I32, I32},

	I64Eq: {I64, I32}, I64Ne: {I64, I32},
	I64LtS: {I64, I32}, I64LtU: {I64, I32}, I64GtS: {I64, I32}, I64GtU: {I64, I32},
	I64LeS: {I64, I32}, I64LeU: {I64, I32}, I64GeS: {I64, I32}, I64GeU: {I64, I32},

	F32Eq: {F32, I32}, F32Ne: {F32, I32}, F32Lt: {F32, I32}, F32Gt: {F32, I32}, F32Le: {F32, I32}, F32Ge: {F32, I32},
	F64Eq: {F64, I32}, F64Ne: {F64, I32}, F64Lt: {F64, I32}, F64Gt: {F64, I32}, F64Le: {F64, I32}, F64Ge: {F64, I32},

	I32Add: {I32, I32}, I32Sub: {I32, I32}, I32Mul: {I32, I32}, I32DivS: {I32, I32}, I32DivU: {I32, I32},
	I32RemS: {I32, I32}, I32RemU: {I32, I32}, I32And: {I32, I32}, I32Or: {I32, I32}, I32Xor: {I32, I32},
	I32Shl: {I32, I32}, I32ShrS: {I32, I32}, I32ShrU: {I32, I32}, I32Rotl: {I32, I32}, I32Rotr: {I32, I32},

	I64Add: {I64, I64}, I64Sub: {I64, I64}, I64Mul: {I64, I64}, I64DivS: {I64, I64}, I64DivU: {I64, I64},
	I64RemS: {I64, I64}, I64RemU: {I64, I64}, I64And: {I64, I64}, I64Or: {I64, I64}, I64Xor: {I64, I64},
	I64Shl: {I64, I64}, I64ShrS: {I64, I64}, I64ShrU: {I64, I64}, I64Rotl: {I64, I64}, I64Rotr: {I64, I64},

	F32Add: {F32, F32}, F32Sub: {F32, F32}, F32Mul: {F32, F32}, F32Div: {F32, F32},
	F32Min: {F32, F32}, F32Max: {F32, F32}, F32Copysign: {F32, F32},

	F64Add: {F64, F64}, F64Sub: {F64, F64}, F64Mul: {F64, F64}, F64Div: {F64, F64},
	F64Min: {F64, F64}, F64Max: {F64, F64}, F64Copysign: {F64, F64},

	I8x16Eq: {V128, V128}, I8x16Ne: {V128, V128}, I16x8Eq: {V128, V128}, I16x8Ne: {V128, V128},
	I32x4Eq: {V128, V128}, I32x4Ne: {V128, V128}, F32x4Eq: {V128, V128}, F32x4Ne: {V128, V128},
	F64x2Eq: {V128, V128}, F64x2Ne: {V128, V128},

	I8x16Add: {V128, V128}, I8x16Sub: {V128, V128},
	I16x8Add: {V128, V128}, I16x8Sub: {V128, V128}, I16x8Mul: {V128, V128},
	I32x4Add: {V128, V128}, I32x4Sub: {V128, V128}, I32x4Mul: {V128, V128},
	I64x2Add: {V128, V128}, I64x2Sub: {V128, V128}, I64x2Mul: {V128, V128},
	F32x4Add: {V128, V128}, F32x4Sub: {V128, V128}, F32x4Mul: {V128, V128}, F32x4Div: {V128, V128},
	F64x2Add: {V128, V128}, F64x2Sub: {V128, V128}, F64x2Mul: {V128, V128}, F64x2Div: {V128, V128},

	V128And: {V128, V128}, V128Or: {V128, V128}, V128Xor: {V128, V128}, V128AndNot: {V128, V128},
}

var unOpSignatures = map[UnOp]UnOpSignature{
	I32Eqz: {I32, I32}, I32Clz: {I32, I32}, I32Ctz: {I32, I32}, I32Popcnt: {I32, I32},
	I64Eqz: {I64, I32}, I64Clz: {I64, I64}, I64Ctz: {I64, I64}, I64Popcnt: {I64, I64},

	F32Abs: {F32, F32}, F32Neg: {F32, F32}, F32Ceil: {F32, F32}, F32Floor: {F32, F32},
	F32Trunc: {F32, F32}, F32Nearest: {F32, F32}, F32Sqrt: {F32, F32},

	F64Abs: {F64, F64}, F64Neg: {F64, F64}, F64Ceil: {F64, F64}, F64Floor: {F64, F64},
	F64Trunc: {F64, F64}, F64Nearest: {F64, F64}, F64Sqrt: {F64, F64},

	I32WrapI64: {I64, I32},
	I32TruncF32S: {F32, I32}, I32TruncF32U: {F32, I32}, I32TruncF64S: {F64, I32}, I32TruncF64U: {F64, I32},
	I64ExtendI32S: {I32, I64}, I64ExtendI32U: {I32, I64},
	I64TruncF32S: {F32, I64}, I64TruncF32U: {F32, I64}, I64TruncF64S: {F64, I64}, I64TruncF64U: {F64, I64},
	F32ConvertI32S: {I32, F32}, F32ConvertI32U: {I32, F32}, F32ConvertI64S: {I64, F32}, F32ConvertI64U: {I64, F32},
	F32DemoteF64: {F64, F32},
	F64ConvertI32S: {I32, F64}, F64ConvertI32U: {I32, F64}, F64ConvertI64S: {I64, F64}, F64ConvertI64U: {I64, F64},
	F64PromoteF32: {F32, F64},
	I32ReinterpretF32: {F32, I32}, I64ReinterpretF64: {F64, I64},
	F32ReinterpretI32: {I32, F32}, F64ReinterpretI64: {I64, F64},

	I32Extend8S: {I32, I32}, I32Extend16S: {I32, I32},
	I64Extend8S: {I64, I64}, I64Extend16S: {I64, I64}, I64Extend32S: {I64, I64},

	I32TruncSatF32S: {F32, I32}, I32TruncSatF32U: {F32, I32}, I32TruncSatF64S: {F64, I32}, I32TruncSatF64U: {F64, I32},
	I64TruncSatF32S: {F32, I64}, I64TruncSatF32U: {F32, I64}, I64TruncSatF64S: {F64, I64}, I64TruncSatF64U: {F64, I64},

	V128Not: {V128, V128},
	I8x16Splat: {I32, V128}, I16x8Splat: {I32, V128}, I32x4Splat: {I32, V128},
	I64x2Splat: {I64, V128}, F32x4Splat: {F32, V128}, F64x2Splat: {F64, V128},
}

// BinOpSig returns op's operand/result signature.
func BinOpSig(op BinOp) (BinOpSignature, bool) {
	sig, ok := binOpSignatures[op]
	return sig, ok
}

// UnOpSig returns op's operand/result signature.
func UnOpSig(op UnOp) (UnOpSignature, bool) {
	sig, ok := unOpSignatures[op]
	return sig, ok
}
