package wasmval

// BinOp enumerates every binary numeric/comparison/SIMD lane operator the
// IR's Binop expression can carry. Dispatch elsewhere in the codebase is a
// flat switch over these values — there is no subtyping.
type BinOp int

const (
	I32Eq BinOp = iota
	I32Ne
	I32LtS
	I32LtU
	I32GtS
	I32GtU
	I32LeS
	I32LeU
	I32GeS
	I32GeU

	I64Eq
	I64Ne
	I64LtS
	I64LtU
	I64GtS
	I64GtU
	I64LeS
	I64LeU
	I64GeS
	I64GeU

	F32Eq
	F32Ne
	F32Lt
	F32Gt
	F32Le
	F32Ge

	F64Eq
	F64Ne
	F64Lt
	F64Gt
	F64Le
	F64Ge

	I32Add
	I32Sub
	I32Mul
	I32DivS
	I32DivU
	I32RemS
	I32RemU
	I32And
	I32Or
	I32Xor
	I32Shl
	I32ShrS
	I32ShrU
	I32Rotl
	I32Rotr

	I64Add
	I64Sub
	I64Mul
	I64DivS
	I64DivU
	I64RemS
	I64RemU
	I64And
	I64Or
	I64Xor
	I64Shl
	I64ShrS
	I64ShrU
	I64Rotl
	I64Rotr

	F32Add
	F32Sub
	F32Mul
	F32Div
	F32Min
	F32Max
	F32Copysign

	F64Add
	F64Sub
	F64Mul
	F64Div
	F64Min
	F64Max
	F64Copysign

	// Representative SIMD lanewise binops (see opcodes.go's doc comment on
	// the SIMD table for the coverage boundary).
	I8x16Add
	I8x16Sub
	I16x8Add
	I16x8Sub
	I16x8Mul
	I32x4Add
	I32x4Sub
	I32x4Mul
	I64x2Add
	I64x2Sub
	I64x2Mul
	F32x4Add
	F32x4Sub
	F32x4Mul
	F32x4Div
	F64x2Add
	F64x2Sub
	F64x2Mul
	F64x2Div
	I8x16Eq
	I8x16Ne
	I16x8Eq
	I16x8Ne
	I32x4Eq
	I32x4Ne
	F32x4Eq
	F32x4Ne
	F64x2Eq
	F64x2Ne
	V128And
	V128Or
	V128Xor
	V128AndNot
)

// UnOp enumerates every unary numeric/conversion/SIMD operator the IR's
// Unop expression can carry.
type UnOp int

const (
	I32Eqz UnOp = iota
	I32Clz
	I32Ctz
	I32Popcnt

	I64Eqz
	I64Clz
	I64Ctz
	I64Popcnt

	F32Abs
	F32Neg
	F32Ceil
	F32Floor
	F32Trunc
	F32Nearest
	F32Sqrt

	F64Abs
	F64Neg
	F64Ceil
	F64Floor
	F64Trunc
	F64Nearest
	F64Sqrt

	// Conversions.
	I32WrapI64
	I32TruncF32S
	I32TruncF32U
	I32TruncF64S
	I32TruncF64U
	I64ExtendI32S
	I64ExtendI32U
	I64TruncF32S
	I64TruncF32U
	I64TruncF64S
	I64TruncF64U
	F32ConvertI32S
	F32ConvertI32U
	F32ConvertI64S
	F32ConvertI64U
	F32DemoteF64
	F64ConvertI32S
	F64ConvertI32U
	F64ConvertI64S
	F64ConvertI64U
	F64PromoteF32
	I32ReinterpretF32
	I64ReinterpretF64
	F32ReinterpretI32
	F64ReinterpretI64

	// Sign extension (the "sign-extension operators" feature).
	I32Extend8S
	I32Extend16S
	I64Extend8S
	I64Extend16S
	I64Extend32S

	// Saturating truncation (part of bulk-memory/nontrapping-float-to-int).
	I32TruncSatF32S
	I32TruncSatF32U
	I32TruncSatF64S
	I32TruncSatF64U
	I64TruncSatF32S
	I64TruncSatF32U
	I64TruncSatF64S
	I64TruncSatF64U

	// Representative SIMD unops.
	V128Not
	I8x16Splat
	I16x8Splat
	I32x4Splat
	I64x2Splat
	F32x4Splat
	F64x2Splat
)

// LoadKind enumerates memory load width, sign-extension policy, and
// atomicity (spec.md §3's "Load(kind, ...)").
type LoadKind int

const (
	LoadI32 LoadKind = iota
	LoadI64
	LoadF32
	LoadF64
	LoadI32_8S
	LoadI32_8U
	LoadI32_16S
	LoadI32_16U
	LoadI64_8S
	LoadI64_8U
	LoadI64_16S
	LoadI64_16U
	LoadI64_32S
	LoadI64_32U

	AtomicLoadI32
	AtomicLoadI64
	AtomicLoadI32_8U
	AtomicLoadI32_16U
	AtomicLoadI64_8U
	AtomicLoadI64_16U
	AtomicLoadI64_32U
)

// IsAtomic reports whether k is one of the atomic load variants.
func (k LoadKind) IsAtomic() bool {
	return k >= AtomicLoadI32
}

// StoreKind enumerates memory store width and atomicity (spec.md §3's
// "Store(kind, ...)").
type StoreKind int

const (
	StoreI32 StoreKind = iota
	StoreI64
	StoreF32
	StoreF64
	StoreI32_8
	StoreI32_16
	StoreI64_8
	StoreI64_16
	StoreI64_32

	AtomicStoreI32
	AtomicStoreI64
	AtomicStoreI32_8
	AtomicStoreI32_16
	AtomicStoreI64_8
	AtomicStoreI64_16
	AtomicStoreI64_32
)

// IsAtomic reports whether k is one of the atomic store variants.
func (k StoreKind) IsAtomic() bool {
	return k >= AtomicStoreI32
}

// AtomicRmwOp enumerates the read-modify-write operation an AtomicRmw
// expression performs.
type AtomicRmwOp int

const (
	AtomicRmwAdd AtomicRmwOp = iota
	AtomicRmwSub
	AtomicRmwAnd
	AtomicRmwOr
	AtomicRmwXor
	AtomicRmwXchg
)

// AtomicWidth enumerates the access width an atomic RMW/cmpxchg operates
// at, independent of whether the surrounding value type is i32 or i64.
type AtomicWidth int

const (
	WidthI32 AtomicWidth = iota
	WidthI64
	WidthI32_8
	WidthI32_16
	WidthI64_8
	WidthI64_16
	WidthI64_32
)

// encoding describes how an operator is written on the wire: either a bare
// single byte (Prefix == 0), a prefix byte followed by a single operand
// byte (bulk-memory 0xFC, atomics 0xFE), or a prefix byte followed by a
// LEB128 operand (SIMD 0xFD).
type encoding struct {
	Prefix byte
	Code   uint32
}

var binOpEncoding = map[BinOp]encoding{
	I32Eq: {0, 0x46}, I32Ne: {0, 0x47},
	I32LtS: {0, 0x48}, I32LtU: {0, 0x49}, I32GtS: {0, 0x4A}, I32GtU: {0, 0x4B},
	I32LeS: {0, 0x4C}, I32LeU: {0, 0x4D}, I32GeS: {0, 0x4E}, I32GeU: {0, 0x4F},

	I64Eq: {0, 0x51}, I64Ne: {0, 0x52},
	I64LtS: {0, 0x53}, I64LtU: {0, 0x54}, I64GtS: {0, 0x55}, I64GtU: {0, 0x56},
	I64LeS: {0, 0x57}, I64LeU: {0, 0x58}, I64GeS: {0, 0x59}, I64GeU: {0, 0x5A},

	F32Eq: {0, 0x5B}, F32Ne: {0, 0x5C}, F32Lt: {0, 0x5D}, F32Gt: {0, 0x5E}, F32Le: {0, 0x5F}, F32Ge: {0, 0x60},
	F64Eq: {0, 0x61}, F64Ne: {0, 0x62}, F64Lt: {0, 0x63}, F64Gt: {0, 0x64}, F64Le: {0, 0x65}, F64Ge: {0, 0x66},

	I32Add: {0, 0x6A}, I32Sub: {0, 0x6B}, I32Mul: {0, 0x6C}, I32DivS: {0, 0x6D}, I32DivU: {0, 0x6E},
	I32RemS: {0, 0x6F}, I32RemU: {0, 0x70}, I32And: {0, 0x71}, I32Or: {0, 0x72}, I32Xor: {0, 0x73},
	I32Shl: {0, 0x74}, I32ShrS: {0, 0x75}, I32ShrU: {0, 0x76}, I32Rotl: {0, 0x77}, I32Rotr: {0, 0x78},

	I64Add: {0, 0x7C}, I64Sub: {0, 0x7D}, I64Mul: {0, 0x7E}, I64DivS: {0, 0x7F}, I64DivU: {0, 0x80},
	I64RemS: {0, 0x81}, I64RemU: {0, 0x82}, I64And: {0, 0x83}, I64Or: {0, 0x84}, I64Xor: {0, 0x85},
	I64Shl: {0, 0x86}, I64ShrS: {0, 0x87}, I64ShrU: {0, 0x88}, I64Rotl: {0, 0x89}, I64Rotr: {0, 0x8A},

	F32Add: {0, 0x92}, F32Sub: {0, 0x93}, F32Mul: {0, 0x94}, F32Div: {0, 0x95},
	F32Min: {0, 0x96}, F32Max: {0, 0x97}, F32Copysign: {0, 0x98},

	F64Add: {0, 0xA0}, F64Sub: {0, 0xA1}, F64Mul: {0, 0xA2}, F64Div: {0, 0xA3},
	F64Min: {0, 0xA4}, F64Max: {0, 0xA5}, F64Copysign: {0, 0xA6},

	I8x16Eq: {PrefixSIMD, SimdI8x16Eq}, I8x16Ne: {PrefixSIMD, SimdI8x16Ne},
	I16x8Eq: {PrefixSIMD, SimdI16x8Eq}, I16x8Ne: {PrefixSIMD, SimdI16x8Ne},
	I32x4Eq: {PrefixSIMD, SimdI32x4Eq}, I32x4Ne: {PrefixSIMD, SimdI32x4Ne},
	F32x4Eq: {PrefixSIMD, SimdF32x4Eq}, F32x4Ne: {PrefixSIMD, SimdF32x4Ne},
	F64x2Eq: {PrefixSIMD, SimdF64x2Eq}, F64x2Ne: {PrefixSIMD, SimdF64x2Ne},

	I8x16Add: {PrefixSIMD, SimdI8x16Add}, I8x16Sub: {PrefixSIMD, SimdI8x16Sub},
	I16x8Add: {PrefixSIMD, SimdI16x8Add}, I16x8Sub: {PrefixSIMD, SimdI16x8Sub}, I16x8Mul: {PrefixSIMD, SimdI16x8Mul},
	I32x4Add: {PrefixSIMD, SimdI32x4Add}, I32x4Sub: {PrefixSIMD, SimdI32x4Sub}, I32x4Mul: {PrefixSIMD, SimdI32x4Mul},
	I64x2Add: {PrefixSIMD, SimdI64x2Add}, I64x2Sub: {PrefixSIMD, SimdI64x2Sub}, I64x2Mul: {PrefixSIMD, SimdI64x2Mul},
	F32x4Add: {PrefixSIMD, SimdF32x4Add}, F32x4Sub: {PrefixSIMD, SimdF32x4Sub},
	F32x4Mul: {PrefixSIMD, SimdF32x4Mul}, F32x4Div: {PrefixSIMD, SimdF32x4Div},
	F64x2Add: {PrefixSIMD, SimdF64x2Add}, F64x2Sub: {PrefixSIMD, SimdF64x2Sub},
	F64x2Mul: {PrefixSIMD, SimdF64x2Mul}, F64x2Div: {PrefixSIMD, SimdF64x2Div},

	V128And: {PrefixSIMD, SimdV128And}, V128Or: {PrefixSIMD, SimdV128Or},
	V128Xor: {PrefixSIMD, SimdV128Xor}, V128AndNot: {PrefixSIMD, SimdV128AndNot},
}

var unOpEncoding = map[UnOp]encoding{
	I32Eqz: {0, 0x45}, I32Clz: {0, 0x67}, I32Ctz: {0, 0x68}, I32Popcnt: {0, 0x69},
	I64Eqz: {0, 0x50}, I64Clz: {0, 0x79}, I64Ctz: {0, 0x7A}, I64Popcnt: {0, 0x7B},

	F32Abs: {0, 0x8B}, F32Neg: {0, 0x8C}, F32Ceil: {0, 0x8D}, F32Floor: {0, 0x8E},
	F32Trunc: {0, 0x8F}, F32Nearest: {0, 0x90}, F32Sqrt: {0, 0x91},

	F64Abs: {0, 0x99}, F64Neg: {0, 0x9A}, F64Ceil: {0, 0x9B}, F64Floor: {0, 0x9C},
	F64Trunc: {0, 0x9D}, F64Nearest: {0, 0x9E}, F64Sqrt: {0, 0x9F},

	I32WrapI64: {0, 0xA7},
	I32TruncF32S: {0, 0xA8}, I32TruncF32U: {0, 0xA9}, I32TruncF64S: {0, 0xAA}, I32TruncF64U: {0, 0xAB},
	I64ExtendI32S: {0, 0xAC}, I64ExtendI32U: {0, 0xAD},
	I64TruncF32S: {0, 0xAE}, I64TruncF32U: {0, 0xAF}, I64TruncF64S: {0, 0xB0}, I64TruncF64U: {0, 0xB1},
	F32ConvertI32S: {0, 0xB2}, F32ConvertI32U: {0, 0xB3}, F32ConvertI64S: {0, 0xB4}, F32ConvertI64U: {0, 0xB5},
	F32DemoteF64: {0, 0xB6},
	F64ConvertI32S: {0, 0xB7}, F64ConvertI32U: {0, 0xB8}, F64ConvertI64S: {0, 0xB9}, F64ConvertI64U: {0, 0xBA},
	F64PromoteF32: {0, 0xBB},
	I32ReinterpretF32: {0, 0xBC}, I64ReinterpretF64: {0, 0xBD},
	F32ReinterpretI32: {0, 0xBE}, F64ReinterpretI64: {0, 0xBF},

	I32Extend8S: {0, 0xC0}, I32Extend16S: {0, 0xC1},
	I64Extend8S: {0, 0xC2}, I64Extend16S: {0, 0xC3}, I64Extend32S: {0, 0xC4},

	I32TruncSatF32S: {PrefixBulkMemory, uint32(TruncSatI32TruncSatF32S)},
	I32TruncSatF32U: {PrefixBulkMemory, uint32(TruncSatI32TruncSatF32U)},
	I32TruncSatF64S: {PrefixBulkMemory, uint32(TruncSatI32TruncSatF64S)},
	I32TruncSatF64U: {PrefixBulkMemory, uint32(TruncSatI32TruncSatF64U)},
	I64TruncSatF32S: {PrefixBulkMemory, uint32(TruncSatI64TruncSatF32S)},
	I64TruncSatF32U: {PrefixBulkMemory, uint32(TruncSatI64TruncSatF32U)},
	I64TruncSatF64S: {PrefixBulkMemory, uint32(TruncSatI64TruncSatF64S)},
	I64TruncSatF64U: {PrefixBulkMemory, uint32(TruncSatI64TruncSatF64U)},

	V128Not:    {PrefixSIMD, SimdV128Not},
	I8x16Splat: {PrefixSIMD, SimdI8x16Splat},
	I16x8Splat: {PrefixSIMD, SimdI16x8Splat},
	I32x4Splat: {PrefixSIMD, SimdI32x4Splat},
	I64x2Splat: {PrefixSIMD, SimdI64x2Splat},
	F32x4Splat: {PrefixSIMD, SimdF32x4Splat},
	F64x2Splat: {PrefixSIMD, SimdF64x2Splat},
}

// reverse lookup tables, built once at package init for opcode decode.
var (
	binOpByByte = map[byte]BinOp{}
	binOpBySimd = map[uint32]BinOp{}
	unOpByByte  = map[byte]UnOp{}
	unOpBySimd  = map[uint32]UnOp{}
	unOpByTrunc = map[byte]UnOp{}
)

func init() {
	for op, enc := range binOpEncoding {
		switch enc.Prefix {
		case 0:
			binOpByByte[byte(enc.Code)] = op
		case PrefixSIMD:
			binOpBySimd[enc.Code] = op
		}
	}
	for op, enc := range unOpEncoding {
		switch enc.Prefix {
		case 0:
			unOpByByte[byte(enc.Code)] = op
		case PrefixSIMD:
			unOpBySimd[enc.Code] = op
		case PrefixBulkMemory:
			unOpByTrunc[byte(enc.Code)] = op
		}
	}
}

// EncodeBinOp writes op's opcode bytes via write/writeUvarint callbacks,
// returning false if op is not in the table (a programmer error: an
// unknown operator reached the emitter).
func EncodeBinOp(op BinOp, writeByte func(byte), writeUvarint func(uint64)) bool {
	enc, ok := binOpEncoding[op]
	if !ok {
		return false
	}
	emit(enc, writeByte, writeUvarint)
	return true
}

// EncodeUnOp writes op's opcode bytes. See EncodeBinOp.
func EncodeUnOp(op UnOp, writeByte func(byte), writeUvarint func(uint64)) bool {
	enc, ok := unOpEncoding[op]
	if !ok {
		return false
	}
	emit(enc, writeByte, writeUvarint)
	return true
}

func emit(enc encoding, writeByte func(byte), writeUvarint func(uint64)) {
	if enc.Prefix != 0 {
		writeByte(enc.Prefix)
	}
	switch enc.Prefix {
	case PrefixSIMD:
		writeUvarint(uint64(enc.Code))
	default:
		writeByte(byte(enc.Code))
	}
}

// DecodeBinOpByte looks up a plain (unprefixed) opcode byte as a BinOp.
func DecodeBinOpByte(b byte) (BinOp, bool) {
	op, ok := binOpByByte[b]
	return op, ok
}

// DecodeBinOpSimd looks up a SIMD sub-opcode as a BinOp.
func DecodeBinOpSimd(code uint32) (BinOp, bool) {
	op, ok := binOpBySimd[code]
	return op, ok
}

// DecodeUnOpByte looks up a plain (unprefixed) opcode byte as a UnOp.
func DecodeUnOpByte(b byte) (UnOp, bool) {
	op, ok := unOpByByte[b]
	return op, ok
}

// DecodeUnOpSimd looks up a SIMD sub-opcode as a UnOp.
func DecodeUnOpSimd(code uint32) (UnOp, bool) {
	op, ok := unOpBySimd[code]
	return op, ok
}

// DecodeUnOpTrunc looks up a saturating-truncation sub-opcode (under the
// bulk-memory prefix) as a UnOp.
func DecodeUnOpTrunc(b byte) (UnOp, bool) {
	op, ok := unOpByTrunc[b]
	return op, ok
}
