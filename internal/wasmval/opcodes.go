package wasmval

// Prefix bytes. Most opcodes are a single byte; these three introduce an
// extended opcode space where the prefix is followed by a LEB128 (SIMD) or
// single-byte (bulk-memory/saturating-truncation, atomics) operator.
const (
	PrefixBulkMemory byte = 0xFC
	PrefixSIMD       byte = 0xFD
	PrefixAtomic     byte = 0xFE
)

// Control instructions.
const (
	OpUnreachable byte = 0x00
	OpNop         byte = 0x01
	OpBlock       byte = 0x02
	OpLoop        byte = 0x03
	OpIf          byte = 0x04
	OpElse        byte = 0x05
	OpEnd         byte = 0x0B
	OpBr          byte = 0x0C
	OpBrIf        byte = 0x0D
	OpBrTable     byte = 0x0E
	OpReturn      byte = 0x0F
	OpCall        byte = 0x10
	OpCallIndirect byte = 0x11
)

// Reference-type instructions.
const (
	OpRefNull   byte = 0xD0
	OpRefIsNull byte = 0xD1
	OpRefFunc   byte = 0xD2
)

// Parametric instructions.
const (
	OpDrop   byte = 0x1A
	OpSelect byte = 0x1B
	// OpSelectT is the typed variant of select, added with reference types.
	OpSelectT byte = 0x1C
)

// Variable instructions.
const (
	OpLocalGet  byte = 0x20
	OpLocalSet  byte = 0x21
	OpLocalTee  byte = 0x22
	OpGlobalGet byte = 0x23
	OpGlobalSet byte = 0x24
)

// Table instructions (MVP table.get/set are in the reference-types space).
const (
	OpTableGet byte = 0x25
	OpTableSet byte = 0x26
)

// Memory instructions (MVP loads/stores + memory.size/grow).
const (
	OpI32Load    byte = 0x28
	OpI64Load    byte = 0x29
	OpF32Load    byte = 0x2A
	OpF64Load    byte = 0x2B
	OpI32Load8S  byte = 0x2C
	OpI32Load8U  byte = 0x2D
	OpI32Load16S byte = 0x2E
	OpI32Load16U byte = 0x2F
	OpI64Load8S  byte = 0x30
	OpI64Load8U  byte = 0x31
	OpI64Load16S byte = 0x32
	OpI64Load16U byte = 0x33
	OpI64Load32S byte = 0x34
	OpI64Load32U byte = 0x35

	OpI32Store   byte = 0x36
	OpI64Store   byte = 0x37
	OpF32Store   byte = 0x38
	OpF64Store   byte = 0x39
	OpI32Store8  byte = 0x3A
	OpI32Store16 byte = 0x3B
	OpI64Store8  byte = 0x3C
	OpI64Store16 byte = 0x3D
	OpI64Store32 byte = 0x3E

	OpMemorySize byte = 0x3F
	OpMemoryGrow byte = 0x40
)

// Numeric constant instructions.
const (
	OpI32Const byte = 0x41
	OpI64Const byte = 0x42
	OpF32Const byte = 0x43
	OpF64Const byte = 0x44
)

// Bulk-memory / table instructions, all under the 0xFC prefix. The operand
// following the prefix is itself a (single-byte, in practice) LEB128 value.
const (
	BulkMemoryInit  byte = 0x08
	BulkDataDrop    byte = 0x09
	BulkMemoryCopy  byte = 0x0A
	BulkMemoryFill  byte = 0x0B
	BulkTableInit   byte = 0x0C
	BulkElemDrop    byte = 0x0D
	BulkTableCopy   byte = 0x0E
	BulkTableGrow   byte = 0x0F
	BulkTableSize   byte = 0x10
	BulkTableFill   byte = 0x11
)

// Saturating truncation instructions, also under the 0xFC prefix.
const (
	TruncSatI32TruncSatF32S byte = 0x00
	TruncSatI32TruncSatF32U byte = 0x01
	TruncSatI32TruncSatF64S byte = 0x02
	TruncSatI32TruncSatF64U byte = 0x03
	TruncSatI64TruncSatF32S byte = 0x04
	TruncSatI64TruncSatF32U byte = 0x05
	TruncSatI64TruncSatF64S byte = 0x06
	TruncSatI64TruncSatF64U byte = 0x07
)

// Atomic instructions, all under the 0xFE prefix, each followed by a memarg.
const (
	AtomicNotify      byte = 0x00
	AtomicWait32      byte = 0x01
	AtomicWait64      byte = 0x02
	AtomicFence       byte = 0x03

	AtomicI32Load      byte = 0x10
	AtomicI64Load      byte = 0x11
	AtomicI32Load8U    byte = 0x12
	AtomicI32Load16U   byte = 0x13
	AtomicI64Load8U    byte = 0x14
	AtomicI64Load16U   byte = 0x15
	AtomicI64Load32U   byte = 0x16
	AtomicI32Store     byte = 0x17
	AtomicI64Store     byte = 0x18
	AtomicI32Store8    byte = 0x19
	AtomicI32Store16   byte = 0x1A
	AtomicI64Store8    byte = 0x1B
	AtomicI64Store16   byte = 0x1C
	AtomicI64Store32   byte = 0x1D

	AtomicI32RmwAdd    byte = 0x1E
	AtomicI64RmwAdd    byte = 0x1F
	AtomicI32Rmw8AddU  byte = 0x20
	AtomicI32Rmw16AddU byte = 0x21
	AtomicI64Rmw8AddU  byte = 0x22
	AtomicI64Rmw16AddU byte = 0x23
	AtomicI64Rmw32AddU byte = 0x24

	AtomicI32RmwSub    byte = 0x25
	AtomicI64RmwSub    byte = 0x26
	AtomicI32Rmw8SubU  byte = 0x27
	AtomicI32Rmw16SubU byte = 0x28
	AtomicI64Rmw8SubU  byte = 0x29
	AtomicI64Rmw16SubU byte = 0x2A
	AtomicI64Rmw32SubU byte = 0x2B

	AtomicI32RmwAnd    byte = 0x2C
	AtomicI64RmwAnd    byte = 0x2D
	AtomicI32Rmw8AndU  byte = 0x2E
	AtomicI32Rmw16AndU byte = 0x2F
	AtomicI64Rmw8AndU  byte = 0x30
	AtomicI64Rmw16AndU byte = 0x31
	AtomicI64Rmw32AndU byte = 0x32

	AtomicI32RmwOr    byte = 0x33
	AtomicI64RmwOr    byte = 0x34
	AtomicI32Rmw8OrU  byte = 0x35
	AtomicI32Rmw16OrU byte = 0x36
	AtomicI64Rmw8OrU  byte = 0x37
	AtomicI64Rmw16OrU byte = 0x38
	AtomicI64Rmw32OrU byte = 0x39

	AtomicI32RmwXor    byte = 0x3A
	AtomicI64RmwXor    byte = 0x3B
	AtomicI32Rmw8XorU  byte = 0x3C
	AtomicI32Rmw16XorU byte = 0x3D
	AtomicI64Rmw8XorU  byte = 0x3E
	AtomicI64Rmw16XorU byte = 0x3F
	AtomicI64Rmw32XorU byte = 0x40

	AtomicI32RmwXchg    byte = 0x41
	AtomicI64RmwXchg    byte = 0x42
	AtomicI32Rmw8XchgU  byte = 0x43
	AtomicI32Rmw16XchgU byte = 0x44
	AtomicI64Rmw8XchgU  byte = 0x45
	AtomicI64Rmw16XchgU byte = 0x46
	AtomicI64Rmw32XchgU byte = 0x47

	AtomicI32RmwCmpxchg    byte = 0x48
	AtomicI64RmwCmpxchg    byte = 0x49
	AtomicI32Rmw8CmpxchgU  byte = 0x4A
	AtomicI32Rmw16CmpxchgU byte = 0x4B
	AtomicI64Rmw8CmpxchgU  byte = 0x4C
	AtomicI64Rmw16CmpxchgU byte = 0x4D
	AtomicI64Rmw32CmpxchgU byte = 0x4E
)

// SIMD instructions, all under the 0xFD prefix. This table covers v128
// load/store, splat, lane access, and a subset of the lane arithmetic and
// comparison families; it omits some of the more exotic lane-shuffle and
// saturating-conversion variants.
const (
	SimdV128Load  uint32 = 0x00
	SimdV128Store uint32 = 0x0B
	SimdV128Const uint32 = 0x0C

	SimdI8x16Shuffle uint32 = 0x0D

	SimdI8x16Splat uint32 = 0x0F
	SimdI16x8Splat uint32 = 0x10
	SimdI32x4Splat uint32 = 0x11
	SimdI64x2Splat uint32 = 0x12
	SimdF32x4Splat uint32 = 0x13
	SimdF64x2Splat uint32 = 0x14

	SimdI8x16ExtractLaneS uint32 = 0x15
	SimdI8x16ExtractLaneU uint32 = 0x16
	SimdI8x16ReplaceLane  uint32 = 0x17
	SimdI16x8ExtractLaneS uint32 = 0x18
	SimdI16x8ExtractLaneU uint32 = 0x19
	SimdI16x8ReplaceLane  uint32 = 0x1A
	SimdI32x4ExtractLane  uint32 = 0x1B
	SimdI32x4ReplaceLane  uint32 = 0x1C
	SimdI64x2ExtractLane  uint32 = 0x1D
	SimdI64x2ReplaceLane  uint32 = 0x1E
	SimdF32x4ExtractLane  uint32 = 0x1F
	SimdF32x4ReplaceLane  uint32 = 0x20
	SimdF64x2ExtractLane  uint32 = 0x21
	SimdF64x2ReplaceLane  uint32 = 0x22

	SimdI8x16Eq uint32 = 0x23
	SimdI8x16Ne uint32 = 0x24
	SimdI16x8Eq uint32 = 0x2D
	SimdI16x8Ne uint32 = 0x2E
	SimdI32x4Eq uint32 = 0x37
	SimdI32x4Ne uint32 = 0x38
	SimdF32x4Eq uint32 = 0x41
	SimdF32x4Ne uint32 = 0x42
	SimdF64x2Eq uint32 = 0x47
	SimdF64x2Ne uint32 = 0x48

	SimdV128Not      uint32 = 0x4D
	SimdV128And      uint32 = 0x4E
	SimdV128AndNot   uint32 = 0x4F
	SimdV128Or       uint32 = 0x50
	SimdV128Xor      uint32 = 0x51
	SimdV128Bitselect uint32 = 0x52

	SimdI8x16Add uint32 = 0x6E
	SimdI8x16Sub uint32 = 0x71
	SimdI16x8Add uint32 = 0x8F
	SimdI16x8Sub uint32 = 0x91
	SimdI16x8Mul uint32 = 0x95
	SimdI32x4Add uint32 = 0xAE
	SimdI32x4Sub uint32 = 0xB1
	SimdI32x4Mul uint32 = 0xB5
	SimdI64x2Add uint32 = 0xCE
	SimdI64x2Sub uint32 = 0xD1
	SimdI64x2Mul uint32 = 0xD5

	SimdF32x4Add uint32 = 0xE4
	SimdF32x4Sub uint32 = 0xE5
	SimdF32x4Mul uint32 = 0xE6
	SimdF32x4Div uint32 = 0xE7
	SimdF64x2Add uint32 = 0xF0
	SimdF64x2Sub uint32 = 0xF1
	SimdF64x2Mul uint32 = 0xF2
	SimdF64x2Div uint32 = 0xF3
)
