package wasmval

// atomicRmwEntry pairs the operation and access width a single atomic RMW
// sub-opcode encodes.
type atomicRmwEntry struct {
	Op    AtomicRmwOp
	Width AtomicWidth
}

var atomicRmwByByte = map[byte]atomicRmwEntry{
	AtomicI32RmwAdd: {AtomicRmwAdd, WidthI32}, AtomicI64RmwAdd: {AtomicRmwAdd, WidthI64},
	AtomicI32Rmw8AddU: {AtomicRmwAdd, WidthI32_8}, AtomicI32Rmw16AddU: {AtomicRmwAdd, WidthI32_16},
	AtomicI64Rmw8AddU: {AtomicRmwAdd, WidthI64_8}, AtomicI64Rmw16AddU: {AtomicRmwAdd, WidthI64_16}, AtomicI64Rmw32AddU: {AtomicRmwAdd, WidthI64_32},

	AtomicI32RmwSub: {AtomicRmwSub, WidthI32}, AtomicI64RmwSub: {AtomicRmwSub, WidthI64},
	AtomicI32Rmw8SubU: {AtomicRmwSub, WidthI32_8}, AtomicI32Rmw16SubU: {AtomicRmwSub, WidthI32_16},
	AtomicI64Rmw8SubU: {AtomicRmwSub, WidthI64_8}, AtomicI64Rmw16SubU: {AtomicRmwSub, WidthI64_16}, AtomicI64Rmw32SubU: {AtomicRmwSub, WidthI64_32},

	AtomicI32RmwAnd: {AtomicRmwAnd, WidthI32}, AtomicI64RmwAnd: {AtomicRmwAnd, WidthI64},
	AtomicI32Rmw8AndU: {AtomicRmwAnd, WidthI32_8}, AtomicI32Rmw16AndU: {AtomicRmwAnd, WidthI32_16},
	AtomicI64Rmw8AndU: {AtomicRmwAnd, WidthI64_8}, AtomicI64Rmw16AndU: {AtomicRmwAnd, WidthI64_16}, AtomicI64Rmw32AndU: {AtomicRmwAnd, WidthI64_32},

	AtomicI32RmwOr: {AtomicRmwOr, WidthI32}, AtomicI64RmwOr: {AtomicRmwOr, WidthI64},
	AtomicI32Rmw8OrU: {AtomicRmwOr, WidthI32_8}, AtomicI32Rmw16OrU: {AtomicRmwOr, WidthI32_16},
	AtomicI64Rmw8OrU: {AtomicRmwOr, WidthI64_8}, AtomicI64Rmw16OrU: {AtomicRmwOr, WidthI64_16}, AtomicI64Rmw32OrU: {AtomicRmwOr, WidthI64_32},

	AtomicI32RmwXor: {AtomicRmwXor, WidthI32}, AtomicI64RmwXor: {AtomicRmwXor, WidthI64},
	AtomicI32Rmw8XorU: {AtomicRmwXor, WidthI32_8}, AtomicI32Rmw16XorU: {AtomicRmwXor, WidthI32_16},
	AtomicI64Rmw8XorU: {AtomicRmwXor, WidthI64_8}, AtomicI64Rmw16XorU: {AtomicRmwXor, WidthI64_16}, AtomicI64Rmw32XorU: {AtomicRmwXor, WidthI64_32},

	AtomicI32RmwXchg: {AtomicRmwXchg, WidthI32}, AtomicI64RmwXchg: {AtomicRmwXchg, WidthI64},
	AtomicI32Rmw8XchgU: {AtomicRmwXchg, WidthI32_8}, AtomicI32Rmw16XchgU: {AtomicRmwXchg, WidthI32_16},
	AtomicI64Rmw8XchgU: {AtomicRmwXchg, WidthI64_8}, AtomicI64Rmw16XchgU: {AtomicRmwXchg, WidthI64_16}, AtomicI64Rmw32XchgU: {AtomicRmwXchg, WidthI64_32},
}

var atomicRmwToByte = func() map[atomicRmwEntry]byte {
	out := make(map[atomicRmwEntry]byte, len(atomicRmwByByte))
	for b, e := range atomicRmwByByte {
		out[e] = b
	}
	return out
}()

var atomicCmpxchgByByte = map[byte]AtomicWidth{
	AtomicI32RmwCmpxchg: WidthI32, AtomicI64RmwCmpxchg: WidthI64,
	AtomicI32Rmw8CmpxchgU: WidthI32_8, AtomicI32Rmw16CmpxchgU: WidthI32_16,
	AtomicI64Rmw8CmpxchgU: WidthI64_8, AtomicI64Rmw16CmpxchgU: WidthI64_16, AtomicI64Rmw32CmpxchgU: WidthI64_32,
}

var atomicCmpxchgToByte = func() map[AtomicWidth]byte {
	out := make(map[AtomicWidth]byte, len(atomicCmpxchgByByte))
	for b, w := range atomicCmpxchgByByte {
		out[w] = b
	}
	return out
}()

// DecodeAtomicRmw maps an atomic RMW sub-opcode byte to its operation and
// access width.
func DecodeAtomicRmw(b byte) (AtomicRmwOp, AtomicWidth, bool) {
	e, ok := atomicRmwByByte[b]
	return e.Op, e.Width, ok
}

// EncodeAtomicRmw is the inverse of DecodeAtomicRmw.
func EncodeAtomicRmw(op AtomicRmwOp, width AtomicWidth) (byte, bool) {
	b, ok := atomicRmwToByte[atomicRmwEntry{op, width}]
	return b, ok
}

// DecodeAtomicCmpxchg maps an atomic compare-exchange sub-opcode byte to
// its access width.
func DecodeAtomicCmpxchg(b byte) (AtomicWidth, bool) {
	w, ok := atomicCmpxchgByByte[b]
	return w, ok
}

// EncodeAtomicCmpxchg is the inverse of DecodeAtomicCmpxchg.
func EncodeAtomicCmpxchg(width AtomicWidth) (byte, bool) {
	b, ok := atomicCmpxchgToByte[width]
	return b, ok
}

// AtomicWidth.ValueType returns the value type an atomic access of this
// width produces/consumes on the stack (always i32 or i64 — the width's
// sub-byte variants are narrower memory accesses, not narrower stack
// values).
func (w AtomicWidth) ValueType() ValType {
	switch w {
	case WidthI64, WidthI64_8, WidthI64_16, WidthI64_32:
		return I64
	default:
		return I32
	}
}
