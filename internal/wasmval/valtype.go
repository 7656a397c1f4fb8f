// Package wasmval holds the wire-format vocabulary shared by the body
// parser and the body emitter: value types, block-kind tags, and the
// opcode tables (spec.md §4.2's "mapping from IR variant × operator to wire
// opcode").
package wasmval

// ValType is a wasm value type, encoded on the wire as a single byte.
type ValType byte

const (
	I32       ValType = 0x7F
	I64       ValType = 0x7E
	F32       ValType = 0x7D
	F64       ValType = 0x7C
	V128      ValType = 0x7B
	FuncRef   ValType = 0x70
	ExternRef ValType = 0x6F
)

func (v ValType) String() string {
	switch v {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case V128:
		return "v128"
	case FuncRef:
		return "funcref"
	case ExternRef:
		return "externref"
	default:
		return "unknown"
	}
}

// IsReference reports whether v is one of the reference types.
func (v ValType) IsReference() bool {
	return v == FuncRef || v == ExternRef
}

// BlockTypeEmpty is the block-type byte for a block with no results.
const BlockTypeEmpty byte = 0x40

// SingleResultBlockType returns the block-type byte for a block with
// exactly one declared result type. Multi-value blocks (len(results) > 1)
// are rejected by the caller per spec.md §9 — this function assumes it has
// already been called with at most one result.
func SingleResultBlockType(t ValType) byte {
	return byte(t)
}

// ValTypeFromByte decodes a value-type wire byte, reporting false if b is
// not one of the known types.
func ValTypeFromByte(b byte) (ValType, bool) {
	switch ValType(b) {
	case I32, I64, F32, F64, V128, FuncRef, ExternRef:
		return ValType(b), true
	default:
		return 0, false
	}
}
