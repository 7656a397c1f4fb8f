// Package bodyparser lowers a function's raw opcode byte stream into the
// arena-based IR defined by internal/ir, validating the operand stack and
// block structure as it goes (spec.md §4.1).
package bodyparser

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

// Symbols is the read-only, module-scoped lookup the parser needs to turn
// wire indices embedded in the opcode stream into opaque module ids — the
// "downward service" spec.md §6 calls IdsToIndices, used in the decode
// direction. A single implementation backs every function parsed from the
// same module; it must be fully populated before any body is parsed in
// parallel (spec.md §5).
type Symbols interface {
	FuncID(wireIndex uint32) ir.FuncID
	TypeID(wireIndex uint32) ir.TypeID
	TableID(wireIndex uint32) ir.TableID
	MemoryID(wireIndex uint32) ir.MemoryID
	GlobalID(wireIndex uint32) ir.GlobalID
	DataID(wireIndex uint32) ir.DataID

	FuncSignature(id ir.FuncID) ir.Signature
	TypeSignature(id ir.TypeID) ir.Signature
	GlobalType(id ir.GlobalID) wasmval.ValType
	TableElementType(id ir.TableID) wasmval.ValType
}
