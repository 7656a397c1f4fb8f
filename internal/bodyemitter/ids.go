package bodyemitter

import "github.com/lhaig/wasmforge/internal/ir"

// IdsToIndices is the write-direction counterpart of bodyparser.Symbols: it
// turns the opaque module-scoped ids a LocalFunction's arena carries back
// into the dense wire indices the binary format expects. A single
// implementation backs every function emitted from the same module
// (spec.md §6).
type IdsToIndices interface {
	FuncIndex(ir.FuncID) uint32
	TypeIndex(ir.TypeID) uint32
	TableIndex(ir.TableID) uint32
	MemoryIndex(ir.MemoryID) uint32
	GlobalIndex(ir.GlobalID) uint32
	DataIndex(ir.DataID) uint32
}
