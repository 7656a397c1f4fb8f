// Package wasmmod is the module layer spec.md treats as an external
// collaborator: the section records, module-scoped id arenas, and binary
// Decode/Encode pair that give internal/ir and internal/bodyparser /
// internal/bodyemitter something real to parse and emit end-to-end.
//
// Offset and initializer expressions (global initializers, element and
// data segment offsets) are kept as opaque, already-encoded byte blobs
// rather than lowered into internal/ir — the function-body IR is this
// repository's core concern, and a handful of const instructions outside
// any function body does not earn a second expression representation.
package wasmmod

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

// Config gates optional behavior of the module layer.
type Config struct {
	// WorkerLimit bounds the scheduler's concurrency for per-function
	// parse and emit. Zero or negative means unbounded.
	WorkerLimit int
	// SyntheticNames causes declare-phase decoding to assign f{idx} names
	// to local functions, mirroring walrus's
	// generate_synthetic_names_for_anonymous_items. Parameters and locals
	// get arg{idx}/l{idx} names whether or not it is set.
	SyntheticNames bool
}

// ImportRef names the host module/field an imported entity is bound to.
type ImportRef struct {
	Module string
	Name   string
}

// FunctionKind distinguishes an imported function from one defined in the
// module's own code section.
type FunctionKind int

const (
	FuncLocal FunctionKind = iota
	FuncImport
)

// Function is one entry of the module's function index space.
type Function struct {
	Type   ir.TypeID
	Name   string
	Kind   FunctionKind
	Import ImportRef         // valid iff Kind == FuncImport
	Local  *ir.LocalFunction // valid iff Kind == FuncLocal
}

// TableType describes a table's element type and size limits.
type TableType struct {
	ElemType wasmval.ValType
	Min      uint32
	Max      uint32
	HasMax   bool
}

// Table is one entry of the module's table index space.
type Table struct {
	Type     TableType
	Name     string
	Imported bool
	Import   ImportRef
}

// MemoryType describes a memory's size limits, in 64KiB pages.
type MemoryType struct {
	Min    uint32
	Max    uint32
	HasMax bool
}

// Memory is one entry of the module's memory index space.
type Memory struct {
	Type     MemoryType
	Name     string
	Imported bool
	Import   ImportRef
}

// GlobalType describes a global's value type and mutability.
type GlobalType struct {
	ValType wasmval.ValType
	Mutable bool
}

// Global is one entry of the module's global index space. Init holds the
// raw, already-terminated (0x0B-suffixed) initializer expression bytes;
// it is nil for imported globals.
type Global struct {
	Type     GlobalType
	Name     string
	Imported bool
	Import   ImportRef
	Init     []byte
}

// ExportKind selects which index space an Export's index refers to.
type ExportKind int

const (
	ExportFunc ExportKind = iota
	ExportTable
	ExportMemory
	ExportGlobal
)

// Export is one entry of the module's export section.
type Export struct {
	Name   string
	Kind   ExportKind
	Func   ir.FuncID
	Table  ir.TableID
	Memory ir.MemoryID
	Global ir.GlobalID
}

// Data is one entry of the module's data section. Offset is nil and
// Passive is true for a passive segment (consumed only by memory.init);
// otherwise Offset holds a raw, terminated initializer expression.
type Data struct {
	Memory  ir.MemoryID
	Offset  []byte
	Passive bool
	Bytes   []byte
}

// Element is one entry of the module's element section. Only the active,
// funcref-table-initializing form is supported — the repertoire the
// function-body IR's table.* instructions need a table index space to
// exist at all (the passive/declarative element forms spec.md never
// requires a body to reference are left unsupported).
type Element struct {
	Table  ir.TableID
	Offset []byte
	Funcs  []ir.FuncID
}

// Module is a fully decoded (or in-progress, freshly constructed) wasm
// module: its section records and the id arenas that back every
// ir.FuncID/TypeID/TableID/MemoryID/GlobalID/DataID the core sees.
type Module struct {
	Config Config

	Types    TombstoneArena[ir.Signature]
	Funcs    TombstoneArena[Function]
	Tables   TombstoneArena[Table]
	Memories TombstoneArena[Memory]
	Globals  TombstoneArena[Global]
	Data     TombstoneArena[Data]
	Elements TombstoneArena[Element]

	Exports []Export

	HasStart bool
	Start    ir.FuncID
}

// NewModule returns an empty module ready for programmatic construction
// (as opposed to Decode).
func NewModule(cfg Config) *Module {
	return &Module{Config: cfg}
}

// ConstI32Expr builds the raw initializer-expression bytes for a single
// i32.const instruction terminated by end — the common case for a data or
// element segment's offset.
func ConstI32Expr(v int32) []byte {
	buf := make([]byte, 0, 6)
	buf = append(buf, 0x41) // i32.const
	buf = appendVarint(buf, int64(v))
	buf = append(buf, 0x0B) // end
	return buf
}

func appendVarint(buf []byte, v int64) []byte {
	more := true
	for more {
		c := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && c&0x40 == 0) || (v == -1 && c&0x40 != 0) {
			more = false
		} else {
			c |= 0x80
		}
		buf = append(buf, c)
	}
	return buf
}
