package wasmmod

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

// moduleSymbols satisfies internal/bodyparser.Symbols. Decode builds every
// entity arena in exactly wire order (imports of a kind in import-section
// order, then that kind's own section in declaration order), so a wire
// index and the id it decodes to are numerically identical here — unlike
// the encode direction, which must re-compact after any tombstone delete
// (see moduleIndices).
type moduleSymbols struct {
	m *Module
}

func (s moduleSymbols) FuncID(w uint32) ir.FuncID     { return ir.FuncID(w) }
func (s moduleSymbols) TypeID(w uint32) ir.TypeID     { return ir.TypeID(w) }
func (s moduleSymbols) TableID(w uint32) ir.TableID   { return ir.TableID(w) }
func (s moduleSymbols) MemoryID(w uint32) ir.MemoryID { return ir.MemoryID(w) }
func (s moduleSymbols) GlobalID(w uint32) ir.GlobalID { return ir.GlobalID(w) }
func (s moduleSymbols) DataID(w uint32) ir.DataID     { return ir.DataID(w) }

func (s moduleSymbols) FuncSignature(id ir.FuncID) ir.Signature {
	f := s.m.Funcs.MustGet(uint32(id))
	return s.m.Types.MustGet(uint32(f.Type))
}

func (s moduleSymbols) TypeSignature(id ir.TypeID) ir.Signature {
	return s.m.Types.MustGet(uint32(id))
}

func (s moduleSymbols) GlobalType(id ir.GlobalID) wasmval.ValType {
	return s.m.Globals.MustGet(uint32(id)).Type.ValType
}

func (s moduleSymbols) TableElementType(id ir.TableID) wasmval.ValType {
	return s.m.Tables.MustGet(uint32(id)).Type.ElemType
}
