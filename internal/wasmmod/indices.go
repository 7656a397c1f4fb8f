package wasmmod

import "github.com/lhaig/wasmforge/internal/ir"

// moduleIndices is the encode-direction counterpart of moduleSymbols: it
// satisfies internal/bodyemitter.IdsToIndices by compacting each entity
// arena down to just its live entries and assigning each a fresh,
// contiguous wire index, skipping any tombstoned id entirely. Function
// indices put the locally defined tail in FunctionsOrderedForCodeSection
// order, matching how writeFunctionSection and writeCodeSection lay out
// and number local functions; every other kind keeps simple arena order.
type moduleIndices struct {
	funcIdx, typeIdx, tableIdx, memIdx, globalIdx, dataIdx map[uint32]uint32
}

func buildIndices(m *Module) *moduleIndices {
	idx := &moduleIndices{
		funcIdx:   make(map[uint32]uint32),
		typeIdx:   make(map[uint32]uint32),
		tableIdx:  make(map[uint32]uint32),
		memIdx:    make(map[uint32]uint32),
		globalIdx: make(map[uint32]uint32),
		dataIdx:   make(map[uint32]uint32),
	}

	m.Types.Each(func(i uint32, _ ir.Signature) { idx.typeIdx[i] = uint32(len(idx.typeIdx)) })
	m.Tables.Each(func(i uint32, _ Table) { idx.tableIdx[i] = uint32(len(idx.tableIdx)) })
	m.Memories.Each(func(i uint32, _ Memory) { idx.memIdx[i] = uint32(len(idx.memIdx)) })
	m.Globals.Each(func(i uint32, _ Global) { idx.globalIdx[i] = uint32(len(idx.globalIdx)) })
	m.Data.Each(func(i uint32, _ Data) { idx.dataIdx[i] = uint32(len(idx.dataIdx)) })

	// Imported functions keep arena (declaration) order and occupy the
	// low end of the function index space, as the wasm binary format
	// requires.
	next := uint32(0)
	m.Funcs.Each(func(i uint32, f Function) {
		if f.Kind == FuncImport {
			idx.funcIdx[i] = next
			next++
		}
	})
	// Local functions follow, in size-descending code-section order.
	for _, id := range FunctionsOrderedForCodeSection(m) {
		idx.funcIdx[uint32(id)] = next
		next++
	}

	return idx
}

func (x *moduleIndices) FuncIndex(id ir.FuncID) uint32     { return x.funcIdx[uint32(id)] }
func (x *moduleIndices) TypeIndex(id ir.TypeID) uint32     { return x.typeIdx[uint32(id)] }
func (x *moduleIndices) TableIndex(id ir.TableID) uint32   { return x.tableIdx[uint32(id)] }
func (x *moduleIndices) MemoryIndex(id ir.MemoryID) uint32 { return x.memIdx[uint32(id)] }
func (x *moduleIndices) GlobalIndex(id ir.GlobalID) uint32 { return x.globalIdx[uint32(id)] }
func (x *moduleIndices) DataIndex(id ir.DataID) uint32     { return x.dataIdx[uint32(id)] }
