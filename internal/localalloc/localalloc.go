// Package localalloc implements the local-index allocator described in
// spec.md §4.3: it turns a function's declared locals into the dense wire
// indices the binary format requires and the run-length-encoded prelude
// that announces them.
package localalloc

import (
	"sort"

	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

// groupOrder fixes the order value-type groups are assigned wire-index
// ranges in, and therefore the order their runs appear in the prelude.
var groupOrder = []wasmval.ValType{
	wasmval.I32,
	wasmval.I64,
	wasmval.F32,
	wasmval.F64,
	wasmval.V128,
	wasmval.FuncRef,
	wasmval.ExternRef,
}

// Run is one (count, type) entry of the locals prelude.
type Run struct {
	Count uint32
	Type  wasmval.ValType
}

// Mapping is the allocator's output: every referenced local's wire index,
// plus the prelude runs the emitter writes ahead of the body bytes.
type Mapping struct {
	Index   map[ir.LocalID]uint32
	Prelude []Run
}

// WireIndex looks up id's assigned wire index. It returns false for a
// declared local that was never referenced — such locals are dropped
// entirely, matching spec.md §4.3 ("unused locals are omitted... their
// declared slots, if any, are dropped").
func (m Mapping) WireIndex(id ir.LocalID) (uint32, bool) {
	idx, ok := m.Index[id]
	return idx, ok
}

// Allocate computes the local mapping for fn. Parameters always keep their
// fixed indices 0..len(params)-1 regardless of use; declared locals are
// included only if referenced by a LocalGet, LocalSet, or LocalTee
// somewhere in fn's arena.
func Allocate(fn *ir.LocalFunction) Mapping {
	params := fn.Locals.Params()
	index := make(map[ir.LocalID]uint32, len(fn.Locals))
	for i, p := range params {
		index[p.ID] = uint32(i)
	}

	used := scanUsedLocals(fn.Arena)

	byType := make(map[wasmval.ValType][]ir.LocalID)
	for _, l := range fn.Locals.Declared() {
		if !used[l.ID] {
			continue
		}
		byType[l.Type] = append(byType[l.Type], l.ID)
	}

	next := uint32(len(params))
	var prelude []Run
	for _, t := range groupOrder {
		ids := byType[t]
		if len(ids) == 0 {
			continue
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			index[id] = next
			next++
		}
		prelude = append(prelude, Run{Count: uint32(len(ids)), Type: t})
	}

	return Mapping{Index: index, Prelude: prelude}
}

// scanUsedLocals walks every live expression in arena and returns the set
// of local ids referenced by a LocalGet, LocalSet, or LocalTee. Order does
// not matter here — the allocator only needs membership, not occurrence
// order — so this is a flat scan over arena storage rather than a tree
// walk from the entry expression.
func scanUsedLocals(arena *ir.Arena) map[ir.LocalID]bool {
	used := make(map[ir.LocalID]bool)
	for _, id := range arena.IDs() {
		switch e := arena.MustGet(id).(type) {
		case *ir.LocalGet:
			used[e.Local] = true
		case *ir.LocalSet:
			used[e.Local] = true
		case *ir.LocalTee:
			used[e.Local] = true
		}
	}
	return used
}
