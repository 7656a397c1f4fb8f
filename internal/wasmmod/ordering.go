package wasmmod

import (
	"sort"

	"github.com/lhaig/wasmforge/internal/ir"
)

// FunctionsOrderedForCodeSection returns every locally defined function's
// id ordered largest-body-first (size-descending), breaking ties by id
// ascending. This is the order local functions are assigned wire indices
// and laid out in the code section (spec.md §4.4): engines that begin
// background compilation function-by-function meet the longest-to-compile
// bodies first. Grounded directly on walrus's used_local_functions sort
// key, (cmp::Reverse(size), id); body size is approximated here as the
// function's arena length (expression count) rather than encoded byte
// length, since measuring the latter would require emitting first.
func FunctionsOrderedForCodeSection(m *Module) []ir.FuncID {
	type entry struct {
		id   ir.FuncID
		size int
	}
	var entries []entry
	m.Funcs.Each(func(idx uint32, f Function) {
		if f.Kind != FuncLocal || f.Local == nil {
			return
		}
		entries = append(entries, entry{id: ir.FuncID(idx), size: f.Local.Arena.Len()})
	})
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].size != entries[j].size {
			return entries[i].size > entries[j].size
		}
		return entries[i].id < entries[j].id
	})
	ids := make([]ir.FuncID, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids
}
