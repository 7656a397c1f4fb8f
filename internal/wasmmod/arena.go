package wasmmod

// TombstoneArena is an append-only, index-keyed store whose entries can be
// deleted in place without shifting or reusing any other entry's index —
// the same discipline internal/ir.Arena uses for expressions, applied here
// at module scope to types, functions, tables, memories, globals, data
// segments, and element segments (spec.md §9, grounded on walrus's
// Tombstone trait in original_source/.../functions/mod.rs).
type TombstoneArena[T any] struct {
	items []T
	dead  []bool
}

// Alloc appends v and returns its newly assigned, stable index.
func (a *TombstoneArena[T]) Alloc(v T) uint32 {
	a.items = append(a.items, v)
	a.dead = append(a.dead, false)
	return uint32(len(a.items) - 1)
}

// Get returns the entry at idx, or (zero, false) if idx is out of range or
// has been tombstoned.
func (a *TombstoneArena[T]) Get(idx uint32) (T, bool) {
	var zero T
	if int(idx) >= len(a.items) || a.dead[idx] {
		return zero, false
	}
	return a.items[idx], true
}

// MustGet is Get but panics on failure, for contexts where an invalid
// index is a programmer error rather than recoverable user input.
func (a *TombstoneArena[T]) MustGet(idx uint32) T {
	v, ok := a.Get(idx)
	if !ok {
		panic("wasmmod: invalid or tombstoned index")
	}
	return v
}

// Set rewrites the entry at idx in place, clearing any tombstone.
func (a *TombstoneArena[T]) Set(idx uint32, v T) {
	a.items[idx] = v
	a.dead[idx] = false
}

// Delete tombstones idx, resetting its payload to the zero value so a
// dangling id reads as deleted rather than aliasing stale data.
func (a *TombstoneArena[T]) Delete(idx uint32) {
	if int(idx) >= len(a.items) {
		return
	}
	var zero T
	a.items[idx] = zero
	a.dead[idx] = true
}

// IsDead reports whether idx was allocated and has since been deleted.
func (a *TombstoneArena[T]) IsDead(idx uint32) bool {
	return int(idx) < len(a.dead) && a.dead[idx]
}

// Len returns the number of indices ever allocated, including tombstoned
// ones.
func (a *TombstoneArena[T]) Len() int { return len(a.items) }

// Each calls fn for every live (non-tombstoned) entry in allocation order.
func (a *TombstoneArena[T]) Each(fn func(idx uint32, v T)) {
	for i, dead := range a.dead {
		if !dead {
			fn(uint32(i), a.items[i])
		}
	}
}
