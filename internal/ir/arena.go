package ir

import "fmt"

// Arena is the append-only, O(1)-indexed store a function body's
// expressions live in. Ids are 1-based internally so the zero value,
// InvalidExprID, never aliases a real entry.
//
// Arena is safe for concurrent reads once populated (the scheduler relies
// on this: many functions' arenas are read in parallel during emit), but
// writes (Alloc, Set, Tombstone) are not synchronized — each arena belongs
// to exactly one function and is only mutated by the single goroutine
// parsing or transforming that function.
type Arena struct {
	exprs []Expr
	dead  []bool
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc appends e and returns its newly assigned, stable id.
func (a *Arena) Alloc(e Expr) ExprID {
	a.exprs = append(a.exprs, e)
	a.dead = append(a.dead, false)
	return ExprID(len(a.exprs))
}

// Get returns the expression stored at id, or (nil, false) if id is
// invalid, out of range, or has been tombstoned.
func (a *Arena) Get(id ExprID) (Expr, bool) {
	idx, ok := a.index(id)
	if !ok || a.dead[idx] {
		return nil, false
	}
	return a.exprs[idx], true
}

// MustGet is Get but panics on failure; it is used in contexts (emitter,
// validated post-parse transforms) where an invalid id is a programmer
// error rather than recoverable user input.
func (a *Arena) MustGet(id ExprID) Expr {
	e, ok := a.Get(id)
	if !ok {
		panic(fmt.Sprintf("ir: expression id %d is invalid or tombstoned", id))
	}
	return e
}

// Set rewrites the expression stored at id in place. Every other id's
// validity is unaffected; if id itself was tombstoned, Set makes it live
// again with the new expression.
func (a *Arena) Set(id ExprID, e Expr) {
	idx, ok := a.index(id)
	if !ok {
		panic(fmt.Sprintf("ir: cannot rewrite invalid expression id %d", id))
	}
	a.exprs[idx] = e
	a.dead[idx] = false
}

// Tombstone logically deletes the expression at id. The slot's storage is
// retained (spec.md §9) so that any id still referencing it resolves to
// "deleted" rather than silently aliasing whatever is allocated next.
func (a *Arena) Tombstone(id ExprID) {
	idx, ok := a.index(id)
	if !ok {
		return
	}
	a.exprs[idx] = nil
	a.dead[idx] = true
}

// IsTombstoned reports whether id was allocated and has since been deleted.
func (a *Arena) IsTombstoned(id ExprID) bool {
	idx, ok := a.index(id)
	return ok && a.dead[idx]
}

// Len returns the number of ids ever allocated, including tombstoned ones.
func (a *Arena) Len() int {
	return len(a.exprs)
}

// IDs returns every live (non-tombstoned) id in allocation order.
func (a *Arena) IDs() []ExprID {
	ids := make([]ExprID, 0, len(a.exprs))
	for i, dead := range a.dead {
		if !dead {
			ids = append(ids, ExprID(i+1))
		}
	}
	return ids
}

func (a *Arena) index(id ExprID) (int, bool) {
	if id == InvalidExprID || int(id) > len(a.exprs) {
		return 0, false
	}
	return int(id) - 1, true
}
