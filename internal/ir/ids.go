// Package ir is the core of wasmforge: the per-function expression arena,
// its tagged-union Expr variants, and the local table. A LocalFunction owns
// exactly one arena and one local list; everything else in the repository
// either produces one (internal/bodyparser), consumes one
// (internal/bodyemitter), or schedules many of them in parallel
// (internal/scheduler).
package ir

// ExprID is an opaque, stable identifier for an expression within a single
// function's arena. It is never reused for a different expression once
// allocated, even across a tombstone delete (see Arena.Tombstone).
type ExprID uint32

// InvalidExprID is the zero value and never refers to a real expression.
const InvalidExprID ExprID = 0

// LocalID identifies a local slot (parameter or declared local) within a
// function. Local ids are allocated once, up front, before any body is
// parsed (spec.md §5), and outlive the arena.
type LocalID uint32

// FuncID, TableID, MemoryID, GlobalID, TypeID, and DataID are the
// module-scoped identifiers the core treats as opaque — it never inspects
// them beyond equality, and relies on the module layer's IdsToIndices to
// turn them into wire indices at emit time.
type (
	FuncID   uint32
	TableID  uint32
	MemoryID uint32
	GlobalID uint32
	TypeID   uint32
	DataID   uint32
)
