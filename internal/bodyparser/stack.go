package bodyparser

import (
	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

// svEntry is one value-stack slot: either a concrete type, or the
// polymorphic "unknown" type the validator uses after unreachable code
// (spec.md §4.1, glossary "Polymorphic stack").
type svEntry struct {
	unknown bool
	typ     wasmval.ValType
}

func known(t wasmval.ValType) svEntry { return svEntry{typ: t} }

var unknownEntry = svEntry{unknown: true}

// frame is the control stack's per-enclosing-block validation state.
type frame struct {
	kind    wasmval.BlockKind
	results []wasmval.ValType

	// height is the value-stack depth when this frame was entered; pops
	// within the frame may not go below it (except in unreachable mode).
	height int

	unreachable bool

	// blockID is the arena id that branches inside this frame currently
	// target, and children are its accumulated flat instruction list.
	// For an if-frame, blockID/children track whichever arm (consequent
	// or alternative) is presently open.
	blockID  ir.ExprID
	children []ir.ExprID

	isIf          bool
	condition     ir.ExprID
	consequentID  ir.ExprID
	alternativeID ir.ExprID
	sawElse       bool
}

// labelTypes returns the types a branch into f must carry: f's declared
// results for Block/IfElse-arm/FunctionEntry, or none for Loop (a branch
// to a loop restarts it with no values — spec.md §3 invariant 5).
func (f *frame) labelTypes() []wasmval.ValType {
	if f.kind == wasmval.BlockKindLoop {
		return nil
	}
	return f.results
}
