package wasmval

// BlockKind classifies a Block expression; it governs which opcode (if any)
// brackets the block on the wire. See spec.md §3 "Blocks".
type BlockKind int

const (
	// BlockKindBlock brackets its children with `block ... end`.
	BlockKindBlock BlockKind = iota
	// BlockKindLoop brackets its children with `loop ... end`; branches to
	// a loop target carry no values (spec.md §3 invariant 5).
	BlockKindLoop
	// BlockKindIfElseArm is one arm (consequent or alternative) of an
	// IfElse expression. Its brackets live on the IfElse itself, not here.
	BlockKindIfElseArm
	// BlockKindFunctionEntry is the single top-level body of a function.
	// It emits no opening opcode, only a trailing `end`.
	BlockKindFunctionEntry
)

func (k BlockKind) String() string {
	switch k {
	case BlockKindBlock:
		return "block"
	case BlockKindLoop:
		return "loop"
	case BlockKindIfElseArm:
		return "if-else-arm"
	case BlockKindFunctionEntry:
		return "function-entry"
	default:
		return "unknown"
	}
}
