package ir

import "github.com/lhaig/wasmforge/internal/wasmval"

// ExprKind tags which variant an Expr value holds. Expr is a closed sum
// type (spec.md §9): every concrete type below is the only kind of value
// that can satisfy the interface, and every switch over Kind() is expected
// to be exhaustive.
type ExprKind int

const (
	KindConst ExprKind = iota
	KindBlock
	KindIfElse
	KindBrTable
	KindBr
	KindBrIf
	KindReturn
	KindDrop
	KindSelect
	KindUnreachable
	KindCall
	KindCallIndirect
	KindLocalGet
	KindLocalSet
	KindLocalTee
	KindGlobalGet
	KindGlobalSet
	KindLoad
	KindStore
	KindMemorySize
	KindMemoryGrow
	KindMemoryInit
	KindMemoryCopy
	KindMemoryFill
	KindDataDrop
	KindAtomicRmw
	KindCmpxchg
	KindAtomicWait
	KindAtomicNotify
	KindTableGet
	KindTableSet
	KindTableGrow
	KindTableSize
	KindRefNull
	KindRefIsNull
	KindV128Bitselect
	KindV128Shuffle
	KindBinop
	KindUnop
	KindWithSideEffects
)

// Expr is implemented by every expression variant. It carries no payload
// itself; all fields live on the concrete type. Values are stored in an
// Arena and referenced by ExprID, never linked to each other by pointer —
// that is what lets a rewrite pass replace one node's children without
// walking or re-pointering the rest of the tree.
type Expr interface {
	Kind() ExprKind
	exprNode()
}

// ConstValue holds an immediate literal of exactly one of the five wasm
// value-type families.
type ConstValue struct {
	Type wasmval.ValType
	I32  int32
	I64  int64
	F32  float32
	F64  float64
	V128 [16]byte
}

// Const is an immediate literal.
type Const struct {
	Value ConstValue
}

func (*Const) Kind() ExprKind { return KindConst }
func (*Const) exprNode()      {}

// Block is a grouping construct. Kind governs its wire bracketing (see
// spec.md §3 "Blocks"); Results is empty or has exactly one entry — more
// than one is the deferred multi-value case (spec.md §9).
type Block struct {
	BlockKind wasmval.BlockKind
	Results   []wasmval.ValType
	Children  []ExprID
}

func (*Block) Kind() ExprKind { return KindBlock }
func (*Block) exprNode()      {}

// IfElse brackets `if`/`else`/`end`; Consequent and Alternative are both
// ids of Block expressions with BlockKind == BlockKindIfElseArm and
// matching Results.
type IfElse struct {
	Condition   ExprID
	Consequent  ExprID
	Alternative ExprID
}

func (*IfElse) Kind() ExprKind { return KindIfElse }
func (*IfElse) exprNode()      {}

// BrTable is the `br_table` instruction: an indexed jump table plus a
// default target, all sharing the same forwarded Args.
type BrTable struct {
	Selector ExprID
	Targets  []ExprID
	Default  ExprID
	Args     []ExprID
}

func (*BrTable) Kind() ExprKind { return KindBrTable }
func (*BrTable) exprNode()      {}

// Br is an unconditional branch to an enclosing Block.
type Br struct {
	Target ExprID
	Args   []ExprID
}

func (*Br) Kind() ExprKind { return KindBr }
func (*Br) exprNode()      {}

// BrIf is a conditional branch.
type BrIf struct {
	Target    ExprID
	Args      []ExprID
	Condition ExprID
}

func (*BrIf) Kind() ExprKind { return KindBrIf }
func (*BrIf) exprNode()      {}

// Return leaves the function with the given values (0 or 1 of them, absent
// multi-value support).
type Return struct {
	Values []ExprID
}

func (*Return) Kind() ExprKind { return KindReturn }
func (*Return) exprNode()      {}

// Drop discards the value produced by Value.
type Drop struct {
	Value ExprID
}

func (*Drop) Kind() ExprKind { return KindDrop }
func (*Drop) exprNode()      {}

// Select chooses Then or Else based on Condition. Typed records which wire
// form produced it: the reference-types `select t*` form carries an
// explicit ResultType and must be re-emitted the same way, since the
// untyped `select` opcode is only valid wasm when both operands are a
// numtype or vectype — re-encoding a reference-typed select as untyped
// would produce an invalid module, not just a differently-encoded one.
type Select struct {
	Condition  ExprID
	Then       ExprID
	Else       ExprID
	Typed      bool
	ResultType wasmval.ValType
}

func (*Select) Kind() ExprKind { return KindSelect }
func (*Select) exprNode()      {}

// Unreachable is the `unreachable` trap instruction.
type Unreachable struct{}

func (*Unreachable) Kind() ExprKind { return KindUnreachable }
func (*Unreachable) exprNode()      {}

// Call invokes a statically known function.
type Call struct {
	Func FuncID
	Args []ExprID
}

func (*Call) Kind() ExprKind { return KindCall }
func (*Call) exprNode()      {}

// CallIndirect invokes a function looked up in a table at runtime.
type CallIndirect struct {
	Type  TypeID
	Table TableID
	Func  ExprID
	Args  []ExprID
}

func (*CallIndirect) Kind() ExprKind { return KindCallIndirect }
func (*CallIndirect) exprNode()      {}

// LocalGet reads a local slot.
type LocalGet struct {
	Local LocalID
}

func (*LocalGet) Kind() ExprKind { return KindLocalGet }
func (*LocalGet) exprNode()      {}

// LocalSet writes a local slot, producing no value.
type LocalSet struct {
	Local LocalID
	Value ExprID
}

func (*LocalSet) Kind() ExprKind { return KindLocalSet }
func (*LocalSet) exprNode()      {}

// LocalTee writes a local slot and also produces the written value.
type LocalTee struct {
	Local LocalID
	Value ExprID
}

func (*LocalTee) Kind() ExprKind { return KindLocalTee }
func (*LocalTee) exprNode()      {}

// GlobalGet reads a module-scoped global.
type GlobalGet struct {
	Global GlobalID
}

func (*GlobalGet) Kind() ExprKind { return KindGlobalGet }
func (*GlobalGet) exprNode()      {}

// GlobalSet writes a module-scoped global.
type GlobalSet struct {
	Global GlobalID
	Value  ExprID
}

func (*GlobalSet) Kind() ExprKind { return KindGlobalSet }
func (*GlobalSet) exprNode()      {}

// Load reads from linear memory. Kind encodes width, sign extension, and
// atomicity together (spec.md §3).
type Load struct {
	LoadKind wasmval.LoadKind
	Memory   MemoryID
	Address  ExprID
	MemArg   wasmval.MemArg
}

func (*Load) Kind() ExprKind { return KindLoad }
func (*Load) exprNode()      {}

// Store writes to linear memory.
type Store struct {
	StoreKind wasmval.StoreKind
	Memory    MemoryID
	Address   ExprID
	Value     ExprID
	MemArg    wasmval.MemArg
}

func (*Store) Kind() ExprKind { return KindStore }
func (*Store) exprNode()      {}

// MemorySize is `memory.size`.
type MemorySize struct {
	Memory MemoryID
}

func (*MemorySize) Kind() ExprKind { return KindMemorySize }
func (*MemorySize) exprNode()      {}

// MemoryGrow is `memory.grow`.
type MemoryGrow struct {
	Memory MemoryID
	Pages  ExprID
}

func (*MemoryGrow) Kind() ExprKind { return KindMemoryGrow }
func (*MemoryGrow) exprNode()      {}

// MemoryInit copies from a passive data segment into linear memory.
type MemoryInit struct {
	Memory       MemoryID
	Data         DataID
	MemoryOffset ExprID
	DataOffset   ExprID
	Len          ExprID
}

func (*MemoryInit) Kind() ExprKind { return KindMemoryInit }
func (*MemoryInit) exprNode()      {}

// MemoryCopy copies within or between linear memories.
type MemoryCopy struct {
	Dst       MemoryID
	Src       MemoryID
	DstOffset ExprID
	SrcOffset ExprID
	Len       ExprID
}

func (*MemoryCopy) Kind() ExprKind { return KindMemoryCopy }
func (*MemoryCopy) exprNode()      {}

// MemoryFill fills a linear-memory range with a byte value.
type MemoryFill struct {
	Memory MemoryID
	Offset ExprID
	Value  ExprID
	Len    ExprID
}

func (*MemoryFill) Kind() ExprKind { return KindMemoryFill }
func (*MemoryFill) exprNode()      {}

// DataDrop marks a passive data segment as no longer needed.
type DataDrop struct {
	Data DataID
}

func (*DataDrop) Kind() ExprKind { return KindDataDrop }
func (*DataDrop) exprNode()      {}

// AtomicRmw is an atomic read-modify-write memory access.
type AtomicRmw struct {
	Op      wasmval.AtomicRmwOp
	Width   wasmval.AtomicWidth
	Memory  MemoryID
	Address ExprID
	Value   ExprID
	MemArg  wasmval.MemArg
}

func (*AtomicRmw) Kind() ExprKind { return KindAtomicRmw }
func (*AtomicRmw) exprNode()      {}

// Cmpxchg is an atomic compare-and-exchange.
type Cmpxchg struct {
	Width    wasmval.AtomicWidth
	Memory   MemoryID
	Address  ExprID
	Expected ExprID
	New      ExprID
	MemArg   wasmval.MemArg
}

func (*Cmpxchg) Kind() ExprKind { return KindCmpxchg }
func (*Cmpxchg) exprNode()      {}

// AtomicWait is `memory.atomic.wait32`/`wait64`.
type AtomicWait struct {
	Sixty4  bool
	Memory  MemoryID
	Address ExprID
	Expected ExprID
	Timeout ExprID
	MemArg  wasmval.MemArg
}

func (*AtomicWait) Kind() ExprKind { return KindAtomicWait }
func (*AtomicWait) exprNode()      {}

// AtomicNotify is `memory.atomic.notify`.
type AtomicNotify struct {
	Memory  MemoryID
	Address ExprID
	Count   ExprID
	MemArg  wasmval.MemArg
}

func (*AtomicNotify) Kind() ExprKind { return KindAtomicNotify }
func (*AtomicNotify) exprNode()      {}

// TableGet reads a table slot.
type TableGet struct {
	Table TableID
	Index ExprID
}

func (*TableGet) Kind() ExprKind { return KindTableGet }
func (*TableGet) exprNode()      {}

// TableSet writes a table slot.
type TableSet struct {
	Table TableID
	Index ExprID
	Value ExprID
}

func (*TableSet) Kind() ExprKind { return KindTableSet }
func (*TableSet) exprNode()      {}

// TableGrow grows a table, returning its previous size.
type TableGrow struct {
	Table    TableID
	InitVal  ExprID
	Delta    ExprID
}

func (*TableGrow) Kind() ExprKind { return KindTableGrow }
func (*TableGrow) exprNode()      {}

// TableSize reads a table's current size.
type TableSize struct {
	Table TableID
}

func (*TableSize) Kind() ExprKind { return KindTableSize }
func (*TableSize) exprNode()      {}

// RefNull produces a null reference of the given reference type.
type RefNull struct {
	Type wasmval.ValType // FuncRef or ExternRef
}

func (*RefNull) Kind() ExprKind { return KindRefNull }
func (*RefNull) exprNode()      {}

// RefIsNull tests a reference for null.
type RefIsNull struct {
	Value ExprID
}

func (*RefIsNull) Kind() ExprKind { return KindRefIsNull }
func (*RefIsNull) exprNode()      {}

// V128Bitselect is the SIMD bitwise select.
type V128Bitselect struct {
	A, B, Mask ExprID
}

func (*V128Bitselect) Kind() ExprKind { return KindV128Bitselect }
func (*V128Bitselect) exprNode()      {}

// V128Shuffle is the SIMD 16-lane shuffle.
type V128Shuffle struct {
	A, B    ExprID
	Indices [16]byte
}

func (*V128Shuffle) Kind() ExprKind { return KindV128Shuffle }
func (*V128Shuffle) exprNode()      {}

// Binop is a binary numeric, comparison, or SIMD-lane operation.
type Binop struct {
	Op  wasmval.BinOp
	Lhs ExprID
	Rhs ExprID
}

func (*Binop) Kind() ExprKind { return KindBinop }
func (*Binop) exprNode()      {}

// Unop is a unary numeric, conversion, or SIMD-lane operation.
type Unop struct {
	Op    wasmval.UnOp
	Value ExprID
}

func (*Unop) Kind() ExprKind { return KindUnop }
func (*Unop) exprNode()      {}

// WithSideEffects carries Value's semantic type but requires Before and
// After to execute around it — used by transformation passes splicing in
// preludes/postludes without rebalancing the enclosing block's child list
// (spec.md §9).
type WithSideEffects struct {
	Before []ExprID
	Value  ExprID
	After  []ExprID
}

func (*WithSideEffects) Kind() ExprKind { return KindWithSideEffects }
func (*WithSideEffects) exprNode()      {}
