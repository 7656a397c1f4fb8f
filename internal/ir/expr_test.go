package ir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhaig/wasmforge/internal/wasmval"
)

// TestExprKindsAreExhaustive guards against a new variant being added
// without a matching Kind constant: every struct below must round-trip
// through a type switch keyed on Kind().
func TestExprKindsAreExhaustive(t *testing.T) {
	exprs := []Expr{
		&Const{},
		&Block{},
		&IfElse{},
		&BrTable{},
		&Br{},
		&BrIf{},
		&Return{},
		&Drop{},
		&Select{},
		&Unreachable{},
		&Call{},
		&CallIndirect{},
		&LocalGet{},
		&LocalSet{},
		&LocalTee{},
		&GlobalGet{},
		&GlobalSet{},
		&Load{},
		&Store{},
		&MemorySize{},
		&MemoryGrow{},
		&MemoryInit{},
		&MemoryCopy{},
		&MemoryFill{},
		&DataDrop{},
		&AtomicRmw{},
		&Cmpxchg{},
		&AtomicWait{},
		&AtomicNotify{},
		&TableGet{},
		&TableSet{},
		&TableGrow{},
		&TableSize{},
		&RefNull{},
		&RefIsNull{},
		&V128Bitselect{},
		&V128Shuffle{},
		&Binop{},
		&Unop{},
		&WithSideEffects{},
	}

	seen := make(map[ExprKind]bool, len(exprs))
	for _, e := range exprs {
		k := e.Kind()
		require.False(t, seen[k], "duplicate ExprKind %v", k)
		seen[k] = true
	}
	require.Len(t, seen, int(KindWithSideEffects)+1)
}

func TestBinopAndUnopCarryWasmvalOps(t *testing.T) {
	b := &Binop{Op: wasmval.I32Add, Lhs: 1, Rhs: 2}
	require.Equal(t, KindBinop, b.Kind())
	require.Equal(t, wasmval.I32Add, b.Op)

	u := &Unop{Op: wasmval.I32Eqz, Value: 1}
	require.Equal(t, KindUnop, u.Kind())
}

func TestRefNullCarriesReferenceType(t *testing.T) {
	r := &RefNull{Type: wasmval.FuncRef}
	require.True(t, r.Type.IsReference())
}

func TestWithSideEffectsWrapsValue(t *testing.T) {
	a := NewArena()
	before := a.Alloc(&Unreachable{})
	value := a.Alloc(&Const{Value: ConstValue{Type: wasmval.I32, I32: 7}})
	wrapped := a.Alloc(&WithSideEffects{Before: []ExprID{before}, Value: value})

	e := a.MustGet(wrapped)
	ws, ok := e.(*WithSideEffects)
	require.True(t, ok)
	require.Equal(t, value, ws.Value)
	require.Equal(t, []ExprID{before}, ws.Before)
}
