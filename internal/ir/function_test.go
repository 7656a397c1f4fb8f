package ir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhaig/wasmforge/internal/wasmval"
)

func TestNewLocalFunctionDeclaresParamsWithSyntheticNames(t *testing.T) {
	sig := Signature{
		Params:  []wasmval.ValType{wasmval.I32, wasmval.F64},
		Results: []wasmval.ValType{wasmval.I32},
	}
	fn := NewLocalFunction(FuncID(3), "add", sig)

	require.Len(t, fn.Locals, 2)
	require.Equal(t, LocalID(0), fn.Locals[0].ID)
	require.Equal(t, "arg0", fn.Locals[0].Name)
	require.True(t, fn.Locals[0].IsParam)
	require.Equal(t, wasmval.F64, fn.Locals[1].Type)
	require.Equal(t, "arg1", fn.Locals[1].Name)
}

func TestDeclareLocalContinuesIDsAfterParams(t *testing.T) {
	sig := Signature{Params: []wasmval.ValType{wasmval.I32}}
	fn := NewLocalFunction(FuncID(1), "f", sig)

	id := fn.DeclareLocal(wasmval.I64)
	require.Equal(t, LocalID(1), id)

	loc, ok := fn.Locals.ByID(id)
	require.True(t, ok)
	require.Equal(t, "l1", loc.Name)
	require.False(t, loc.IsParam)
}

func TestLocalsParamsAndDeclaredSplit(t *testing.T) {
	sig := Signature{Params: []wasmval.ValType{wasmval.I32, wasmval.I32}}
	fn := NewLocalFunction(FuncID(1), "f", sig)
	fn.DeclareLocal(wasmval.F32)
	fn.DeclareLocal(wasmval.F32)

	require.Len(t, fn.Locals.Params(), 2)
	require.Len(t, fn.Locals.Declared(), 2)
}

func TestLocalFunctionOwnsAnArenaAndEntry(t *testing.T) {
	fn := NewLocalFunction(FuncID(1), "f", Signature{})
	require.NotNil(t, fn.Arena)
	fn.Entry = fn.Arena.Alloc(&Unreachable{})
	require.Equal(t, ExprID(1), fn.Entry)
}
