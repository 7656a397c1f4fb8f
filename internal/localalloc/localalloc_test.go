package localalloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhaig/wasmforge/internal/ir"
	"github.com/lhaig/wasmforge/internal/wasmval"
)

func TestParametersKeepFixedIndices(t *testing.T) {
	sig := ir.Signature{Params: []wasmval.ValType{wasmval.I32, wasmval.F64}}
	fn := ir.NewLocalFunction(ir.FuncID(1), "f", sig)

	m := Allocate(fn)
	idx0, ok := m.WireIndex(fn.Locals[0].ID)
	require.True(t, ok)
	require.Equal(t, uint32(0), idx0)
	idx1, ok := m.WireIndex(fn.Locals[1].ID)
	require.True(t, ok)
	require.Equal(t, uint32(1), idx1)
	require.Empty(t, m.Prelude)
}

func TestUnusedDeclaredLocalsAreDropped(t *testing.T) {
	fn := ir.NewLocalFunction(ir.FuncID(1), "f", ir.Signature{})
	unused := fn.DeclareLocal(wasmval.I64)

	m := Allocate(fn)
	_, ok := m.WireIndex(unused)
	require.False(t, ok)
	require.Empty(t, m.Prelude)
}

func TestUsedLocalsGroupedByTypeInCanonicalOrder(t *testing.T) {
	sig := ir.Signature{Params: []wasmval.ValType{wasmval.I32}}
	fn := ir.NewLocalFunction(ir.FuncID(1), "f", sig)

	f64a := fn.DeclareLocal(wasmval.F64)
	i32a := fn.DeclareLocal(wasmval.I32)
	i32b := fn.DeclareLocal(wasmval.I32)
	f64b := fn.DeclareLocal(wasmval.F64)

	for _, id := range []ir.LocalID{f64a, i32a, i32b, f64b} {
		fn.Arena.Alloc(&ir.LocalGet{Local: id})
	}

	m := Allocate(fn)
	require.Equal(t, []Run{
		{Count: 2, Type: wasmval.I32},
		{Count: 2, Type: wasmval.F64},
	}, m.Prelude)

	idxI32a, _ := m.WireIndex(i32a)
	idxI32b, _ := m.WireIndex(i32b)
	idxF64a, _ := m.WireIndex(f64a)
	idxF64b, _ := m.WireIndex(f64b)

	require.ElementsMatch(t, []uint32{1, 2}, []uint32{idxI32a, idxI32b})
	require.ElementsMatch(t, []uint32{3, 4}, []uint32{idxF64a, idxF64b})
}

func TestLocalSetAndTeeAlsoCountAsUsage(t *testing.T) {
	fn := ir.NewLocalFunction(ir.FuncID(1), "f", ir.Signature{})
	setOnly := fn.DeclareLocal(wasmval.I32)
	teeOnly := fn.DeclareLocal(wasmval.I32)

	fn.Arena.Alloc(&ir.LocalSet{Local: setOnly})
	fn.Arena.Alloc(&ir.LocalTee{Local: teeOnly})

	m := Allocate(fn)
	_, ok := m.WireIndex(setOnly)
	require.True(t, ok)
	_, ok = m.WireIndex(teeOnly)
	require.True(t, ok)
}
