package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhaig/wasmforge/internal/ir"
)

func TestErrorfFormatsLocation(t *testing.T) {
	d := New()
	d.Errorf(ir.FuncID(3), 12, "type mismatch, expected i32 got i64")

	require.True(t, d.HasErrors())
	require.Equal(t, 1, d.ErrorCount())
	require.Equal(t, "error[func 3 @ offset 12]: type mismatch, expected i32 got i64", d.Format())
}

func TestFromErrorRecoversInvalidFunctionBody(t *testing.T) {
	d := New()
	err := ir.NewInvalidFunctionBody(ir.FuncID(2), 5, "unexpected end of operator stream")

	d.FromError(err)

	require.Len(t, d.All(), 1)
	got := d.All()[0]
	require.Equal(t, ir.FuncID(2), got.Func)
	require.Equal(t, 5, got.Offset)
}

func TestFromErrorRecoversInvalidTransformation(t *testing.T) {
	d := New()
	err := ir.NewInvalidTransformation(ir.FuncID(1), ir.ExprID(7), "rewrite targets tombstoned id")

	d.FromError(err)

	got := d.All()[0]
	require.Equal(t, ir.FuncID(1), got.Func)
	require.Equal(t, 7, got.Offset)
}

func TestClearEmptiesDiagnostics(t *testing.T) {
	d := New()
	d.Warningf(ir.FuncID(0), 0, "unreachable code after return")
	require.Equal(t, 1, d.Count())

	d.Clear()
	require.Equal(t, 0, d.Count())
	require.Empty(t, d.Format())
}
