package wasmval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinOpSigCompareYieldsI32(t *testing.T) {
	sig, ok := BinOpSig(I64LtS)
	require.True(t, ok)
	require.Equal(t, I64, sig.Operand)
	require.Equal(t, I32, sig.Result)
}

func TestUnOpSigConversionChangesType(t *testing.T) {
	sig, ok := UnOpSig(I32WrapI64)
	require.True(t, ok)
	require.Equal(t, I64, sig.Operand)
	require.Equal(t, I32, sig.Result)
}

func TestLoadKindValueType(t *testing.T) {
	require.Equal(t, I32, LoadI32_8S.ValueType())
	require.Equal(t, I64, LoadI64.ValueType())
	require.Equal(t, F64, LoadF64.ValueType())
}

func TestStoreKindValueType(t *testing.T) {
	require.Equal(t, I32, StoreI32.ValueType())
	require.Equal(t, I64, AtomicStoreI64_32.ValueType())
}

func TestEverySignatureTableEntryHasEncoding(t *testing.T) {
	for op := range binOpSignatures {
		_, ok := binOpEncoding[op]
		require.True(t, ok, "BinOp %v has a signature but no encoding", op)
	}
	for op := range unOpSignatures {
		_, ok := unOpEncoding[op]
		require.True(t, ok, "UnOp %v has a signature but no encoding", op)
	}
}
