package wasmval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinOpEncodeDecodeRoundTrip(t *testing.T) {
	for op := range binOpEncoding {
		var bytes []byte
		var simd uint32
		hasSimd := false
		ok := EncodeBinOp(op, func(b byte) { bytes = append(bytes, b) }, func(v uint64) { simd = uint32(v); hasSimd = true })
		require.True(t, ok)

		if hasSimd {
			require.Equal(t, []byte{PrefixSIMD}, bytes)
			got, ok := DecodeBinOpSimd(simd)
			require.True(t, ok)
			require.Equal(t, op, got)
			continue
		}
		require.Len(t, bytes, 1)
		got, ok := DecodeBinOpByte(bytes[0])
		require.True(t, ok)
		require.Equal(t, op, got)
	}
}

func TestUnOpEncodeDecodeRoundTrip(t *testing.T) {
	for op := range unOpEncoding {
		enc := unOpEncoding[op]
		var bytes []byte
		var simd uint32
		hasSimd := false
		ok := EncodeUnOp(op, func(b byte) { bytes = append(bytes, b) }, func(v uint64) { simd = uint32(v); hasSimd = true })
		require.True(t, ok)

		switch enc.Prefix {
		case PrefixSIMD:
			require.True(t, hasSimd)
			got, ok := DecodeUnOpSimd(simd)
			require.True(t, ok)
			require.Equal(t, op, got)
		case PrefixBulkMemory:
			require.Equal(t, []byte{PrefixBulkMemory, byte(enc.Code)}, bytes)
			got, ok := DecodeUnOpTrunc(byte(enc.Code))
			require.True(t, ok)
			require.Equal(t, op, got)
		default:
			require.Len(t, bytes, 1)
			got, ok := DecodeUnOpByte(bytes[0])
			require.True(t, ok)
			require.Equal(t, op, got)
		}
	}
}

func TestI32AddIsKnownByte(t *testing.T) {
	var got byte
	ok := EncodeBinOp(I32Add, func(b byte) { got = b }, nil)
	require.True(t, ok)
	require.Equal(t, byte(0x6A), got)
}
