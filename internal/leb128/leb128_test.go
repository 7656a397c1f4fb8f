package leb128

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUvarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 16384, 1 << 35, ^uint64(0)}
	for _, v := range cases {
		b := NewBuffer()
		b.WriteUvarint(v)
		r := NewReader(b.Bytes())
		got, err := r.ReadUvarint()
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.True(t, r.Done())
	}
}

func TestVarintRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 63, -64, 64, -65, 1 << 40, -(1 << 40)}
	for _, v := range cases {
		b := NewBuffer()
		b.WriteVarint(v)
		r := NewReader(b.Bytes())
		got, err := r.ReadVarint()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestKnownEncodings(t *testing.T) {
	// 42 as an unsigned varint is a single byte 0x2a (scenario 1 in spec.md §8).
	b := NewBuffer()
	b.WriteUvarint(42)
	require.Equal(t, []byte{0x2a}, b.Bytes())

	// i32.const 42's operand is a *signed* varint; still a single byte.
	b = NewBuffer()
	b.WriteVarint(42)
	require.Equal(t, []byte{0x2a}, b.Bytes())

	// 624485 is the canonical multi-byte example from the wasm spec appendix.
	b = NewBuffer()
	b.WriteUvarint(624485)
	require.Equal(t, []byte{0xe5, 0x8e, 0x26}, b.Bytes())
}

func TestFloatRoundTrip(t *testing.T) {
	b := NewBuffer()
	b.WriteF64(3.14159)
	r := NewReader(b.Bytes())
	got, err := r.ReadF64()
	require.NoError(t, err)
	require.Equal(t, 3.14159, got)
}

func TestStringAndVector(t *testing.T) {
	b := NewBuffer()
	b.WriteString("wasm")
	r := NewReader(b.Bytes())
	n, err := r.ReadUvarint()
	require.NoError(t, err)
	require.Equal(t, uint64(4), n)
	raw, err := r.ReadBytes(int(n))
	require.NoError(t, err)
	require.Equal(t, "wasm", string(raw))
}

func TestReaderErrorsOnTruncatedInput(t *testing.T) {
	r := NewReader([]byte{0x80, 0x80})
	_, err := r.ReadUvarint()
	require.Error(t, err)

	r2 := NewReader(nil)
	_, err = r2.ReadByte()
	require.Error(t, err)
}
