// Package leb128 implements the low-level byte primitives the wasm binary
// format is built out of: unsigned and signed LEB128 varints, little-endian
// IEEE-754 floats, and the length-prefixed string/vector framing used by
// almost every section.
//
// Buffer is the append-only write side (what spec.md calls the "primitive
// encoder"); Reader is its read-side counterpart, used by the body parser to
// pull immediates back out of an opcode stream.
package leb128

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// Buffer is an unbuffered, append-only byte sink. It never seeks or
// rewrites previously written bytes; every write grows the buffer.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) {
	b.buf = append(b.buf, c)
}

// WriteBytes appends raw bytes verbatim.
func (b *Buffer) WriteBytes(p []byte) {
	b.buf = append(b.buf, p...)
}

// WriteUvarint appends v as an unsigned LEB128 varint.
func (b *Buffer) WriteUvarint(v uint64) {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		b.buf = append(b.buf, c)
		if v == 0 {
			return
		}
	}
}

// WriteVarint appends v as a signed LEB128 varint.
func (b *Buffer) WriteVarint(v int64) {
	more := true
	for more {
		c := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && c&0x40 == 0) || (v == -1 && c&0x40 != 0) {
			more = false
		} else {
			c |= 0x80
		}
		b.buf = append(b.buf, c)
	}
}

// WriteF32 appends v as 4 little-endian bytes.
func (b *Buffer) WriteF32(v float32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v))
	b.buf = append(b.buf, tmp[:]...)
}

// WriteF64 appends v as 8 little-endian bytes.
func (b *Buffer) WriteF64(v float64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	b.buf = append(b.buf, tmp[:]...)
}

// WriteV128 appends v as 16 raw bytes (little-endian lanes).
func (b *Buffer) WriteV128(v [16]byte) {
	b.buf = append(b.buf, v[:]...)
}

// WriteString appends the LEB128 byte-length of s followed by its bytes.
func (b *Buffer) WriteString(s string) {
	b.WriteUvarint(uint64(len(s)))
	b.buf = append(b.buf, s...)
}

// WriteVector writes count as a LEB128 prefix followed by the raw item
// bytes the caller has already encoded.
func (b *Buffer) WriteVector(count int, items []byte) {
	b.WriteUvarint(uint64(count))
	b.buf = append(b.buf, items...)
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Bytes returns the accumulated bytes. The caller must not mutate the
// returned slice.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Reader reads the same primitives back out of a byte slice, tracking a
// read cursor. It never panics on malformed input; every accessor returns
// an error instead.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps b for sequential reading.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int { return len(r.buf) - r.pos }

// Done reports whether the reader has consumed the whole buffer.
func (r *Reader) Done() bool { return r.pos >= len(r.buf) }

// ReadByte consumes and returns the next byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, errors.Errorf("leb128: read byte at offset %d: unexpected end of stream", r.pos)
	}
	c := r.buf[r.pos]
	r.pos++
	return c, nil
}

// ReadBytes consumes and returns the next n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, errors.Errorf("leb128: read %d bytes at offset %d: unexpected end of stream", n, r.pos)
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// ReadUvarint consumes an unsigned LEB128 varint, up to 64 bits.
func (r *Reader) ReadUvarint() (uint64, error) {
	var result uint64
	var shift uint
	start := r.pos
	for {
		if shift >= 70 {
			return 0, errors.Errorf("leb128: uvarint at offset %d overflows 64 bits", start)
		}
		c, err := r.ReadByte()
		if err != nil {
			return 0, errors.Wrapf(err, "leb128: uvarint starting at offset %d", start)
		}
		result |= uint64(c&0x7f) << shift
		if c&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// ReadVarint consumes a signed LEB128 varint, up to 64 bits.
func (r *Reader) ReadVarint() (int64, error) {
	var result int64
	var shift uint
	var c byte
	start := r.pos
	for {
		if shift >= 70 {
			return 0, errors.Errorf("leb128: varint at offset %d overflows 64 bits", start)
		}
		var err error
		c, err = r.ReadByte()
		if err != nil {
			return 0, errors.Wrapf(err, "leb128: varint starting at offset %d", start)
		}
		result |= int64(c&0x7f) << shift
		shift += 7
		if c&0x80 == 0 {
			break
		}
	}
	if shift < 64 && c&0x40 != 0 {
		result |= -1 << shift
	}
	return result, nil
}

// ReadF32 consumes 4 little-endian bytes as a float32.
func (r *Reader) ReadF32() (float32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, errors.Wrap(err, "leb128: f32")
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// ReadF64 consumes 8 little-endian bytes as a float64.
func (r *Reader) ReadF64() (float64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, errors.Wrap(err, "leb128: f64")
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadV128 consumes 16 raw bytes.
func (r *Reader) ReadV128() ([16]byte, error) {
	var out [16]byte
	b, err := r.ReadBytes(16)
	if err != nil {
		return out, errors.Wrap(err, "leb128: v128")
	}
	copy(out[:], b)
	return out, nil
}
