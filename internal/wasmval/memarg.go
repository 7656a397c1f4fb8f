package wasmval

// MemArg is the (alignment-exponent, offset) pair attached to every memory
// load/store and atomic memory instruction. Align is stored as the log2
// exponent exactly as it appears on the wire — the decoder does not
// validate it against the natural alignment of the access.
type MemArg struct {
	Align  uint32 // log2 of the byte alignment hint
	Offset uint32
}
