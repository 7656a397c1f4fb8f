package wasmval

var byteToLoadKind = map[byte]LoadKind{
	OpI32Load: LoadI32, OpI64Load: LoadI64, OpF32Load: LoadF32, OpF64Load: LoadF64,
	OpI32Load8S: LoadI32_8S, OpI32Load8U: LoadI32_8U, OpI32Load16S: LoadI32_16S, OpI32Load16U: LoadI32_16U,
	OpI64Load8S: LoadI64_8S, OpI64Load8U: LoadI64_8U, OpI64Load16S: LoadI64_16S, OpI64Load16U: LoadI64_16U,
	OpI64Load32S: LoadI64_32S, OpI64Load32U: LoadI64_32U,
}

var loadKindToByte = inverseLoad(byteToLoadKind)

func inverseLoad(m map[byte]LoadKind) map[LoadKind]byte {
	out := make(map[LoadKind]byte, len(m))
	for b, k := range m {
		out[k] = b
	}
	return out
}

var byteToStoreKind = map[byte]StoreKind{
	OpI32Store: StoreI32, OpI64Store: StoreI64, OpF32Store: StoreF32, OpF64Store: StoreF64,
	OpI32Store8: StoreI32_8, OpI32Store16: StoreI32_16,
	OpI64Store8: StoreI64_8, OpI64Store16: StoreI64_16, OpI64Store32: StoreI64_32,
}

var storeKindToByte = inverseStore(byteToStoreKind)

func inverseStore(m map[byte]StoreKind) map[StoreKind]byte {
	out := make(map[StoreKind]byte, len(m))
	for b, k := range m {
		out[k] = b
	}
	return out
}

var atomicByteToLoadKind = map[byte]LoadKind{
	AtomicI32Load: AtomicLoadI32, AtomicI64Load: AtomicLoadI64,
	AtomicI32Load8U: AtomicLoadI32_8U, AtomicI32Load16U: AtomicLoadI32_16U,
	AtomicI64Load8U: AtomicLoadI64_8U, AtomicI64Load16U: AtomicLoadI64_16U, AtomicI64Load32U: AtomicLoadI64_32U,
}

var atomicLoadKindToByte = inverseLoad(atomicByteToLoadKind)

var atomicByteToStoreKind = map[byte]StoreKind{
	AtomicI32Store: AtomicStoreI32, AtomicI64Store: AtomicStoreI64,
	AtomicI32Store8: AtomicStoreI32_8, AtomicI32Store16: AtomicStoreI32_16,
	AtomicI64Store8: AtomicStoreI64_8, AtomicI64Store16: AtomicStoreI64_16, AtomicI64Store32: AtomicStoreI64_32,
}

var atomicStoreKindToByte = inverseStore(atomicByteToStoreKind)

// DecodeLoadKind maps a plain (non-atomic) load opcode byte to a LoadKind.
func DecodeLoadKind(b byte) (LoadKind, bool) {
	k, ok := byteToLoadKind[b]
	return k, ok
}

// EncodeLoadKind is the inverse of DecodeLoadKind.
func EncodeLoadKind(k LoadKind) (byte, bool) {
	b, ok := loadKindToByte[k]
	return b, ok
}

// DecodeStoreKind maps a plain (non-atomic) store opcode byte to a StoreKind.
func DecodeStoreKind(b byte) (StoreKind, bool) {
	k, ok := byteToStoreKind[b]
	return k, ok
}

// EncodeStoreKind is the inverse of DecodeStoreKind.
func EncodeStoreKind(k StoreKind) (byte, bool) {
	b, ok := storeKindToByte[k]
	return b, ok
}

// DecodeAtomicLoadKind maps an atomic load sub-opcode (under the 0xFE
// prefix) to a LoadKind.
func DecodeAtomicLoadKind(b byte) (LoadKind, bool) {
	k, ok := atomicByteToLoadKind[b]
	return k, ok
}

// EncodeAtomicLoadKind is the inverse of DecodeAtomicLoadKind.
func EncodeAtomicLoadKind(k LoadKind) (byte, bool) {
	b, ok := atomicLoadKindToByte[k]
	return b, ok
}

// DecodeAtomicStoreKind maps an atomic store sub-opcode to a StoreKind.
func DecodeAtomicStoreKind(b byte) (StoreKind, bool) {
	k, ok := atomicByteToStoreKind[b]
	return k, ok
}

// EncodeAtomicStoreKind is the inverse of DecodeAtomicStoreKind.
func EncodeAtomicStoreKind(k StoreKind) (byte, bool) {
	b, ok := atomicStoreKindToByte[k]
	return b, ok
}
