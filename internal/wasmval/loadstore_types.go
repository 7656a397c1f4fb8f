package wasmval

// ValueType returns the value type a Load of kind k produces on the stack.
func (k LoadKind) ValueType() ValType {
	switch k {
	case LoadI64, LoadI64_8S, LoadI64_8U, LoadI64_16S, LoadI64_16U, LoadI64_32S, LoadI64_32U,
		AtomicLoadI64, AtomicLoadI64_8U, AtomicLoadI64_16U, AtomicLoadI64_32U:
		return I64
	case LoadF32:
		return F32
	case LoadF64:
		return F64
	default:
		return I32
	}
}

// ValueType returns the value type a Store of kind k consumes.
func (k StoreKind) ValueType() ValType {
	switch k {
	case StoreI64, StoreI64_8, StoreI64_16, StoreI64_32,
		AtomicStoreI64, AtomicStoreI64_8, AtomicStoreI64_16, AtomicStoreI64_32:
		return I64
	case StoreF32:
		return F32
	case StoreF64:
		return F64
	default:
		return I32
	}
}
