package meta

// Value is the unit of data exchanged with the server.
//
// A Value is constructed by the caller (for Set) or by the codec (for
// fetch results) and never retained by the codec beyond the call that
// produced it.
type Value struct {
	// Data is the raw payload. The codec assumes no encoding.
	Data []byte

	// Flags is an opaque tag set by the writer and returned verbatim to
	// readers. The codec never interprets it.
	Flags uint32

	// TTL is the requested time to live in seconds. Zero means no
	// explicit expiry, per protocol convention; the server may still
	// evict the item under memory pressure.
	TTL uint32

	// CAS is the compare-and-swap token. Reserved: no operation
	// currently transmits or requests it.
	CAS uint32
}

// KeyedValue is one multi-get result record.
type KeyedValue struct {
	Key   string
	Value Value
}
