// Package meta implements the client side of the memcached "Meta" text
// protocol: encoding commands to wire format and parsing server responses,
// including the binary data blocks embedded in the line-delimited framing.
//
// The package is a pure codec. Every operation is a free function taking a
// caller-supplied Stream and performing exactly one request/response
// exchange:
//
//	rw := bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn))
//
//	err := meta.Set(rw, "mykey", meta.Value{Data: []byte("hello"), TTL: 60})
//
//	value, err := meta.Get(rw, "mykey")
//	if value == nil {
//	    // cache miss
//	}
//
// The codec holds no state across calls, performs no retries, manages no
// connections and imposes no timeouts. Each call borrows the Stream
// exclusively for its duration; callers must not run two operations
// concurrently over the same Stream.
//
// # Commands
//
// Retrieval uses the meta single-get command (mg) for one key and the
// legacy multi-get command (get) for batches. Storage uses meta set (ms).
// Removal and version use the legacy verbose commands (delete, version).
//
// # Error Handling
//
// Failures are classified into four mutually exclusive kinds:
//
//   - transport errors from the Stream, propagated verbatim
//   - InvalidKeyError: the key failed validation, nothing was written
//   - ServerResponseError: the server's bytes could not be understood
//   - QueryError: the server replied CLIENT_ERROR, rejecting the request
//
// A key miss is never an error: Get returns a nil Value, Delete returns
// false, and GetMany simply omits the key from its results.
//
// After a transport or server-response error the stream's framing position
// is unknown and the connection should be discarded; use
// ShouldCloseConnection to decide:
//
//	if err != nil && meta.ShouldCloseConnection(err) {
//	    conn.Close()
//	}
package meta
