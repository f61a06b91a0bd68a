package meta

import "io"

// Stream is the transport contract the codec runs over: an ordered,
// reliable byte channel with buffered writes, an explicit flush, and
// buffered line-oriented reads. *bufio.ReadWriter satisfies it.
//
// The codec borrows the Stream exclusively for the duration of each call
// and performs no buffering of its own. Timeouts and cancellation are
// properties of the underlying stream, not of the codec; a cancelled read
// or write may leave the framing position inconsistent for later calls.
type Stream interface {
	io.Writer
	io.Reader

	// Flush forces buffered writes onto the wire.
	Flush() error

	// ReadBytes reads until the first occurrence of delim, returning the
	// data including the delimiter.
	ReadBytes(delim byte) ([]byte, error)
}
