package meta

import (
	"errors"
	"strconv"
)

// InvalidKeyError is returned when a key fails validation.
// It is detected before any bytes are written, so the stream's framing
// position is untouched and the connection remains usable.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return "memcache: invalid key " + strconv.Quote(e.Key)
}

// ShouldCloseConnection returns false - nothing was written to the stream.
func (e *InvalidKeyError) ShouldCloseConnection() bool {
	return false
}

// ServerResponseError is returned when the codec cannot parse or make
// sense of what the server sent: an unexpected status token, a missing or
// non-numeric field, a non-ASCII header, too many fields. It indicates a
// protocol desynchronization the codec cannot recover from within the
// call.
type ServerResponseError struct {
	Message string
	Line    string // the offending header line, CRLF stripped
}

func (e *ServerResponseError) Error() string {
	if e.Line == "" {
		return "memcache: bad server response: " + e.Message
	}
	return "memcache: bad server response: " + e.Message + ": " + strconv.Quote(e.Line)
}

// ShouldCloseConnection returns true - the framing position is unknown.
func (e *ServerResponseError) ShouldCloseConnection() bool {
	return true
}

// QueryError is returned when the server explicitly rejected the request
// with CLIENT_ERROR: the server understood the framing but refused the
// semantics. Distinct from ServerResponseError, where the codec could not
// understand the server.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string {
	return "memcache: bad query: " + e.Message
}

// ShouldCloseConnection returns false - the response was fully consumed,
// the stream is still in sync.
func (e *QueryError) ShouldCloseConnection() bool {
	return false
}

// ErrorWithConnectionState is implemented by errors that know whether the
// stream they came from is still usable.
type ErrorWithConnectionState interface {
	error
	ShouldCloseConnection() bool
}

// ShouldCloseConnection reports whether err requires discarding the
// connection the operation ran on.
//
// Transport errors and any error type this package does not know about
// are treated conservatively: the stream's framing position may be
// inconsistent, so the connection should be closed.
func ShouldCloseConnection(err error) bool {
	if err == nil {
		return false
	}

	var e ErrorWithConnectionState
	if errors.As(err, &e) {
		return e.ShouldCloseConnection()
	}

	return true
}
