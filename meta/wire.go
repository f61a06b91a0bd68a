package meta

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// Pre-allocated byte slices for header comparisons.
var (
	lfBytes       = []byte("\n")
	crBytes       = []byte("\r")
	endBytes      = []byte(StatusEnd)
	deletedBytes  = []byte(StatusDeleted)
	notFoundBytes = []byte(StatusNotFound)
)

// Buffer pool for building requests. A typical request line is well under
// 256 bytes; set requests also carry the payload.
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

// writeRequest performs the write half of an exchange: one logical write
// of the serialized request followed by a single flush.
func writeRequest(s Stream, buf *bytes.Buffer) error {
	if _, err := s.Write(buf.Bytes()); err != nil {
		return err
	}
	return s.Flush()
}

// readHeaderLine reads one response header line and strips the
// terminating LF and a preceding CR if present. Read failures, including
// EOF before the delimiter, are transport errors and returned verbatim.
func readHeaderLine(s Stream) ([]byte, error) {
	line, err := s.ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	line = bytes.TrimSuffix(line, lfBytes)
	line = bytes.TrimSuffix(line, crBytes)
	return line, nil
}

// headerFields tokenizes a header line on runs of whitespace. The header
// must be valid ASCII text; raw bytes from a desynchronized stream are
// rejected before tokenizing.
func headerFields(line []byte) ([]string, error) {
	if !utf8.Valid(line) {
		return nil, &ServerResponseError{Message: "non-ASCII header"}
	}
	return strings.Fields(string(line)), nil
}

// readDataBlock switches the stream from line-delimited to fixed-length
// mode: it reads exactly size+2 bytes (the payload plus its CRLF
// terminator) and truncates the trailing two.
func readDataBlock(s Stream, size int) ([]byte, error) {
	buf := make([]byte, size+2)
	if _, err := io.ReadFull(s, buf); err != nil {
		return nil, err
	}
	return buf[:size], nil
}

// parseSize parses a declared data block length.
func parseSize(tok, line string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, &ServerResponseError{Message: "bad data length", Line: line}
	}
	return n, nil
}

// parseFlags parses a bare decimal client flags token.
func parseFlags(tok, line string) (uint32, error) {
	n, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, &ServerResponseError{Message: "bad flags", Line: line}
	}
	return uint32(n), nil
}
