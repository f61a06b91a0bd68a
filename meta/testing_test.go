package meta

import (
	"bufio"
	"bytes"
	"strings"
)

// testStream replays a canned server response and records every byte the
// codec writes.
type testStream struct {
	*bufio.ReadWriter
	wire bytes.Buffer
}

func newTestStream(response string) *testStream {
	ts := &testStream{}
	ts.ReadWriter = bufio.NewReadWriter(
		bufio.NewReader(strings.NewReader(response)),
		bufio.NewWriter(&ts.wire),
	)
	return ts
}

// written returns the request bytes flushed to the wire so far.
func (ts *testStream) written() string {
	return ts.wire.String()
}
