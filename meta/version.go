package meta

import (
	"strings"
	"unicode/utf8"
)

// Version asks the server for its version string.
func Version(s Stream) (string, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(CmdVersion)
	buf.WriteString(CRLF)

	if err := writeRequest(s, buf); err != nil {
		return "", err
	}

	line, err := readHeaderLine(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(line) {
		return "", &ServerResponseError{Message: "non-ASCII header"}
	}

	header := strings.TrimSpace(string(line))
	version, ok := strings.CutPrefix(header, VersionPrefix)
	if !ok || version == "" {
		return "", &ServerResponseError{Message: "unexpected version response", Line: header}
	}
	return version, nil
}
