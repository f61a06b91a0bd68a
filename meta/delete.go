package meta

import "bytes"

// Delete removes key from the server with a legacy delete command.
// It returns true if the key existed and was removed, false if the key
// was not found; neither outcome is an error.
func Delete(s Stream, key string) (bool, error) {
	if !IsValidKey(key) {
		return false, &InvalidKeyError{Key: key}
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(CmdDelete)
	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteString(CRLF)

	if err := writeRequest(s, buf); err != nil {
		return false, err
	}

	// The two legitimate outcomes are compared verbatim; anything else
	// is unparseable.
	line, err := readHeaderLine(s)
	if err != nil {
		return false, err
	}
	if bytes.Equal(line, deletedBytes) {
		return true, nil
	}
	if bytes.Equal(line, notFoundBytes) {
		return false, nil
	}
	return false, &ServerResponseError{Message: "unexpected delete response", Line: string(line)}
}
