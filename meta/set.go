package meta

import "strconv"

// Set stores value under key with a meta set command. The request line,
// payload and terminator go out as one logical write before a single
// flush.
//
// A zero TTL encodes as the literal T0, which the protocol defines as "no
// expiry" (not "expire immediately"). The CAS field of value is never
// transmitted.
func Set(s Stream, key string, value Value) error {
	if !IsValidKey(key) {
		return &InvalidKeyError{Key: key}
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(CmdSet)
	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteString(" S")
	buf.WriteString(strconv.Itoa(len(value.Data)))
	buf.WriteString(" T")
	buf.WriteString(strconv.FormatUint(uint64(value.TTL), 10))
	buf.WriteString(" F")
	buf.WriteString(strconv.FormatUint(uint64(value.Flags), 10))
	buf.WriteString(CRLF)
	buf.Write(value.Data)
	buf.WriteString(CRLF)

	if err := writeRequest(s, buf); err != nil {
		return err
	}

	line, err := readHeaderLine(s)
	if err != nil {
		return err
	}
	fields, err := headerFields(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return &ServerResponseError{Message: "empty header"}
	}

	switch fields[0] {
	case StatusHD, StatusOK:
		return nil
	case ErrorClient:
		return &QueryError{Message: string(line)}
	default:
		return &ServerResponseError{Message: "unexpected status " + fields[0], Line: string(line)}
	}
}
