package meta

import "bytes"

// GetMany fetches any number of keys with a single legacy multi-get
// command. The result preserves the server's response order; a key absent
// from the result was not found. Duplicate keys are the server's concern,
// the codec does not deduplicate.
//
// The contract is all-or-nothing: a single malformed record aborts the
// whole call with no partial results.
func GetMany(s Stream, keys []string) ([]KeyedValue, error) {
	for _, key := range keys {
		if !IsValidKey(key) {
			return nil, &InvalidKeyError{Key: key}
		}
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(CmdMultiGet)
	for _, key := range keys {
		buf.WriteByte(' ')
		buf.WriteString(key)
	}
	buf.WriteString(CRLF)

	if err := writeRequest(s, buf); err != nil {
		return nil, err
	}

	var values []KeyedValue
	for {
		line, err := readHeaderLine(s)
		if err != nil {
			return nil, err
		}
		if bytes.Equal(line, endBytes) {
			return values, nil
		}

		fields, err := headerFields(line)
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			return nil, &ServerResponseError{Message: "empty record header"}
		}
		if fields[0] != StatusValue {
			return nil, &ServerResponseError{Message: "unexpected status " + fields[0], Line: string(line)}
		}

		// VALUE <key> <flags> <size>, nothing more.
		if len(fields) < 4 {
			return nil, &ServerResponseError{Message: "truncated VALUE header", Line: string(line)}
		}
		if len(fields) > 4 {
			return nil, &ServerResponseError{Message: "header too long", Line: string(line)}
		}

		flags, err := parseFlags(fields[2], string(line))
		if err != nil {
			return nil, err
		}
		size, err := parseSize(fields[3], string(line))
		if err != nil {
			return nil, err
		}

		data, err := readDataBlock(s, size)
		if err != nil {
			return nil, err
		}

		values = append(values, KeyedValue{
			Key:   fields[1],
			Value: Value{Data: data, Flags: flags},
		})
	}
}
