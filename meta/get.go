package meta

// Get fetches the value stored under key, requesting the client flags
// along with the data.
//
// A nil Value with a nil error means the key was not found; a miss is a
// legitimate outcome, not an error.
func Get(s Stream, key string) (*Value, error) {
	if !IsValidKey(key) {
		return nil, &InvalidKeyError{Key: key}
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(CmdGet)
	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteString(" f v")
	buf.WriteString(CRLF)

	if err := writeRequest(s, buf); err != nil {
		return nil, err
	}

	line, err := readHeaderLine(s)
	if err != nil {
		return nil, err
	}
	fields, err := headerFields(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, &ServerResponseError{Message: "empty header"}
	}

	switch fields[0] {
	case StatusEN:
		// Miss. Anything after the status token is not parsed.
		return nil, nil
	case StatusVA:
	default:
		return nil, &ServerResponseError{Message: "unexpected status " + fields[0], Line: string(line)}
	}

	// VA <size> f<flags>, nothing more.
	if len(fields) < 3 {
		return nil, &ServerResponseError{Message: "truncated VA header", Line: string(line)}
	}
	if len(fields) > 3 {
		return nil, &ServerResponseError{Message: "header too long", Line: string(line)}
	}

	size, err := parseSize(fields[1], string(line))
	if err != nil {
		return nil, err
	}

	flagsTok := fields[2]
	if flagsTok[0] != 'f' {
		return nil, &ServerResponseError{Message: "missing flags", Line: string(line)}
	}
	flags, err := parseFlags(flagsTok[1:], string(line))
	if err != nil {
		return nil, err
	}

	data, err := readDataBlock(s, size)
	if err != nil {
		return nil, err
	}

	return &Value{Data: data, Flags: flags}, nil
}
