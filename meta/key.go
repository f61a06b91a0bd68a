package meta

// IsValidKey reports whether key is acceptable on the wire: every byte
// must be printable non-space ASCII. Control characters, space, DEL and
// anything above 0x7E would break the whitespace-delimited framing.
//
// Every operation applies this check before writing any bytes.
func IsValidKey(key string) bool {
	for i := 0; i < len(key); i++ {
		if key[i] <= 32 || key[i] >= 127 {
			return false
		}
	}
	return true
}
