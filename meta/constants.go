package meta

// Protocol delimiters
const (
	// CRLF terminates every request line, response header and data block.
	CRLF = "\r\n"
)

// Request commands
const (
	// CmdGet is the meta single-get command.
	// Wire format: mg <key> f v\r\n
	CmdGet = "mg"

	// CmdSet is the meta set command.
	// Wire format: ms <key> S<size> T<ttl> F<flags>\r\n<data>\r\n
	CmdSet = "ms"

	// CmdMultiGet is the legacy multi-key retrieval command.
	// Wire format: get <key> <key> ...\r\n
	// Unlike mg it always returns client flags with each value.
	CmdMultiGet = "get"

	// CmdDelete is the legacy removal command.
	// Wire format: delete <key>\r\n
	CmdDelete = "delete"

	// CmdVersion asks for the server version string.
	// Wire format: version\r\n
	CmdVersion = "version"
)

// Response tokens
const (
	// StatusVA precedes a value: VA <size> f<flags>
	StatusVA = "VA"

	// StatusEN is a meta-get miss.
	StatusEN = "EN"

	// StatusHD and StatusOK both acknowledge a successful store.
	StatusHD = "HD"
	StatusOK = "OK"

	// StatusValue precedes each multi-get record: VALUE <key> <flags> <size>
	StatusValue = "VALUE"

	// StatusEnd terminates a multi-get response.
	StatusEnd = "END"

	// StatusDeleted and StatusNotFound are the two delete outcomes.
	StatusDeleted  = "DELETED"
	StatusNotFound = "NOT_FOUND"

	// ErrorClient prefixes a server-side rejection of the request.
	ErrorClient = "CLIENT_ERROR"

	// VersionPrefix starts a version response.
	VersionPrefix = "VERSION "
)
