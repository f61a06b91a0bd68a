package memcache

import (
	"github.com/zeebo/xxh3"

	"github.com/yamemcache/go-memcache/internal"
)

// SelectServerFunc picks which server handles a key. It receives the key
// and the server count and returns an index into the server list.
type SelectServerFunc func(key string, serverCount int) int

// DefaultSelectServer hashes the key with xxh3 and maps it onto a server
// with Jump Hash, which gives even distribution and minimal key movement
// when the server list grows or shrinks.
func DefaultSelectServer(key string, serverCount int) int {
	return internal.JumpHash(xxh3.HashString(key), serverCount)
}

// staticSelector is used in tests to always select a specific server.
func staticSelector(index int) SelectServerFunc {
	return func(key string, serverCount int) int {
		return index % serverCount
	}
}
