package memcache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSelectServer_InRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		idx := DefaultSelectServer(fmt.Sprintf("key%d", i), 5)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 5)
	}
}

func TestDefaultSelectServer_Deterministic(t *testing.T) {
	first := DefaultSelectServer("testkey1", 7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DefaultSelectServer("testkey1", 7))
	}
}

func TestDefaultSelectServer_SingleServer(t *testing.T) {
	assert.Equal(t, 0, DefaultSelectServer("anything", 1))
}

func TestDefaultSelectServer_Distributes(t *testing.T) {
	seen := make(map[int]int)
	for i := 0; i < 1000; i++ {
		seen[DefaultSelectServer(fmt.Sprintf("key%d", i), 4)]++
	}

	// Jump hash over a uniform hash should touch every bucket.
	assert.Len(t, seen, 4)
	for idx, count := range seen {
		assert.Greater(t, count, 100, "server %d starved with %d keys", idx, count)
	}
}
