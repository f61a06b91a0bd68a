package meta_test

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/yamemcache/go-memcache/meta"
)

// The codec runs over any Stream; *bufio.ReadWriter satisfies it. The
// examples script the server side with a canned response.

func ExampleGet() {
	server := strings.NewReader("VA 5 f0\r\nhello\r\n")
	rw := bufio.NewReadWriter(bufio.NewReader(server), bufio.NewWriter(io.Discard))

	value, err := meta.Get(rw, "greeting")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(string(value.Data))
	// Output: hello
}

func ExampleGet_miss() {
	server := strings.NewReader("EN\r\n")
	rw := bufio.NewReadWriter(bufio.NewReader(server), bufio.NewWriter(io.Discard))

	value, err := meta.Get(rw, "missing")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(value == nil)
	// Output: true
}

func ExampleDelete() {
	server := strings.NewReader("NOT_FOUND\r\n")
	rw := bufio.NewReadWriter(bufio.NewReader(server), bufio.NewWriter(io.Discard))

	found, err := meta.Delete(rw, "missing")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(found)
	// Output: false
}
