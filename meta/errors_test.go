package meta

import (
	"fmt"
	"io"
	"testing"
)

func TestShouldCloseConnection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"invalid key", &InvalidKeyError{Key: "bad key"}, false},
		{"bad query", &QueryError{Message: "CLIENT_ERROR bad data chunk"}, false},
		{"bad server response", &ServerResponseError{Message: "unexpected status"}, true},
		{"transport error", io.EOF, true},
		{"wrapped server response", fmt.Errorf("op: %w", &ServerResponseError{Message: "x"}), true},
		{"wrapped invalid key", fmt.Errorf("op: %w", &InvalidKeyError{Key: "x y"}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldCloseConnection(tt.err); got != tt.want {
				t.Errorf("ShouldCloseConnection(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&InvalidKeyError{Key: "a b"}, `memcache: invalid key "a b"`},
		{&ServerResponseError{Message: "bad flags"}, "memcache: bad server response: bad flags"},
		{&ServerResponseError{Message: "bad flags", Line: "VA 4 zz"}, `memcache: bad server response: bad flags: "VA 4 zz"`},
		{&QueryError{Message: "CLIENT_ERROR bad data chunk"}, "memcache: bad query: CLIENT_ERROR bad data chunk"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
