package meta

import (
	"errors"
	"testing"
)

func TestDeleteRequestFormat(t *testing.T) {
	ts := newTestStream("DELETED\r\n")

	found, err := Delete(ts, "testkey1")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !found {
		t.Error("expected found = true")
	}

	if got, want := ts.written(), "delete testkey1\r\n"; got != want {
		t.Errorf("request = %q, want %q", got, want)
	}
}

func TestDeleteNotFound(t *testing.T) {
	// A missing key is a legitimate outcome, not an error.
	found, err := Delete(newTestStream("NOT_FOUND\r\n"), "mykey")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if found {
		t.Error("expected found = false")
	}
}

func TestDeleteMalformedResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"generic error", "ERROR\r\n"},
		{"empty header", "\r\n"},
		{"deleted with trailing token", "DELETED extra\r\n"},
		{"lowercase", "deleted\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Delete(newTestStream(tt.response), "mykey")

			var respErr *ServerResponseError
			if !errors.As(err, &respErr) {
				t.Fatalf("expected ServerResponseError, got %v", err)
			}
		})
	}
}

func TestDeleteInvalidKey(t *testing.T) {
	ts := newTestStream("")

	_, err := Delete(ts, "bad key")

	var keyErr *InvalidKeyError
	if !errors.As(err, &keyErr) {
		t.Fatalf("expected InvalidKeyError, got %v", err)
	}
	if ts.written() != "" {
		t.Errorf("%d bytes written before validation", len(ts.written()))
	}
}
