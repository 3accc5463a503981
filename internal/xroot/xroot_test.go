package xroot

import (
	"testing"
)

func TestOpenUnknownDisplay(t *testing.T) {
	d, err := Open(":4711")
	if err == nil {
		d.Close()
		t.Fatalf("expected an error for a display without server")
	}
}
