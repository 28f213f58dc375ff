package workload

import (
	"bytes"
	"testing"
)

func TestShake256Sum(t *testing.T) {
	a := Shake256Sum([]byte("data"), 64)
	b := Shake256Sum([]byte("data"), 64)
	if len(a) != 64 {
		t.Fatalf("output length: got %d want 64", len(a))
	}
	if !bytes.Equal(a, b) {
		t.Fatal("same input produced different digests")
	}
	if c := Shake256Sum([]byte("other"), 64); bytes.Equal(a, c) {
		t.Fatal("different inputs produced identical digests")
	}
}
