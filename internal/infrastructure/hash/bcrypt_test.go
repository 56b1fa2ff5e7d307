package hash

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("s3cret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hashed == "s3cret1" {
		t.Fatalf("hash equals plaintext")
	}

	if !h.Compare(hashed, "s3cret1") {
		t.Fatalf("expected match")
	}
	if h.Compare(hashed, "wrong") {
		t.Fatalf("expected mismatch")
	}
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	h := NewBcryptHasher(99)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost fallback, got %d", h.cost)
	}
}
