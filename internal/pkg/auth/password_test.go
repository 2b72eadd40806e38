package auth

import (
	"strings"
	"testing"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	if err := hasher.Compare(hash, "secret123"); err != nil {
		t.Fatalf("compare rejected correct password: %v", err)
	}
	if err := hasher.Compare(hash, "wrongpass"); err == nil {
		t.Fatal("compare accepted wrong password")
	}
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(0)
	if hasher.cost == 0 {
		t.Fatal("expected default cost to be applied")
	}
}

func TestBcryptHasherDistinctSalts(t *testing.T) {
	hasher := NewBcryptHasher(4)
	first, err := hasher.Hash("same")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	second, err := hasher.Hash("same")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if first == second {
		t.Fatal("expected salted hashes to differ")
	}
}
