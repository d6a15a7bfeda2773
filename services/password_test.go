package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "p1" {
		t.Fatal("digest must not equal the plaintext")
	}

	if !CheckPassword("p1", digest) {
		t.Fatal("CheckPassword rejected the correct password")
	}
	if CheckPassword("wrong", digest) {
		t.Fatal("CheckPassword accepted a wrong password")
	}
}

func TestHashPassword_Cost(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if cost != 10 {
		t.Fatalf("cost mismatch: got %d want 10", cost)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	if CheckPassword("p1", "not-a-bcrypt-digest") {
		t.Fatal("CheckPassword accepted a malformed digest")
	}
}
