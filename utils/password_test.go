package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("segredo1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "segredo1" {
		t.Fatal("hash must not equal the password")
	}
	if !CheckPasswordHash("segredo1", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("segredo2", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("segredo1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("segredo1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ (salt)")
	}
	if !CheckPasswordHash("segredo1", h2) {
		t.Fatal("second hash rejected its own password")
	}
}
