package utils

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "pw123456" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPasswordHash("pw123456", hash) {
		t.Error("expected correct password to verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}
