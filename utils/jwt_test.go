package utils

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(42, "alice")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	id, username, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}
	if id != 42 {
		t.Errorf("expected id 42, got %d", id)
	}
	if username != "alice" {
		t.Errorf("expected username 'alice', got %q", username)
	}
}

func TestParseJWT_Garbage(t *testing.T) {
	if _, _, err := ParseJWT("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
	if _, _, err := ParseJWT(""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestParseJWT_Tampered(t *testing.T) {
	token, err := GenerateJWT(7, "bob")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, _, err := ParseJWT(tampered); err == nil {
		t.Error("expected error for token with a broken signature")
	}
}

func TestParseJWT_RejectsNonHMAC(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":       9,
		"username": "mallory",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing with none failed: %v", err)
	}
	if _, _, err := ParseJWT(token); err == nil {
		t.Error("expected error for alg=none token")
	}

	// A token claiming RS256 must fail before any signature check.
	enc := base64.RawURLEncoding.EncodeToString
	forged := enc([]byte(`{"alg":"RS256","typ":"JWT"}`)) + "." +
		enc([]byte(`{"id":9,"username":"mallory"}`)) + "." +
		enc([]byte("not-a-signature"))
	if _, _, err := ParseJWT(forged); err == nil {
		t.Error("expected error for RS256 token")
	}
}
