package auth

import (
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatalf("expected password to verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatalf("expected wrong password rejected")
	}
}

func TestSignAndVerifyToken(t *testing.T) {
	token, err := SignToken("secret", "admin")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	username, err := VerifyToken("secret", token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if username != "admin" {
		t.Fatalf("expected subject admin, got %q", username)
	}
}

func TestVerifyTokenRejectsBadInput(t *testing.T) {
	if _, err := VerifyToken("secret", ""); err == nil {
		t.Fatalf("expected empty token rejected")
	}

	token, err := SignToken("secret", "admin")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := VerifyToken("other-secret", token); err == nil {
		t.Fatalf("expected wrong secret rejected")
	}
	if _, err := VerifyToken("secret", token+"tampered"); err == nil {
		t.Fatalf("expected tampered token rejected")
	}
}
