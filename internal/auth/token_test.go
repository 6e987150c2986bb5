package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", 60)
	userID := "user-123"

	tok, _, err := tm.GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := tm.ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID() != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID(), userID)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	tm := &TokenManager{secret: []byte("secret"), ttl: -1 * time.Second}

	tok, _, err := tm.GenerateToken("u1")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := tm.ParseToken(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewTokenManager("right-secret", 60).GenerateToken("u2")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := NewTokenManager("wrong-secret", 60).ParseToken(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseToken_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenManager("k", 60).ParseToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("password1", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "password1" {
		t.Fatalf("hash must not equal plaintext")
	}
	if err := ComparePassword(hash, "password1"); err != nil {
		t.Fatalf("ComparePassword mismatch: %v", err)
	}
	if err := ComparePassword(hash, "password2"); err == nil {
		t.Fatalf("expected mismatch error, got nil")
	}
}
