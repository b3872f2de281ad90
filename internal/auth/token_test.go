package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(42, "sess-1", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.SessionID != "sess-1" {
		t.Fatalf("session id mismatch: got %q want %q", claims.SessionID, "sess-1")
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken(1, "sess-1", secret, -time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err := ParseToken(tok, secret); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(1, "sess-1", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err := ParseToken(tok, []byte("wrong-secret")); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseToken("not.a.jwt", []byte("k")); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
