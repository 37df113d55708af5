package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret"

func TestJWTRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWT(testSecret, userID, "brand@example.com", "brand", false, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(testSecret, token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "brand@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "brand@example.com")
	}
	if claims.Role != "brand" {
		t.Errorf("Role = %q, want %q", claims.Role, "brand")
	}
	if claims.IsAdmin {
		t.Error("IsAdmin = true, want false")
	}
}

func TestJWTAdminFlagSurvives(t *testing.T) {
	token, err := GenerateJWT(testSecret, uuid.New(), "admin@example.com", "admin", true, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	claims, err := ParseJWT(testSecret, token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if !claims.IsAdmin {
		t.Error("IsAdmin = false, want true")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateJWT(testSecret, uuid.New(), "a@b.com", "creator", false, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(testSecret, token); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateJWT(testSecret, uuid.New(), "a@b.com", "creator", false, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token format: %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	if _, err := ParseJWT(testSecret, tampered); err == nil {
		t.Error("expected error for tampered signature, got nil")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateJWT(testSecret, uuid.New(), "a@b.com", "creator", false, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT("other-secret", token); err == nil {
		t.Error("expected error for wrong secret, got nil")
	}
}

func TestZeroExpirationNotExtended(t *testing.T) {
	token, err := GenerateJWT(testSecret, uuid.New(), "a@b.com", "creator", false, 0)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	// A zero lifetime must not be rewritten into a long-lived token.
	if _, err := ParseJWT(testSecret, token); err == nil {
		t.Error("expected error for zero-lifetime token, got nil")
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "hunter22") {
		t.Error("CheckPassword rejected the original password")
	}
	if CheckPassword(hash, "hunter23") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
