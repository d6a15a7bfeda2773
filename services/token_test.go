package services

import (
	"testing"

	"gonotes/utils"
)

func setTokenConfig(t *testing.T, secret string, minutes int64) {
	t.Helper()
	prevKey, prevExp := utils.JWTSecretKey, utils.JWTExpirationMinutes
	utils.JWTSecretKey = secret
	utils.JWTExpirationMinutes = minutes
	t.Cleanup(func() {
		utils.JWTSecretKey = prevKey
		utils.JWTExpirationMinutes = prevExp
	})
}

func TestGenerateAndValidate_Success(t *testing.T) {
	setTokenConfig(t, "super-secret", 60)

	tok, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	userID, err := ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("userID mismatch: got %q want %q", userID, "user-123")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	setTokenConfig(t, "super-secret", -1)

	tok, err := GenerateToken("u1")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ValidateToken(tok); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	setTokenConfig(t, "right-secret", 60)

	tok, err := GenerateToken("u2")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	utils.JWTSecretKey = "wrong-secret"
	if _, err := ValidateToken(tok); err == nil {
		t.Fatal("expected error for token signed with another key, got nil")
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	setTokenConfig(t, "k", 60)

	if _, err := ValidateToken("not.a.jwt"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
