package utils

import (
	"testing"
	"time"
)

func TestGenerateAndParseJWT(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT("admin-1", "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Subject != "admin-1" {
		t.Errorf("subject = %q, want %q", claims.Subject, "admin-1")
	}
	if claims.Role != "ADMIN" {
		t.Errorf("role = %q, want %q", claims.Role, "ADMIN")
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-a")
	token, err := GenerateJWT("admin-1", "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	InitJWT("secret-b")
	if _, err := ParseJWT(token); err == nil {
		t.Fatal("expected parse to fail with wrong secret")
	}
}

func TestParseJWTRejectsExpired(t *testing.T) {
	InitJWT("test-secret")
	token, err := GenerateJWT("admin-1", "ADMIN", -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ParseJWT(token); err == nil {
		t.Fatal("expected parse to fail for expired token")
	}
}
