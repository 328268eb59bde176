package service

import (
	"testing"
)

func TestGenerateParseJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	token, err := GenerateJWT("user-abc")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != "user-abc" {
		t.Fatalf("expected user-abc, got %s", userID)
	}
}

func TestParseJWTTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	token, err := GenerateJWT("user-abc")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token + "x"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	if _, err := ParseJWT("not-a-token"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
