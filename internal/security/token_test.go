package security

import (
	"testing"
	"time"
)

const testSecret = "unit-test-secret"

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken(testSecret, "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken() error = %v", err)
	}

	claims, err := ParseAdminToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseAdminToken() error = %v", err)
	}
	if claims.Subject != "admin@example.com" {
		t.Errorf("subject = %q, want admin@example.com", claims.Subject)
	}
}

func TestAdminTokenExpired(t *testing.T) {
	token, err := GenerateAdminToken(testSecret, "admin@example.com", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseAdminToken(token, testSecret); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestAdminTokenWrongSecret(t *testing.T) {
	token, err := GenerateAdminToken(testSecret, "admin@example.com", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseAdminToken(token, "other-secret"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestAdminTokenGarbage(t *testing.T) {
	if _, err := ParseAdminToken("not.a.jwt", testSecret); err == nil {
		t.Error("expected error for garbage token")
	}
}
