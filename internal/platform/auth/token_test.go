package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestTokenService_IssueAndParse(t *testing.T) {
	svc := NewTokenService(testSecret, "clientehm", time.Hour)
	id := uuid.New()

	tok, exp, err := svc.Issue(id, "a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Errorf("expected expiry in the future, got %v", exp)
	}

	p, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.ID != id {
		t.Errorf("expected id %s, got %s", id, p.ID)
	}
	if p.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", p.Email)
	}
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService(testSecret, "clientehm", time.Minute)
	past := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return past }

	tok, _, err := svc.Issue(uuid.New(), "a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Parse(tok); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, "clientehm", time.Hour)
	verifier := NewTokenService([]byte(strings.Repeat("x", 32)), "clientehm", time.Hour)

	tok, _, _ := issuer.Issue(uuid.New(), "a@x.com")
	if _, err := verifier.Parse(tok); err == nil {
		t.Fatal("expected signature mismatch")
	}
}

func TestTokenService_RejectsWrongIssuer(t *testing.T) {
	issuer := NewTokenService(testSecret, "other", time.Hour)
	verifier := NewTokenService(testSecret, "clientehm", time.Hour)

	tok, _, _ := issuer.Issue(uuid.New(), "a@x.com")
	if _, err := verifier.Parse(tok); err == nil {
		t.Fatal("expected issuer mismatch")
	}
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := NewTokenService(testSecret, "clientehm", time.Hour)
	if _, err := svc.Parse("not-a-token"); err == nil {
		t.Fatal("expected error")
	}
}
