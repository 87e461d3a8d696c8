package token

import (
	"testing"
	"time"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("super-secret"), time.Hour)
	roles := []string{"Recruiter"}
	pages := []string{"ViewJobs", "Applications"}

	tok, err := iss.Issue("user-123", roles, pages)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := iss.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "user-123")
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "Recruiter" {
		t.Fatalf("roles mismatch: got %v", claims.Roles)
	}
	if len(claims.Pages) != 2 || claims.Pages[0] != "ViewJobs" || claims.Pages[1] != "Applications" {
		t.Fatalf("pages mismatch: got %v", claims.Pages)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("secret"), time.Nanosecond)
	tok, err := iss.Issue("u1", nil, nil)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := iss.Parse(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParse_WrongKey(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer([]byte("right-secret"), time.Hour).Issue("u2", nil, nil)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewIssuer([]byte("wrong-secret"), time.Hour).Parse(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := NewIssuer([]byte("k"), time.Hour).Parse("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("k"), 0)
	tok, err := iss.Issue("u3", nil, nil)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	claims, err := iss.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	left := time.Until(claims.ExpiresAt.Time)
	if left < 23*time.Hour || left > 24*time.Hour {
		t.Fatalf("default expiry is not ~24h, %s left", left)
	}
}
