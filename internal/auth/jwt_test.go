package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret", 30*time.Minute)

	token, err := m.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	subject, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "a@x.com" {
		t.Errorf("expected subject 'a@x.com', got %q", subject)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", 30*time.Minute)
	verifier := NewTokenManager("secret-two", 30*time.Minute)

	token, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerify_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Error("expected verification of an expired token to fail")
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", 30*time.Minute)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Verify(tok); err == nil {
			t.Errorf("expected verification of %q to fail", tok)
		}
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	m := NewTokenManager("test-secret", 30*time.Minute)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Error("expected verification of a subject-less token to fail")
	}
}

func TestVerify_RejectsNonHMAC(t *testing.T) {
	m := NewTokenManager("test-secret", 30*time.Minute)

	claims := jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
	}
	// alg "none" must never be accepted.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Error("expected verification of an unsigned token to fail")
	}
}
