package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func mintToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()

	token, err := GenerateToken(claims, secret)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return token
}

func TestVerifyRequest_Success(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testSecret)
	raw := mintToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "uid-123",
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Email:         "a@x.com",
		EmailVerified: true,
	}, testSecret)

	token, err := v.VerifyRequest("Bearer "+raw, 5*time.Minute)
	if err != nil {
		t.Fatalf("VerifyRequest error: %v", err)
	}
	if token.Subject != "uid-123" {
		t.Errorf("Subject = %q; want %q", token.Subject, "uid-123")
	}
	if token.Email != "a@x.com" || !token.EmailVerified {
		t.Errorf("unexpected email claims: %+v", token)
	}
}

func TestVerifyRequest_MissingHeader(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testSecret)

	for _, header := range []string{"", "Basic abc", "bearer lowercase"} {
		_, err := v.VerifyRequest(header, 0)
		if !errors.Is(err, ErrMissingAuthHeader) {
			t.Errorf("VerifyRequest(%q) = %v; want ErrMissingAuthHeader", header, err)
		}
	}
}

func TestVerifyRequest_WrongSecret(t *testing.T) {
	t.Parallel()

	raw := mintToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "uid-123"},
	}, "other-secret")

	_, err := NewVerifier(testSecret).VerifyRequest("Bearer "+raw, 0)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRequest_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewVerifier(testSecret).VerifyRequest("Bearer not.a.jwt", 0)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRequest_TooOld(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testSecret)
	raw := mintToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "uid-123",
			IssuedAt: jwt.NewNumericDate(time.Now().Add(-10 * time.Minute)),
		},
	}, testSecret)

	_, err := v.VerifyRequest("Bearer "+raw, 5*time.Minute)
	if !errors.Is(err, ErrTokenTooOld) {
		t.Fatalf("expected ErrTokenTooOld, got %v", err)
	}
}

func TestVerifyRequest_MissingIssuedAt(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testSecret)
	raw := mintToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "uid-123"},
	}, testSecret)

	// Without iat the freshness window cannot be checked; reject.
	_, err := v.VerifyRequest("Bearer "+raw, 5*time.Minute)
	if !errors.Is(err, ErrTokenTooOld) {
		t.Fatalf("expected ErrTokenTooOld, got %v", err)
	}

	// No window, no iat requirement.
	if _, err := v.VerifyRequest("Bearer "+raw, 0); err != nil {
		t.Fatalf("VerifyRequest without window error: %v", err)
	}
}

func TestVerifyRequest_MissingSubject(t *testing.T) {
	t.Parallel()

	raw := mintToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Email: "a@x.com",
	}, testSecret)

	_, err := NewVerifier(testSecret).VerifyRequest("Bearer "+raw, 5*time.Minute)
	if !errors.Is(err, ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got %v", err)
	}
}
