package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingAuthHeader = errors.New("missing or malformed Authorization header")
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenTooOld       = errors.New("token expired, please sign in again")
	ErrMissingSubject    = errors.New("missing subject id in token")
)

// IdentityToken carries the verified claims of a platform-issued
// identity assertion. At most one of Email/Phone is attested by the
// issuer; both may be absent.
type IdentityToken struct {
	Subject       string
	Email         string
	Phone         string
	EmailVerified bool
	IssuedAt      time.Time
}

type Claims struct {
	jwt.RegisteredClaims
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// VerifyRequest extracts the bearer token from an Authorization header
// and verifies it. A maxAge > 0 additionally bounds the age of the
// token's iat claim; this is a policy freshness window on top of the
// token's own expiry.
func (v *Verifier) VerifyRequest(authHeader string, maxAge time.Duration) (IdentityToken, error) {
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return IdentityToken{}, ErrMissingAuthHeader
	}

	token, err := v.Verify(strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")))
	if err != nil {
		return IdentityToken{}, err
	}

	if maxAge > 0 {
		if token.IssuedAt.IsZero() || time.Since(token.IssuedAt) > maxAge {
			return IdentityToken{}, ErrTokenTooOld
		}
	}

	return token, nil
}

func (v *Verifier) Verify(tokenString string) (IdentityToken, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return IdentityToken{}, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return IdentityToken{}, ErrMissingSubject
	}

	token := IdentityToken{
		Subject:       claims.Subject,
		Email:         claims.Email,
		Phone:         claims.PhoneNumber,
		EmailVerified: claims.EmailVerified,
	}
	if claims.IssuedAt != nil {
		token.IssuedAt = claims.IssuedAt.Time
	}

	return token, nil
}

// GenerateToken signs an identity assertion. Used by the CLI to mint
// test tokens against a known secret.
func GenerateToken(claims Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
