// Package token mints and verifies the signed session tokens that gate the
// favorites API. Tokens are stateless: lifecycle is bounded entirely by the
// embedded expiry.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures, ordered by how early in the pipeline they occur.
var (
	// ErrMissingToken indicates no token was supplied.
	ErrMissingToken = errors.New("no token provided")

	// ErrMalformedToken indicates the string does not have the
	// three-segment shape of a signed token.
	ErrMalformedToken = errors.New("invalid token format")

	// ErrInvalidToken indicates signature or expiry verification failed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingSubject indicates a verified payload without an account id.
	ErrMissingSubject = errors.New("invalid token payload")
)

// Claims carries the owning account id alongside the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// Issuer signs and verifies session tokens with a process-wide secret.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue mints an HS256 token for the given account, valid for ttl.
func (i *Issuer) Issue(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	})
	return tok.SignedString(i.secret)
}

// Verify checks the raw token and returns the embedded account id.
// Failures map onto the error taxonomy above; expired tokens report
// ErrInvalidToken regardless of signature validity.
func (i *Issuer) Verify(raw string) (int64, error) {
	if raw == "" {
		return 0, ErrMissingToken
	}
	if strings.Count(raw, ".") != 2 {
		return 0, ErrMalformedToken
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return 0, ErrMissingSubject
	}
	return claims.UserID, nil
}
