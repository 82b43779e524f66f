// Package auth covers credentials: bcrypt password hashing, JWT issuance
// and verification, and the HTTP middleware that turns a bearer token into
// a request-context identity.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Identity is what a verified token asserts about the caller.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// Tokens issues and verifies HMAC-signed JWTs binding a user id and admin
// flag.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens returns a Tokens signing with secret; issued tokens expire
// after ttl.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the given identity.
func (t *Tokens) Issue(userID string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId":  userID,
		"isAdmin": isAdmin,
		"iat":     now.Unix(),
		"exp":     now.Add(t.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return signed, nil
}

// Verify parses and validates a token string and returns the identity it
// asserts.
func (t *Tokens) Verify(tokenStr string) (*Identity, error) {
	parsed, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.Errorf("unexpected signing method %q", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parsing token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("token claims are not map claims")
	}
	userID, ok := claims["userId"].(string)
	if !ok {
		return nil, errors.New("token carries no userId claim")
	}
	isAdmin, _ := claims["isAdmin"].(bool)
	return &Identity{UserID: userID, IsAdmin: isAdmin}, nil
}
