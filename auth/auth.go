// Package auth handles admin credential checks and session tokens. There is
// a single admin identity; credentials come from the environment and the
// session is a signed JWT carried in an http-only cookie.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsasing/portfolio-backend/errs"
)

// TokenCookieName is the cookie that carries the admin session token.
const TokenCookieName = "admin_token"

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

// HashPassword produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a login attempt against the stored bcrypt hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// SignToken issues a session token for the given admin username.
func SignToken(secret, username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errs.NewInternalErrorWithCause("could not sign session token", err)
	}
	return signed, nil
}

// VerifyToken validates a session token and returns the admin username it
// was issued to.
func VerifyToken(secret, tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", errs.NewUnauthorizedError("missing session token")
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errs.NewUnauthorizedError("invalid or expired session token")
	}
	return claims.Subject, nil
}
