// Package auth provides the credential-verification and session-token
// primitives: bcrypt password hashing, signed session tokens, and the cookie
// that carries them. A token is only half of a live session; the session id
// it names must still resolve in the session store.
package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	UserID    int    `json:"uid"`
	SessionID string `json:"sid"`
}

// GenerateToken signs an HS256 token binding a user id to a server-side
// session id.
func GenerateToken(userID int, sessionID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		SessionID: sessionID,
	})
	return token.SignedString(secret)
}

// ParseToken verifies the signature and expiry and returns the embedded
// identity. A client cannot forge a user id without the signing secret.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == 0 || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
