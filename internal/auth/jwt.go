package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the verified user identity. Token issuance belongs to the
// identity service; this backend only validates tokens it is handed.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenVerifier validates bearer tokens against a shared HMAC secret.
type TokenVerifier struct {
	secret []byte
	expiry time.Duration
}

func NewTokenVerifier(secret string, expiryMinutes int) *TokenVerifier {
	return &TokenVerifier{
		secret: []byte(secret),
		expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Verify parses and validates a token, returning its claims.
func (v *TokenVerifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Generate signs a token for a user. Used by tests and local tooling; the
// production issuer lives in the identity service with the same secret.
func (v *TokenVerifier) Generate(userID int) (string, time.Time, error) {
	if userID <= 0 {
		return "", time.Time{}, errors.New("user ID must be positive")
	}

	expiresAt := time.Now().Add(v.expiry)

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(v.secret)

	return tokenString, expiresAt, err
}
