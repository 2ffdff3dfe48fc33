// Package identity extracts a user identity from an opaque bearer
// credential. Token issuance lives elsewhere; this side only validates
// and reads the subject.
package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set expected on access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Extractor validates HMAC-signed tokens and returns the user id.
type Extractor struct {
	secret string
}

func NewExtractor(secret string) *Extractor {
	return &Extractor{secret: secret}
}

// UserID validates tokenString and returns the user identifier carried
// in its claims. The user_id claim wins; the registered subject is the
// fallback.
func (e *Extractor) UserID(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(e.secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	if claims.UserID != "" {
		return claims.UserID, nil
	}
	if claims.Subject != "" {
		return claims.Subject, nil
	}
	return "", fmt.Errorf("token has no user identity")
}
