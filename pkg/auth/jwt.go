package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// JWTValidator verifies HS256 bearer tokens for the local development
// server. In Lambda the API Gateway authorizer does this upstream.
type JWTValidator struct {
	secret []byte
	issuer string
}

// NewJWTValidator creates a validator for the given signing secret.
func NewJWTValidator(secret, issuer string) (*JWTValidator, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}
	return &JWTValidator{secret: []byte(secret), issuer: issuer}, nil
}

// Validate parses the token and returns its subject as the user id.
func (v *JWTValidator) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (interface{}, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
	)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("token has no subject")
	}

	return subject, nil
}
