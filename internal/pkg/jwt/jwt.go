// Package jwt issues and validates admin session tokens. There is a
// single admin account, so the token binds one username to a fixed
// issuer/audience pair instead of carrying a generic identity.
package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	issuer   = "yaritu-core"
	audience = "yaritu-admin"

	// devSecret is only acceptable outside production; config.Load
	// refuses to start a production process without an explicit secret.
	devSecret = "yaritu-secret-change-me"
)

var secret = []byte(devSecret)

// SetSecret configures the signing secret (call on startup).
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// AdminClaims is the payload of an admin session token.
type AdminClaims struct {
	Username string `json:"sub_name"`
	jwtlib.RegisteredClaims
}

// Sign creates a session token for the admin account.
func Sign(username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		Username: username,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwtlib.ClaimStrings{audience},
			Subject:   username,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
			NotBefore: jwtlib.NewNumericDate(now),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Parse validates a session token. Tokens from other issuers or
// audiences are rejected even when signed with the same secret.
func Parse(tokenStr string) (*AdminClaims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &AdminClaims{},
		func(t *jwtlib.Token) (interface{}, error) { return secret, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(issuer),
		jwtlib.WithAudience(audience),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
