package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of access-token claims the client cares about.
// The zero value reads as already expired.
type Claims struct {
	ExpiresAt int64  // unix seconds
	Subject   string // user id the token was issued for
}

// DecodeClaims extracts claims from an access token without verifying the
// signature. Verification is the server's job; the client only needs the
// expiry to decide whether a refresh is due. Unparseable tokens decode to
// the zero Claims, which is treated as expired.
func DecodeClaims(accessToken string) Claims {
	parser := jwt.NewParser()
	mapClaims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, mapClaims); err != nil {
		return Claims{}
	}

	claims := Claims{}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Unix()
	}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	return claims
}

// Expired reports whether the token expiry lies strictly before now
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt < now.Unix()
}
