package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of the backend token the gateway reads: the
// subject, the role (carried in "scope"), and the expiry.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// Role parses the claim's scope into a Role.
func (c *Claims) Role() (Role, error) {
	return ParseRole(c.Scope)
}

// ExpiredAt reports whether the token is expired at the given instant.
// A token with no exp claim is treated as unexpired, matching the
// behavior the deployed clients rely on.
func (c *Claims) ExpiredAt(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// DecodeToken parses the embedded claims of a bearer token without
// verifying its signature. The guard trusts the token's claims and
// expiry only — verification is the backend's job, and the guard never
// calls the network.
func DecodeToken(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return claims, nil
}
