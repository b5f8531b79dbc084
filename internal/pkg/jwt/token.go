package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrTokenExpired is returned for a token whose exp claim has passed
var ErrTokenExpired = errors.New("token expired")

// Claims are the fields the console reads from an API-issued token.
// The API signs and verifies tokens; the console only inspects them.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Subject returns the best available operator label
func (c *Claims) Subject() string {
	switch {
	case c.Name != "":
		return c.Name
	case c.Email != "":
		return c.Email
	case c.UserID != "":
		return c.UserID
	}
	return c.RegisteredClaims.Subject
}

// ExpiresAt returns the exp claim, if present
func (c *Claims) ExpiresAt() *time.Time {
	if c.RegisteredClaims.ExpiresAt == nil {
		return nil
	}
	t := c.RegisteredClaims.ExpiresAt.Time
	return &t
}

// Parse reads the claims without verifying the signature
func Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("malformed token: %w", err)
	}
	return claims, nil
}

// CheckExpiry parses the token and fails with ErrTokenExpired once exp is more than
// leeway in the past. Tokens without exp never expire here.
func CheckExpiry(tokenString string, now time.Time, leeway time.Duration) (*Claims, error) {
	claims, err := Parse(tokenString)
	if err != nil {
		return nil, err
	}
	if exp := claims.ExpiresAt(); exp != nil && now.After(exp.Add(leeway)) {
		return claims, ErrTokenExpired
	}
	return claims, nil
}
