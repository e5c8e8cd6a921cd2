// Package auth issues and verifies the bearer tokens that identify callers
// by email.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/princinho/resalebackend/utils"
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *Tokens) Issue(email string) (string, error) {
	if email == "" {
		return "", errors.New("cannot issue a token without an email")
	}
	now := t.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks an Authorization header value. An empty header yields
// utils.ErrUnauthenticated; every other failure yields utils.ErrInvalidToken.
func (t *Tokens) Verify(header string) (*Claims, error) {
	if strings.TrimSpace(header) == "" {
		return nil, utils.ErrUnauthenticated
	}
	tokenStr, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenStr == "" {
		return nil, fmt.Errorf("malformed authorization header: %w", utils.ErrInvalidToken)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidToken, err)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("token carries no email: %w", utils.ErrInvalidToken)
	}
	return claims, nil
}
