package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken = errors.New("auth: token is missing")
	ErrExpired = errors.New("auth: token has expired")
)

// JWTParser reads owner tokens issued by the backend. With a secret it verifies
// the HS256 signature; without one it only decodes the claims and leaves the
// signature check to the backend on every owner call.
type JWTParser struct {
	secret string
	now    func() time.Time
}

func NewJWTParser(secret string) *JWTParser {
	return &JWTParser{secret: secret, now: time.Now}
}

func (p *JWTParser) Parse(token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	claims := jwt.MapClaims{}
	if p.secret != "" {
		_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(p.secret), nil
		},
			jwt.WithExpirationRequired(),
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
			jwt.WithTimeFunc(p.now),
		)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return nil, ErrExpired
			}
			return nil, fmt.Errorf("auth: invalid token: %w", err)
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return nil, fmt.Errorf("auth: malformed token: %w", err)
		}
	}

	s := &Session{Token: token}
	if sub, err := claims.GetSubject(); err == nil {
		s.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}

	if !s.IsAuthenticated(p.now()) {
		return nil, ErrExpired
	}
	return s, nil
}
