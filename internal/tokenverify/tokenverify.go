package tokenverify

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid_token")
	ErrTokenExpired   = errors.New("token_expired")
	ErrSubjectMissing = errors.New("subject_missing")
	ErrRoleMissing    = errors.New("role_missing")
)

type Parser interface {
	Parse(token string) (*jwt.Token, jwt.MapClaims, error)
}

// Result holds the identity claims a verified token asserts. Verification is
// signature plus expiry only; no store lookup happens here.
type Result struct {
	UserID string
	Role   string
	Email  string
	Name   string
}

// Verify parses and validates a session token, returning who the bearer is
// and which role the token asserts.
func Verify(parser Parser, token string, nowFn func() time.Time) (*Result, error) {
	if parser == nil {
		return nil, ErrInvalidToken
	}
	if nowFn == nil {
		nowFn = time.Now
	}
	tok, claims, err := parser.Parse(token)
	if err != nil || tok == nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if exp, err := claims.GetExpirationTime(); err != nil || exp == nil || nowFn().After(exp.Time) {
		return nil, ErrTokenExpired
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrSubjectMissing
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return nil, ErrRoleMissing
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return &Result{UserID: sub, Role: role, Email: email, Name: name}, nil
}
