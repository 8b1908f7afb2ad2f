package tokenverify

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type stubParser struct {
	token  *jwt.Token
	claims jwt.MapClaims
	err    error
}

func (s stubParser) Parse(string) (*jwt.Token, jwt.MapClaims, error) {
	return s.token, s.claims, s.err
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "user-1",
		"role":  "applicant",
		"email": "jane@example.com",
		"name":  "Jane",
		"exp":   float64(time.Now().Add(time.Hour).Unix()),
	}
}

func TestVerifySuccess(t *testing.T) {
	parser := stubParser{token: &jwt.Token{Valid: true}, claims: validClaims()}
	result, err := Verify(parser, "token", time.Now)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if result.UserID != "user-1" || result.Role != "applicant" || result.Email != "jane@example.com" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestVerifyParseError(t *testing.T) {
	parser := stubParser{err: errors.New("signature invalid")}
	if _, err := Verify(parser, "token", time.Now); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	claims := validClaims()
	claims["exp"] = float64(time.Now().Add(-time.Hour).Unix())
	parser := stubParser{token: &jwt.Token{Valid: true}, claims: claims}
	if _, err := Verify(parser, "token", time.Now); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifySubjectMissing(t *testing.T) {
	claims := validClaims()
	delete(claims, "sub")
	parser := stubParser{token: &jwt.Token{Valid: true}, claims: claims}
	if _, err := Verify(parser, "token", time.Now); !errors.Is(err, ErrSubjectMissing) {
		t.Fatalf("expected ErrSubjectMissing, got %v", err)
	}
}

func TestVerifyRoleMissing(t *testing.T) {
	claims := validClaims()
	delete(claims, "role")
	parser := stubParser{token: &jwt.Token{Valid: true}, claims: claims}
	if _, err := Verify(parser, "token", time.Now); !errors.Is(err, ErrRoleMissing) {
		t.Fatalf("expected ErrRoleMissing, got %v", err)
	}
}

func TestVerifyNilParser(t *testing.T) {
	if _, err := Verify(nil, "token", time.Now); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
