package natsadapter

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	nats "github.com/nats-io/nats.go"
)

type stubParser struct {
	responses map[string]parseResult
}

type parseResult struct {
	token  *jwt.Token
	claims jwt.MapClaims
	err    error
}

func (s stubParser) Parse(token string) (*jwt.Token, jwt.MapClaims, error) {
	if res, ok := s.responses[token]; ok {
		return res.token, res.claims, res.err
	}
	return nil, nil, errors.New("unexpected token")
}

func TestVerifyHandlerSuccess(t *testing.T) {
	exp := float64(time.Now().Add(time.Minute).Unix())
	parser := stubParser{responses: map[string]parseResult{
		"good": {
			token:  &jwt.Token{Valid: true},
			claims: jwt.MapClaims{"sub": "user-1", "email": "jane@example.com", "role": "applicant", "exp": exp},
		},
	}}
	handler := NewVerifyHandler(parser)
	var captured verifyResponse
	handler.respondFn = func(_ *nats.Msg, resp verifyResponse) { captured = resp }

	payload, _ := json.Marshal(verifyRequest{Token: "good"})
	handler.handle(&nats.Msg{Data: payload})

	if !captured.OK || captured.UserID != "user-1" || captured.Role != "applicant" {
		t.Fatalf("unexpected response: %+v", captured)
	}
}

func TestVerifyHandlerInvalidToken(t *testing.T) {
	parser := stubParser{responses: map[string]parseResult{
		"bad": {err: errors.New("bad token")},
	}}
	handler := NewVerifyHandler(parser)
	var captured verifyResponse
	handler.respondFn = func(_ *nats.Msg, resp verifyResponse) { captured = resp }

	payload, _ := json.Marshal(verifyRequest{Token: "bad"})
	handler.handle(&nats.Msg{Data: payload})

	if captured.OK || captured.Error != "invalid_token" {
		t.Fatalf("expected invalid_token, got %+v", captured)
	}
}

func TestVerifyHandlerExpired(t *testing.T) {
	exp := float64(time.Now().Add(-time.Minute).Unix())
	parser := stubParser{responses: map[string]parseResult{
		"stale": {
			token:  &jwt.Token{Valid: true},
			claims: jwt.MapClaims{"sub": "user-1", "role": "applicant", "exp": exp},
		},
	}}
	handler := NewVerifyHandler(parser)
	var captured verifyResponse
	handler.respondFn = func(_ *nats.Msg, resp verifyResponse) { captured = resp }

	payload, _ := json.Marshal(verifyRequest{Token: "stale"})
	handler.handle(&nats.Msg{Data: payload})

	if captured.OK || captured.Error != "expired" {
		t.Fatalf("expected expired, got %+v", captured)
	}
}

func TestVerifyHandlerRoleMissing(t *testing.T) {
	exp := float64(time.Now().Add(time.Minute).Unix())
	parser := stubParser{responses: map[string]parseResult{
		"norole": {
			token:  &jwt.Token{Valid: true},
			claims: jwt.MapClaims{"sub": "user-1", "exp": exp},
		},
	}}
	handler := NewVerifyHandler(parser)
	var captured verifyResponse
	handler.respondFn = func(_ *nats.Msg, resp verifyResponse) { captured = resp }

	payload, _ := json.Marshal(verifyRequest{Token: "norole"})
	handler.handle(&nats.Msg{Data: payload})

	if captured.OK || captured.Error != "role_missing" {
		t.Fatalf("expected role_missing, got %+v", captured)
	}
}

func TestVerifyHandlerMalformedPayload(t *testing.T) {
	handler := NewVerifyHandler(stubParser{})
	var captured verifyResponse
	handler.respondFn = func(_ *nats.Msg, resp verifyResponse) { captured = resp }

	handler.handle(&nats.Msg{Data: []byte("{not json")})

	if captured.OK || captured.Error != "invalid_payload" {
		t.Fatalf("expected invalid_payload, got %+v", captured)
	}
}
