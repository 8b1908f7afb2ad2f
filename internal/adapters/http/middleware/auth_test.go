package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
	res "github.com/kanyangaboRichard/Job-Board-System/pkg/http"
)

type stubParser struct {
	token  *jwt.Token
	claims jwt.MapClaims
	err    error
}

func (s stubParser) Parse(string) (*jwt.Token, jwt.MapClaims, error) {
	return s.token, s.claims, s.err
}

func verifiedParser(role string) stubParser {
	return stubParser{
		token: &jwt.Token{Valid: true},
		claims: jwt.MapClaims{
			"sub":   "user-1",
			"role":  role,
			"email": "jane@example.com",
			"exp":   float64(time.Now().Add(time.Hour).Unix()),
		},
	}
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(stubParser{})
	handler := mw.Handler(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	_ = handler(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var errResp res.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &errResp)
	if errResp.Error.Code != "unauthorized" {
		t.Fatalf("unexpected error code: %s", errResp.Error.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(stubParser{err: errors.New("parse error")})
	handler := mw.Handler(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	_ = handler(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(verifiedParser("applicant"))
	called := false
	handler := mw.Handler(func(c echo.Context) error {
		called = true
		if c.Get(ContextUserID) != "user-1" || c.Get(ContextRole) != "applicant" || c.Get(ContextEmail) != "jane@example.com" {
			t.Fatalf("identity not set: %v %v %v", c.Get(ContextUserID), c.Get(ContextRole), c.Get(ContextEmail))
		}
		return c.String(http.StatusOK, "ok")
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}
	if !called {
		t.Fatal("next handler was not invoked")
	}
}

func TestRequireRoleForbidden(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextRole, "applicant")

	handler := RequireRole(domain.RoleAdministrator)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	_ = handler(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoleMissingIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRole(domain.RoleAdministrator)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	_ = handler(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRoleAllows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextRole, "administrator")

	handler := RequireRole(domain.RoleAdministrator)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
