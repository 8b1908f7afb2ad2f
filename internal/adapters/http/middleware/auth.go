package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
	"github.com/kanyangaboRichard/Job-Board-System/internal/tokenverify"
	res "github.com/kanyangaboRichard/Job-Board-System/pkg/http"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
	ContextEmail  = "email"
)

type AuthMiddleware struct {
	parser tokenverify.Parser
}

func NewAuthMiddleware(parser tokenverify.Parser) *AuthMiddleware {
	return &AuthMiddleware{parser: parser}
}

// Handler authenticates the request. Verification is purely local: signature
// and expiry, no store lookup.
func (m *AuthMiddleware) Handler(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := c.Request().Header.Get(echo.HeaderAuthorization)
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return res.ErrorJSON(c, http.StatusUnauthorized, "unauthorized", "missing token", requestIDFromCtx(c), nil)
		}
		result, err := tokenverify.Verify(m.parser, parts[1], time.Now)
		if err != nil {
			return res.ErrorJSON(c, http.StatusUnauthorized, "unauthorized", "invalid token", requestIDFromCtx(c), nil)
		}
		c.Set(ContextUserID, result.UserID)
		c.Set(ContextRole, result.Role)
		c.Set(ContextEmail, result.Email)
		return next(c)
	}
}

// RequireRole gates a route on the role asserted by the verified token.
// Ownership checks stay with the handlers, keyed by the user id.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, _ := c.Get(ContextRole).(string)
			if current == "" {
				return res.ErrorJSON(c, http.StatusUnauthorized, "unauthorized", "missing token", requestIDFromCtx(c), nil)
			}
			if current != string(role) {
				return res.ErrorJSON(c, http.StatusForbidden, "forbidden", "insufficient role", requestIDFromCtx(c), nil)
			}
			return next(c)
		}
	}
}

func requestIDFromCtx(c echo.Context) string {
	if reqID := c.Response().Header().Get(echo.HeaderXRequestID); reqID != "" {
		return reqID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
