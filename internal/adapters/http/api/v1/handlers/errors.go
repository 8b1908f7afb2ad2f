package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
	res "github.com/kanyangaboRichard/Job-Board-System/pkg/http"
)

// serviceError maps a service error kind onto a transport status so clients
// can tell "already applied" or "note required" apart from generic failures.
func serviceError(c echo.Context, err error) error {
	traceID := requestIDFromCtx(c)
	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		return res.ErrorJSON(c, http.StatusUnauthorized, "unauthorized", err.Error(), traceID, nil)
	case errors.Is(err, domain.ErrForbidden):
		return res.ErrorJSON(c, http.StatusForbidden, "forbidden", err.Error(), traceID, nil)
	case errors.Is(err, domain.ErrDuplicateApplication):
		return res.ErrorJSON(c, http.StatusConflict, "already_applied", err.Error(), traceID, nil)
	case errors.Is(err, domain.ErrInvalidOperation):
		return res.ErrorJSON(c, http.StatusConflict, "invalid_operation", err.Error(), traceID, nil)
	case errors.Is(err, domain.ErrEmailTaken):
		return res.ErrorJSON(c, http.StatusConflict, "email_taken", err.Error(), traceID, nil)
	case errors.Is(err, domain.ErrMissingReason):
		return res.ErrorJSON(c, http.StatusBadRequest, "missing_reason", err.Error(), traceID, nil)
	case errors.Is(err, domain.ErrInvalidStatus):
		return res.ErrorJSON(c, http.StatusBadRequest, "invalid_status", err.Error(), traceID, nil)
	case errors.Is(err, domain.ErrValidation):
		return res.ErrorJSON(c, http.StatusBadRequest, "validation_failed", err.Error(), traceID, nil)
	case errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return res.ErrorJSON(c, http.StatusNotFound, "not_found", err.Error(), traceID, nil)
	default:
		return res.ErrorJSON(c, http.StatusInternalServerError, "internal_error", "unexpected error", traceID, nil)
	}
}

func requestIDFromCtx(c echo.Context) string {
	if reqID := c.Response().Header().Get(echo.HeaderXRequestID); reqID != "" {
		return reqID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
