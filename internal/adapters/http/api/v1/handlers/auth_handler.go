package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kanyangaboRichard/Job-Board-System/internal/usecase"
	res "github.com/kanyangaboRichard/Job-Board-System/pkg/http"
)

type AuthHandler struct {
	service usecase.AuthService
}

func NewAuthHandler(s usecase.AuthService) *AuthHandler { return &AuthHandler{service: s} }

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

type authResponse struct {
	Token interface{} `json:"token"`
	User  interface{} `json:"user"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	req := new(registerRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c), nil)
	}
	user, token, err := h.service.Register(c.Request().Context(), requestIDFromCtx(c), req.Email, req.Password, req.Name)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c echo.Context) error {
	req := new(loginRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c), nil)
	}
	user, token, err := h.service.Login(c.Request().Context(), requestIDFromCtx(c), req.Email, req.Password)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// GoogleLogin redirects the browser to the provider's consent screen.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	url := h.service.ProviderAuthURL(uuid.NewString())
	if url == "" {
		return res.ErrorJSON(c, http.StatusServiceUnavailable, "oauth_unavailable", "google login is not configured", requestIDFromCtx(c), nil)
	}
	return c.Redirect(http.StatusTemporaryRedirect, url)
}

func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "missing authorization code", requestIDFromCtx(c), nil)
	}
	user, token, err := h.service.LoginWithProvider(c.Request().Context(), requestIDFromCtx(c), code)
	if err != nil {
		return res.ErrorJSON(c, http.StatusUnauthorized, "oauth_failed", err.Error(), requestIDFromCtx(c), nil)
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

func (h *AuthHandler) VerifyToken(c echo.Context) error {
	req := new(verifyTokenRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c), nil)
	}
	result, err := h.service.VerifyToken(c.Request().Context(), requestIDFromCtx(c), req.Token)
	if err != nil {
		return res.ErrorJSON(c, http.StatusUnauthorized, "verify_failed", err.Error(), requestIDFromCtx(c), nil)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user_id": result.UserID,
		"role":    result.Role,
		"email":   result.Email,
	})
}
