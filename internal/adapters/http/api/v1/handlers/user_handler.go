package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanyangaboRichard/Job-Board-System/internal/adapters/http/middleware"
	"github.com/kanyangaboRichard/Job-Board-System/internal/usecase"
	res "github.com/kanyangaboRichard/Job-Board-System/pkg/http"
)

type UserHandler struct {
	service usecase.UserService
}

func NewUserHandler(s usecase.UserService) *UserHandler { return &UserHandler{service: s} }

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, users)
}

func (h *UserHandler) MakeAdmin(c echo.Context) error {
	user, err := h.service.PromoteAdmin(c.Request().Context(), requestIDFromCtx(c), c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, user)
}

func (h *UserHandler) RevokeAdmin(c echo.Context) error {
	actorID, _ := c.Get(middleware.ContextUserID).(string)
	user, err := h.service.RevokeAdmin(c.Request().Context(), requestIDFromCtx(c), actorID, c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, user)
}
