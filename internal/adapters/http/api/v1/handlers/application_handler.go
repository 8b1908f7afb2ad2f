package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanyangaboRichard/Job-Board-System/internal/adapters/http/middleware"
	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
	"github.com/kanyangaboRichard/Job-Board-System/internal/usecase"
	res "github.com/kanyangaboRichard/Job-Board-System/pkg/http"
)

type ApplicationHandler struct {
	service usecase.ApplicationService
}

func NewApplicationHandler(s usecase.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: s}
}

type applyRequest struct {
	CoverLetter string `json:"cover_letter"`
	CVURL       string `json:"cv_url"`
}

type decideRequest struct {
	Status       string `json:"status"`
	ResponseNote string `json:"response_note"`
}

func (h *ApplicationHandler) Apply(c echo.Context) error {
	req := new(applyRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c), nil)
	}
	applicantID, _ := c.Get(middleware.ContextUserID).(string)
	app, err := h.service.Apply(c.Request().Context(), requestIDFromCtx(c), c.Param("id"), applicantID, req.CoverLetter, req.CVURL)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) Decide(c echo.Context) error {
	req := new(decideRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c), nil)
	}
	app, err := h.service.Decide(c.Request().Context(), requestIDFromCtx(c), c.Param("id"), domain.ApplicationStatus(req.Status), req.ResponseNote)
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, app)
}

// Mine lists the requesting identity's own applications; ownership is keyed
// by the verified token's subject, never by a client-supplied id.
func (h *ApplicationHandler) Mine(c echo.Context) error {
	applicantID, _ := c.Get(middleware.ContextUserID).(string)
	items, err := h.service.ListForApplicant(c.Request().Context(), applicantID)
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, items)
}

func (h *ApplicationHandler) ListByJob(c echo.Context) error {
	items, err := h.service.ListForJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, items)
}

func (h *ApplicationHandler) ListAll(c echo.Context) error {
	items, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, items)
}
