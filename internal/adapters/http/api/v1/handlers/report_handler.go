package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kanyangaboRichard/Job-Board-System/internal/usecase"
	res "github.com/kanyangaboRichard/Job-Board-System/pkg/http"
)

type ReportHandler struct {
	service usecase.ReportService
}

func NewReportHandler(s usecase.ReportService) *ReportHandler { return &ReportHandler{service: s} }

func (h *ReportHandler) Summary(c echo.Context) error {
	start, err := time.Parse("2006-01-02", c.QueryParam("start"))
	if err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid start date", requestIDFromCtx(c), nil)
	}
	end, err := time.Parse("2006-01-02", c.QueryParam("end"))
	if err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid end date", requestIDFromCtx(c), nil)
	}
	// Make the end date inclusive.
	end = end.Add(24*time.Hour - time.Second)
	summary, err := h.service.Summary(c.Request().Context(), start, end, c.QueryParam("company"))
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, summary)
}
