package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kanyangaboRichard/Job-Board-System/internal/adapters/http/middleware"
	"github.com/kanyangaboRichard/Job-Board-System/internal/usecase"
	res "github.com/kanyangaboRichard/Job-Board-System/pkg/http"
)

type JobHandler struct {
	service usecase.JobService
}

func NewJobHandler(s usecase.JobService) *JobHandler { return &JobHandler{service: s} }

type jobRequest struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Compensation string `json:"compensation"`
	Deadline     string `json:"deadline"`
}

func (r *jobRequest) toInput() (usecase.JobInput, error) {
	in := usecase.JobInput{
		Title:        r.Title,
		Company:      r.Company,
		Location:     r.Location,
		Description:  r.Description,
		Compensation: r.Compensation,
	}
	if r.Deadline != "" {
		deadline, err := time.Parse(time.RFC3339, r.Deadline)
		if err != nil {
			// Date-only form, matching the original posting UI.
			deadline, err = time.Parse("2006-01-02", r.Deadline)
			if err != nil {
				return in, err
			}
		}
		in.Deadline = &deadline
	}
	return in, nil
}

func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context(), c.QueryParam("title"), c.QueryParam("location"))
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, jobs)
}

func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, job)
}

func (h *JobHandler) Create(c echo.Context) error {
	req := new(jobRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c), nil)
	}
	in, err := req.toInput()
	if err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid deadline", requestIDFromCtx(c), nil)
	}
	postedBy, _ := c.Get(middleware.ContextUserID).(string)
	job, err := h.service.Create(c.Request().Context(), requestIDFromCtx(c), in, postedBy)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c echo.Context) error {
	req := new(jobRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c), nil)
	}
	in, err := req.toInput()
	if err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid deadline", requestIDFromCtx(c), nil)
	}
	job, err := h.service.Update(c.Request().Context(), requestIDFromCtx(c), c.Param("id"), in)
	if err != nil {
		return serviceError(c, err)
	}
	return res.JSON(c, http.StatusOK, job)
}

func (h *JobHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), requestIDFromCtx(c), c.Param("id")); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
