package estimation

import (
	"net/http"

	estimationerrors "restropay/internal/estimation/errors"
	"restropay/internal/payperiod"
	"restropay/internal/shared/apperror"
	"restropay/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// periodFromQuery parses the optional start/end query pair. Both must be
// given together; a half-specified range is rejected.
func periodFromQuery(c *gin.Context) (*payperiod.Period, error) {
	startStr := c.Query("start")
	endStr := c.Query("end")

	if startStr == "" && endStr == "" {
		return nil, nil
	}
	if startStr == "" || endStr == "" {
		return nil, estimationerrors.ErrInvalidPeriod
	}

	start, err := payperiod.ParseDate(startStr)
	if err != nil {
		return nil, estimationerrors.ErrInvalidPeriod
	}
	end, err := payperiod.ParseDate(endStr)
	if err != nil {
		return nil, estimationerrors.ErrInvalidPeriod
	}
	// Ranges are inclusive, so start == end is a valid one-day period.
	if start.After(end) {
		return nil, estimationerrors.ErrInvalidPeriod
	}

	return &payperiod.Period{Start: start, End: end}, nil
}

func (h *Handler) Estimate(c *gin.Context) {
	period, err := periodFromQuery(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.Estimate(c.Request.Context(), c.Param("id"), period)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListAllPeriods(c *gin.Context) {
	resp, err := h.service.ListAllPeriods(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CalculablePeriods(c *gin.Context) {
	resp, err := h.service.CalculablePeriods(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
