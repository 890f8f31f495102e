package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetScoreTimeline serves GET /v1/scores/timeline.
// Optional from/to query params bound the timeline by calendar day,
// inclusive on both ends.
func (h *Handler) GetScoreTimeline(c echo.Context) error {
	from, err := parseDateParam(c.QueryParam("from"))
	if err != nil {
		return handleValidationError(c, "from must be YYYY-MM-DD or RFC3339")
	}
	to, err := parseDateParam(c.QueryParam("to"))
	if err != nil {
		return handleValidationError(c, "to must be YYYY-MM-DD or RFC3339")
	}
	if from != nil && to != nil && to.Before(*from) {
		return handleValidationError(c, "to must not be before from")
	}

	table := h.scoreTimeline.Execute(c.Request().Context(), from, to)
	return c.JSON(http.StatusOK, newTableResponse(table))
}
