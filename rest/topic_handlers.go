package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetTopicSubscribers serves GET /v1/topics/subscribers. An optional top
// query param truncates the ranking.
func (h *Handler) GetTopicSubscribers(c echo.Context) error {
	ctx := c.Request().Context()

	topParam := c.QueryParam("top")
	if topParam == "" {
		return c.JSON(http.StatusOK, newTableResponse(h.topicSubs.Execute(ctx)))
	}

	top, err := parsePositiveIntWithDefault(topParam, 0)
	if err != nil {
		return handleValidationError(c, "top must be a positive integer")
	}
	return c.JSON(http.StatusOK, newTableResponse(h.topicSubs.Top(ctx, top)))
}
