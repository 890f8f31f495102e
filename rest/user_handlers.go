package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"insight-api/config"
)

// GetUserPreferences serves GET /v1/users/preferences.
func (h *Handler) GetUserPreferences(c echo.Context) error {
	dist, err := h.preferenceDist.Execute(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, "user_preferences")
	}
	return c.JSON(http.StatusOK, dist)
}

// GetActiveUsers serves GET /v1/users/active.
func (h *Handler) GetActiveUsers(c echo.Context) error {
	limit, err := parsePositiveIntWithDefault(c.QueryParam("limit"), config.RecentListLimit)
	if err != nil {
		return handleValidationError(c, "limit must be a positive integer")
	}

	table := h.activeUsers.Execute(c.Request().Context(), limit)
	return c.JSON(http.StatusOK, newTableResponse(table))
}

// GetUserJourney serves GET /v1/users/:id/journey.
func (h *Handler) GetUserJourney(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return handleValidationError(c, "user id is required")
	}

	table, err := h.userJourney.Execute(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err, "user_journey")
	}
	return c.JSON(http.StatusOK, newTableResponse(table))
}

// GetUserReport serves GET /v1/users/:id/report.
func (h *Handler) GetUserReport(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return handleValidationError(c, "user id is required")
	}
	windowDays, err := parsePositiveIntWithDefault(c.QueryParam("window_days"), config.ReportWindowDays)
	if err != nil {
		return handleValidationError(c, "window_days must be a positive integer")
	}

	report, err := h.userReport.Execute(c.Request().Context(), userID, windowDays)
	if err != nil {
		return h.handleError(c, err, "user_report")
	}
	return c.JSON(http.StatusOK, report)
}
