package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"insight-api/config"
	"insight-api/logger"
)

// GetRecentIssues serves GET /v1/issues/recent.
func (h *Handler) GetRecentIssues(c echo.Context) error {
	limit, err := parsePositiveIntWithDefault(c.QueryParam("limit"), config.RecentListLimit)
	if err != nil {
		return handleValidationError(c, "limit must be a positive integer")
	}

	table := h.recentIssues.Execute(c.Request().Context(), limit)
	return c.JSON(http.StatusOK, newTableResponse(table))
}

// GetIssueEvaluations serves GET /v1/issues/:id/evaluations.
func (h *Handler) GetIssueEvaluations(c echo.Context) error {
	issueID := c.Param("id")
	if issueID == "" {
		return handleValidationError(c, "issue id is required")
	}

	ctx := logger.WithIssueID(c.Request().Context(), issueID)
	summary, err := h.issueEvals.Execute(ctx, issueID)
	if err != nil {
		return h.handleError(c, err, "issue_evaluations")
	}
	return c.JSON(http.StatusOK, summary)
}
