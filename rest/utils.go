package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"insight-api/domain"
	otelutil "insight-api/utils/otel"
)

// handleError converts usecase errors to HTTP responses. Unknown-identifier
// sentinels map to 404; unreadable collections surface as 503 since retrying
// cannot help until the export is fixed; anything else is a 500.
func (h *Handler) handleError(c echo.Context, err error, operation string) error {
	ctx := c.Request().Context()
	otelutil.RecordError(ctx, operation)

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrIssueNotFound),
		errors.Is(err, domain.ErrMediaSourceNotFound),
		errors.Is(err, domain.ErrTopicNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}

	var repoErr *domain.RepositoryError
	if errors.As(err, &repoErr) {
		h.log.Error("collection unreadable", "operation", operation, "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	}

	h.log.Error("request failed", "operation", operation, "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func handleValidationError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// parseDateParam accepts YYYY-MM-DD or RFC3339 and returns nil for an empty
// value.
func parseDateParam(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errors.New("invalid date")
}

// parsePositiveIntWithDefault treats empty as the default and rejects zero
// and negatives.
func parsePositiveIntWithDefault(value string, defaultValue int) (int, error) {
	if strings.TrimSpace(value) == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, errors.New("not a positive integer")
	}
	return n, nil
}

// parseIDList splits a comma separated query value, dropping empty entries.
func parseIDList(value string) []string {
	parts := strings.Split(value, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
