package rest

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"insight-api/config"
)

// GetMediaSupport serves GET /v1/media/support. The ids query param holds a
// comma separated list of media source IDs, at most
// config.MaxMediaSelections of them.
func (h *Handler) GetMediaSupport(c echo.Context) error {
	ids := parseIDList(c.QueryParam("ids"))
	if len(ids) == 0 {
		return handleValidationError(c, "ids is required")
	}
	if len(ids) > config.MaxMediaSelections {
		return handleValidationError(c,
			fmt.Sprintf("at most %d media sources can be selected", config.MaxMediaSelections))
	}

	table, err := h.mediaSupport.Execute(c.Request().Context(), ids)
	if err != nil {
		return h.handleError(c, err, "media_support")
	}
	return c.JSON(http.StatusOK, newTableResponse(table))
}
