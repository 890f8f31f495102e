package rest

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"insight-api/gateway"
)

var requestValidator = validator.New()

// InvalidateCache serves POST /v1/admin/cache/invalidate. With a collection
// name it drops that collection's cached table; without one it purges the
// whole cache. The next read reloads from disk either way.
func (h *Handler) InvalidateCache(c echo.Context) error {
	var req CacheInvalidateRequest
	if err := c.Bind(&req); err != nil {
		return handleValidationError(c, "invalid request body")
	}
	if err := requestValidator.Struct(&req); err != nil {
		return handleValidationError(c, "collection must be alphanumeric")
	}

	if req.Collection == "" {
		h.collectionCache.Purge()
		h.log.Info("collection cache purged")
		return c.JSON(http.StatusOK, CacheInvalidateResponse{Invalidated: "all"})
	}

	file, ok := gateway.FileFor(req.Collection)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown collection: " + req.Collection})
	}
	h.collectionCache.Invalidate(file)
	h.log.Info("collection cache invalidated", "collection", req.Collection, "file", file)
	return c.JSON(http.StatusOK, CacheInvalidateResponse{Invalidated: req.Collection})
}

// Health serves GET /v1/health.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
