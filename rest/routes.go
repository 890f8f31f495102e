package rest

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"insight-api/config"
	custommw "insight-api/middleware"
)

// RegisterRoutes wires the middleware chain and the /v1 route group.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// 1. Request ID middleware first - すべてのリクエストにIDを付与
	e.Use(custommw.RequestIDMiddleware())

	// 2. Recovery middleware early - パニックを早期に捕捉
	e.Use(middleware.Recover())

	// 3. CORS middleware - クロスオリジン制御
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8501"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-Request-ID"},
	}))

	// 4. Span status middleware - レスポンスコードをスパンに記録
	e.Use(custommw.SpanStatusMiddleware())

	// 5. Request deadline - 集計が長引いてもハンドラを打ち切る
	e.Use(middleware.ContextTimeout(config.RequestTimeout))

	v1 := e.Group("/v1")

	v1.GET("/health", h.Health)

	v1.GET("/scores/timeline", h.GetScoreTimeline)
	v1.GET("/topics/subscribers", h.GetTopicSubscribers)
	v1.GET("/media/support", h.GetMediaSupport)

	v1.GET("/issues/recent", h.GetRecentIssues)
	v1.GET("/issues/:id/evaluations", h.GetIssueEvaluations)

	v1.GET("/users/preferences", h.GetUserPreferences)
	v1.GET("/users/active", h.GetActiveUsers)
	v1.GET("/users/:id/journey", h.GetUserJourney)
	v1.GET("/users/:id/report", h.GetUserReport)

	v1.POST("/admin/cache/invalidate", h.InvalidateCache)
}
