package bootstrap

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"insight-api/config"
	"insight-api/logger"
	"insight-api/port"
	"insight-api/rest"
	"insight-api/usecase"
)

// newHTTPServer creates the REST HTTP server.
func newHTTPServer(cfg *config.Config, usecases usecase.Usecases, collectionCache port.CollectionCache) *http.Server {
	restHandler := rest.NewHandler(rest.HandlerDeps{
		ScoreTimeline:   usecases.ScoreTimeline,
		TopicSubs:       usecases.TopicSubs,
		MediaSupport:    usecases.MediaSupport,
		RecentIssues:    usecases.RecentIssues,
		IssueEvals:      usecases.IssueEvals,
		PreferenceDist:  usecases.PreferenceDist,
		ActiveUsers:     usecases.ActiveUsers,
		UserJourney:     usecases.UserJourney,
		UserReport:      usecases.UserReport,
		CollectionCache: collectionCache,
		Logger:          logger.Logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	rest.RegisterRoutes(e, restHandler)

	return &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           e,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}
}
