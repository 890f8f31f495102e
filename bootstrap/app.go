package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"insight-api/cache"
	"insight-api/config"
	"insight-api/driver/jsonfile"
	"insight-api/gateway"
	"insight-api/logger"
	"insight-api/usecase"
	appOtel "insight-api/utils/otel"
)

// App holds all components of the insight-api service.
type App struct {
	httpServer   *http.Server
	otelShutdown appOtel.ShutdownFunc
	shutdownWait time.Duration
}

// Run initializes all components and starts the service.
// It blocks until ctx is cancelled, then performs graceful shutdown.
func Run(ctx context.Context) error {
	// ── OpenTelemetry ──
	otelCfg := appOtel.ConfigFromEnv()
	otelShutdown, err := appOtel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	// ── Logger ──
	logger.InitWithOTel(otelCfg.Enabled)
	logger.Logger.Info("Starting insight-api",
		"service", otelCfg.ServiceName,
		"otel_enabled", otelCfg.Enabled,
	)

	// ── Load config ──
	appCfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("Failed to load config", "err", err)
		return err
	}

	// ── Driver (infrastructure layer) ──
	fileDriver := jsonfile.NewDriver(appCfg.Data.Dir)

	// ── Cache ──
	store, err := cache.NewStore(appCfg.Cache.Size)
	if err != nil {
		logger.Logger.Error("Failed to create collection cache", "err", err)
		return err
	}

	// ── Gateway (anti-corruption layer) ──
	collections := gateway.NewCollectionGateway(fileDriver, store, logger.Logger)

	// ── Use cases (application layer) ──
	usecases := usecase.Usecases{
		ScoreTimeline:  usecase.NewScoreTimelineUsecase(collections),
		TopicSubs:      usecase.NewTopicSubscriberUsecase(collections, logger.Logger),
		MediaSupport:   usecase.NewMediaSupportUsecase(collections, logger.Logger),
		RecentIssues:   usecase.NewRecentIssuesUsecase(collections),
		IssueEvals:     usecase.NewIssueEvaluationUsecase(collections),
		PreferenceDist: usecase.NewPreferenceDistributionUsecase(collections),
		ActiveUsers:    usecase.NewActiveUsersUsecase(collections),
		UserJourney:    usecase.NewUserJourneyUsecase(collections),
		UserReport:     usecase.NewUserReportUsecase(collections, logger.Logger),
	}

	// ── Server ──
	app := &App{
		httpServer:   newHTTPServer(appCfg, usecases, store),
		otelShutdown: otelShutdown,
		shutdownWait: appCfg.HTTP.ShutdownTimeout,
	}

	go func() {
		logger.Logger.Info("http listen", "addr", appCfg.HTTP.Addr)
		if err := app.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Error("http", "err", err)
		}
	}()

	// ── Wait for shutdown signal ──
	<-ctx.Done()
	app.shutdown()
	return nil
}

// shutdown performs graceful shutdown of all components.
func (a *App) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownWait)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("http shutdown error", "err", err)
	}

	otelCtx, otelCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer otelCancel()
	if err := a.otelShutdown(otelCtx); err != nil {
		fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
	}
}
