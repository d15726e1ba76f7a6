package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"claritymeet.app/api-server/core/config"
	"claritymeet.app/api-server/core/db"
	"claritymeet.app/api-server/core/telemetry"
	"claritymeet.app/api-server/internal/http/handler"
	"claritymeet.app/api-server/internal/http/router"
	"claritymeet.app/api-server/internal/service"
	"claritymeet.app/api-server/internal/store/memory"
	"claritymeet.app/api-server/internal/store/postgres"
	"claritymeet.app/api-server/internal/suggest"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			slog.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	tx, err := newTxRunner(ctx, cfg.Database)
	if err != nil {
		return err
	}

	clock := clockwork.NewRealClock()

	meetingService := service.NewMeetingService(tx, clock)
	agendaService := service.NewAgendaService(tx)
	actionService := service.NewActionItemService(tx)
	reviewService := service.NewReviewService(tx)
	dashboardService := service.NewDashboardService(tx, clock)

	var suggester suggest.Service = suggest.Heuristic{}
	if cfg.Suggest.OpenAIKey != "" {
		suggester = suggest.NewFallback(suggest.NewOpenAI(cfg.Suggest.OpenAIKey, cfg.Suggest.OpenAIModel))
	}

	meetingHandler := handler.NewMeetingHandler(meetingService, clock)
	agendaHandler := handler.NewAgendaItemHandler(agendaService)
	actionHandler := handler.NewActionItemHandler(actionService, clock)
	reviewHandler := handler.NewReviewHandler(reviewService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, clock)
	suggestHandler := handler.NewSuggestHandler(suggester, cfg.Suggest.Timeout)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))

	api := engine.Group("/api")
	api.GET("/health", handler.Health)
	router.MeetingRouter(api.Group("/meetings"), meetingHandler, agendaHandler, actionHandler, reviewHandler)
	router.AgendaItemRouter(api.Group("/agenda"), agendaHandler)
	router.ActionItemRouter(api.Group("/actions"), actionHandler)
	router.DashboardRouter(api.Group("/dashboard"), dashboardHandler)
	router.SuggestRouter(api.Group("/ai"), suggestHandler)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

func newTxRunner(ctx context.Context, cfg config.DatabaseConfig) (service.TxRunner, error) {
	if cfg.URL == "" {
		slog.Warn("DATABASE_URL not set, using in-memory store")
		return memory.NewRunner(memory.NewStore()), nil
	}

	if err := db.Migrate(cfg); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return postgres.NewRunner(pool), nil
}
