package consoleapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/config"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/infra/telegram"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/projection"
	pgrepo "github.com/Derrick-MUGISHA/Admin-Dashboard/internal/repo/postgres"
	modsvc "github.com/Derrick-MUGISHA/Admin-Dashboard/internal/services/moderation"
	resolutionsvc "github.com/Derrick-MUGISHA/Admin-Dashboard/internal/services/resolution"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/services/syncer"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/store"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	client     store.Client
	engine     *syncer.Engine
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing without audit trail", zap.Error(err))
	} else {
		pool = p
	}

	client := store.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
	proj := projection.New()
	engine := syncer.NewEngine(client, proj, log)

	if cfg.Alerts.TelegramToken != "" {
		alerter, err := telegram.NewAlerter(cfg.Alerts.TelegramToken, cfg.Alerts.TelegramChatID, log)
		if err != nil {
			log.Warn("telegram alerter init failed, continuing without operator alerts", zap.Error(err))
		} else {
			engine.AttachAlerter(alerter)
		}
	}

	auditRepo := pgrepo.NewAuditRepo(pool)
	resolutionService := resolutionsvc.NewService(client, proj, auditRepo, log)
	moderationService := modsvc.NewService(client, proj, auditRepo, log)

	RegisterRoutes(r, Dependencies{
		Projection:        proj,
		SyncEngine:        engine,
		ResolutionService: resolutionService,
		ModerationService: moderationService,
		Logger:            log,
		Config:            cfg,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		client:     client,
		engine:     engine,
		httpRouter: r,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.engine.Start(ctx); err != nil {
		return fmt.Errorf("start sync: %w", err)
	}

	a.logger.Info("console server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}

	a.engine.Stop()

	if a.postgres != nil {
		a.postgres.Close()
	}
	if err := a.client.Close(); err != nil && shutdownErr == nil {
		shutdownErr = err
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
