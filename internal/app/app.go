package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hubcoin/miniapp/internal/config"
	"github.com/hubcoin/miniapp/internal/handlers"
	"github.com/hubcoin/miniapp/internal/logger"
	"github.com/hubcoin/miniapp/internal/middleware"
	"github.com/hubcoin/miniapp/internal/remote"
	"github.com/hubcoin/miniapp/internal/service"
	"github.com/hubcoin/miniapp/internal/withdrawal"
)

type App struct {
	server *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client := remote.NewClient(cfg.AccountAPIAddress)
	accountService := service.NewAccountService(client, cfg.BotUsername)
	withdrawalService := service.NewWithdrawalService(withdrawal.NewRegistry(), accountService, client)

	handler := handlers.NewHandler(accountService, withdrawalService)
	limiter := middleware.NewKeyedLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	r := handlers.NewRouter(handler, limiter)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	return &App{server: server}, nil
}

func (a *App) Run() error {
	go func() {
		logger.Log.Info("starting server", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	return nil
}
