package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hubcoin/miniapp/internal/middleware"
	"github.com/hubcoin/miniapp/internal/service"
)

type Handler struct {
	accountService    service.AccountService
	withdrawalService service.WithdrawalService
}

func NewHandler(accountService service.AccountService, withdrawalService service.WithdrawalService) *Handler {
	return &Handler{
		accountService:    accountService,
		withdrawalService: withdrawalService,
	}
}

func NewRouter(handler *Handler, limiter *middleware.KeyedLimiter) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.NewGzipMiddleware())

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/leaderboard", handler.Leaderboard)

		r.Group(func(r chi.Router) {
			r.Use(middleware.NewIdentityMiddleware())
			r.Use(middleware.RateLimitMiddleware(limiter))

			r.Post("/session/bootstrap", handler.Bootstrap)
			r.Get("/session", handler.GetSession)
			r.Post("/session/method", handler.SelectMethod)
			r.Post("/session/amount", handler.SelectPreset)
			r.Post("/session/custom", handler.SelectCustom)
			r.Post("/session/custom-amount", handler.EnterCustomAmount)
			r.Post("/session/account", handler.SetAccount)
			r.Post("/session/reset", handler.ResetSession)
			r.Post("/session/submit", handler.Submit)
			r.Post("/claim-gems", handler.ClaimGems)
		})
	})

	return r
}
