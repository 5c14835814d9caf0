package handlers

import (
	"net/http"

	"github.com/a2sh3r/familyledger/internal/middleware"
	"github.com/a2sh3r/familyledger/internal/service"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	userService       service.UserService
	accountService    service.AccountService
	ledgerService     service.LedgerService
	withdrawalService service.WithdrawalService
	queryService      service.QueryService
	secretKey         string
}

func NewHandler(
	userService service.UserService,
	accountService service.AccountService,
	ledgerService service.LedgerService,
	withdrawalService service.WithdrawalService,
	queryService service.QueryService,
	secretKey string,
) *Handler {
	return &Handler{
		userService:       userService,
		accountService:    accountService,
		ledgerService:     ledgerService,
		withdrawalService: withdrawalService,
		queryService:      queryService,
		secretKey:         secretKey,
	}
}

func NewRouter(handler *Handler, secretKey string, limiter *middleware.ParentLimiter) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.NewGzipMiddleware())
	r.Use(middleware.NewHashMiddleware(secretKey))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Get("/health", handler.Health)
	r.Get("/health/simple", handler.SimpleHealth)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secretKey))
		if limiter != nil {
			r.Use(middleware.RateLimitMiddleware(limiter))
		}

		r.Route("/api/children", func(r chi.Router) {
			r.Get("/", handler.ListChildren)
			r.Post("/", handler.CreateChild)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.GetChild)
				r.Patch("/allowance", handler.UpdateAllowance)
				r.Patch("/threshold", handler.UpdateThreshold)
				r.Post("/transactions", handler.RecordTransaction)
				r.Get("/transactions", handler.GetChildTransactions)
				r.Get("/withdrawal-requests", handler.GetChildWithdrawals)
				r.Get("/audit", handler.AuditChild)
			})
		})

		r.Get("/api/transactions/recent", handler.GetRecentTransactions)

		r.Route("/api/withdrawal-requests", func(r chi.Router) {
			r.Get("/", handler.GetPendingWithdrawals)
			r.Post("/", handler.CreateWithdrawalRequest)
			r.Patch("/{id}", handler.DecideWithdrawal)
		})
	})

	return r
}
