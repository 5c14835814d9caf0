package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a2sh3r/familyledger/internal/config"
	"github.com/a2sh3r/familyledger/internal/database"
	"github.com/a2sh3r/familyledger/internal/handlers"
	"github.com/a2sh3r/familyledger/internal/logger"
	"github.com/a2sh3r/familyledger/internal/middleware"
	"github.com/a2sh3r/familyledger/internal/notify"
	"github.com/a2sh3r/familyledger/internal/repository"
	"github.com/a2sh3r/familyledger/internal/service"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type App struct {
	server    *http.Server
	db        *sql.DB
	publisher notify.Publisher
	scheduler *service.AllowanceScheduler
	cancel    context.CancelFunc
}

type stores struct {
	users       repository.UserRepository
	accounts    repository.AccountRepository
	withdrawals repository.WithdrawalRepository
	ledger      repository.LedgerRepository
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	return New(cfg)
}

// New wires the application from an already loaded configuration.
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	st, db, err := openStores(cfg)
	if err != nil {
		logger.Log.Error("Storage initialization failed", zap.Error(err))
		return nil, err
	}

	publisher := newPublisher(cfg)

	userService := service.NewUserService(st.users)
	accountService := service.NewAccountService(st.accounts)
	ledgerService := service.NewLedgerService(st.ledger, publisher, cfg.ConflictRetries)
	withdrawalService := service.NewWithdrawalService(st.accounts, st.withdrawals, st.ledger, publisher, cfg.ConflictRetries)
	queryService := service.NewQueryService(st.accounts, st.withdrawals, st.ledger)

	scheduler := service.NewAllowanceScheduler(st.accounts, st.ledger, ledgerService, cfg.AllowancePollInterval, cfg.Location())

	handler := handlers.NewHandler(userService, accountService, ledgerService, withdrawalService, queryService, cfg.SecretKey)
	limiter := middleware.NewParentRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	r := handlers.NewRouter(handler, cfg.SecretKey, limiter)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	logger.Log.Info("application configured",
		zap.String("address", cfg.RunAddress),
		zap.String("storage", cfg.Storage),
		zap.String("allowance_location", cfg.AllowanceLocation),
	)

	return &App{
		server:    server,
		db:        db,
		publisher: publisher,
		scheduler: scheduler,
	}, nil
}

func openStores(cfg *config.Config) (stores, *sql.DB, error) {
	if cfg.Storage == config.StorageMemory {
		mem := repository.NewMemoryStore(cfg.LockTimeout)
		return stores{users: mem, accounts: mem, withdrawals: mem, ledger: mem}, nil, nil
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		return stores{}, nil, err
	}
	return stores{
		users:       repository.NewUserRepository(db),
		accounts:    repository.NewAccountRepository(db),
		withdrawals: repository.NewWithdrawalRepository(db),
		ledger:      repository.NewLedgerRepository(db, cfg.LockTimeout),
	}, db, nil
}

// newPublisher builds the event fan-out. A sink that cannot be reached at
// startup is skipped so the ledger keeps running without it.
func newPublisher(cfg *config.Config) notify.Publisher {
	var publishers []notify.Publisher

	if cfg.RabbitMQURL != "" {
		rmq, err := notify.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
		if err != nil {
			logger.Log.Error("rabbitmq publisher disabled", zap.Error(err))
		} else {
			publishers = append(publishers, notify.WithBreaker("rabbitmq", rmq, notify.DefaultBreakerConfig))
		}
	}

	if cfg.WebhookURL != "" {
		webhook := notify.NewWebhookPublisher(cfg.WebhookURL, cfg.SecretKey)
		publishers = append(publishers, notify.WithBreaker("webhook", webhook, notify.DefaultBreakerConfig))
	}

	return notify.NewMultiPublisher(publishers...)
}

func (a *App) Run(ctx context.Context) error {
	schedCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	go a.scheduler.Run(schedCtx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if a.cancel != nil {
		a.cancel()
	}

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	if err := a.publisher.Close(); err != nil {
		logger.Log.Error("failed to close event publisher", zap.Error(err))
	}

	if a.db == nil {
		return nil
	}
	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
