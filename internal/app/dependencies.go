package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/salesops/internal/health"
	"github.com/vladislavdragonenkov/salesops/internal/storage/memory"
	"github.com/vladislavdragonenkov/salesops/internal/storage/postgres"
)

// Dependencies содержит хранилища приложения. Набор выбирается по
// PostgresDSN: пустой DSN даёт in-memory реализацию.
type Dependencies struct {
	Users     domain.UserRepository
	Customers domain.CustomerRepository
	Products  domain.ProductRepository
	Orders    domain.OrderRepository
	Outbox    domain.OutboxRepository
	Analytics domain.AnalyticsRepository
	Ledger    domain.StockLedger

	StorageChecker healthcheck.Checker

	closeFn func() error
}

// NewDependencies инициализирует хранилища согласно конфигурации.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	if cfg.PostgresDSN == "" {
		logger.Info("postgres dsn is empty, using in-memory storage")
		return newMemoryDependencies(), nil
	}

	store, err := postgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres storage: %w", err)
	}

	if cfg.PostgresAutoMigrate {
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply postgres migrations: %w", err)
		}
		logger.Info("postgres migrations applied")
	}

	logger.Info("postgres storage initialized")
	return &Dependencies{
		Users:     postgres.NewUserRepository(store),
		Customers: postgres.NewCustomerRepository(store),
		Products:  postgres.NewProductRepository(store),
		Orders:    postgres.NewOrderRepository(store),
		Outbox:    postgres.NewOutboxRepository(store),
		Analytics: postgres.NewAnalyticsRepository(store),
		Ledger:    postgres.NewStockLedger(store),
		StorageChecker: healthcheck.NewSimpleChecker("postgres", func() error {
			return store.Ping(context.Background())
		}),
		closeFn: store.Close,
	}, nil
}

// newMemoryDependencies собирает in-memory хранилища. ProductStore
// одновременно служит каталогом и журналом остатков.
func newMemoryDependencies() *Dependencies {
	users := memory.NewUserRepository()
	customers := memory.NewCustomerRepository()
	orders := memory.NewOrderRepository()
	products := memory.NewProductStore()

	return &Dependencies{
		Users:     users,
		Customers: customers,
		Products:  products,
		Orders:    orders,
		Outbox:    memory.NewOutboxRepository(),
		Analytics: memory.NewAnalyticsRepository(orders, customers, users),
		Ledger:    products,
		StorageChecker: healthcheck.NewSimpleChecker("memory", func() error {
			return nil
		}),
	}
}

// Close освобождает ресурсы хранилища.
func (d *Dependencies) Close() error {
	if d == nil || d.closeFn == nil {
		return nil
	}
	return d.closeFn()
}
