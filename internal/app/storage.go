package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
	"github.com/vladislavdragonenkov/eshop/internal/storage/memory"
	"github.com/vladislavdragonenkov/eshop/internal/storage/postgres"
)

// repositories объединяет репозитории выбранного бэкенда хранения.
type repositories struct {
	users    domain.UserRepository
	products domain.ProductRepository
	orders   domain.OrderRepository

	// pg не nil только для postgres-драйвера; используется health-check'ом.
	pg *postgres.Store
}

// Close освобождает ресурсы хранилища.
func (r *repositories) Close() error {
	if r.pg != nil {
		return r.pg.Close()
	}
	return nil
}

// initRepositories создаёт репозитории по настроенному драйверу.
// Обе реализации удовлетворяют одним и тем же контрактам domain.
func initRepositories(ctx context.Context, cfg Config, logger *log.Entry) (*repositories, error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		store := memory.NewStore()
		logger.Info("using in-memory storage")
		return &repositories{
			users:    store.Users(),
			products: store.Products(),
			orders:   store.Orders(),
		}, nil

	case StorageDriverPostgres:
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres storage: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply migrations: %w", err)
			}
			logger.Info("postgres migrations applied")
		}
		logger.Info("using postgres storage")
		return &repositories{
			users:    store.Users(),
			products: store.Products(),
			orders:   store.Orders(),
			pg:       store,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}
