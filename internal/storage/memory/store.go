package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
)

// Store держит все таблицы in-memory хранилища под одним мьютексом,
// чтобы заказ и остаток товара изменялись атомарно, как и в postgres-бэкенде.
type Store struct {
	mu sync.RWMutex

	users    map[int64]domain.User
	products map[int64]domain.Product
	orders   map[int64]domain.Order

	nextUserID    int64
	nextProductID int64
	nextOrderID   int64
}

// NewStore возвращает пустое in-memory хранилище для локальной разработки и тестов.
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]domain.User),
		products: make(map[int64]domain.Product),
		orders:   make(map[int64]domain.Order),
	}
}

// Users возвращает репозиторий пользователей поверх хранилища.
func (s *Store) Users() domain.UserRepository {
	return &userRepository{store: s}
}

// Products возвращает репозиторий товаров поверх хранилища.
func (s *Store) Products() domain.ProductRepository {
	return &productRepository{store: s}
}

// Orders возвращает репозиторий заказов поверх хранилища.
func (s *Store) Orders() domain.OrderRepository {
	return &orderRepository{store: s}
}
