package memory

import (
	"sort"
	"time"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
)

type orderRepository struct {
	store *Store
}

// Create сохраняет новый заказ и обновлённый остаток товара под одной блокировкой.
func (r *orderRepository) Create(order domain.Order, product domain.Product) (domain.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return domain.Order{}, domain.NewProductNotFound(product.ID)
	}

	s.nextOrderID++
	order.ID = s.nextOrderID
	s.orders[order.ID] = order
	s.products[product.ID] = product
	return order, nil
}

// Get возвращает заказ или *NotFoundError, если его нет.
func (r *orderRepository) Get(id int64) (domain.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return domain.Order{}, domain.NewOrderNotFound(id)
	}
	return order, nil
}

// List возвращает все заказы в порядке возрастания ID.
func (r *orderRepository) List() ([]domain.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		result = append(result, order)
	}
	sortOrders(result)
	return result, nil
}

// ListByUser возвращает заказы пользователя.
func (r *orderRepository) ListByUser(userID int64) ([]domain.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range s.orders {
		if order.User.ID == userID {
			result = append(result, order)
		}
	}
	sortOrders(result)
	return result, nil
}

// ListByDateRange возвращает заказы с OrderDate в диапазоне [start, end] включительно.
func (r *orderRepository) ListByDateRange(start, end time.Time) ([]domain.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range s.orders {
		if order.OrderDate.Before(start) || order.OrderDate.After(end) {
			continue
		}
		result = append(result, order)
	}
	sortOrders(result)
	return result, nil
}

// Save перезаписывает заказ и остаток товара под одной блокировкой.
func (r *orderRepository) Save(order domain.Order, product domain.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; !ok {
		return domain.NewOrderNotFound(order.ID)
	}
	if _, ok := s.products[product.ID]; !ok {
		return domain.NewProductNotFound(product.ID)
	}

	s.orders[order.ID] = order
	s.products[product.ID] = product
	return nil
}

func sortOrders(orders []domain.Order) {
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
}

var _ domain.OrderRepository = (*orderRepository)(nil)
