package memory

import (
	"sort"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
)

type productRepository struct {
	store *Store
}

// Create сохраняет товар, присваивая следующий свободный ID.
func (r *productRepository) Create(product domain.Product) (domain.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProductID++
	product.ID = s.nextProductID
	s.products[product.ID] = product
	return product, nil
}

// Get возвращает товар или *NotFoundError, если его нет.
func (r *productRepository) Get(id int64) (domain.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return domain.Product{}, domain.NewProductNotFound(id)
	}
	return product, nil
}

// List возвращает все товары в порядке возрастания ID.
func (r *productRepository) List() ([]domain.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, 0, len(s.products))
	for _, product := range s.products {
		result = append(result, product)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
