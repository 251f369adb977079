package product

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
)

// Service инкапсулирует бизнес-операции над товарами.
type Service interface {
	CreateProduct(product domain.Product) (domain.Product, error)
	GetProductByID(id int64) (domain.Product, error)
	GetAllProducts() ([]domain.Product, error)
}

type service struct {
	products domain.ProductRepository
	logger   *log.Entry
}

// NewService создаёт сервис товаров поверх репозитория.
func NewService(products domain.ProductRepository, logger *log.Entry) Service {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &service{products: products, logger: logger}
}

// CreateProduct валидирует и сохраняет новый товар.
func (s *service) CreateProduct(product domain.Product) (domain.Product, error) {
	if err := product.Validate(); err != nil {
		return domain.Product{}, err
	}

	created, err := s.products.Create(product)
	if err != nil {
		return domain.Product{}, err
	}

	s.logger.WithFields(log.Fields{
		"product_id": created.ID,
		"name":       created.Name,
	}).Info("product created")
	return created, nil
}

func (s *service) GetProductByID(id int64) (domain.Product, error) {
	return s.products.Get(id)
}

func (s *service) GetAllProducts() ([]domain.Product, error) {
	return s.products.List()
}
