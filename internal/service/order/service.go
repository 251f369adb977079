package order

import (
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
	"github.com/vladislavdragonenkov/eshop/internal/messaging/kafka"
)

// Service инкапсулирует бизнес-операции над заказами.
type Service interface {
	GetAllOrders() ([]domain.Order, error)
	GetOrderByID(id int64) (domain.Order, error)
	CreateOrder(userID, productID int64, quantity int) (domain.Order, error)
	CancelOrder(id int64) (domain.Order, error)
	UpdateOrderQuantity(id int64, newQuantity int) (domain.Order, error)
	GetOrdersByUserID(userID int64) ([]domain.Order, error)
	GetOrdersByDateRange(start, end time.Time) ([]domain.Order, error)
	CalculateTotalAmount(id int64) (float64, error)
}

// EventSink публикует события жизненного цикла заказа.
// Отсутствие брокера (nil) выключает публикацию без влияния на операции.
type EventSink interface {
	PublishEvent(topic string, key string, event interface{}) error
}

type service struct {
	users    domain.UserRepository
	products domain.ProductRepository
	orders   domain.OrderRepository
	events   EventSink
	logger   *log.Entry
}

// NewService создаёт сервис заказов поверх репозиториев.
// events может быть nil, тогда события не публикуются.
func NewService(
	users domain.UserRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	events EventSink,
	logger *log.Entry,
) Service {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &service{
		users:    users,
		products: products,
		orders:   orders,
		events:   events,
		logger:   logger,
	}
}

func (s *service) GetAllOrders() ([]domain.Order, error) {
	return s.orders.List()
}

func (s *service) GetOrderByID(id int64) (domain.Order, error) {
	return s.orders.Get(id)
}

// CreateOrder резервирует товар и создаёт заказ в статусе PENDING.
// Остаток товара уменьшается в той же операции хранилища, что и вставка заказа.
func (s *service) CreateOrder(userID, productID int64, quantity int) (domain.Order, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return domain.Order{}, err
	}

	product, err := s.products.Get(productID)
	if err != nil {
		return domain.Order{}, err
	}

	if product.Stock < quantity {
		return domain.Order{}, domain.NewValidationError("Insufficient stock for product id %d", productID)
	}
	product.Stock -= quantity

	order := domain.Order{
		OrderDate:   time.Now().UTC(),
		User:        user,
		Product:     product,
		Quantity:    quantity,
		Status:      domain.OrderStatusPending,
		TotalAmount: product.Price * float64(quantity),
	}

	created, err := s.orders.Create(order, product)
	if err != nil {
		return domain.Order{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id":   created.ID,
		"user_id":    userID,
		"product_id": productID,
		"quantity":   quantity,
	}).Info("order created")

	s.publish(kafka.EventTypeOrderCreated, created)
	return created, nil
}

// CancelOrder переводит PENDING-заказ в CANCELED и возвращает товар на склад.
func (s *service) CancelOrder(id int64) (domain.Order, error) {
	order, err := s.orders.Get(id)
	if err != nil {
		return domain.Order{}, err
	}
	if !order.IsPending() {
		return domain.Order{}, domain.NewValidationError("Only pending orders can be canceled.")
	}

	product, err := s.products.Get(order.Product.ID)
	if err != nil {
		return domain.Order{}, err
	}
	product.Stock += order.Quantity

	order.Status = domain.OrderStatusCanceled
	order.Product = product

	if err := s.orders.Save(order, product); err != nil {
		return domain.Order{}, err
	}

	s.logger.WithField("order_id", order.ID).Info("order canceled")
	s.publish(kafka.EventTypeOrderCanceled, order)
	return order, nil
}

// UpdateOrderQuantity меняет количество у PENDING-заказа.
// Остаток корректируется на дельту, итоговая сумма пересчитывается.
func (s *service) UpdateOrderQuantity(id int64, newQuantity int) (domain.Order, error) {
	order, err := s.orders.Get(id)
	if err != nil {
		return domain.Order{}, err
	}
	if !order.IsPending() {
		return domain.Order{}, domain.NewValidationError("Only pending orders can be updated.")
	}

	product, err := s.products.Get(order.Product.ID)
	if err != nil {
		return domain.Order{}, err
	}

	delta := newQuantity - order.Quantity
	if delta > 0 && product.Stock < delta {
		return domain.Order{}, domain.NewValidationError("Insufficient stock to increase quantity.")
	}
	product.Stock -= delta

	order.Quantity = newQuantity
	order.TotalAmount = product.Price * float64(newQuantity)
	order.Product = product

	if err := s.orders.Save(order, product); err != nil {
		return domain.Order{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"quantity": newQuantity,
	}).Info("order quantity updated")

	s.publish(kafka.EventTypeOrderUpdated, order)
	return order, nil
}

// GetOrdersByUserID возвращает заказы пользователя.
// Отсутствие пользователя — ошибка, пустой список — нормальный результат.
func (s *service) GetOrdersByUserID(userID int64) ([]domain.Order, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	return s.orders.ListByUser(userID)
}

func (s *service) GetOrdersByDateRange(start, end time.Time) ([]domain.Order, error) {
	return s.orders.ListByDateRange(start, end)
}

// CalculateTotalAmount возвращает сохранённую итоговую сумму заказа.
func (s *service) CalculateTotalAmount(id int64) (float64, error) {
	order, err := s.orders.Get(id)
	if err != nil {
		return 0, err
	}
	return order.TotalAmount, nil
}

// publish отправляет событие заказа; сбой публикации не откатывает операцию.
func (s *service) publish(eventType kafka.EventType, order domain.Order) {
	if s.events == nil {
		return
	}

	event := kafka.NewOrderEvent(
		eventType,
		order.ID,
		order.User.ID,
		order.Product.ID,
		order.Quantity,
		string(order.Status),
		order.TotalAmount,
	)
	key := strconv.FormatInt(order.ID, 10)
	if err := s.events.PublishEvent(kafka.TopicOrderEvents, key, event); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id":   order.ID,
			"event_type": eventType,
		}).Warn("failed to publish order event")
	}
}
