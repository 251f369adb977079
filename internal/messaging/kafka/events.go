package kafka

import "time"

// EventType определяет тип события заказа
type EventType string

const (
	EventTypeOrderCreated  EventType = "order.created"
	EventTypeOrderUpdated  EventType = "order.updated"
	EventTypeOrderCanceled EventType = "order.canceled"
)

// Topics для Kafka
const (
	TopicOrderEvents = "eshop.order.events"
)

// OrderEvent представляет событие жизненного цикла заказа
type OrderEvent struct {
	EventType   EventType `json:"event_type"`
	OrderID     int64     `json:"order_id"`
	UserID      int64     `json:"user_id"`
	ProductID   int64     `json:"product_id"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewOrderEvent создает новое событие заказа
func NewOrderEvent(eventType EventType, orderID, userID, productID int64, quantity int, status string, totalAmount float64) *OrderEvent {
	return &OrderEvent{
		EventType:   eventType,
		OrderID:     orderID,
		UserID:      userID,
		ProductID:   productID,
		Quantity:    quantity,
		Status:      status,
		TotalAmount: totalAmount,
		Timestamp:   time.Now(),
	}
}
