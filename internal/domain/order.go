package domain

import "time"

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан и допускает изменение количества или отмену.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusCompleted — терминальный статус; ни одна операция сервиса его не выставляет.
	OrderStatusCompleted OrderStatus = "COMPLETED"
	// OrderStatusCanceled — заказ отменён, зарезервированный товар возвращён на склад.
	OrderStatusCanceled OrderStatus = "CANCELED"
)

// Order агрегирует состояние заказа вместе со снимками пользователя и товара.
// TotalAmount хранится избыточно и равен Product.Price * Quantity
// на момент последнего изменения.
type Order struct {
	ID          int64
	OrderDate   time.Time
	User        User
	Product     Product
	Quantity    int
	Status      OrderStatus
	TotalAmount float64
}

// IsPending сообщает, допускает ли заказ изменение количества или отмену.
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}
