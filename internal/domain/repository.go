package domain

import "time"

// UserRepository описывает требования к хранилищу пользователей.
type UserRepository interface {
	// Create сохраняет нового пользователя и возвращает запись с присвоенным ID.
	Create(user User) (User, error)
	// Get возвращает пользователя или *NotFoundError, если его нет.
	Get(id int64) (User, error)
	// List возвращает всех пользователей.
	List() ([]User, error)
}

// ProductRepository описывает требования к хранилищу товаров.
type ProductRepository interface {
	// Create сохраняет новый товар и возвращает запись с присвоенным ID.
	Create(product Product) (Product, error)
	// Get возвращает товар или *NotFoundError, если его нет.
	Get(id int64) (Product, error)
	// List возвращает все товары.
	List() ([]Product, error)
}

// OrderRepository описывает требования к хранилищу заказов.
// Мутации заказа и остатка товара фиксируются одним коммитом:
// либо обе записи изменяются, либо ни одна.
type OrderRepository interface {
	// Create сохраняет новый заказ и обновлённый остаток товара атомарно.
	Create(order Order, product Product) (Order, error)
	// Get возвращает заказ с заполненными User и Product или *NotFoundError.
	Get(id int64) (Order, error)
	// List возвращает все заказы.
	List() ([]Order, error)
	// ListByUser возвращает заказы указанного пользователя.
	ListByUser(userID int64) ([]Order, error)
	// ListByDateRange возвращает заказы с OrderDate в диапазоне [start, end],
	// включительно с обеих сторон.
	ListByDateRange(start, end time.Time) ([]Order, error)
	// Save применяет изменения заказа и остатка товара атомарно.
	Save(order Order, product Product) error
}
