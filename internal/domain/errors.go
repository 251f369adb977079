package domain

import (
	"errors"
	"fmt"
)

// NotFoundError возвращается, когда сущность с указанным ID отсутствует в хранилище.
// Формат сообщения "{Entity} not found with id {id}" является частью контракта API.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id %d", e.Entity, e.ID)
}

// NewUserNotFound возвращает ошибку отсутствующего пользователя.
func NewUserNotFound(id int64) error {
	return &NotFoundError{Entity: "User", ID: id}
}

// NewProductNotFound возвращает ошибку отсутствующего товара.
func NewProductNotFound(id int64) error {
	return &NotFoundError{Entity: "Product", ID: id}
}

// NewOrderNotFound возвращает ошибку отсутствующего заказа.
func NewOrderNotFound(id int64) error {
	return &NotFoundError{Entity: "Order", ID: id}
}

// ValidationError описывает нарушение бизнес-правила.
// Текст сообщения проверяется в тестах дословно, поэтому он фиксирован.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError создаёт ошибку бизнес-правила с форматированным сообщением.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsNotFound проверяет, является ли ошибка отсутствием сущности.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation проверяет, является ли ошибка нарушением бизнес-правила.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
