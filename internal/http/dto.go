package http

import (
	"time"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
)

// orderDateLayout — формат дат в JSON и query-параметрах (локальное ISO-время).
const orderDateLayout = "2006-01-02T15:04:05"

// orderDateShortLayout принимается в query-параметрах без секунд.
const orderDateShortLayout = "2006-01-02T15:04"

type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ProductDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

type OrderDTO struct {
	ID          int64      `json:"id"`
	OrderDate   string     `json:"orderDate"`
	User        UserDTO    `json:"user"`
	Product     ProductDTO `json:"product"`
	Quantity    int        `json:"quantity"`
	Status      string     `json:"status"`
	TotalAmount float64    `json:"totalAmount"`
}

func toUserDTO(user domain.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func toProductDTO(product domain.Product) ProductDTO {
	return ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
	}
}

func toOrderDTO(order domain.Order) OrderDTO {
	return OrderDTO{
		ID:          order.ID,
		OrderDate:   order.OrderDate.Format(orderDateLayout),
		User:        toUserDTO(order.User),
		Product:     toProductDTO(order.Product),
		Quantity:    order.Quantity,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
	}
}

func toOrderDTOs(orders []domain.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, toOrderDTO(order))
	}
	return dtos
}

// parseOrderDate принимает дату с секундами и без.
func parseOrderDate(value string) (time.Time, error) {
	t, err := time.Parse(orderDateLayout, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(orderDateShortLayout, value)
}
