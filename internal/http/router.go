package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/eshop/internal/service/order"
	"github.com/vladislavdragonenkov/eshop/internal/service/product"
	"github.com/vladislavdragonenkov/eshop/internal/service/user"
)

// NewRouter собирает chi-роутер со всеми контроллерами и middleware.
// extra позволяет приложению добавить свои middleware (например, метрики).
func NewRouter(
	orders order.Service,
	users user.Service,
	products product.Service,
	extra ...func(http.Handler) http.Handler,
) *chi.Mux {
	orderHandler := NewOrderHandler(orders)
	userHandler := NewUserHandler(users)
	productHandler := NewProductHandler(products)

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(RequestLogger(log.WithField("component", "http")))
	for _, mw := range extra {
		r.Use(mw)
	}

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orderHandler.ListOrders)
		r.Post("/", orderHandler.CreateOrder)
		r.Get("/date", orderHandler.ListOrdersByDateRange)
		r.Get("/user/{userId}", orderHandler.ListOrdersByUser)
		r.Get("/{id}", orderHandler.GetOrder)
		r.Delete("/{id}/cancel", orderHandler.CancelOrder)
		r.Put("/{id}/quantity", orderHandler.UpdateOrderQuantity)
		r.Get("/{id}/totalAmount", orderHandler.GetOrderTotalAmount)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Post("/", userHandler.CreateUser)
		r.Get("/{id}", userHandler.GetUser)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)
		r.Post("/", productHandler.CreateProduct)
		r.Get("/{id}", productHandler.GetProduct)
	})

	return r
}
