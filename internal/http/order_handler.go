package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavdragonenkov/eshop/internal/service/order"
)

// OrderHandler обслуживает REST-операции над заказами.
// Вся бизнес-логика живёт в сервисе, обработчик только транслирует запросы.
type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.GetAllOrders()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderDTOs(orders))
}

// GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	found, err := h.orders.GetOrderByID(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderDTO(found))
}

// POST /orders?userId=&productId=&quantity=
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseInt64Query(w, r, "userId")
	if !ok {
		return
	}
	productID, ok := parseInt64Query(w, r, "productId")
	if !ok {
		return
	}
	quantity, ok := parseIntQuery(w, r, "quantity")
	if !ok {
		return
	}
	if quantity <= 0 {
		respondError(w, http.StatusBadRequest, errorKindValidation, "quantity must be positive")
		return
	}

	created, err := h.orders.CreateOrder(userID, productID, quantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toOrderDTO(created))
}

// DELETE /orders/{id}/cancel
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	canceled, err := h.orders.CancelOrder(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderDTO(canceled))
}

// PUT /orders/{id}/quantity?newQuantity=
func (h *OrderHandler) UpdateOrderQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	newQuantity, ok := parseIntQuery(w, r, "newQuantity")
	if !ok {
		return
	}
	if newQuantity <= 0 {
		respondError(w, http.StatusBadRequest, errorKindValidation, "newQuantity must be positive")
		return
	}

	updated, err := h.orders.UpdateOrderQuantity(id, newQuantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderDTO(updated))
}

// GET /orders/user/{userId}
func (h *OrderHandler) ListOrdersByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "userId")
	if !ok {
		return
	}

	orders, err := h.orders.GetOrdersByUserID(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderDTOs(orders))
}

// GET /orders/date?startDate=&endDate=
func (h *OrderHandler) ListOrdersByDateRange(w http.ResponseWriter, r *http.Request) {
	startRaw := r.URL.Query().Get("startDate")
	endRaw := r.URL.Query().Get("endDate")

	start, err := parseOrderDate(startRaw)
	if err != nil {
		respondError(w, http.StatusBadRequest, errorKindValidation, "startDate must be an ISO local date-time")
		return
	}
	end, err := parseOrderDate(endRaw)
	if err != nil {
		respondError(w, http.StatusBadRequest, errorKindValidation, "endDate must be an ISO local date-time")
		return
	}

	orders, err := h.orders.GetOrdersByDateRange(start, end)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderDTOs(orders))
}

// GET /orders/{id}/totalAmount
func (h *OrderHandler) GetOrderTotalAmount(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	total, err := h.orders.CalculateTotalAmount(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, total)
}

func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, errorKindValidation, name+" must be an integer")
		return 0, false
	}
	return id, true
}

func parseInt64Query(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		raw = r.PostFormValue(name)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, errorKindValidation, name+" must be an integer")
		return 0, false
	}
	return value, true
}

func parseIntQuery(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, ok := parseInt64Query(w, r, name)
	return int(value), ok
}
