package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
	"github.com/vladislavdragonenkov/eshop/internal/service/order"
	"github.com/vladislavdragonenkov/eshop/internal/service/product"
	"github.com/vladislavdragonenkov/eshop/internal/service/user"
	"github.com/vladislavdragonenkov/eshop/internal/storage/memory"
)

// --- Mock ---

var errBoom = errors.New("boom")

type orderServiceMock struct {
	order  domain.Order
	orders []domain.Order
	total  float64
	err    error
}

func (m orderServiceMock) GetAllOrders() ([]domain.Order, error) {
	return m.orders, m.err
}

func (m orderServiceMock) GetOrderByID(id int64) (domain.Order, error) {
	return m.order, m.err
}

func (m orderServiceMock) CreateOrder(userID, productID int64, quantity int) (domain.Order, error) {
	return m.order, m.err
}

func (m orderServiceMock) CancelOrder(id int64) (domain.Order, error) {
	return m.order, m.err
}

func (m orderServiceMock) UpdateOrderQuantity(id int64, newQuantity int) (domain.Order, error) {
	return m.order, m.err
}

func (m orderServiceMock) GetOrdersByUserID(userID int64) ([]domain.Order, error) {
	return m.orders, m.err
}

func (m orderServiceMock) GetOrdersByDateRange(start, end time.Time) ([]domain.Order, error) {
	return m.orders, m.err
}

func (m orderServiceMock) CalculateTotalAmount(id int64) (float64, error) {
	return m.total, m.err
}

var _ order.Service = orderServiceMock{}

// --- helpers ---

// newTestRouter собирает роутер поверх сервисов с in-memory хранилищем
// и заранее созданными пользователем и товаром.
func newTestRouter(t *testing.T) (*memory.Store, http.Handler) {
	t.Helper()

	store := memory.NewStore()
	if _, err := store.Users().Create(domain.User{Username: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := store.Products().Create(domain.Product{Name: "Laptop", Price: 100.0, Stock: 50}); err != nil {
		t.Fatalf("create product: %v", err)
	}

	orderSvc := order.NewService(store.Users(), store.Products(), store.Orders(), nil, nil)
	userSvc := user.NewService(store.Users(), nil)
	productSvc := product.NewService(store.Products(), nil)

	return store, NewRouter(orderSvc, userSvc, productSvc)
}

func doRequest(t *testing.T, handler http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeOrder(t *testing.T, recorder *httptest.ResponseRecorder) OrderDTO {
	t.Helper()
	var dto OrderDTO
	if err := json.NewDecoder(recorder.Body).Decode(&dto); err != nil {
		t.Fatalf("failed to decode order: %v", err)
	}
	return dto
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	return resp
}

// --- lifecycle through the router ---

func TestCreateOrderEndpoint(t *testing.T) {
	_, router := newTestRouter(t)

	recorder := doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=5", "")

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d: %s", http.StatusCreated, recorder.Code, recorder.Body.String())
	}

	dto := decodeOrder(t, recorder)
	if dto.ID != 1 || dto.Quantity != 5 || dto.Status != "PENDING" {
		t.Fatalf("unexpected order: %+v", dto)
	}
	if dto.TotalAmount != 500.0 {
		t.Errorf("expected totalAmount 500.0, got %f", dto.TotalAmount)
	}
	if dto.User.Username != "alice" || dto.Product.Name != "Laptop" {
		t.Errorf("embedded entities not populated: %+v", dto)
	}
	if _, err := time.Parse(orderDateLayout, dto.OrderDate); err != nil {
		t.Errorf("orderDate has wrong format: %q", dto.OrderDate)
	}
}

func TestCreateOrderEndpointInsufficientStock(t *testing.T) {
	_, router := newTestRouter(t)

	recorder := doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=51", "")

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}
	resp := decodeError(t, recorder)
	if resp.Message != "Insufficient stock for product id 1" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestCreateOrderEndpointUnknownUser(t *testing.T) {
	_, router := newTestRouter(t)

	recorder := doRequest(t, router, "POST", "/orders?userId=99&productId=1&quantity=1", "")

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, recorder.Code)
	}
	resp := decodeError(t, recorder)
	if resp.Message != "User not found with id 99" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestCreateOrderEndpointBadQuantity(t *testing.T) {
	_, router := newTestRouter(t)

	recorder := doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=abc", "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	recorder = doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=0", "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestGetOrderEndpoint(t *testing.T) {
	_, router := newTestRouter(t)
	doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=2", "")

	recorder := doRequest(t, router, "GET", "/orders/1", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	dto := decodeOrder(t, recorder)
	if dto.ID != 1 || dto.TotalAmount != 200.0 {
		t.Fatalf("unexpected order: %+v", dto)
	}
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	_, router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/orders/5", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, recorder.Code)
	}
	resp := decodeError(t, recorder)
	if resp.Message != "Order not found with id 5" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestListOrdersEndpoint(t *testing.T) {
	_, router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/orders", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	// пустой список сериализуется как [], а не null
	if body := strings.TrimSpace(recorder.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}

	doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=1", "")
	doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=2", "")

	recorder = doRequest(t, router, "GET", "/orders", "")
	var orders []OrderDTO
	if err := json.NewDecoder(recorder.Body).Decode(&orders); err != nil {
		t.Fatalf("failed to decode orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
}

func TestCancelOrderEndpoint(t *testing.T) {
	store, router := newTestRouter(t)
	doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=5", "")

	recorder := doRequest(t, router, "DELETE", "/orders/1/cancel", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
	dto := decodeOrder(t, recorder)
	if dto.Status != "CANCELED" {
		t.Fatalf("expected status CANCELED, got %s", dto.Status)
	}

	stored, err := store.Products().Get(1)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if stored.Stock != 50 {
		t.Errorf("expected stock restored to 50, got %d", stored.Stock)
	}
}

func TestCancelOrderEndpointTwice(t *testing.T) {
	_, router := newTestRouter(t)
	doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=1", "")
	doRequest(t, router, "DELETE", "/orders/1/cancel", "")

	recorder := doRequest(t, router, "DELETE", "/orders/1/cancel", "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}
	resp := decodeError(t, recorder)
	if resp.Message != "Only pending orders can be canceled." {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestUpdateOrderQuantityEndpoint(t *testing.T) {
	store, router := newTestRouter(t)
	doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=2", "")

	recorder := doRequest(t, router, "PUT", "/orders/1/quantity?newQuantity=4", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
	dto := decodeOrder(t, recorder)
	if dto.Quantity != 4 || dto.TotalAmount != 400.0 {
		t.Fatalf("unexpected order: %+v", dto)
	}

	stored, err := store.Products().Get(1)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if stored.Stock != 46 {
		t.Errorf("expected stock 46, got %d", stored.Stock)
	}
}

func TestListOrdersByUserEndpoint(t *testing.T) {
	_, router := newTestRouter(t)
	doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=1", "")

	recorder := doRequest(t, router, "GET", "/orders/user/1", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	var orders []OrderDTO
	if err := json.NewDecoder(recorder.Body).Decode(&orders); err != nil {
		t.Fatalf("failed to decode orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}

	recorder = doRequest(t, router, "GET", "/orders/user/42", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected %d for unknown user, got %d", http.StatusNotFound, recorder.Code)
	}
}

func TestListOrdersByDateRangeEndpoint(t *testing.T) {
	_, router := newTestRouter(t)
	doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=1", "")

	now := time.Now().UTC()
	start := now.Add(-time.Hour).Format(orderDateLayout)
	end := now.Add(time.Hour).Format(orderDateLayout)

	recorder := doRequest(t, router, "GET", "/orders/date?startDate="+start+"&endDate="+end, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
	var orders []OrderDTO
	if err := json.NewDecoder(recorder.Body).Decode(&orders); err != nil {
		t.Fatalf("failed to decode orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
}

func TestListOrdersByDateRangeEndpointShortLayout(t *testing.T) {
	_, router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/orders/date?startDate=2025-06-01T10:00&endDate=2025-06-01T12:00", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
}

func TestListOrdersByDateRangeEndpointBadDate(t *testing.T) {
	_, router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/orders/date?startDate=yesterday&endDate=tomorrow", "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestOrderTotalAmountEndpoint(t *testing.T) {
	_, router := newTestRouter(t)
	doRequest(t, router, "POST", "/orders?userId=1&productId=1&quantity=5", "")

	recorder := doRequest(t, router, "GET", "/orders/1/totalAmount", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	if body := strings.TrimSpace(recorder.Body.String()); body != "500" {
		t.Fatalf("expected bare number 500, got %q", body)
	}
}

// --- error mapping with a mock service ---

func TestRespondServiceErrorMapsInternalErrors(t *testing.T) {
	mock := orderServiceMock{err: errBoom}
	handler := NewOrderHandler(mock)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/orders", nil)
	handler.ListOrders(recorder, request)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
	resp := decodeError(t, recorder)
	if resp.Error != "internal_error" {
		t.Errorf("unexpected error kind: %q", resp.Error)
	}
	// внутренние детали не утекают наружу
	if strings.Contains(resp.Message, "boom") {
		t.Errorf("internal error leaked to client: %q", resp.Message)
	}
}
