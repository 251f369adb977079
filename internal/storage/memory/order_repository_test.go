package memory

import (
	"testing"
	"time"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
)

func seedOrderFixtures(t *testing.T) (*Store, domain.User, domain.Product) {
	t.Helper()

	store := NewStore()
	user, err := store.Users().Create(domain.User{Username: "alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("создание пользователя: %v", err)
	}
	product, err := store.Products().Create(domain.Product{Name: "Laptop", Price: 100.0, Stock: 50})
	if err != nil {
		t.Fatalf("создание товара: %v", err)
	}
	return store, user, product
}

func TestOrderRepositoryCreateUpdatesStockAtomically(t *testing.T) {
	store, user, product := seedOrderFixtures(t)
	repo := store.Orders()

	product.Stock = 45
	order := domain.Order{
		OrderDate:   time.Now().UTC(),
		User:        user,
		Product:     product,
		Quantity:    5,
		Status:      domain.OrderStatusPending,
		TotalAmount: 500.0,
	}

	created, err := repo.Create(order, product)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("ожидался ID 1, получен %d", created.ID)
	}

	stored, err := store.Products().Get(product.ID)
	if err != nil {
		t.Fatalf("Get product: %v", err)
	}
	if stored.Stock != 45 {
		t.Fatalf("ожидался остаток 45, получен %d", stored.Stock)
	}
}

func TestOrderRepositoryGetNotFound(t *testing.T) {
	store, _, _ := seedOrderFixtures(t)

	_, err := store.Orders().Get(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("ожидалась ошибка NotFound, получено %v", err)
	}
	if err.Error() != "Order not found with id 99" {
		t.Fatalf("неожиданное сообщение: %q", err.Error())
	}
}

func TestOrderRepositorySaveNotFound(t *testing.T) {
	store, user, product := seedOrderFixtures(t)

	order := domain.Order{ID: 5, User: user, Product: product, Quantity: 1, Status: domain.OrderStatusPending}
	err := store.Orders().Save(order, product)
	if !domain.IsNotFound(err) {
		t.Fatalf("ожидалась ошибка NotFound, получено %v", err)
	}
}

func TestOrderRepositorySaveOverwritesOrderAndStock(t *testing.T) {
	store, user, product := seedOrderFixtures(t)
	repo := store.Orders()

	order := domain.Order{
		OrderDate:   time.Now().UTC(),
		User:        user,
		Product:     product,
		Quantity:    2,
		Status:      domain.OrderStatusPending,
		TotalAmount: 200.0,
	}
	created, err := repo.Create(order, product)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Status = domain.OrderStatusCanceled
	product.Stock = 50
	if err := repo.Save(created, product); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.OrderStatusCanceled {
		t.Fatalf("ожидался статус CANCELED, получен %s", got.Status)
	}
	stored, err := store.Products().Get(product.ID)
	if err != nil {
		t.Fatalf("Get product: %v", err)
	}
	if stored.Stock != 50 {
		t.Fatalf("ожидался остаток 50, получен %d", stored.Stock)
	}
}

func TestOrderRepositoryListByUser(t *testing.T) {
	store, user, product := seedOrderFixtures(t)
	other, err := store.Users().Create(domain.User{Username: "bob", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("создание пользователя: %v", err)
	}
	repo := store.Orders()

	for _, u := range []domain.User{user, other, user} {
		o := domain.Order{OrderDate: time.Now().UTC(), User: u, Product: product, Quantity: 1, Status: domain.OrderStatusPending, TotalAmount: 100.0}
		if _, err := repo.Create(o, product); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	orders, err := repo.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("ожидалось 2 заказа, получено %d", len(orders))
	}
	for _, o := range orders {
		if o.User.ID != user.ID {
			t.Fatalf("чужой заказ в выборке: %+v", o)
		}
	}
}

func TestOrderRepositoryListByDateRangeInclusive(t *testing.T) {
	store, user, product := seedOrderFixtures(t)
	repo := store.Orders()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	dates := []time.Time{
		base.Add(-time.Hour),
		base,
		base.Add(time.Hour),
		base.Add(2 * time.Hour),
	}
	for _, d := range dates {
		o := domain.Order{OrderDate: d, User: user, Product: product, Quantity: 1, Status: domain.OrderStatusPending, TotalAmount: 100.0}
		if _, err := repo.Create(o, product); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	orders, err := repo.ListByDateRange(base, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("ListByDateRange: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("ожидалось 2 заказа на границах диапазона, получено %d", len(orders))
	}
}
