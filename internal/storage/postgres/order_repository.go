package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
)

// OrderRepository — PostgreSQL-реализация domain.OrderRepository.
// Заказ и остаток товара меняются в одной транзакции.
type OrderRepository struct {
	db *sql.DB
}

const orderSelect = `
	SELECT o.id, o.order_date, o.quantity, o.status, o.total_amount,
	       u.id, u.username, u.email,
	       p.id, p.name, p.description, p.price, p.stock
	FROM orders o
	JOIN users u ON u.id = o.user_id
	JOIN products p ON p.id = o.product_id
`

func (r *OrderRepository) Create(order domain.Order, product domain.Product) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (order_date, user_id, product_id, quantity, status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		order.OrderDate, order.User.ID, order.Product.ID,
		order.Quantity, string(order.Status), order.TotalAmount,
	).Scan(&order.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	if err = updateStockTx(ctx, tx, product); err != nil {
		return domain.Order{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Order{}, fmt.Errorf("commit create order: %w", err)
	}

	order.Product = product
	return order, nil
}

func (r *OrderRepository) Get(id int64) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	order, err := scanOrder(r.db.QueryRowContext(ctx, orderSelect+` WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.NewOrderNotFound(id)
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}
	return order, nil
}

func (r *OrderRepository) List() ([]domain.Order, error) {
	return r.queryOrders(orderSelect + ` ORDER BY o.id ASC`)
}

func (r *OrderRepository) ListByUser(userID int64) ([]domain.Order, error) {
	return r.queryOrders(orderSelect+` WHERE o.user_id = $1 ORDER BY o.id ASC`, userID)
}

func (r *OrderRepository) ListByDateRange(start, end time.Time) ([]domain.Order, error) {
	return r.queryOrders(orderSelect+` WHERE o.order_date BETWEEN $1 AND $2 ORDER BY o.id ASC`, start, end)
}

func (r *OrderRepository) Save(order domain.Order, product domain.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET quantity = $1,
		    status = $2,
		    total_amount = $3
		WHERE id = $4
	`, order.Quantity, string(order.Status), order.TotalAmount, order.ID)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		err = domain.NewOrderNotFound(order.ID)
		return err
	}

	if err = updateStockTx(ctx, tx, product); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save order: %w", err)
	}
	return nil
}

func (r *OrderRepository) queryOrders(query string, args ...any) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order  domain.Order
		status string
	)
	err := row.Scan(
		&order.ID, &order.OrderDate, &order.Quantity, &status, &order.TotalAmount,
		&order.User.ID, &order.User.Username, &order.User.Email,
		&order.Product.ID, &order.Product.Name, &order.Product.Description,
		&order.Product.Price, &order.Product.Stock,
	)
	if err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.OrderStatus(status)
	return order, nil
}

func updateStockTx(ctx context.Context, tx *sql.Tx, product domain.Product) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET stock = $1
		WHERE id = $2
	`, product.Stock, product.ID)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewProductNotFound(product.ID)
	}
	return nil
}

var _ domain.OrderRepository = (*OrderRepository)(nil)
