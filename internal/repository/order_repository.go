package repository

//go:generate mockgen -source=order_repository.go -destination=mocks/order_repository_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
)

// OrderRepository stores orders together with their item lines.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type orderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderColumns = `id, id_user, shipping_address, payment_method, total_price, created_at, updated_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.IDUser,
		&order.ShippingAddress,
		&order.PaymentMethod,
		&order.TotalPrice,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := validate(order); err != nil {
		return err
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	const query = `
        INSERT INTO orders (id, id_user, shipping_address, payment_method, total_price)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, query,
			order.ID,
			order.IDUser,
			order.ShippingAddress,
			order.PaymentMethod,
			order.TotalPrice,
		).Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
			return err
		}
		return insertItems(ctx, tx, order)
	})
	return mapError("insert order", err)
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	if err := validate(order); err != nil {
		return err
	}

	const query = `
        UPDATE orders SET id_user=$1, shipping_address=$2, payment_method=$3, total_price=$4,
            updated_at=NOW()
        WHERE id=$5
        RETURNING created_at, updated_at`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, query,
			order.IDUser,
			order.ShippingAddress,
			order.PaymentMethod,
			order.TotalPrice,
			order.ID,
		).Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id=$1`, order.ID); err != nil {
			return err
		}
		return insertItems(ctx, tx, order)
	})
	return mapError("update order", err)
}

func insertItems(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	const query = `
        INSERT INTO order_items (order_id, position, id_product, quantity)
        VALUES ($1, $2, $3, $4)`

	batch := &pgx.Batch{}
	for i, item := range order.OrderItems {
		batch.Queue(query, order.ID, i, item.IDProduct, item.Quantity)
	}
	return tx.SendBatch(ctx, batch).Close()
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, mapError("get order", err)
	}

	items, err := r.loadItems(ctx, []string{order.ID})
	if err != nil {
		return nil, err
	}
	order.OrderItems = items[order.ID]
	return order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError("list orders", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	ids := make([]string, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, mapError("scan order", err)
		}
		orders = append(orders, *order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list orders", err)
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].OrderItems = items[orders[i].ID]
	}
	return orders, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	const query = `
        SELECT order_id, id_product, quantity
        FROM order_items WHERE order_id = ANY($1::uuid[])
        ORDER BY order_id, position`

	rows, err := r.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, mapError("list order items", err)
	}
	defer rows.Close()

	items := make(map[string][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			orderID string
			item    domain.OrderItem
		)
		if err := rows.Scan(&orderID, &item.IDProduct, &item.Quantity); err != nil {
			return nil, mapError("scan order item", err)
		}
		items[orderID] = append(items[orderID], item)
	}
	return items, mapError("list order items", rows.Err())
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return mapDeleteError("delete order", err)
	}
	return checkAffected("delete order", cmd)
}
