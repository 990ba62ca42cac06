package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/motodeal/motodeal-server/internal/model"
)

var _ model.OrderStore = (*OrderRepository)(nil)

type OrderRepository struct {
	db *Connection
}

func NewOrderRepository(db *Connection) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

// Create inserts the order and its vehicle associations in one transaction.
func (r *OrderRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO orders (id, user_id, price, delivery_date, delivery_address, payment_token, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, user_id, price, delivery_date, delivery_address, payment_token, created_at, updated_at`

	var saved model.Order
	err = tx.QueryRow(ctx, query,
		order.ID, order.UserID, order.Price, order.DeliveryDate, order.DeliveryAddress,
		order.PaymentToken, order.CreatedAt, order.UpdatedAt,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Price, &saved.DeliveryDate, &saved.DeliveryAddress,
		&saved.PaymentToken, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	for _, vehicleID := range order.VehicleIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_vehicles (order_id, vehicle_id) VALUES ($1, $2)`,
			order.ID, vehicleID,
		)
		if err != nil {
			return model.Order{}, fmt.Errorf("failed to associate vehicle: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Order{}, fmt.Errorf("failed to commit order: %w", err)
	}

	saved.VehicleIDs = order.VehicleIDs

	return saved, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	query := `SELECT o.id, o.user_id, o.price, o.delivery_date, o.delivery_address, o.payment_token,
					 o.created_at, o.updated_at,
					 COALESCE(array_agg(ov.vehicle_id) FILTER (WHERE ov.vehicle_id IS NOT NULL), '{}')
			  FROM orders o
			  LEFT JOIN order_vehicles ov ON ov.order_id = o.id
			  WHERE o.id = $1
			  GROUP BY o.id`

	var order model.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.UserID, &order.Price, &order.DeliveryDate, &order.DeliveryAddress,
		&order.PaymentToken, &order.CreatedAt, &order.UpdatedAt, &order.VehicleIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, model.ErrNotFound
		}
		return model.Order{}, fmt.Errorf("failed to get order by id: %w", err)
	}

	return order, nil
}

func (r *OrderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	query := `SELECT o.id, o.user_id, o.price, o.delivery_date, o.delivery_address, o.payment_token,
					 o.created_at, o.updated_at,
					 COALESCE(array_agg(ov.vehicle_id) FILTER (WHERE ov.vehicle_id IS NOT NULL), '{}')
			  FROM orders o
			  LEFT JOIN order_vehicles ov ON ov.order_id = o.id
			  WHERE ($1::uuid IS NULL OR o.user_id = $1)
			  GROUP BY o.id
			  ORDER BY o.created_at`

	rows, err := r.db.Query(ctx, query, filter.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var order model.Order
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.Price, &order.DeliveryDate, &order.DeliveryAddress,
			&order.PaymentToken, &order.CreatedAt, &order.UpdatedAt, &order.VehicleIDs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
