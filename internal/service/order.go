package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/motodeal/motodeal-server/internal/logger"
	"github.com/motodeal/motodeal-server/internal/model"
	"github.com/motodeal/motodeal-server/internal/validation"
)

// Order orchestrates order placement and lookup. Pricing and inventory are
// out of scope: the price is caller-supplied data stored as-is.
type Order struct {
	store    model.OrderStore
	users    model.UserStore
	vehicles model.VehicleStore
	logger   *logger.Logger
}

// NewOrder creates an order service.
func NewOrder(store model.OrderStore, users model.UserStore, vehicles model.VehicleStore, logger *logger.Logger) *Order {
	return &Order{
		store:    store,
		users:    users,
		vehicles: vehicles,
		logger:   logger,
	}
}

// CreateOrderParams carries raw order attributes from the caller.
type CreateOrderParams struct {
	UserID          uuid.UUID
	VehicleIDs      []uuid.UUID
	Price           int64
	DeliveryDate    time.Time
	DeliveryAddress string
	PaymentToken    string
}

// Create validates and persists a new order. The referenced user and every
// referenced vehicle must exist; a missing reference surfaces as
// model.ErrNotFound.
func (s *Order) Create(ctx context.Context, params CreateOrderParams) (model.Order, error) {
	now := time.Now()
	order := model.Order{
		ID:              uuid.New(),
		UserID:          params.UserID,
		VehicleIDs:      params.VehicleIDs,
		Price:           params.Price,
		DeliveryDate:    params.DeliveryDate,
		DeliveryAddress: params.DeliveryAddress,
		PaymentToken:    params.PaymentToken,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := validation.ValidateOrder(order); err != nil {
		s.logger.Info("Order service: validation rejected order",
			"user_id", params.UserID,
			"error", err.Error())
		return model.Order{}, err
	}

	if _, err := s.users.GetByID(ctx, order.UserID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Order{}, fmt.Errorf("order user %s: %w", order.UserID, model.ErrNotFound)
		}
		return model.Order{}, fmt.Errorf("failed to get order user: %w", err)
	}

	for _, vehicleID := range order.VehicleIDs {
		if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.Order{}, fmt.Errorf("order vehicle %s: %w", vehicleID, model.ErrNotFound)
			}
			return model.Order{}, fmt.Errorf("failed to get order vehicle: %w", err)
		}
	}

	created, err := s.store.Create(ctx, order)
	if err != nil {
		s.logger.Error("Order service: failed to create order",
			"user_id", params.UserID,
			"error", err.Error())
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("Order service: order created",
		"order_id", created.ID,
		"user_id", created.UserID)

	return created, nil
}

// Get returns an order by identifier.
func (s *Order) Get(ctx context.Context, id uuid.UUID) (model.Order, error) {
	order, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to get order by id: %w", err)
	}
	return order, nil
}

// List returns orders, optionally narrowed to a single user.
func (s *Order) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	orders, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Delete removes an order.
func (s *Order) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Info("Order service: order deleted", "order_id", id)

	return nil
}
