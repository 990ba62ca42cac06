package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderStore defines persistence operations for orders.
type OrderStore interface {
	Create(ctx context.Context, order Order) (Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (Order, error)
	List(ctx context.Context, filter OrderFilter) ([]Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderFilter narrows List results. A nil field means no filtering.
type OrderFilter struct {
	UserID *uuid.UUID
}

// Order represents a vehicle purchase placed by a user. Price is
// caller-supplied data; the server does no pricing of its own.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	VehicleIDs      []uuid.UUID
	Price           int64
	DeliveryDate    time.Time
	DeliveryAddress string
	PaymentToken    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
