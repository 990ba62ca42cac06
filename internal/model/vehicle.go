package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// VehicleStore defines persistence operations for vehicles.
type VehicleStore interface {
	Create(ctx context.Context, vehicle Vehicle) (Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (Vehicle, error)
	List(ctx context.Context) ([]Vehicle, error)
}

// Vehicle represents a purchasable vehicle.
type Vehicle struct {
	ID        uuid.UUID
	Make      string
	Model     string
	Year      int
	Price     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
