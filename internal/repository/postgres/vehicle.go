package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/motodeal/motodeal-server/internal/model"
)

var _ model.VehicleStore = (*VehicleRepository)(nil)

type VehicleRepository struct {
	db *Connection
}

func NewVehicleRepository(db *Connection) *VehicleRepository {
	return &VehicleRepository{
		db: db,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle model.Vehicle) (model.Vehicle, error) {
	query := `INSERT INTO vehicles (id, make, model, year, price, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, make, model, year, price, created_at, updated_at`

	var saved model.Vehicle
	err := r.db.QueryRow(ctx, query,
		vehicle.ID, vehicle.Make, vehicle.Model, vehicle.Year, vehicle.Price,
		vehicle.CreatedAt, vehicle.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Make, &saved.Model, &saved.Year, &saved.Price,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return saved, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Vehicle, error) {
	query := `SELECT id, make, model, year, price, created_at, updated_at
			  FROM vehicles WHERE id = $1`

	var vehicle model.Vehicle
	err := r.db.QueryRow(ctx, query, id).Scan(
		&vehicle.ID, &vehicle.Make, &vehicle.Model, &vehicle.Year, &vehicle.Price,
		&vehicle.CreatedAt, &vehicle.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Vehicle{}, model.ErrNotFound
		}
		return model.Vehicle{}, fmt.Errorf("failed to get vehicle by id: %w", err)
	}

	return vehicle, nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	query := `SELECT id, make, model, year, price, created_at, updated_at
			  FROM vehicles ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []model.Vehicle{}
	for rows.Next() {
		var vehicle model.Vehicle
		if err := rows.Scan(
			&vehicle.ID, &vehicle.Make, &vehicle.Model, &vehicle.Year, &vehicle.Price,
			&vehicle.CreatedAt, &vehicle.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vehicles: %w", err)
	}

	return vehicles, nil
}
