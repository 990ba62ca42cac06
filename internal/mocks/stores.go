// Package mocks provides testify mocks for the model interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/motodeal/motodeal-server/internal/model"
)

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserStore) ExistsWithEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// VehicleStore is a mock of model.VehicleStore.
type VehicleStore struct {
	mock.Mock
}

func (m *VehicleStore) Create(ctx context.Context, vehicle model.Vehicle) (model.Vehicle, error) {
	args := m.Called(ctx, vehicle)
	return args.Get(0).(model.Vehicle), args.Error(1)
}

func (m *VehicleStore) GetByID(ctx context.Context, id uuid.UUID) (model.Vehicle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Vehicle), args.Error(1)
}

func (m *VehicleStore) List(ctx context.Context) ([]model.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

// OrderStore is a mock of model.OrderStore.
type OrderStore struct {
	mock.Mock
}

func (m *OrderStore) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *OrderStore) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *OrderStore) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *OrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Generate(view model.TokenView) (string, error) {
	args := m.Called(view)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Parse(token string) (model.TokenView, error) {
	args := m.Called(token)
	return args.Get(0).(model.TokenView), args.Error(1)
}
