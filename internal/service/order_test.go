package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/motodeal/motodeal-server/internal/mocks"
	"github.com/motodeal/motodeal-server/internal/model"
	"github.com/motodeal/motodeal-server/internal/testutil"
	"github.com/motodeal/motodeal-server/internal/validation"
)

func orderParams(userID, vehicleID uuid.UUID) CreateOrderParams {
	return CreateOrderParams{
		UserID:          userID,
		VehicleIDs:      []uuid.UUID{vehicleID},
		Price:           10000,
		DeliveryDate:    time.Now().Add(72 * time.Hour),
		DeliveryAddress: "1 Main St",
		PaymentToken:    "tok_123",
	}
}

func TestOrder_Create_Success(t *testing.T) {
	ctx := context.Background()
	orders := &mocks.OrderStore{}
	users := &mocks.UserStore{}
	vehicles := &mocks.VehicleStore{}

	userID := uuid.New()
	vehicleID := uuid.New()

	users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID}, nil)
	vehicles.On("GetByID", mock.Anything, vehicleID).Return(model.Vehicle{ID: vehicleID}, nil)
	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == userID && len(o.VehicleIDs) == 1 && o.Price == 10000
	})).Return(model.Order{ID: uuid.New(), UserID: userID}, nil)

	s := NewOrder(orders, users, vehicles, testutil.MakeNoopLogger())

	created, err := s.Create(ctx, orderParams(userID, vehicleID))
	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)
	orders.AssertExpectations(t)
}

func TestOrder_Create_MissingPrice(t *testing.T) {
	ctx := context.Background()
	orders := &mocks.OrderStore{}
	users := &mocks.UserStore{}
	vehicles := &mocks.VehicleStore{}

	s := NewOrder(orders, users, vehicles, testutil.MakeNoopLogger())

	params := orderParams(uuid.New(), uuid.New())
	params.Price = 0

	_, err := s.Create(ctx, params)
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{validation.ReasonPriceMissing}, verr.Reasons)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrder_Create_UnknownUser(t *testing.T) {
	ctx := context.Background()
	orders := &mocks.OrderStore{}
	users := &mocks.UserStore{}
	vehicles := &mocks.VehicleStore{}

	userID := uuid.New()
	users.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound)

	s := NewOrder(orders, users, vehicles, testutil.MakeNoopLogger())

	_, err := s.Create(ctx, orderParams(userID, uuid.New()))
	require.ErrorIs(t, err, model.ErrNotFound)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrder_Create_UnknownVehicle(t *testing.T) {
	ctx := context.Background()
	orders := &mocks.OrderStore{}
	users := &mocks.UserStore{}
	vehicles := &mocks.VehicleStore{}

	userID := uuid.New()
	vehicleID := uuid.New()
	users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID}, nil)
	vehicles.On("GetByID", mock.Anything, vehicleID).Return(model.Vehicle{}, model.ErrNotFound)

	s := NewOrder(orders, users, vehicles, testutil.MakeNoopLogger())

	_, err := s.Create(ctx, orderParams(userID, vehicleID))
	require.ErrorIs(t, err, model.ErrNotFound)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrder_List_FilterPassthrough(t *testing.T) {
	ctx := context.Background()
	orders := &mocks.OrderStore{}
	users := &mocks.UserStore{}
	vehicles := &mocks.VehicleStore{}

	userID := uuid.New()
	filter := model.OrderFilter{UserID: &userID}
	orders.On("List", mock.Anything, filter).Return([]model.Order{{ID: uuid.New(), UserID: userID}}, nil)

	s := NewOrder(orders, users, vehicles, testutil.MakeNoopLogger())

	got, err := s.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, userID, got[0].UserID)
}

func TestOrder_Delete(t *testing.T) {
	ctx := context.Background()
	orders := &mocks.OrderStore{}
	users := &mocks.UserStore{}
	vehicles := &mocks.VehicleStore{}

	id := uuid.New()
	orders.On("Delete", mock.Anything, id).Return(nil)

	s := NewOrder(orders, users, vehicles, testutil.MakeNoopLogger())
	require.NoError(t, s.Delete(ctx, id))
	orders.AssertExpectations(t)
}
