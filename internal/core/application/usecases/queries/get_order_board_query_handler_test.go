package queries_test

import (
	"context"
	"testing"
	"time"

	"faithcafe/internal/core/application/usecases/queries"
	"faithcafe/internal/core/domain/model/cart"
	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, username string) ([]*order.Order, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func testOrder(t *testing.T, customer string, placedAt time.Time) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(120)
	require.NoError(t, err)
	line, err := cart.NewLine("Latte", price, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewOrderID(placedAt), customer,
		[]cart.Line{line}, price, kernel.Money{}, price,
		"12 Mabini St", "+63 912 000 1111", order.PaymentCard, placedAt)
	require.NoError(t, err)
	return o
}

func cancelled(t *testing.T, o *order.Order) *order.Order {
	t.Helper()
	require.NoError(t, o.ChangeStatus(order.StatusCancelled, o.OrderTime()))
	return o
}

func TestGetOrderBoardQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	base := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	oldActive := testOrder(t, "maria", base)
	done := cancelled(t, testOrder(t, "jose", base.Add(time.Hour)))
	newActive := testOrder(t, "ana", base.Add(2*time.Hour))

	repo := new(MockOrderRepository)
	repo.On("GetAll", mock.Anything).
		Return([]*order.Order{done, oldActive, newActive}, nil).Once()

	h := queries.NewGetOrderBoardQueryHandler(repo)
	views, err := h.Handle(ctx, queries.NewGetOrderBoardQuery())

	require.NoError(t, err)
	require.Len(t, views, 3)

	// Active first, newest first within each group.
	assert.Equal(t, "ana", views[0].Customer)
	assert.Equal(t, "maria", views[1].Customer)
	assert.Equal(t, "jose", views[2].Customer)

	assert.True(t, views[0].NeedsRider, "active order without a rider")
	assert.False(t, views[2].NeedsRider, "terminal orders never need a rider")
	repo.AssertExpectations(t)
}

func TestGetOrderBoardQueryHandler_Handle_ValidationError(t *testing.T) {
	h := queries.NewGetOrderBoardQueryHandler(new(MockOrderRepository))
	_, err := h.Handle(t.Context(), queries.GetOrderBoardQuery{})
	require.Error(t, err)
}
