package queries_test

import (
	"testing"
	"time"

	"faithcafe/internal/core/application/usecases/queries"
	"faithcafe/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCustomerTrackingQueryHandler_Handle(t *testing.T) {
	base := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	t.Run("tracks_most_recent_active_order", func(t *testing.T) {
		oldActive := testOrder(t, "maria", base)
		newDone := cancelled(t, testOrder(t, "maria", base.Add(2*time.Hour)))
		newActive := testOrder(t, "maria", base.Add(time.Hour))

		repo := new(MockOrderRepository)
		repo.On("GetByCustomer", mock.Anything, "maria").
			Return([]*order.Order{oldActive, newDone, newActive}, nil).Once()

		query, err := queries.NewGetCustomerTrackingQuery("maria")
		require.NoError(t, err)

		h := queries.NewGetCustomerTrackingQueryHandler(repo)
		view, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		require.NotNil(t, view.Tracked)
		// The cancelled order is newer, but active orders win.
		assert.Equal(t, newActive.ID().String(), view.Tracked.ID)
		// Only the completed order makes the history list.
		require.Len(t, view.History, 1)
		assert.Equal(t, newDone.ID().String(), view.History[0].ID)
	})

	t.Run("history_holds_only_completed_orders", func(t *testing.T) {
		active1 := testOrder(t, "maria", base)
		active2 := testOrder(t, "maria", base.Add(time.Hour))
		done := cancelled(t, testOrder(t, "maria", base.Add(2*time.Hour)))

		repo := new(MockOrderRepository)
		repo.On("GetByCustomer", mock.Anything, "maria").
			Return([]*order.Order{active1, active2, done}, nil).Once()

		query, err := queries.NewGetCustomerTrackingQuery("maria")
		require.NoError(t, err)

		h := queries.NewGetCustomerTrackingQueryHandler(repo)
		view, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, view.History, 1)
		assert.Equal(t, done.ID().String(), view.History[0].ID)
		for _, entry := range view.History {
			assert.Contains(t, []string{"delivered", "cancelled"}, entry.Status)
		}
	})

	t.Run("falls_back_to_most_recent_order", func(t *testing.T) {
		older := cancelled(t, testOrder(t, "maria", base))
		newer := cancelled(t, testOrder(t, "maria", base.Add(time.Hour)))

		repo := new(MockOrderRepository)
		repo.On("GetByCustomer", mock.Anything, "maria").
			Return([]*order.Order{older, newer}, nil).Once()

		query, err := queries.NewGetCustomerTrackingQuery("maria")
		require.NoError(t, err)

		h := queries.NewGetCustomerTrackingQueryHandler(repo)
		view, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		require.NotNil(t, view.Tracked)
		assert.Equal(t, newer.ID().String(), view.Tracked.ID)
		// Both orders are completed, so both belong to history, newest first.
		require.Len(t, view.History, 2)
		assert.Equal(t, newer.ID().String(), view.History[0].ID)
		assert.Equal(t, older.ID().String(), view.History[1].ID)
	})

	t.Run("no_orders_yields_empty_view", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("GetByCustomer", mock.Anything, "maria").
			Return([]*order.Order{}, nil).Once()

		query, err := queries.NewGetCustomerTrackingQuery("maria")
		require.NoError(t, err)

		h := queries.NewGetCustomerTrackingQueryHandler(repo)
		view, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Nil(t, view.Tracked)
		assert.Empty(t, view.History)
	})

	t.Run("requires_customer", func(t *testing.T) {
		_, err := queries.NewGetCustomerTrackingQuery("")
		require.Error(t, err)
	})
}

func TestOrderView_ETA(t *testing.T) {
	o := testOrder(t, "maria", time.Now())

	repo := new(MockOrderRepository)
	repo.On("GetByCustomer", mock.Anything, "maria").
		Return([]*order.Order{o}, nil).Once()

	query, err := queries.NewGetCustomerTrackingQuery("maria")
	require.NoError(t, err)

	h := queries.NewGetCustomerTrackingQueryHandler(repo)
	view, err := h.Handle(t.Context(), query)

	require.NoError(t, err)
	require.NotNil(t, view.Tracked)
	assert.Equal(t, "15-20 minutes", view.Tracked.ETA)
	assert.Contains(t, view.Tracked.StatusTimes, "placed")
}
