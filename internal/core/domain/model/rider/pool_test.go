package rider_test

import (
	"testing"

	"faithcafe/internal/core/domain/model/rider"
	"faithcafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRider(t *testing.T) {
	t.Run("starts_available", func(t *testing.T) {
		r, err := rider.NewRider(1, "Juan Dela Cruz", "+63 912 345 6789")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, 1, r.ID())
		assert.Equal(t, "Juan Dela Cruz", r.Name())
		assert.Equal(t, "+63 912 345 6789", r.Contact())
		assert.True(t, r.IsAvailable())
	})

	t.Run("rejects_missing_id", func(t *testing.T) {
		_, err := rider.NewRider(0, "Juan Dela Cruz", "+63 912 345 6789")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := rider.NewRider(1, "", "+63 912 345 6789")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("restore_keeps_availability", func(t *testing.T) {
		r, err := rider.RestoreRider(2, "Maria Santos", "+63 923 456 7890", false)

		require.NoError(t, err)
		assert.False(t, r.IsAvailable())
	})
}

func TestRider_Validate(t *testing.T) {
	var r rider.Rider
	require.ErrorIs(t, r.Validate(), rider.ErrRiderIsNotConstructed)

	var nilRider *rider.Rider
	require.ErrorIs(t, nilRider.Validate(), rider.ErrRiderIsNotConstructed)
}

func TestNewPool(t *testing.T) {
	pool := rider.NewPool()

	all := pool.All()
	require.Len(t, all, 3)

	ids := make([]int, 0, len(all))
	names := make([]string, 0, len(all))
	for _, r := range all {
		ids = append(ids, r.ID())
		names = append(names, r.Name())
		assert.True(t, r.IsAvailable())
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, []string{"Juan Dela Cruz", "Maria Santos", "Pedro Reyes"}, names)
}

func TestPool_Acquire(t *testing.T) {
	t.Run("marks_rider_busy", func(t *testing.T) {
		pool := rider.NewPool()

		r, err := pool.Acquire("Juan Dela Cruz")

		require.NoError(t, err)
		assert.False(t, r.IsAvailable())
		assert.Len(t, pool.Available(), 2)
	})

	t.Run("rejects_busy_rider", func(t *testing.T) {
		pool := rider.NewPool()
		_, err := pool.Acquire("Juan Dela Cruz")
		require.NoError(t, err)

		_, err = pool.Acquire("Juan Dela Cruz")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unknown_rider", func(t *testing.T) {
		pool := rider.NewPool()

		_, err := pool.Acquire("Jose Rizal")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestPool_Release(t *testing.T) {
	t.Run("returns_rider_to_available", func(t *testing.T) {
		pool := rider.NewPool()
		_, err := pool.Acquire("Maria Santos")
		require.NoError(t, err)

		pool.Release("Maria Santos")

		assert.Len(t, pool.Available(), 3)
	})

	t.Run("ignores_unknown_names", func(t *testing.T) {
		pool := rider.NewPool()

		pool.Release("Jose Rizal")

		assert.Len(t, pool.Available(), 3)
	})
}

// A fresh pool always starts with every rider available. Orders from a
// previous run may still carry rider snapshots, but the roster itself is not
// persisted, so availability resets with the process.
func TestPool_AvailabilityResetsPerProcess(t *testing.T) {
	first := rider.NewPool()
	_, err := first.Acquire("Pedro Reyes")
	require.NoError(t, err)
	require.Len(t, first.Available(), 2)

	second := rider.NewPool()

	assert.Len(t, second.Available(), 3)
}
