package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	all := []ReservationStatus{
		StatusPending, StatusConfirmed, StatusRejected,
		StatusCancelled, StatusCompleted, StatusNoShow,
	}

	allowed := map[ReservationStatus]map[ReservationStatus]bool{
		StatusPending: {
			StatusConfirmed: true,
			StatusRejected:  true,
			StatusCancelled: true,
		},
		StatusConfirmed: {
			StatusCancelled: true,
			StatusCompleted: true,
			StatusNoShow:    true,
		},
	}

	// Полный перебор: ровно шесть разрешенных переходов, всё остальное запрещено
	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestReservationStatus_IsActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusRejected.IsActive())
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusNoShow.IsActive())
}

func TestReservationStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
}

func TestReservation_TransitionTo(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	t.Run("legal transition updates status and timestamp", func(t *testing.T) {
		res := &Reservation{Status: StatusPending}

		require.NoError(t, res.TransitionTo(StatusConfirmed, now))
		assert.Equal(t, StatusConfirmed, res.Status)
		assert.Equal(t, now, res.UpdatedAt)
	})

	t.Run("illegal transition leaves reservation untouched", func(t *testing.T) {
		res := &Reservation{Status: StatusCompleted, UpdatedAt: now}

		err := res.TransitionTo(StatusCancelled, now.Add(time.Hour))
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		assert.Equal(t, StatusCompleted, res.Status)
		assert.Equal(t, now, res.UpdatedAt)
	})

	t.Run("terminal states accept no transitions", func(t *testing.T) {
		for _, terminal := range []ReservationStatus{
			StatusRejected, StatusCancelled, StatusCompleted, StatusNoShow,
		} {
			res := &Reservation{Status: terminal}
			err := res.TransitionTo(StatusConfirmed, now)
			assert.ErrorIs(t, err, ErrInvalidStatusTransition, "from %s", terminal)
		}
	})
}

func TestReservation_Ownership(t *testing.T) {
	res := &Reservation{ShopID: "shop-1", MemberID: "member-1"}

	assert.True(t, res.IsOwnedByMember("member-1"))
	assert.False(t, res.IsOwnedByMember("member-2"))
	assert.True(t, res.BelongsToShop("shop-1"))
	assert.False(t, res.BelongsToShop("shop-2"))
}
