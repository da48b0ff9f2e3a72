package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jellomark/reservation-service/internal/domain"
	reservationRepo "github.com/jellomark/reservation-service/internal/infra/storage/reservation"
	"github.com/jellomark/reservation-service/internal/integrations/shopservice"
	"github.com/jellomark/reservation-service/internal/service/reservations/models"
	"github.com/jellomark/reservation-service/pkg/ptr"
)

// Моки

type mockReservationRepo struct {
	getByIDFn              func(ctx context.Context, reservationID string) (*domain.Reservation, error)
	listByMemberFn         func(ctx context.Context, memberID string, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	listByShopWithFilterFn func(ctx context.Context, filter domain.ShopReservationsFilter) ([]*domain.Reservation, error)
}

func (m *mockReservationRepo) GetByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	return m.getByIDFn(ctx, reservationID)
}

func (m *mockReservationRepo) ListByMember(ctx context.Context, memberID string, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	return m.listByMemberFn(ctx, memberID, status)
}

func (m *mockReservationRepo) ListByShopWithFilter(ctx context.Context, filter domain.ShopReservationsFilter) ([]*domain.Reservation, error) {
	return m.listByShopWithFilterFn(ctx, filter)
}

type mockShopClient struct {
	getShopFn func(ctx context.Context, shopID string) (*shopservice.Shop, error)
}

func (m *mockShopClient) GetShop(ctx context.Context, shopID string) (*shopservice.Shop, error) {
	if m.getShopFn == nil {
		return &shopservice.Shop{ID: "shop-1", OwnerID: "owner-1"}, nil
	}
	return m.getShopFn(ctx, shopID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          "res-1",
		ShopID:      "shop-1",
		MemberID:    "member-1",
		TreatmentID: "treatment-1",
		Date:        time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      domain.StatusConfirmed,
	}
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, reservationID string) (*domain.Reservation, error) {
			return testReservation(), nil
		},
	}
	svc := NewService(repo, &mockShopClient{}, nopLogger{})

	t.Run("member sees own reservation", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), "res-1", "member-1")
		require.NoError(t, err)
		assert.Equal(t, "res-1", resp.ID)
		assert.Equal(t, "2026-09-14", resp.Date)
		assert.Equal(t, "10:00", resp.StartTime)
	})

	t.Run("shop owner sees reservation", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), "res-1", "owner-1")
		require.NoError(t, err)
		assert.Equal(t, "res-1", resp.ID)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "res-1", "member-2")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, reservationID string) (*domain.Reservation, error) {
			return nil, reservationRepo.ErrReservationNotFound
		},
	}
	svc := NewService(repo, &mockShopClient{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "missing", "member-1")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetMemberReservations_StatusFilter(t *testing.T) {
	var gotStatus *domain.ReservationStatus
	repo := &mockReservationRepo{
		listByMemberFn: func(ctx context.Context, memberID string, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
			gotStatus = status
			return []*domain.Reservation{testReservation()}, nil
		},
	}
	svc := NewService(repo, &mockShopClient{}, nopLogger{})

	resp, err := svc.GetMemberReservations(context.Background(), &models.GetMemberReservationsRequest{
		MemberID: "member-1",
		Status:   ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	require.NotNil(t, gotStatus)
	assert.Equal(t, domain.StatusConfirmed, *gotStatus)
}

func TestGetMemberReservations_InvalidStatus(t *testing.T) {
	svc := NewService(&mockReservationRepo{}, &mockShopClient{}, nopLogger{})

	_, err := svc.GetMemberReservations(context.Background(), &models.GetMemberReservationsRequest{
		MemberID: "member-1",
		Status:   ptr.Ptr("approved"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetShopReservations_OwnerOnly(t *testing.T) {
	repo := &mockReservationRepo{
		listByShopWithFilterFn: func(ctx context.Context, filter domain.ShopReservationsFilter) ([]*domain.Reservation, error) {
			return []*domain.Reservation{testReservation()}, nil
		},
	}
	svc := NewService(repo, &mockShopClient{}, nopLogger{})

	t.Run("owner succeeds", func(t *testing.T) {
		resp, err := svc.GetShopReservations(context.Background(), &models.GetShopReservationsRequest{
			ActorID: "owner-1",
			ShopID:  "shop-1",
		})
		require.NoError(t, err)
		assert.Len(t, resp.Reservations, 1)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		_, err := svc.GetShopReservations(context.Background(), &models.GetShopReservationsRequest{
			ActorID: "member-1",
			ShopID:  "shop-1",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetShopReservations_FilterPassthrough(t *testing.T) {
	var gotFilter domain.ShopReservationsFilter
	repo := &mockReservationRepo{
		listByShopWithFilterFn: func(ctx context.Context, filter domain.ShopReservationsFilter) ([]*domain.Reservation, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	svc := NewService(repo, &mockShopClient{}, nopLogger{})

	startDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetShopReservations(context.Background(), &models.GetShopReservationsRequest{
		ActorID:   "owner-1",
		ShopID:    "shop-1",
		StartDate: &startDate,
		EndDate:   &endDate,
		Status:    ptr.Ptr("pending"),
	})
	require.NoError(t, err)

	assert.Equal(t, "shop-1", gotFilter.ShopID)
	require.NotNil(t, gotFilter.StartDate)
	assert.Equal(t, startDate, *gotFilter.StartDate)
	require.NotNil(t, gotFilter.EndDate)
	assert.Equal(t, endDate, *gotFilter.EndDate)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, domain.StatusPending, *gotFilter.Status)
}
