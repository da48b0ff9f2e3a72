package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jellomark/reservation-service/internal/domain"
	reservationRepo "github.com/jellomark/reservation-service/internal/infra/storage/reservation"
	"github.com/jellomark/reservation-service/internal/integrations/memberservice"
	"github.com/jellomark/reservation-service/internal/integrations/notifyservice"
	"github.com/jellomark/reservation-service/internal/integrations/shopservice"
	"github.com/jellomark/reservation-service/pkg/ptr"
	"github.com/jellomark/reservation-service/pkg/types"
)

// Моки

type mockReservationRepo struct {
	createFn           func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	getByShopAndDateFn func(ctx context.Context, shopID string, date time.Time) ([]*domain.Reservation, error)
}

func (m *mockReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	return m.createFn(ctx, res)
}

func (m *mockReservationRepo) GetByShopAndDate(ctx context.Context, shopID string, date time.Time) ([]*domain.Reservation, error) {
	return m.getByShopAndDateFn(ctx, shopID, date)
}

type mockShopClient struct {
	getShopFn      func(ctx context.Context, shopID string) (*shopservice.Shop, error)
	getTreatmentFn func(ctx context.Context, treatmentID string) (*shopservice.Treatment, error)
}

func (m *mockShopClient) GetShop(ctx context.Context, shopID string) (*shopservice.Shop, error) {
	return m.getShopFn(ctx, shopID)
}

func (m *mockShopClient) GetTreatment(ctx context.Context, treatmentID string) (*shopservice.Treatment, error) {
	return m.getTreatmentFn(ctx, treatmentID)
}

type mockMemberClient struct {
	getMemberFn func(ctx context.Context, memberID string) (*memberservice.Member, error)
}

func (m *mockMemberClient) GetMember(ctx context.Context, memberID string) (*memberservice.Member, error) {
	if m.getMemberFn == nil {
		return &memberservice.Member{ID: memberID, Nickname: "하늘"}, nil
	}
	return m.getMemberFn(ctx, memberID)
}

type mockNotifyClient struct {
	sendFn func(ctx context.Context, notification *notifyservice.Notification) error
	sent   chan *notifyservice.Notification
}

func (m *mockNotifyClient) Send(ctx context.Context, notification *notifyservice.Notification) error {
	if m.sent != nil {
		m.sent <- notification
	}
	if m.sendFn != nil {
		return m.sendFn(ctx, notification)
	}
	return nil
}

// mockTxManager выполняет функцию сразу же, без реальной транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Фикстуры: понедельник 14 сентября 2026, салон работает 10:00-14:00

var (
	testToday  = time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	testMonday = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
)

func testShop() *shopservice.Shop {
	return &shopservice.Shop{
		ID:      "shop-1",
		Name:    "글로우살롱",
		OwnerID: "owner-1",
		OperatingTime: map[string]string{
			"monday": "10:00-14:00",
			"sunday": "closed",
		},
	}
}

func testTreatment() *shopservice.Treatment {
	return &shopservice.Treatment{
		ID:              "treatment-1",
		ShopID:          "shop-1",
		Name:            "젤네일",
		DurationMinutes: 60,
	}
}

func validRequest() *Request {
	return &Request{
		ShopID:      "shop-1",
		MemberID:    "member-1",
		TreatmentID: "treatment-1",
		Date:        testMonday,
		StartTime:   "10:00",
	}
}

func passthroughCreate(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	created := *res
	created.ID = "res-1"
	created.CreatedAt = testToday
	created.UpdatedAt = testToday
	return &created, nil
}

func defaultShopClient() *mockShopClient {
	return &mockShopClient{
		getShopFn: func(ctx context.Context, shopID string) (*shopservice.Shop, error) {
			return testShop(), nil
		},
		getTreatmentFn: func(ctx context.Context, treatmentID string) (*shopservice.Treatment, error) {
			return testTreatment(), nil
		},
	}
}

func newTestUseCase(repo *mockReservationRepo, shops *mockShopClient, notify *mockNotifyClient) *UseCase {
	return NewUseCase(
		repo,
		shops,
		&mockMemberClient{},
		notify,
		&mockTxManager{},
		&fixedTimeProvider{now: testToday},
		nopLogger{},
	)
}

func TestExecute_CreatesPendingReservation(t *testing.T) {
	var persisted *domain.Reservation
	repo := &mockReservationRepo{
		getByShopAndDateFn: func(ctx context.Context, shopID string, date time.Time) ([]*domain.Reservation, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
			persisted = res
			return passthroughCreate(ctx, res)
		},
	}
	notify := &mockNotifyClient{sent: make(chan *notifyservice.Notification, 1)}

	req := validRequest()
	req.Memo = ptr.Ptr("창가 자리 부탁드려요")

	resp, err := newTestUseCase(repo, defaultShopClient(), notify).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)

	require.NotNil(t, persisted)
	assert.Equal(t, domain.StatusPending, persisted.Status)
	assert.Equal(t, types.TimeString("11:00"), persisted.EndTime)
	require.NotNil(t, persisted.Memo)
	assert.Equal(t, "창가 자리 부탁드려요", *persisted.Memo)

	// Владелец салона получает уведомление о новой брони
	select {
	case n := <-notify.sent:
		assert.Equal(t, "owner-1", n.UserID)
		assert.Equal(t, notifyservice.RoleOwner, n.UserRole)
		assert.Equal(t, notifyservice.TypeReservationCreated, n.Type)
	case <-time.After(time.Second):
		t.Fatal("expected owner notification")
	}
}

func TestExecute_PastDateRejected(t *testing.T) {
	created := false
	repo := &mockReservationRepo{
		createFn: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
			created = true
			return nil, nil
		},
	}

	req := validRequest()
	req.Date = testToday.AddDate(0, 0, -1)

	_, err := newTestUseCase(repo, defaultShopClient(), &mockNotifyClient{}).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastReservationDate)
	assert.False(t, created, "no reservation must be persisted")
}

func TestExecute_SameDayAllowedRegardlessOfTimeOfDay(t *testing.T) {
	// Проверяется только дата: бронь на сегодня проходит, даже если
	// время слота уже миновало. 14 сентября - понедельник.
	repo := &mockReservationRepo{
		getByShopAndDateFn: func(ctx context.Context, shopID string, date time.Time) ([]*domain.Reservation, error) {
			return nil, nil
		},
		createFn: passthroughCreate,
	}

	uc := NewUseCase(
		repo,
		defaultShopClient(),
		&mockMemberClient{},
		&mockNotifyClient{},
		&mockTxManager{},
		&fixedTimeProvider{now: testMonday.Add(13 * time.Hour)},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_TreatmentNotInShop(t *testing.T) {
	shops := defaultShopClient()
	shops.getTreatmentFn = func(ctx context.Context, treatmentID string) (*shopservice.Treatment, error) {
		foreign := testTreatment()
		foreign.ShopID = "shop-2"
		return foreign, nil
	}

	_, err := newTestUseCase(&mockReservationRepo{}, shops, &mockNotifyClient{}).
		Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTreatmentNotInShop)
}

func TestExecute_ShopClosedOnDate(t *testing.T) {
	req := validRequest()
	req.Date = testMonday.AddDate(0, 0, -1) // воскресенье

	uc := NewUseCase(
		&mockReservationRepo{},
		defaultShopClient(),
		&mockMemberClient{},
		&mockNotifyClient{},
		&mockTxManager{},
		&fixedTimeProvider{now: testToday.AddDate(0, 0, -3)},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrShopClosed)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	tests := []struct {
		name  string
		start types.TimeString
	}{
		{name: "before open", start: "09:30"},
		{name: "ends after close", start: "13:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = tt.start

			_, err := newTestUseCase(&mockReservationRepo{}, defaultShopClient(), &mockNotifyClient{}).
				Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrOutsideOperatingHours)
		})
	}
}

func TestExecute_TimeConflictDetectedBeforeWrite(t *testing.T) {
	created := false
	repo := &mockReservationRepo{
		getByShopAndDateFn: func(ctx context.Context, shopID string, date time.Time) ([]*domain.Reservation, error) {
			return []*domain.Reservation{
				{StartTime: "10:30", EndTime: "11:30", Status: domain.StatusPending},
			}, nil
		},
		createFn: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
			created = true
			return nil, nil
		},
	}

	_, err := newTestUseCase(repo, defaultShopClient(), &mockNotifyClient{}).
		Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.False(t, created)
}

func TestExecute_WriteTimeConflictSurfacedAsTimeConflict(t *testing.T) {
	// Exclusion constraint сработал на вставке: параллельная бронь
	// прошла между проверкой и записью
	repo := &mockReservationRepo{
		getByShopAndDateFn: func(ctx context.Context, shopID string, date time.Time) ([]*domain.Reservation, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
			return nil, reservationRepo.ErrTimeConflict
		},
	}

	_, err := newTestUseCase(repo, defaultShopClient(), &mockNotifyClient{}).
		Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_NotificationFailureDoesNotFailBooking(t *testing.T) {
	repo := &mockReservationRepo{
		getByShopAndDateFn: func(ctx context.Context, shopID string, date time.Time) ([]*domain.Reservation, error) {
			return nil, nil
		},
		createFn: passthroughCreate,
	}
	notify := &mockNotifyClient{
		sent: make(chan *notifyservice.Notification, 1),
		sendFn: func(ctx context.Context, notification *notifyservice.Notification) error {
			return errors.New("notification service is down")
		},
	}

	resp, err := newTestUseCase(repo, defaultShopClient(), notify).
		Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "res-1", resp.ID)

	select {
	case <-notify.sent:
	case <-time.After(time.Second):
		t.Fatal("expected notification attempt")
	}
}

func TestExecute_MemoTooLong(t *testing.T) {
	memo := make([]rune, domain.MaxMemoLength+1)
	for i := range memo {
		memo[i] = '가'
	}

	req := validRequest()
	req.Memo = ptr.Ptr(string(memo))

	_, err := newTestUseCase(&mockReservationRepo{}, defaultShopClient(), &mockNotifyClient{}).
		Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
