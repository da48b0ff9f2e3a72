package transition_reservation

import (
	"context"
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
)

// Моки

type mockReservationRepo struct {
	getByIDFn      func(ctx context.Context, reservationID string) (*domain.Reservation, error)
	updateStatusFn func(ctx context.Context, reservationID string, expected, target domain.ReservationStatus, rejectionReason *string) (*domain.Reservation, error)
}

func (m *mockReservationRepo) GetByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	return m.getByIDFn(ctx, reservationID)
}

func (m *mockReservationRepo) UpdateStatus(ctx context.Context, reservationID string, expected, target domain.ReservationStatus, rejectionReason *string) (*domain.Reservation, error) {
	return m.updateStatusFn(ctx, reservationID, expected, target, rejectionReason)
}

type mockShopClient struct {
	getShopFn func(ctx context.Context, shopID string) (*shopservice.Shop, error)
}

func (m *mockShopClient) GetShop(ctx context.Context, shopID string) (*shopservice.Shop, error) {
	if m.getShopFn == nil {
		return testShop(), nil
	}
	return m.getShopFn(ctx, shopID)
}

type mockMemberClient struct{}

func (m *mockMemberClient) GetMember(ctx context.Context, memberID string) (*memberservice.Member, error) {
	return &memberservice.Member{ID: memberID, Nickname: "하늘"}, nil
}

type mockNotifyClient struct {
	sent chan *notifyservice.Notification
}

func (m *mockNotifyClient) Send(ctx context.Context, notification *notifyservice.Notification) error {
	if m.sent != nil {
		m.sent <- notification
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Фикстуры

func testShop() *shopservice.Shop {
	return &shopservice.Shop{
		ID:      "shop-1",
		Name:    "글로우살롱",
		OwnerID: "owner-1",
		OperatingTime: map[string]string{
			"monday": "10:00-14:00",
		},
	}
}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          "res-1",
		ShopID:      "shop-1",
		MemberID:    "member-1",
		TreatmentID: "treatment-1",
		Date:        time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      domain.StatusPending,
	}
}

// casRepo имитирует условное обновление поверх фиксированной брони
func casRepo(res *domain.Reservation) *mockReservationRepo {
	return &mockReservationRepo{
		getByIDFn: func(ctx context.Context, reservationID string) (*domain.Reservation, error) {
			copy := *res
			return &copy, nil
		},
		updateStatusFn: func(ctx context.Context, reservationID string, expected, target domain.ReservationStatus, rejectionReason *string) (*domain.Reservation, error) {
			if res.Status != expected {
				return nil, reservationRepo.ErrStatusConflict
			}
			res.Status = target
			res.RejectionReason = rejectionReason
			copy := *res
			return &copy, nil
		},
	}
}

func newTestUseCase(repo *mockReservationRepo, notify *mockNotifyClient) *UseCase {
	return NewUseCase(repo, &mockShopClient{}, &mockMemberClient{}, notify, nopLogger{})
}

func ownerRequest(action Action) *Request {
	return &Request{
		ReservationID: "res-1",
		ActorID:       "owner-1",
		ActorRole:     RoleOwner,
		Action:        action,
	}
}

func TestParseAction(t *testing.T) {
	for _, valid := range []string{"confirm", "reject", "cancel", "complete", "no-show"} {
		action, ok := ParseAction(valid)
		assert.True(t, ok, valid)
		assert.NotEmpty(t, action.targetStatus())
	}

	_, ok := ParseAction("approve")
	assert.False(t, ok)
}

func TestExecute_OwnerConfirmsPending(t *testing.T) {
	res := pendingReservation()
	notify := &mockNotifyClient{sent: make(chan *notifyservice.Notification, 1)}

	resp, err := newTestUseCase(casRepo(res), notify).Execute(context.Background(), ownerRequest(ActionConfirm))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	// Участник получает уведомление о подтверждении
	select {
	case n := <-notify.sent:
		assert.Equal(t, "member-1", n.UserID)
		assert.Equal(t, notifyservice.RoleMember, n.UserRole)
		assert.Equal(t, notifyservice.TypeReservationConfirmed, n.Type)
	case <-time.After(time.Second):
		t.Fatal("expected member notification")
	}
}

func TestExecute_ConfirmTwiceFailsWithInvalidTransition(t *testing.T) {
	res := pendingReservation()
	uc := newTestUseCase(casRepo(res), &mockNotifyClient{})

	_, err := uc.Execute(context.Background(), ownerRequest(ActionConfirm))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), ownerRequest(ActionConfirm))
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestExecute_RejectRequiresReason(t *testing.T) {
	res := pendingReservation()
	uc := newTestUseCase(casRepo(res), &mockNotifyClient{})

	req := ownerRequest(ActionReject)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrReasonRequired)

	req.Reason = ptr.Ptr("   ")
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestExecute_RejectStoresTrimmedReason(t *testing.T) {
	res := pendingReservation()
	uc := newTestUseCase(casRepo(res), &mockNotifyClient{})

	req := ownerRequest(ActionReject)
	req.Reason = ptr.Ptr("  당일 휴무입니다  ")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "당일 휴무입니다", *resp.RejectionReason)
}

func TestExecute_ReasonTooLong(t *testing.T) {
	reason := make([]rune, domain.MaxRejectionReasonLength+1)
	for i := range reason {
		reason[i] = '가'
	}

	req := ownerRequest(ActionReject)
	req.Reason = ptr.Ptr(string(reason))

	_, err := newTestUseCase(casRepo(pendingReservation()), &mockNotifyClient{}).
		Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MemberCancelsOwnReservation(t *testing.T) {
	res := pendingReservation()
	notify := &mockNotifyClient{sent: make(chan *notifyservice.Notification, 1)}

	resp, err := newTestUseCase(casRepo(res), notify).Execute(context.Background(), &Request{
		ReservationID: "res-1",
		ActorID:       "member-1",
		ActorRole:     RoleMember,
		Action:        ActionCancel,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)

	// Владелец салона узнает об отмене
	select {
	case n := <-notify.sent:
		assert.Equal(t, "owner-1", n.UserID)
		assert.Equal(t, notifyservice.RoleOwner, n.UserRole)
		assert.Equal(t, notifyservice.TypeReservationCancelled, n.Type)
	case <-time.After(time.Second):
		t.Fatal("expected owner notification")
	}
}

func TestExecute_AuthorizationMatrix(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		role    ActorRole
		action  Action
	}{
		{name: "stranger member cannot cancel", actorID: "member-2", role: RoleMember, action: ActionCancel},
		{name: "owner cannot cancel", actorID: "owner-1", role: RoleOwner, action: ActionCancel},
		{name: "member cannot confirm", actorID: "member-1", role: RoleMember, action: ActionConfirm},
		{name: "foreign owner cannot confirm", actorID: "owner-2", role: RoleOwner, action: ActionConfirm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{
				ReservationID: "res-1",
				ActorID:       tt.actorID,
				ActorRole:     tt.role,
				Action:        tt.action,
			}
			if tt.action == ActionReject {
				req.Reason = ptr.Ptr("사유")
			}

			_, err := newTestUseCase(casRepo(pendingReservation()), &mockNotifyClient{}).
				Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrUnauthorizedAccess)
		})
	}
}

func TestExecute_TerminalStateRejectsAllActions(t *testing.T) {
	res := pendingReservation()
	res.Status = domain.StatusCompleted

	_, err := newTestUseCase(casRepo(res), &mockNotifyClient{}).
		Execute(context.Background(), ownerRequest(ActionNoShow))
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestExecute_ConcurrentStatusChangeSurfacedAsInvalidTransition(t *testing.T) {
	// Между чтением и условной записью бронь успели подтвердить
	stale := pendingReservation()
	updated := false
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, reservationID string) (*domain.Reservation, error) {
			if updated {
				confirmed := *stale
				confirmed.Status = domain.StatusConfirmed
				return &confirmed, nil
			}
			return stale, nil
		},
		updateStatusFn: func(ctx context.Context, reservationID string, expected, target domain.ReservationStatus, rejectionReason *string) (*domain.Reservation, error) {
			updated = true
			return nil, reservationRepo.ErrStatusConflict
		},
	}

	_, err := newTestUseCase(repo, &mockNotifyClient{}).
		Execute(context.Background(), ownerRequest(ActionConfirm))
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, reservationID string) (*domain.Reservation, error) {
			return nil, reservationRepo.ErrReservationNotFound
		},
	}

	_, err := newTestUseCase(repo, &mockNotifyClient{}).
		Execute(context.Background(), ownerRequest(ActionConfirm))
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
