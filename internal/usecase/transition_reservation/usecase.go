package transition_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jellomark/reservation-service/internal/domain"
	reservationRepo "github.com/jellomark/reservation-service/internal/infra/storage/reservation"
	"github.com/jellomark/reservation-service/internal/integrations/notifyservice"
	shopClient "github.com/jellomark/reservation-service/internal/integrations/shopservice"
)

// notifyTimeout таймаут фоновой отправки уведомления
const notifyTimeout = 5 * time.Second

// UseCase use case для смены статуса брони (confirm/reject/cancel/complete/no-show)
type UseCase struct {
	reservationRepo ReservationRepository
	shopClient      ShopServiceClient
	memberClient    MemberServiceClient
	notifyClient    NotificationClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	shopClient ShopServiceClient,
	memberClient MemberServiceClient,
	notifyClient NotificationClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		shopClient:      shopClient,
		memberClient:    memberClient,
		notifyClient:    notifyClient,
		logger:          logger,
	}
}

// Execute выполняет смену статуса брони.
// Запись в хранилище условная (WHERE status = ожидаемый), поэтому два
// параллельных перехода из одного состояния не затирают друг друга:
// проигравший получает ErrInvalidStatusTransition.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionReservation: id=%s, action=%s, actor=%s (%s)",
		req.ReservationID, req.Action, req.ActorID, req.ActorRole)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронь
	reservation, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("TransitionReservation: reservation id=%s not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("TransitionReservation: failed to get reservation id=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 3. Салон нужен для авторизации владельца и адресата уведомления
	shop, err := uc.shopClient.GetShop(ctx, reservation.ShopID)
	if err != nil {
		if errors.Is(err, shopClient.ErrShopNotFound) {
			uc.logger.Error("TransitionReservation: shop id=%s not found for reservation id=%s",
				reservation.ShopID, req.ReservationID)
			return nil, fmt.Errorf("%w: shop not found", ErrInternal)
		}
		uc.logger.Error("TransitionReservation: failed to get shop id=%s: %v", reservation.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	// 4. Проверяем права инициатора на действие
	if err := uc.authorize(req, reservation, shop.OwnerID); err != nil {
		uc.logger.Warn("TransitionReservation: access denied for actor=%s (%s) on reservation id=%s",
			req.ActorID, req.ActorRole, req.ReservationID)
		return nil, err
	}

	// 5. Переход должен быть разрешен из текущего статуса
	target := req.Action.targetStatus()
	if !reservation.Status.CanTransitionTo(target) {
		uc.logger.Warn("TransitionReservation: transition %s -> %s is not allowed for reservation id=%s",
			reservation.Status, target, req.ReservationID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, reservation.Status, target)
	}

	var rejectionReason *string
	if req.Action == ActionReject {
		rejectionReason = req.Reason
	}

	// 6. Условное обновление статуса (expected = статус, который мы прочитали)
	updated, err := uc.reservationRepo.UpdateStatus(ctx, req.ReservationID, reservation.Status, target, rejectionReason)
	if err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			return nil, ErrReservationNotFound
		case errors.Is(err, reservationRepo.ErrStatusConflict):
			// Статус поменяли между чтением и записью - перечитываем для ответа
			fresh, readErr := uc.reservationRepo.GetByID(ctx, req.ReservationID)
			if readErr != nil {
				uc.logger.Error("TransitionReservation: failed to re-read reservation id=%s: %v",
					req.ReservationID, readErr)
				return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, reservation.Status, target)
			}
			uc.logger.Warn("TransitionReservation: concurrent status change for reservation id=%s: now %s",
				req.ReservationID, fresh.Status)
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, fresh.Status, target)
		default:
			uc.logger.Error("TransitionReservation: failed to update status for reservation id=%s: %v",
				req.ReservationID, err)
			return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("TransitionReservation: reservation id=%s transitioned %s -> %s",
		req.ReservationID, reservation.Status, updated.Status)

	// 7. Уведомляем вторую сторону. Fire-and-forget: переход уже
	// зафиксирован, сбой доставки только логируется.
	go uc.sendTransitionNotification(updated, req.Action, shop.OwnerID, shop.Name)

	return fromDomain(updated), nil
}

// authorize проверяет, что инициатор имеет право на действие:
// cancel доступен только участнику-владельцу брони, остальные действия -
// только владельцу салона.
func (uc *UseCase) authorize(req *Request, reservation *domain.Reservation, shopOwnerID string) error {
	if req.Action == ActionCancel {
		if req.ActorRole != RoleMember || !reservation.IsOwnedByMember(req.ActorID) {
			return ErrUnauthorizedAccess
		}
		return nil
	}

	if req.ActorRole != RoleOwner || req.ActorID != shopOwnerID {
		return ErrUnauthorizedAccess
	}
	return nil
}

// notificationFor возвращает тип, роль адресата, ID адресата и заголовок
// уведомления для действия
func notificationFor(action Action, res *domain.Reservation, ownerID string) (string, string, string, string) {
	switch action {
	case ActionConfirm:
		return notifyservice.TypeReservationConfirmed, notifyservice.RoleMember, res.MemberID, "예약이 확정되었습니다"
	case ActionReject:
		return notifyservice.TypeReservationRejected, notifyservice.RoleMember, res.MemberID, "예약이 거절되었습니다"
	case ActionCancel:
		return notifyservice.TypeReservationCancelled, notifyservice.RoleOwner, ownerID, "예약이 취소되었습니다"
	case ActionComplete:
		return notifyservice.TypeReservationCompleted, notifyservice.RoleMember, res.MemberID, "방문이 완료 처리되었습니다"
	case ActionNoShow:
		return notifyservice.TypeReservationNoShow, notifyservice.RoleMember, res.MemberID, "노쇼 처리되었습니다"
	default:
		return "", "", "", ""
	}
}

// sendTransitionNotification отправляет уведомление второй стороне брони.
// Любая ошибка доставки глотается с логированием.
func (uc *UseCase) sendTransitionNotification(res *domain.Reservation, action Action, ownerID, shopName string) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	notifType, role, userID, title := notificationFor(action, res, ownerID)
	if notifType == "" {
		return
	}

	// Участнику показываем салон, владельцу - кто из участников отменил
	subject := shopName
	if role == notifyservice.RoleOwner {
		subject = "회원"
		if member, err := uc.memberClient.GetMember(ctx, res.MemberID); err != nil {
			uc.logger.Warn("TransitionReservation: failed to get member id=%s for notification: %v",
				res.MemberID, err)
		} else {
			subject = member.Nickname
		}
	}

	body := fmt.Sprintf("%s - %s %s", subject, res.Date.Format(domain.DateFormat), res.StartTime)
	if action == ActionReject && res.RejectionReason != nil {
		body = fmt.Sprintf("%s (사유: %s)", body, *res.RejectionReason)
	}

	notification := &notifyservice.Notification{
		UserID:   userID,
		UserRole: role,
		Type:     notifType,
		Title:    title,
		Body:     body,
		Data:     map[string]string{"reservationId": res.ID},
	}

	if err := uc.notifyClient.Send(ctx, notification); err != nil {
		uc.logger.Warn("TransitionReservation: failed to send %s notification: %v", notifType, err)
	}
}
