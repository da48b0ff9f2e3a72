package create_reservation

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

// UseCase use case для создания брони
type UseCase struct {
	reservationRepo ReservationRepository
	shopClient      ShopServiceClient
	memberClient    MemberServiceClient
	notifyClient    NotificationClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	shopClient ShopServiceClient,
	memberClient MemberServiceClient,
	notifyClient NotificationClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		shopClient:      shopClient,
		memberClient:    memberClient,
		notifyClient:    notifyClient,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Проверка пересечений и запись выполняются в сериализуемой транзакции
// с блокировкой броней на (салон, дата); exclusion constraint в базе
// дублирует защиту на случай гонки. Уведомление владельцу отправляется
// после коммита и не влияет на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: shop=%s, member=%s, treatment=%s, date=%s, time=%s",
		req.ShopID, req.MemberID, req.TreatmentID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата не в прошлом ("сегодня" из timeProvider)
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateReservation: past date %s", req.Date.Format(domain.DateFormat))
		return nil, ErrPastReservationDate
	}

	// 3. Получаем процедуру
	treatment, err := uc.shopClient.GetTreatment(ctx, req.TreatmentID)
	if err != nil {
		if errors.Is(err, shopClient.ErrTreatmentNotFound) {
			uc.logger.Warn("CreateReservation: treatment id=%s not found", req.TreatmentID)
			return nil, ErrTreatmentNotFound
		}
		uc.logger.Error("CreateReservation: failed to get treatment id=%s: %v", req.TreatmentID, err)
		return nil, fmt.Errorf("%w: failed to get treatment: %v", ErrInternal, err)
	}

	// 4. Процедура должна принадлежать запрошенному салону
	if treatment.ShopID != req.ShopID {
		uc.logger.Warn("CreateReservation: treatment id=%s belongs to shop id=%s, requested shop id=%s",
			req.TreatmentID, treatment.ShopID, req.ShopID)
		return nil, ErrTreatmentNotInShop
	}

	// 5. Получаем салон (расписание + владелец для уведомления)
	shop, err := uc.shopClient.GetShop(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, shopClient.ErrShopNotFound) {
			uc.logger.Warn("CreateReservation: shop id=%s not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("CreateReservation: failed to get shop id=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	// 6. Вычисляем конец брони: endTime = startTime + длительность процедуры
	endTime, err := req.StartTime.AddMinutes(treatment.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateReservation: invalid time range %s + %dm: %v",
			req.StartTime, treatment.DurationMinutes, err)
		return nil, fmt.Errorf("%w: %v", ErrOutsideOperatingHours, err)
	}

	// 7. Интервал должен лежать внутри рабочих часов салона
	schedule := domain.WeekSchedule(shop.OperatingTime)
	hours, open, err := schedule.HoursFor(req.Date)
	if err != nil {
		uc.logger.Error("CreateReservation: invalid schedule for shop id=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if !open {
		uc.logger.Warn("CreateReservation: shop id=%s is closed on %s",
			req.ShopID, req.Date.Format(domain.DateFormat))
		return nil, ErrShopClosed
	}
	if req.StartTime.IsBefore(hours.Open) || endTime.IsAfter(hours.Close) {
		uc.logger.Warn("CreateReservation: interval %s-%s outside operating hours %s-%s",
			req.StartTime, endTime, hours.Open, hours.Close)
		return nil, ErrOutsideOperatingHours
	}

	var result *domain.Reservation

	// 8. Проверка пересечений и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Читаем существующие брони на дату с блокировкой (FOR UPDATE)
		existing, err := uc.reservationRepo.GetByShopAndDate(txCtx, req.ShopID, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 8.2. Пересечение с активной бронью - конфликт
		if domain.HasConflict(req.StartTime, endTime, existing) {
			uc.logger.Warn("CreateReservation: time conflict for shop=%s, date=%s, interval=%s-%s",
				req.ShopID, req.Date.Format(domain.DateFormat), req.StartTime, endTime)
			return ErrTimeConflict
		}

		// 8.3. Создаем бронь в статусе pending
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ShopID:      req.ShopID,
			MemberID:    req.MemberID,
			TreatmentID: req.TreatmentID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     endTime,
			Status:      domain.StatusPending,
			Memo:        req.Memo,
		})
		if err != nil {
			// Exclusion constraint сработал - параллельная бронь успела раньше
			if errors.Is(err, reservationRepo.ErrTimeConflict) {
				uc.logger.Warn("CreateReservation: write-time conflict for shop=%s, date=%s",
					req.ShopID, req.Date.Format(domain.DateFormat))
				return ErrTimeConflict
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", result.ID)

	// 9. Уведомляем владельца салона. Fire-and-forget: бронь уже
	// сохранена, сбой доставки логируется и не откатывает результат.
	go uc.sendCreatedNotification(result, shop.OwnerID, treatment.Name)

	return fromDomain(result), nil
}

// sendCreatedNotification отправляет владельцу салона уведомление о новой брони.
// Любая ошибка (профиль участника, транспорт) глотается с логированием.
func (uc *UseCase) sendCreatedNotification(res *domain.Reservation, ownerID, treatmentName string) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	memberNickname := "회원"
	member, err := uc.memberClient.GetMember(ctx, res.MemberID)
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to get member id=%s for notification: %v", res.MemberID, err)
	} else {
		memberNickname = member.Nickname
	}

	notification := &notifyservice.Notification{
		UserID:   ownerID,
		UserRole: notifyservice.RoleOwner,
		Type:     notifyservice.TypeReservationCreated,
		Title:    "새 예약이 들어왔습니다",
		Body: fmt.Sprintf("%s - %s %s %s",
			memberNickname, treatmentName, res.Date.Format(domain.DateFormat), res.StartTime),
		Data: map[string]string{"reservationId": res.ID},
	}

	if err := uc.notifyClient.Send(ctx, notification); err != nil {
		uc.logger.Warn("CreateReservation: failed to send %s notification: %v",
			notifyservice.TypeReservationCreated, err)
	}
}

// isDateInPast проверяет, что дата строго раньше сегодняшней (только дата, без времени)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(nowOnly)
}
