package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/jellomark/reservation-service/internal/domain"
	shopClient "github.com/jellomark/reservation-service/internal/integrations/shopservice"
)

// UseCase use case для получения сетки слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	shopClient      ShopServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	shopClient ShopServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		shopClient:      shopClient,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: shop=%s, treatment=%s, date=%s",
		req.ShopID, req.TreatmentID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем салон (вместе с расписанием работы)
	shop, err := uc.shopClient.GetShop(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, shopClient.ErrShopNotFound) {
			uc.logger.Warn("GetAvailableSlots: shop id=%s not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get shop id=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	// 3. Получаем процедуру (длительность)
	treatment, err := uc.shopClient.GetTreatment(ctx, req.TreatmentID)
	if err != nil {
		if errors.Is(err, shopClient.ErrTreatmentNotFound) {
			uc.logger.Warn("GetAvailableSlots: treatment id=%s not found", req.TreatmentID)
			return nil, ErrTreatmentNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get treatment id=%s: %v", req.TreatmentID, err)
		return nil, fmt.Errorf("%w: failed to get treatment: %v", ErrInternal, err)
	}

	// 4. Часы работы на дату. Расписание пересобирается из данных салона
	// на каждый запрос - никакого кеширования.
	schedule := domain.WeekSchedule(shop.OperatingTime)
	hours, open, err := schedule.HoursFor(req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid schedule for shop id=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	// Закрытый день - валидный ответ с пустой сеткой, не ошибка
	if !open {
		uc.logger.Info("GetAvailableSlots: shop id=%s is closed on %s",
			req.ShopID, req.Date.Format(domain.DateFormat))
		return &Response{
			Date:  req.Date,
			Slots: []Slot{},
		}, nil
	}

	// 5. Генерируем сетку кандидатных времен начала
	starts := domain.GenerateSlotStarts(hours.Open, hours.Close, treatment.DurationMinutes, domain.SlotStepMinutes)

	// 6. Получаем существующие брони на эту дату
	reservations, err := uc.reservationRepo.GetByShopAndDate(ctx, req.ShopID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 7. Размечаем доступность каждого слота
	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		end, addErr := start.AddMinutes(treatment.DurationMinutes)
		if addErr != nil {
			uc.logger.Error("GetAvailableSlots: failed to compute slot end for %s: %v", start, addErr)
			return nil, fmt.Errorf("%w: failed to compute slot end: %v", ErrInternal, addErr)
		}

		slots = append(slots, Slot{
			StartTime: start,
			Available: !domain.HasConflict(start, end, reservations),
		})
	}

	uc.logger.Info("GetAvailableSlots: %d slots for shop=%s, date=%s",
		len(slots), req.ShopID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		OpenTime:  hours.Open,
		CloseTime: hours.Close,
		Slots:     slots,
	}, nil
}
