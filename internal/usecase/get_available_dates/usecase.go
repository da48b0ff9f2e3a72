package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jellomark/reservation-service/internal/domain"
	shopClient "github.com/jellomark/reservation-service/internal/integrations/shopservice"
)

// UseCase use case для получения доступных дат месяца
type UseCase struct {
	reservationRepo ReservationRepository
	shopClient      ShopServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	shopClient ShopServiceClient,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		shopClient:      shopClient,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных дат.
// Дата попадает в ответ, если салон в этот день открыт и хотя бы один
// слот процедуры не конфликтует с активными бронями. Прошедшие даты
// месяца пропускаются ("сегодня" берется из timeProvider).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: shop=%s, treatment=%s, month=%s",
		req.ShopID, req.TreatmentID, req.Month.Format(domain.MonthFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем салон
	shop, err := uc.shopClient.GetShop(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, shopClient.ErrShopNotFound) {
			uc.logger.Warn("GetAvailableDates: shop id=%s not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get shop id=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	// 3. Получаем процедуру
	treatment, err := uc.shopClient.GetTreatment(ctx, req.TreatmentID)
	if err != nil {
		if errors.Is(err, shopClient.ErrTreatmentNotFound) {
			uc.logger.Warn("GetAvailableDates: treatment id=%s not found", req.TreatmentID)
			return nil, ErrTreatmentNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get treatment id=%s: %v", req.TreatmentID, err)
		return nil, fmt.Errorf("%w: failed to get treatment: %v", ErrInternal, err)
	}

	schedule := domain.WeekSchedule(shop.OperatingTime)

	// 4. Границы перебора: от max(первое число, сегодня) до конца месяца
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	firstDay := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, req.Month.Location())
	lastDay := firstDay.AddDate(0, 1, -1)

	startDay := firstDay
	if firstDay.Before(today) {
		startDay = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, firstDay.Location())
	}

	dates := make([]time.Time, 0)

	if startDay.After(lastDay) {
		// Месяц целиком в прошлом
		return &Response{Dates: dates}, nil
	}

	// 5. Перебираем дни месяца
	for date := startDay; !date.After(lastDay); date = date.AddDate(0, 0, 1) {
		available, err := uc.hasAvailableSlot(ctx, schedule, req.ShopID, date, treatment.DurationMinutes)
		if err != nil {
			return nil, err
		}
		if available {
			dates = append(dates, date)
		}
	}

	uc.logger.Info("GetAvailableDates: %d available dates for shop=%s, month=%s",
		len(dates), req.ShopID, req.Month.Format(domain.MonthFormat))

	return &Response{Dates: dates}, nil
}

// hasAvailableSlot проверяет, есть ли на дату хотя бы один свободный слот.
// День без единого сгенерированного слота (расписание короче процедуры)
// неотличим от дня без свободных слотов - оба исключаются из ответа.
func (uc *UseCase) hasAvailableSlot(
	ctx context.Context,
	schedule domain.WeekSchedule,
	shopID string,
	date time.Time,
	durationMinutes int,
) (bool, error) {
	hours, open, err := schedule.HoursFor(date)
	if err != nil {
		uc.logger.Error("GetAvailableDates: invalid schedule for shop id=%s: %v", shopID, err)
		return false, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if !open {
		return false, nil
	}

	starts := domain.GenerateSlotStarts(hours.Open, hours.Close, durationMinutes, domain.SlotStepMinutes)
	if len(starts) == 0 {
		return false, nil
	}

	reservations, err := uc.reservationRepo.GetByShopAndDate(ctx, shopID, date)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get reservations for %s: %v",
			date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	for _, start := range starts {
		end, addErr := start.AddMinutes(durationMinutes)
		if addErr != nil {
			continue
		}
		if !domain.HasConflict(start, end, reservations) {
			return true, nil
		}
	}

	return false, nil
}
