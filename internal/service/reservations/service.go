package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jellomark/reservation-service/internal/domain"
	reservationRepo "github.com/jellomark/reservation-service/internal/infra/storage/reservation"
	shopClient "github.com/jellomark/reservation-service/internal/integrations/shopservice"
	"github.com/jellomark/reservation-service/internal/service/reservations/models"
)

// Service сервис для чтения броней
type Service struct {
	reservationRepo ReservationRepository
	shopClient      ShopServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	shopClient ShopServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		shopClient:      shopClient,
		logger:          logger,
	}
}

// GetByID получает бронь по ID.
// Проверяет права доступа - бронь видят только её участник и владелец салона
func (s *Service) GetByID(ctx context.Context, reservationID, actorID string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for actor=%s", reservationID, actorID)

	if strings.TrimSpace(reservationID) == "" {
		return nil, fmt.Errorf("%w: reservationId is required", ErrInvalidInput)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkActorAccess(ctx, reservation, actorID); err != nil {
		s.logger.Warn("GetByID: access denied for actor=%s to reservation id=%s", actorID, reservationID)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%s", reservationID)
	return models.FromDomainReservation(reservation), nil
}

// GetMemberReservations получает историю броней участника.
// Опционально фильтрует по статусу
func (s *Service) GetMemberReservations(ctx context.Context, req *models.GetMemberReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetMemberReservations: fetching reservations for member=%s", req.MemberID)

	if strings.TrimSpace(req.MemberID) == "" {
		return nil, fmt.Errorf("%w: memberId is required", ErrInvalidInput)
	}

	var status *domain.ReservationStatus
	if req.Status != nil {
		converted, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetMemberReservations: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &converted
	}

	reservations, err := s.reservationRepo.ListByMember(ctx, req.MemberID, status)
	if err != nil {
		s.logger.Error("GetMemberReservations: repository error for member=%s: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: GetMemberReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMemberReservations: found %d reservations for member=%s", len(reservations), req.MemberID)
	return models.FromDomainReservationList(reservations), nil
}

// GetShopReservations получает брони салона с фильтрами по периоду и статусу.
// Доступно только владельцу салона
func (s *Service) GetShopReservations(ctx context.Context, req *models.GetShopReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetShopReservations: fetching reservations for shop=%s by actor=%s", req.ShopID, req.ActorID)

	if strings.TrimSpace(req.ShopID) == "" {
		return nil, fmt.Errorf("%w: shopId is required", ErrInvalidInput)
	}

	// Проверяем права доступа (только владелец салона)
	if err := s.checkOwnerAccess(ctx, req.ShopID, req.ActorID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetShopReservations: invalid filter for shop=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListByShopWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetShopReservations: repository error for shop=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: GetShopReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetShopReservations: found %d reservations for shop=%s", len(reservations), req.ShopID)
	return models.FromDomainReservationList(reservations), nil
}

// Вспомогательные методы

// checkActorAccess проверяет, что инициатор имеет доступ к брони.
// Доступ есть у участника-владельца брони и у владельца салона
func (s *Service) checkActorAccess(ctx context.Context, reservation *domain.Reservation, actorID string) error {
	// Участник видит свою бронь
	if reservation.IsOwnedByMember(actorID) {
		return nil
	}

	// Иначе инициатор должен быть владельцем салона
	if err := s.checkOwnerAccess(ctx, reservation.ShopID, actorID); err != nil {
		// Ошибка уже залогирована в checkOwnerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkOwnerAccess проверяет, что инициатор является владельцем салона
func (s *Service) checkOwnerAccess(ctx context.Context, shopID, actorID string) error {
	shop, err := s.shopClient.GetShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, shopClient.ErrShopNotFound) {
			s.logger.Warn("checkOwnerAccess: shop id=%s not found", shopID)
			return ErrShopNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get shop id=%s: %v", shopID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get shop: %v", ErrInternal, err)
	}

	if shop.OwnerID != actorID {
		s.logger.Warn("checkOwnerAccess: actor=%s is not the owner of shop=%s", actorID, shopID)
		return ErrAccessDenied
	}

	return nil
}
