package create_reservation

import (
	"errors"
	"net/http"

	"github.com/jellomark/reservation-service/internal/api/handlers"
	"github.com/jellomark/reservation-service/internal/api/middleware"
	createReservation "github.com/jellomark/reservation-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateOrTime     = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgMembersOnly           = "бронь может создать только участник"
	msgShopNotFound          = "салон не найден"
	msgTreatmentNotFound     = "процедура не найдена"
	msgTreatmentNotInShop    = "процедура не принадлежит салону"
	msgPastReservationDate   = "нельзя создать бронь на прошедшую дату"
	msgShopClosed            = "салон закрыт в выбранную дату"
	msgOutsideOperatingHours = "время выходит за пределы рабочих часов салона"
	msgTimeConflict          = "выбранное время уже занято"
	msgInvalidSchedule       = "некорректное расписание салона"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем участника из контекста (через middleware Auth)
	memberID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Создавать брони могут только участники
	if role, _ := middleware.GetUserRole(r.Context()); role != middleware.RoleMember {
		h.logger.Warn("POST /reservations - Forbidden for role=%s, user_id=%s", role, memberID)
		handlers.RespondForbidden(w, msgMembersOnly)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(memberID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrTimeConflict):
			h.logger.Warn("POST /reservations - Time conflict: member_id=%s, shop_id=%s", memberID, req.ShopID)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, createReservation.ErrShopNotFound):
			h.logger.Warn("POST /reservations - Shop not found: shop_id=%s", req.ShopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, createReservation.ErrTreatmentNotFound):
			h.logger.Warn("POST /reservations - Treatment not found: treatment_id=%s", req.TreatmentID)
			handlers.RespondNotFound(w, msgTreatmentNotFound)

		case errors.Is(err, createReservation.ErrTreatmentNotInShop):
			h.logger.Warn("POST /reservations - Treatment not in shop: treatment_id=%s, shop_id=%s",
				req.TreatmentID, req.ShopID)
			handlers.RespondUnprocessableEntity(w, msgTreatmentNotInShop)

		case errors.Is(err, createReservation.ErrPastReservationDate):
			h.logger.Warn("POST /reservations - Past date: member_id=%s, date=%s", memberID, req.Date)
			handlers.RespondUnprocessableEntity(w, msgPastReservationDate)

		case errors.Is(err, createReservation.ErrShopClosed):
			h.logger.Warn("POST /reservations - Shop closed: shop_id=%s, date=%s", req.ShopID, req.Date)
			handlers.RespondUnprocessableEntity(w, msgShopClosed)

		case errors.Is(err, createReservation.ErrOutsideOperatingHours):
			h.logger.Warn("POST /reservations - Outside operating hours: shop_id=%s, time=%s",
				req.ShopID, req.StartTime)
			handlers.RespondUnprocessableEntity(w, msgOutsideOperatingHours)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createReservation.ErrInvalidSchedule):
			h.logger.Error("POST /reservations - Invalid schedule: shop_id=%s, error=%v", req.ShopID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInvalidSchedule)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: member_id=%s, shop_id=%s, error=%v",
				memberID, req.ShopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: id=%s, member_id=%s", result.ID, memberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
