package transition_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jellomark/reservation-service/internal/api/handlers"
	"github.com/jellomark/reservation-service/internal/api/middleware"
	transitionReservation "github.com/jellomark/reservation-service/internal/usecase/transition_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownAction      = "неизвестное действие"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронь не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidTransition  = "переход статуса недопустим"
	msgReasonRequired     = "для отклонения требуется причина"
)

type Handler struct {
	useCase TransitionReservationUseCase
	logger  Logger
}

func NewHandler(useCase TransitionReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/{action}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]

	action, ok := transitionReservation.ParseAction(vars["action"])
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/{action} - Unknown action: %s", vars["action"])
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	// Получаем инициатора из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/{action} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	// Тело опционально: причина передается только при отклонении
	var req TransitionRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /reservations/{id}/{action} - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &transitionReservation.Request{
		ReservationID: reservationID,
		ActorID:       actorID,
		ActorRole:     transitionReservation.ActorRole(role),
		Action:        action,
		Reason:        req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/{action} - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transitionReservation.ErrUnauthorizedAccess):
			h.logger.Warn("PATCH /reservations/{id}/{action} - Access denied: reservation_id=%s, actor=%s (%s)",
				reservationID, actorID, role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, transitionReservation.ErrInvalidStatusTransition):
			h.logger.Warn("PATCH /reservations/{id}/{action} - Invalid transition: reservation_id=%s, action=%s",
				reservationID, action)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, transitionReservation.ErrReasonRequired):
			h.logger.Warn("PATCH /reservations/{id}/{action} - Reason required: reservation_id=%s", reservationID)
			handlers.RespondUnprocessableEntity(w, msgReasonRequired)

		case errors.Is(err, transitionReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/{action} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /reservations/{id}/{action} - Failed: reservation_id=%s, action=%s, error=%v",
				reservationID, action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/{action} - Transition applied: reservation_id=%s, status=%s",
		reservationID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
