package get_member_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jellomark/reservation-service/internal/api/handlers"
	"github.com/jellomark/reservation-service/internal/api/middleware"
	"github.com/jellomark/reservation-service/internal/service/reservations"
	"github.com/jellomark/reservation-service/internal/service/reservations/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/members/{memberId}/reservations?status={status}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	memberID := vars["memberId"]

	// Получаем инициатора из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /members/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Участник видит только свою историю броней
	if actorID != memberID {
		h.logger.Warn("GET /members/{id}/reservations - Access denied: member_id=%s, actor=%s", memberID, actorID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetMemberReservationsRequest{MemberID: memberID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetMemberReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /members/{id}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /members/{id}/reservations - Failed: member_id=%s, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /members/{id}/reservations - Retrieved %d reservations: member_id=%s",
		len(result.Reservations), memberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
