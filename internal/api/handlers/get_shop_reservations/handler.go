package get_shop_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jellomark/reservation-service/internal/api/handlers"
	"github.com/jellomark/reservation-service/internal/api/middleware"
	"github.com/jellomark/reservation-service/internal/domain"
	"github.com/jellomark/reservation-service/internal/service/reservations"
	"github.com/jellomark/reservation-service/internal/service/reservations/models"
)

const (
	msgInvalidStartDate = "некорректный формат startDate, ожидается YYYY-MM-DD"
	msgInvalidEndDate   = "некорректный формат endDate, ожидается YYYY-MM-DD"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgShopNotFound     = "салон не найден"
	msgForbidden        = "доступ запрещен"
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

// Handle GET /api/v1/shops/{shopId}/reservations?startDate=&endDate=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopID := vars["shopId"]

	// Получаем инициатора из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /shops/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetShopReservationsRequest{
		ActorID: actorID,
		ShopID:  shopID,
	}

	query := r.URL.Query()
	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /shops/{id}/reservations - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		req.StartDate = &startDate
	}
	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /shops/{id}/reservations - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEndDate)
			return
		}
		req.EndDate = &endDate
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetShopReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrShopNotFound):
			h.logger.Warn("GET /shops/{id}/reservations - Shop not found: shop_id=%s", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /shops/{id}/reservations - Access denied: shop_id=%s, actor=%s", shopID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /shops/{id}/reservations - Failed: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/reservations - Retrieved %d reservations: shop_id=%s",
		len(result.Reservations), shopID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
