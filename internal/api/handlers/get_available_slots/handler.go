package get_available_slots

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/jellomark/reservation-service/internal/api/handlers"
	"github.com/jellomark/reservation-service/internal/domain"
	getAvailableSlots "github.com/jellomark/reservation-service/internal/usecase/get_available_slots"
)

const (
	msgMissingTreatmentID = "отсутствует параметр treatmentId"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgShopNotFound       = "салон не найден"
	msgTreatmentNotFound  = "процедура не найдена"
	msgInvalidSchedule    = "некорректное расписание салона"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/available-slots?treatmentId={id}&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopID := vars["shopId"]

	treatmentID := strings.TrimSpace(r.URL.Query().Get("treatmentId"))
	if treatmentID == "" {
		h.logger.Warn("GET /shops/{id}/available-slots - Missing treatmentId")
		handlers.RespondBadRequest(w, msgMissingTreatmentID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /shops/{id}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ShopID:      shopID,
		TreatmentID: treatmentID,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrShopNotFound):
			h.logger.Warn("GET /shops/{id}/available-slots - Shop not found: shop_id=%s", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, getAvailableSlots.ErrTreatmentNotFound):
			h.logger.Warn("GET /shops/{id}/available-slots - Treatment not found: treatment_id=%s", treatmentID)
			handlers.RespondNotFound(w, msgTreatmentNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrInvalidSchedule):
			h.logger.Error("GET /shops/{id}/available-slots - Invalid schedule: shop_id=%s, error=%v", shopID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInvalidSchedule)

		default:
			h.logger.Error("GET /shops/{id}/available-slots - Failed: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/available-slots - Retrieved %d slots: shop_id=%s, date=%s",
		len(result.Slots), shopID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
