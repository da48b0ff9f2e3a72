package get_available_dates

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/jellomark/reservation-service/internal/api/handlers"
	"github.com/jellomark/reservation-service/internal/domain"
	getAvailableDates "github.com/jellomark/reservation-service/internal/usecase/get_available_dates"
)

const (
	msgMissingTreatmentID = "отсутствует параметр treatmentId"
	msgInvalidMonth       = "некорректный формат месяца, ожидается YYYY-MM"
	msgShopNotFound       = "салон не найден"
	msgTreatmentNotFound  = "процедура не найдена"
	msgInvalidSchedule    = "некорректное расписание салона"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/available-dates?treatmentId={id}&month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopID := vars["shopId"]

	treatmentID := strings.TrimSpace(r.URL.Query().Get("treatmentId"))
	if treatmentID == "" {
		h.logger.Warn("GET /shops/{id}/available-dates - Missing treatmentId")
		handlers.RespondBadRequest(w, msgMissingTreatmentID)
		return
	}

	month, err := time.Parse(domain.MonthFormat, r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /shops/{id}/available-dates - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{
		ShopID:      shopID,
		TreatmentID: treatmentID,
		Month:       month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrShopNotFound):
			h.logger.Warn("GET /shops/{id}/available-dates - Shop not found: shop_id=%s", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, getAvailableDates.ErrTreatmentNotFound):
			h.logger.Warn("GET /shops/{id}/available-dates - Treatment not found: treatment_id=%s", treatmentID)
			handlers.RespondNotFound(w, msgTreatmentNotFound)

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/available-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableDates.ErrInvalidSchedule):
			h.logger.Error("GET /shops/{id}/available-dates - Invalid schedule: shop_id=%s, error=%v", shopID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInvalidSchedule)

		default:
			h.logger.Error("GET /shops/{id}/available-dates - Failed: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/available-dates - Retrieved %d dates: shop_id=%s, month=%s",
		len(result.Dates), shopID, month.Format(domain.MonthFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
