package get_available_slots

import (
	"github.com/jellomark/reservation-service/internal/domain"
	getAvailableSlots "github.com/jellomark/reservation-service/internal/usecase/get_available_slots"
)

// SlotResponse один слот в сетке дня
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	Available bool   `json:"available"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string         `json:"date"`                // "2026-09-15"
	OpenTime  string         `json:"openTime,omitempty"`  // пустое, если салон закрыт
	CloseTime string         `json:"closeTime,omitempty"` // пустое, если салон закрыт
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		OpenTime:  resp.OpenTime.String(),
		CloseTime: resp.CloseTime.String(),
		Slots:     slots,
	}
}
