package get_available_dates

import (
	"github.com/jellomark/reservation-service/internal/domain"
	getAvailableDates "github.com/jellomark/reservation-service/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Dates []string `json:"dates"` // ["2026-09-15", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, len(resp.Dates))
	for i, date := range resp.Dates {
		dates[i] = date.Format(domain.DateFormat)
	}

	return &AvailableDatesResponse{Dates: dates}
}
