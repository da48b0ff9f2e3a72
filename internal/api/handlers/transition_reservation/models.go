package transition_reservation

import (
	"time"

	"github.com/jellomark/reservation-service/internal/domain"
	transitionReservation "github.com/jellomark/reservation-service/internal/usecase/transition_reservation"
)

// TransitionRequest HTTP request model. Тело опционально: причина нужна
// только для отклонения
type TransitionRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              string  `json:"id"`
	ShopID          string  `json:"shopId"`
	MemberID        string  `json:"memberId"`
	TreatmentID     string  `json:"treatmentId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	Memo            *string `json:"memo,omitempty"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		ShopID:          resp.ShopID,
		MemberID:        resp.MemberID,
		TreatmentID:     resp.TreatmentID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Status:          resp.Status,
		Memo:            resp.Memo,
		RejectionReason: resp.RejectionReason,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
