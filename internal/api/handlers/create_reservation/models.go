package create_reservation

import (
	"time"

	"github.com/jellomark/reservation-service/internal/domain"
	createReservation "github.com/jellomark/reservation-service/internal/usecase/create_reservation"
	"github.com/jellomark/reservation-service/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ShopID      string  `json:"shopId"`
	TreatmentID string  `json:"treatmentId"`
	Date        string  `json:"date"`      // "2026-09-15"
	StartTime   string  `json:"startTime"` // "10:00"
	Memo        *string `json:"memo,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          string  `json:"id"`
	ShopID      string  `json:"shopId"`
	MemberID    string  `json:"memberId"`
	TreatmentID string  `json:"treatmentId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Status      string  `json:"status"`
	Memo        *string `json:"memo,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(memberID string) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ShopID:      r.ShopID,
		MemberID:    memberID,
		TreatmentID: r.TreatmentID,
		Date:        date,
		StartTime:   startTime,
		Memo:        r.Memo,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		ShopID:      resp.ShopID,
		MemberID:    resp.MemberID,
		TreatmentID: resp.TreatmentID,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		Memo:        resp.Memo,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
