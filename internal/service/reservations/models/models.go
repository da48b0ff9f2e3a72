package models

import (
	"errors"
	"time"

	"github.com/jellomark/reservation-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// GetMemberReservationsRequest запрос на получение броней участника
type GetMemberReservationsRequest struct {
	MemberID string  `json:"memberId"`
	Status   *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// GetShopReservationsRequest запрос на получение броней салона
type GetShopReservationsRequest struct {
	ActorID   string     `json:"actorId"`
	ShopID    string     `json:"shopId"`
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status    *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetShopReservationsRequest) ToDomainFilter() (domain.ShopReservationsFilter, error) {
	filter := domain.ShopReservationsFilter{
		ShopID:    r.ShopID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID          string `json:"id"`
	ShopID      string `json:"shopId"`
	MemberID    string `json:"memberId"`
	TreatmentID string `json:"treatmentId"`
	Date        string `json:"date"`      // "2026-09-15"
	StartTime   string `json:"startTime"` // "10:00"
	EndTime     string `json:"endTime"`   // "11:00"
	Status      string `json:"status"`

	Memo            *string `json:"memo,omitempty"`
	RejectionReason *string `json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:              r.ID,
		ShopID:          r.ShopID,
		MemberID:        r.MemberID,
		TreatmentID:     r.TreatmentID,
		Date:            r.Date.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		Status:          string(r.Status),
		Memo:            r.Memo,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if r := FromDomainReservation(reservation); r != nil {
			resp.Reservations[i] = *r
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
