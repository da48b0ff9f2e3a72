package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/jellomark/reservation-service/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusRejected  ReservationStatus = "rejected"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
	StatusNoShow    ReservationStatus = "no_show"
)

// ErrInvalidStatusTransition возвращается при попытке недопустимого перехода статуса
var ErrInvalidStatusTransition = errors.New("domain: invalid reservation status transition")

// Valid returns true if the status is one of the known values
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsActive returns true if the status still occupies its time interval
func (s ReservationStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal returns true if no further transition is permitted from the status
func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

// CanTransitionTo проверяет допустимость перехода.
// Машина состояний закрытая: разрешены ровно шесть переходов,
// всё остальное запрещено.
//
//	pending   -> confirmed | rejected | cancelled
//	confirmed -> cancelled | completed | no_show
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusRejected || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCancelled || target == StatusCompleted || target == StatusNoShow
	default:
		return false
	}
}

// Reservation represents a treatment reservation in a beauty shop.
// Shop, member and treatment identities are foreign references owned by
// external services. Date, start and end time are frozen at creation;
// only status, rejection reason and updatedAt change afterwards.
type Reservation struct {
	ID          string
	ShopID      string
	MemberID    string
	TreatmentID string

	// Дата по локальному времени салона, без конвертации таймзон
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	Status          ReservationStatus
	Memo            *string
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its time interval
func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// IsOwnedByMember returns true if the reservation belongs to the given member
func (r *Reservation) IsOwnedByMember(memberID string) bool {
	return r.MemberID == memberID
}

// BelongsToShop returns true if the reservation was made in the given shop
func (r *Reservation) BelongsToShop(shopID string) bool {
	return r.ShopID == shopID
}

// ShopReservationsFilter фильтр для выборки броней салона
type ShopReservationsFilter struct {
	ShopID    string             // Обязательный параметр
	StartDate *time.Time         // Начало периода (опционально)
	EndDate   *time.Time         // Конец периода (опционально)
	Status    *ReservationStatus // Фильтр по статусу (опционально)
}

// TransitionTo переводит бронь в target, проверяя машину состояний.
// При недопустимом переходе возвращает ErrInvalidStatusTransition
// с текущим статусом и целевым в сообщении, не меняя бронь.
func (r *Reservation) TransitionTo(target ReservationStatus, now time.Time) error {
	if !r.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, r.Status, target)
	}
	r.Status = target
	r.UpdatedAt = now
	return nil
}
