package transition_reservation

import (
	"time"

	"github.com/jellomark/reservation-service/internal/domain"
	"github.com/jellomark/reservation-service/pkg/types"
)

// Action действие над бронью
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionReject   Action = "reject"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
	ActionNoShow   Action = "no-show"
)

// ActorRole роль инициатора действия
type ActorRole string

const (
	RoleMember ActorRole = "member"
	RoleOwner  ActorRole = "owner"
)

// ParseAction разбирает действие из path-параметра
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionConfirm, ActionReject, ActionCancel, ActionComplete, ActionNoShow:
		return Action(s), true
	default:
		return "", false
	}
}

// targetStatus возвращает целевой статус для действия
func (a Action) targetStatus() domain.ReservationStatus {
	switch a {
	case ActionConfirm:
		return domain.StatusConfirmed
	case ActionReject:
		return domain.StatusRejected
	case ActionCancel:
		return domain.StatusCancelled
	case ActionComplete:
		return domain.StatusCompleted
	case ActionNoShow:
		return domain.StatusNoShow
	default:
		return ""
	}
}

// Request модель запроса на смену статуса брони
type Request struct {
	ReservationID string    // ID брони
	ActorID       string    // ID инициатора (участник или владелец салона)
	ActorRole     ActorRole // Роль инициатора
	Action        Action    // Действие
	Reason        *string   // Причина отклонения (обязательна для reject)
}

// Response модель ответа с обновленной бронью
type Response struct {
	ID              string
	ShopID          string
	MemberID        string
	TreatmentID     string
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Status          string
	Memo            *string
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// fromDomain конвертирует доменную бронь в response
func fromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:              res.ID,
		ShopID:          res.ShopID,
		MemberID:        res.MemberID,
		TreatmentID:     res.TreatmentID,
		Date:            res.Date,
		StartTime:       res.StartTime,
		EndTime:         res.EndTime,
		Status:          string(res.Status),
		Memo:            res.Memo,
		RejectionReason: res.RejectionReason,
		CreatedAt:       res.CreatedAt,
		UpdatedAt:       res.UpdatedAt,
	}
}
