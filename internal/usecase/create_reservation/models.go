package create_reservation

import (
	"time"

	"github.com/jellomark/reservation-service/internal/domain"
	"github.com/jellomark/reservation-service/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	ShopID      string           // ID салона
	MemberID    string           // ID участника
	TreatmentID string           // ID процедуры
	Date        time.Time        // Дата брони (без времени)
	StartTime   types.TimeString // Время начала ("HH:MM")
	Memo        *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID          string
	ShopID      string
	MemberID    string
	TreatmentID string
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string
	Memo        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// fromDomain конвертирует доменную бронь в response
func fromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:          res.ID,
		ShopID:      res.ShopID,
		MemberID:    res.MemberID,
		TreatmentID: res.TreatmentID,
		Date:        res.Date,
		StartTime:   res.StartTime,
		EndTime:     res.EndTime,
		Status:      string(res.Status),
		Memo:        res.Memo,
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}
