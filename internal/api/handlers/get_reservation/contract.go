package get_reservation

import (
	"context"

	"github.com/jellomark/reservation-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, reservationID, actorID string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
