package get_member_reservations

import (
	"context"

	"github.com/jellomark/reservation-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetMemberReservations(ctx context.Context, req *models.GetMemberReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
