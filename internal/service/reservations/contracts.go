package reservations

import (
	"context"

	"github.com/jellomark/reservation-service/internal/domain"
	"github.com/jellomark/reservation-service/internal/integrations/shopservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, reservationID string) (*domain.Reservation, error)
	ListByMember(ctx context.Context, memberID string, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	ListByShopWithFilter(ctx context.Context, filter domain.ShopReservationsFilter) ([]*domain.Reservation, error)
}

// ShopServiceClient интерфейс клиента для ShopService
type ShopServiceClient interface {
	GetShop(ctx context.Context, shopID string) (*shopservice.Shop, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
