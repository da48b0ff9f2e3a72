package transition_reservation

import (
	"context"

	"github.com/jellomark/reservation-service/internal/domain"
	"github.com/jellomark/reservation-service/internal/integrations/memberservice"
	"github.com/jellomark/reservation-service/internal/integrations/notifyservice"
	"github.com/jellomark/reservation-service/internal/integrations/shopservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, reservationID string) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID string, expected, target domain.ReservationStatus, rejectionReason *string) (*domain.Reservation, error)
}

// ShopServiceClient интерфейс клиента для ShopService
type ShopServiceClient interface {
	GetShop(ctx context.Context, shopID string) (*shopservice.Shop, error)
}

// MemberServiceClient интерфейс клиента для MemberService
type MemberServiceClient interface {
	GetMember(ctx context.Context, memberID string) (*memberservice.Member, error)
}

// NotificationClient интерфейс клиента для NotificationService
type NotificationClient interface {
	Send(ctx context.Context, notification *notifyservice.Notification) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

