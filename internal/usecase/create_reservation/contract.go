package create_reservation

import (
	"context"
	"time"

	"github.com/jellomark/reservation-service/internal/domain"
	"github.com/jellomark/reservation-service/internal/integrations/memberservice"
	"github.com/jellomark/reservation-service/internal/integrations/notifyservice"
	"github.com/jellomark/reservation-service/internal/integrations/shopservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByShopAndDate(ctx context.Context, shopID string, date time.Time) ([]*domain.Reservation, error)
}

// ShopServiceClient интерфейс клиента для ShopService
type ShopServiceClient interface {
	GetShop(ctx context.Context, shopID string) (*shopservice.Shop, error)
	GetTreatment(ctx context.Context, treatmentID string) (*shopservice.Treatment, error)
}

// MemberServiceClient интерфейс клиента для MemberService
type MemberServiceClient interface {
	GetMember(ctx context.Context, memberID string) (*memberservice.Member, error)
}

// NotificationClient интерфейс клиента для NotificationService
type NotificationClient interface {
	Send(ctx context.Context, notification *notifyservice.Notification) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
