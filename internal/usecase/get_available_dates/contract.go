package get_available_dates

import (
	"context"
	"time"

	"github.com/jellomark/reservation-service/internal/domain"
	"github.com/jellomark/reservation-service/internal/integrations/shopservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByShopAndDate(ctx context.Context, shopID string, date time.Time) ([]*domain.Reservation, error)
}

// ShopServiceClient интерфейс клиента для ShopService
type ShopServiceClient interface {
	GetShop(ctx context.Context, shopID string) (*shopservice.Shop, error)
	GetTreatment(ctx context.Context, treatmentID string) (*shopservice.Treatment, error)
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
