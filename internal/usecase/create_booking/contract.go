package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/finance"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/guestservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindActiveByRoom(ctx context.Context, roomID int64) ([]*domain.Booking, error)
	NextBookingNumber(ctx context.Context, year int) (string, int, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// FinanceRepository интерфейс репозитория финансовых транзакций
type FinanceRepository interface {
	RecordPayment(ctx context.Context, bookingID int64, amount float64, paidAt time.Time, description string) (*finance.Transaction, error)
}

// GuestServiceClient интерфейс клиента GuestService
type GuestServiceClient interface {
	GetGuest(ctx context.Context, guestID int64) (*guestservice.Guest, error)
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
