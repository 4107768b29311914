package check_out

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/housekeeping"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	UpdateStatusFromBooking(ctx context.Context, id int64, status domain.RoomStatus) error
}

// HousekeepingRepository интерфейс репозитория задач уборки
type HousekeepingRepository interface {
	Create(ctx context.Context, roomID int64, reference string, note string) (*housekeeping.CleaningTask, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
