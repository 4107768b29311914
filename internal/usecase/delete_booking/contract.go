package delete_booking

import "context"

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Delete(ctx context.Context, id int64) error
}

// FinanceRepository интерфейс репозитория финансовых транзакций
type FinanceRepository interface {
	DeleteByBookingID(ctx context.Context, bookingID int64) (int64, error)
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
