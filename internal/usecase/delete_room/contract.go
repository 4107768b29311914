package delete_room

import "context"

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountActiveByRoom(ctx context.Context, roomID int64) (int, error)
	DeleteByRoomID(ctx context.Context, roomID int64) (int64, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	Delete(ctx context.Context, id int64) error
}

// FinanceRepository интерфейс репозитория финансовых транзакций
type FinanceRepository interface {
	DeleteByRoomID(ctx context.Context, roomID int64) (int64, error)
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
