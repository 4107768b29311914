package check_out

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type CheckOutUseCase interface {
	Execute(ctx context.Context, bookingID int64) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
