package update_status

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/bookings"
)

type BookingsService interface {
	SetStatus(ctx context.Context, req *bookings.SetStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
