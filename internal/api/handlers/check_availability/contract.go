package check_availability

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/availability"
)

type AvailabilityService interface {
	CheckAvailability(ctx context.Context, req *availability.CheckAvailabilityRequest) (*availability.CheckAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
