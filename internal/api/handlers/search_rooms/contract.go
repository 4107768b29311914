package search_rooms

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/availability"
)

type AvailabilityService interface {
	SearchAvailableRooms(ctx context.Context, req *availability.SearchRoomsRequest) (*availability.SearchRoomsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
