package get_timeline

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/timeline"
)

type TimelineService interface {
	Build(ctx context.Context, req *timeline.Request) (*timeline.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
