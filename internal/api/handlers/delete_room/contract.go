package delete_room

import "context"

type DeleteRoomUseCase interface {
	Execute(ctx context.Context, roomID int64, force bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
