package delete_room

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("delete_room: room not found")

	// ErrActiveBookingsExist возвращается, когда у номера есть активные
	// бронирования и force-флаг не передан
	ErrActiveBookingsExist = errors.New("delete_room: room has active bookings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_room: internal error")
)

// ActiveBookingsError ошибка удаления с количеством активных бронирований
type ActiveBookingsError struct {
	Count int
}

func (e *ActiveBookingsError) Error() string {
	return fmt.Sprintf("%s: %d active bookings", ErrActiveBookingsExist.Error(), e.Count)
}

// Unwrap позволяет errors.Is(err, ErrActiveBookingsExist)
func (e *ActiveBookingsError) Unwrap() error {
	return ErrActiveBookingsExist
}
