package create_booking

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("create_booking: guest not found")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomNotBookable возвращается, когда номер выведен из продажи
	// (MAINTENANCE или BLOCKED)
	ErrRoomNotBookable = errors.New("create_booking: room is not bookable")

	// ErrRoomCapacityExceeded возвращается, когда гостей больше вместимости номера
	ErrRoomCapacityExceeded = errors.New("create_booking: room capacity exceeded")

	// ErrDatesConflict возвращается, когда даты пересекаются с активным бронированием
	ErrDatesConflict = errors.New("create_booking: dates conflict with existing booking")

	// ErrInvalidDateRange возвращается при некорректном интервале дат
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError ошибка конфликта дат с номерами конфликтующих бронирований
type ConflictError struct {
	BookingNumbers []string
}

func (e *ConflictError) Error() string {
	return ErrDatesConflict.Error()
}

// Unwrap позволяет errors.Is(err, ErrDatesConflict)
func (e *ConflictError) Unwrap() error {
	return ErrDatesConflict
}
