package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingFinalized возвращается при попытке изменить завершенное бронирование
	ErrBookingFinalized = errors.New("update_booking: booking is finalized")

	// ErrRoomNotFound возвращается, когда целевой номер не найден
	ErrRoomNotFound = errors.New("update_booking: room not found")

	// ErrRoomNotBookable возвращается, когда целевой номер выведен из продажи
	ErrRoomNotBookable = errors.New("update_booking: room is not bookable")

	// ErrRoomCapacityExceeded возвращается, когда гостей больше вместимости номера
	ErrRoomCapacityExceeded = errors.New("update_booking: room capacity exceeded")

	// ErrDatesConflict возвращается, когда новые даты пересекаются с другим бронированием
	ErrDatesConflict = errors.New("update_booking: dates conflict with existing booking")

	// ErrPaidAmountDecreased возвращается при попытке уменьшить сумму оплаты
	ErrPaidAmountDecreased = errors.New("update_booking: paid amount can not be decreased")

	// ErrInvalidDateRange возвращается при некорректном интервале дат
	ErrInvalidDateRange = errors.New("update_booking: invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
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
