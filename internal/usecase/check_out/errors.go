package check_out

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("check_out: booking not found")

	// ErrInvalidTransition возвращается, когда выселение недопустимо в текущем статусе
	ErrInvalidTransition = errors.New("check_out: booking can not be checked out")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_out: internal error")
)
