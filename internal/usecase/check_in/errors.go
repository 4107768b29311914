package check_in

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("check_in: booking not found")

	// ErrInvalidTransition возвращается, когда заселение недопустимо в текущем статусе
	ErrInvalidTransition = errors.New("check_in: booking can not be checked in")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_in: internal error")
)
