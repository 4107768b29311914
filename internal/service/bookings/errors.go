package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, если бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAlreadyFinalized возвращается при попытке отменить выселенное бронирование
	ErrAlreadyFinalized = errors.New("bookings: booking is already finalized")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("bookings: booking is already cancelled")

	// ErrUnknownStatus возвращается при неизвестном значении статуса
	ErrUnknownStatus = errors.New("bookings: unknown booking status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
