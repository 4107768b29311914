package availability

import "errors"

var (
	// ErrInvalidDateRange возвращается, когда checkOut не позже checkIn
	// (бронирование на ноль ночей недопустимо)
	ErrInvalidDateRange = errors.New("availability: check-out must be after check-in")

	// ErrInvalidGuests возвращается при некорректном количестве гостей
	ErrInvalidGuests = errors.New("availability: guests count must be positive")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("availability: room not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
