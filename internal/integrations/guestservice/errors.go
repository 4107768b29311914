package guestservice

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("guestservice: guest not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("guestservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("guestservice: internal error")
)
